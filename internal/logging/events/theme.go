package events

type ThemeTracer struct{}

type FeedbackTracer struct{}

var (
	Theme    = ThemeTracer{}
	Feedback = FeedbackTracer{}
)

func (ThemeTracer) Load(dark bool, stored string) {
	emit("theme.load", Fields{"dark": dark, "stored": stored})
}

func (ThemeTracer) Toggle(dark bool) {
	emit("theme.toggle", Fields{"dark": dark})
}

func (FeedbackTracer) Pulse(ms int64) {
	emit("feedback.pulse", Fields{"ms": ms})
}

func (FeedbackTracer) Dropped(ms int64) {
	emit("feedback.dropped", Fields{"ms": ms})
}
