package events

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload Fields) {
	emit("app.start", payload)
}

func (AppTracer) Stop(reason string) {
	emit("app.stop", Fields{"reason": reason})
}
