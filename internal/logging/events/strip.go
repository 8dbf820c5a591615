package events

type StripTracer struct{}

var Strip = StripTracer{}

func (StripTracer) Center(id string, target int) {
	emit("strip.center", Fields{"id": id, "target": target})
}

func (StripTracer) CenterMissing(id string) {
	emit("strip.center.missing", Fields{"id": id})
}

func (StripTracer) Page(direction string, target int) {
	emit("strip.page", Fields{"direction": direction, "target": target})
}

func (StripTracer) Affordances(left, right bool) {
	emit("strip.affordances", Fields{"left": left, "right": right})
}
