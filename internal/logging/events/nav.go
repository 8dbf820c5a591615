package events

import "time"

type NavTracer struct{}

var Nav = NavTracer{}

func (NavTracer) Visible(id string) {
	emit("nav.visible", Fields{"id": id})
}

func (NavTracer) VisibleIgnored(id string, until time.Time) {
	emit("nav.visible.ignored", Fields{"id": id, "suppressUntil": until})
}

func (NavTracer) Jump(id, origin string, offset int) {
	emit("nav.jump", Fields{"id": id, "origin": origin, "offset": offset})
}

func (NavTracer) JumpTargetMissing(id, origin string) {
	emit("nav.jump.missing", Fields{"id": id, "origin": origin})
}

func (NavTracer) JumpRejected(id string) {
	emit("nav.jump.rejected", Fields{"id": id})
}

func (NavTracer) SuppressionExpired(at time.Time) {
	emit("nav.suppression.expired", Fields{"at": at})
}

func (NavTracer) SuppressionStale(at, until time.Time) {
	emit("nav.suppression.stale", Fields{"at": at, "until": until})
}
