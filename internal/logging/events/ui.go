package events

type UITracer struct{}

type FilterTracer struct{}

type ActionTracer struct{}

var (
	UI     = UITracer{}
	Filter = FilterTracer{}
	Action = ActionTracer{}
)

func (UITracer) PickerOpen(active string) {
	emit("picker.open", Fields{"active": active})
}

func (UITracer) PickerClose(reason string) {
	emit("picker.close", Fields{"reason": reason})
}

func (UITracer) PickerCursor(cursor int) {
	emit("picker.cursor", Fields{"cursor": cursor})
}

func (UITracer) PageScroll(from, to int, smooth bool) {
	emit("page.scroll", Fields{"from": from, "to": to, "smooth": smooth})
}

func (UITracer) Resize(width, height int) {
	emit("ui.resize", Fields{"width": width, "height": height})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	emit("action.error", Fields{"error": err.Error()})
}

func (FilterTracer) Cleared(levelID string) {
	emit("filter.clear", Fields{"level": levelID})
}

func (FilterTracer) WordBackspace(levelID, filter string) {
	emit("filter.word-backspace", Fields{"level": levelID, "filter": filter})
}

func (FilterTracer) Append(levelID, filter string) {
	emit("filter.append", Fields{"level": levelID, "filter": filter})
}

func (FilterTracer) Backspace(levelID, filter string) {
	emit("filter.backspace", Fields{"level": levelID, "filter": filter})
}

type CommandTracer struct{}

var Command = CommandTracer{}

func (CommandTracer) Queue(id, label string) {
	emit("command.queue", Fields{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	emit("command.skip", Fields{"id": id, "label": label})
}

func (CommandTracer) Result(id, label string, err error) {
	payload := Fields{"id": id, "label": label}
	if err != nil {
		payload["error"] = err.Error()
	}
	emit("command.result", payload)
}

func (FilterTracer) Cursor(levelID string, pos int) {
	emit("filter.cursor", Fields{"level": levelID, "cursor": pos})
}
