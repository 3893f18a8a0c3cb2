package state

import (
	"fmt"
	"time"

	"wheelview/internal/dispatch"
)

type Page int

const (
	PageMenu Page = iota
	PageWeekday
	PageProvince
	PageClock
	PageProcesses
	PageConsole
	PageTrajectory
)

// MaxLogLines bounds the event console.
const MaxLogLines = 200

// AppState holds what the views render besides the wheels themselves.
type AppState struct {
	CurrentPage Page
	LastPicker  Page
	Selection   string
	LastUpdate  time.Time
	Err         error
	Log         *EventLog
}

// EventLog keeps the most recent wheel events as text lines.
type EventLog struct {
	Lines []string
	Now   func() time.Time
}

func NewEventLog() *EventLog {
	return &EventLog{Now: time.Now}
}

// Add appends a line, dropping the oldest past MaxLogLines.
func (l *EventLog) Add(format string, args ...any) {
	line := fmt.Sprintf("[%s] ", l.Now().Format("15:04:05")) + fmt.Sprintf(format, args...)
	l.Lines = append(l.Lines, line)
	if len(l.Lines) > MaxLogLines {
		l.Lines = l.Lines[1:]
	}
}

// Sink returns an event observer that logs under name. Scroll offsets are
// too frequent to log and are skipped.
func (l *EventLog) Sink(name string) dispatch.Events {
	return dispatch.Listen(dispatch.Funcs{
		ItemChanged: func(oldPosition, newPosition int) {
			l.Add("%s: item-changed %d -> %d", name, oldPosition, newPosition)
		},
		Selected: func(position int) {
			l.Add("%s: selected %d", name, position)
		},
		StateChanged: func(s dispatch.ScrollState) {
			l.Add("%s: state %s", name, s)
		},
	})
}
