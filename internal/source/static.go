package source

import (
	"context"

	"wheelview/internal/content"
)

// Static serves a fixed list of values.
type Static struct {
	name string
	list content.List
}

func NewStatic(name string, values ...any) *Static {
	return &Static{name: name, list: content.FromValues(values)}
}

func (s *Static) Name() string                         { return s.name }
func (s *Static) Connect(ctx context.Context) error    { return nil }
func (s *Static) Disconnect(ctx context.Context) error { return nil }

func (s *Static) Collect(ctx context.Context) (content.List, error) {
	return s.list, nil
}

// Range serves the integers From..To inclusive, stepping by Step.
type Range struct {
	name           string
	From, To, Step int
}

// NewRange builds a range source. A zero step counts by one toward To.
func NewRange(name string, from, to, step int) *Range {
	if step == 0 {
		step = 1
	}
	if (to < from && step > 0) || (to > from && step < 0) {
		step = -step
	}
	return &Range{name: name, From: from, To: to, Step: step}
}

func (r *Range) Name() string                         { return r.name }
func (r *Range) Connect(ctx context.Context) error    { return nil }
func (r *Range) Disconnect(ctx context.Context) error { return nil }

func (r *Range) Collect(ctx context.Context) (content.List, error) {
	var values []int
	if r.Step > 0 {
		for v := r.From; v <= r.To; v += r.Step {
			values = append(values, v)
		}
	} else {
		for v := r.From; v >= r.To; v += r.Step {
			values = append(values, v)
		}
	}
	return content.Of(values...), nil
}

// Weekdays are the seven day names starting on Monday.
func Weekdays() *Static {
	return NewStatic("weekdays", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday")
}

// Noon is the two-entry half-day wheel of a 12-hour clock.
func Noon() *Static { return NewStatic("noon", "AM", "PM") }

// Hours are 1..12 for a 12-hour clock.
func Hours() *Range { return NewRange("hours", 1, 12, 1) }

// Minutes are 0..59.
func Minutes() *Range { return NewRange("minutes", 0, 59, 1) }
