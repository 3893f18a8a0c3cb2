// Package content maps raw list positions onto the labels a wheel draws.
//
// Items are a closed variant: integers, text, and anything else that can be
// turned into a string. The variant is resolved once when a label is built so
// geometry and projection code never type-switch on user values.
package content

import (
	"fmt"
	"strconv"
)

// Kind identifies the variant held by an Item.
type Kind int

const (
	KindInteger Kind = iota
	KindText
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindText:
		return "text"
	default:
		return "other"
	}
}

// DefaultIntegerFormat pads integers to two digits.
const DefaultIntegerFormat = "%02d"

// Item is one wheel entry.
type Item struct {
	kind  Kind
	num   int
	text  string
	other any
}

// Integer wraps an integer value.
func Integer(n int) Item { return Item{kind: KindInteger, num: n} }

// Text wraps a string value.
func Text(s string) Item { return Item{kind: KindText, text: s} }

// Other wraps any non-nil value that is neither an integer nor a string.
func Other(v any) Item { return Item{kind: KindOther, other: v} }

// FromValue classifies v. It reports false for nil, which callers drop.
func FromValue(v any) (Item, bool) {
	switch x := v.(type) {
	case nil:
		return Item{}, false
	case Item:
		return x, true
	case int:
		return Integer(x), true
	case int8:
		return Integer(int(x)), true
	case int16:
		return Integer(int(x)), true
	case int32:
		return Integer(int(x)), true
	case int64:
		return Integer(int(x)), true
	case uint:
		return Integer(int(x)), true
	case uint8:
		return Integer(int(x)), true
	case uint16:
		return Integer(int(x)), true
	case uint32:
		return Integer(int(x)), true
	case uint64:
		return Integer(int(x)), true
	case string:
		return Text(x), true
	default:
		return Other(x), true
	}
}

// Kind reports the variant.
func (it Item) Kind() Kind { return it.kind }

// Value returns the wrapped value as handed to the list.
func (it Item) Value() any {
	switch it.kind {
	case KindInteger:
		return it.num
	case KindText:
		return it.text
	default:
		return it.other
	}
}

// Int returns the integer payload and whether the item is an integer.
func (it Item) Int() (int, bool) {
	return it.num, it.kind == KindInteger
}

func (it Item) String() string {
	return Format{}.Label(it)
}

// Format holds the per-variant label rules.
type Format struct {
	IntegerEnabled bool
	Integer        string
}

// Label renders an item for display and measurement.
func (f Format) Label(it Item) string {
	switch it.kind {
	case KindInteger:
		if f.IntegerEnabled {
			layout := f.Integer
			if layout == "" {
				layout = DefaultIntegerFormat
			}
			return fmt.Sprintf(layout, it.num)
		}
		return strconv.Itoa(it.num)
	case KindText:
		return it.text
	default:
		if s, ok := it.other.(fmt.Stringer); ok {
			return s.String()
		}
		if it.other == nil {
			return ""
		}
		return fmt.Sprint(it.other)
	}
}
