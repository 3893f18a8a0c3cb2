// Package trace drives a wheel through a scripted gesture without a
// display, recording every event and the scroll offset of every frame.
package trace

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// StepKind names a scripted action.
type StepKind int

const (
	StepDown StepKind = iota
	StepMove
	StepUp
	StepCancel
	StepWait
	StepSelect
)

func (k StepKind) String() string {
	switch k {
	case StepDown:
		return "down"
	case StepMove:
		return "move"
	case StepUp:
		return "up"
	case StepCancel:
		return "cancel"
	case StepWait:
		return "wait"
	case StepSelect:
		return "select"
	default:
		return fmt.Sprintf("step(%d)", int(k))
	}
}

// Step is one action, performed After the previous one.
type Step struct {
	Kind     StepKind
	After    time.Duration
	Y        int
	Position int
	Animate  bool
	Duration time.Duration
}

func (s Step) String() string {
	var b strings.Builder
	b.WriteString(s.Kind.String())
	switch s.Kind {
	case StepWait:
		fmt.Fprintf(&b, " %s", s.After)
		return b.String()
	case StepDown, StepMove, StepUp:
		fmt.Fprintf(&b, " %d", s.Y)
	case StepSelect:
		fmt.Fprintf(&b, " %d", s.Position)
		if s.Animate {
			b.WriteString(" animate")
		}
		if s.Duration > 0 {
			fmt.Fprintf(&b, " %s", s.Duration)
		}
	}
	if s.After > 0 {
		fmt.Fprintf(&b, " +%s", s.After)
	}
	return b.String()
}

// Script is an ordered list of steps.
type Script []Step

func (s Script) String() string {
	parts := make([]string, len(s))
	for i, st := range s {
		parts[i] = st.String()
	}
	return strings.Join(parts, "; ")
}

// Flick presses at fromY, moves to toY in equal steps spaced by every, and
// releases at toY.
func Flick(fromY, toY, steps int, every time.Duration) Script {
	if steps < 1 {
		steps = 1
	}
	s := Script{{Kind: StepDown, Y: fromY}}
	for i := 1; i <= steps; i++ {
		y := fromY + (toY-fromY)*i/steps
		s = append(s, Step{Kind: StepMove, Y: y, After: every})
	}
	return append(s, Step{Kind: StepUp, Y: toY})
}

// Drag is a slow flick that ends with a pause so it releases without
// velocity.
func Drag(fromY, toY, steps int, every time.Duration) Script {
	s := Flick(fromY, toY, steps, every)
	s[len(s)-1].After = 500 * time.Millisecond
	return s
}

// Tap presses and releases at y.
func Tap(y int) Script {
	return Script{
		{Kind: StepDown, Y: y},
		{Kind: StepUp, Y: y, After: 40 * time.Millisecond},
	}
}

// Parse reads a script, one step per line or separated by semicolons:
//
//	down Y
//	move Y [+DUR]
//	up Y [+DUR]
//	cancel [+DUR]
//	wait DUR
//	select N [animate] [DUR] [+DUR]
//
// Blank lines and text after '#' are ignored.
func Parse(text string) (Script, error) {
	var script Script
	sc := bufio.NewScanner(strings.NewReader(text))
	line := 0
	for sc.Scan() {
		line++
		raw := sc.Text()
		if i := strings.IndexByte(raw, '#'); i >= 0 {
			raw = raw[:i]
		}
		for _, part := range strings.Split(raw, ";") {
			fields := strings.Fields(part)
			if len(fields) == 0 {
				continue
			}
			st, err := parseStep(fields)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			script = append(script, st)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return script, nil
}

func parseStep(fields []string) (Step, error) {
	var st Step
	switch strings.ToLower(fields[0]) {
	case "down":
		st.Kind = StepDown
	case "move":
		st.Kind = StepMove
	case "up":
		st.Kind = StepUp
	case "cancel":
		st.Kind = StepCancel
	case "wait":
		st.Kind = StepWait
	case "select":
		st.Kind = StepSelect
	default:
		return st, fmt.Errorf("unknown step %q", fields[0])
	}

	args := fields[1:]
	var rest []string
	for _, a := range args {
		if strings.HasPrefix(a, "+") {
			d, err := time.ParseDuration(a[1:])
			if err != nil {
				return st, fmt.Errorf("bad delay %q: %w", a, err)
			}
			st.After = d
			continue
		}
		rest = append(rest, a)
	}

	switch st.Kind {
	case StepDown, StepMove, StepUp:
		if len(rest) != 1 {
			return st, fmt.Errorf("%s takes one coordinate", st.Kind)
		}
		y, err := strconv.Atoi(rest[0])
		if err != nil {
			return st, fmt.Errorf("bad coordinate %q: %w", rest[0], err)
		}
		st.Y = y
	case StepCancel:
		if len(rest) != 0 {
			return st, fmt.Errorf("cancel takes no arguments")
		}
	case StepWait:
		if len(rest) != 1 {
			return st, fmt.Errorf("wait takes one duration")
		}
		d, err := time.ParseDuration(rest[0])
		if err != nil {
			return st, fmt.Errorf("bad duration %q: %w", rest[0], err)
		}
		st.After += d
	case StepSelect:
		if len(rest) == 0 {
			return st, fmt.Errorf("select needs a position")
		}
		pos, err := strconv.Atoi(rest[0])
		if err != nil {
			return st, fmt.Errorf("bad position %q: %w", rest[0], err)
		}
		st.Position = pos
		for _, a := range rest[1:] {
			if a == "animate" {
				st.Animate = true
				continue
			}
			d, err := time.ParseDuration(a)
			if err != nil {
				return st, fmt.Errorf("bad select argument %q", a)
			}
			st.Duration = d
		}
	}
	return st, nil
}
