// Package source provides the content that feeds a wheel: fixed values,
// integer ranges, a nested region dataset, running processes and SQL queries.
package source

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"wheelview/internal/content"
)

// ErrUnknownSource is returned by ByName for names with no registered factory.
var ErrUnknownSource = errors.New("unknown source")

// Source produces a list of wheel items. Connect and Disconnect bracket any
// external resource the source holds; Collect may be called repeatedly.
type Source interface {
	Name() string
	Connect(ctx context.Context) error
	Disconnect(ctx context.Context) error
	Collect(ctx context.Context) (content.List, error)
}

// Factory builds a fresh source.
type Factory func() Source

var registry = map[string]Factory{
	"weekdays":   func() Source { return Weekdays() },
	"noon":       func() Source { return Noon() },
	"hours":      func() Source { return Hours() },
	"minutes":    func() Source { return Minutes() },
	"years":      func() Source { return NewRange("years", 1970, 2100, 1) },
	"provinces":  func() Source { return NewProvinces(nil) },
	"processes":  func() Source { return NewProcesses(DefaultProcessLimit) },
	"mounts":     func() Source { return &Mounts{} },
	"interfaces": func() Source { return &Interfaces{} },
}

// Register adds or replaces a named factory.
func Register(name string, f Factory) {
	registry[strings.ToLower(name)] = f
}

// ByName builds the registered source called name.
func ByName(name string) (Source, error) {
	f, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, name)
	}
	return f(), nil
}

// Names lists the registered sources in order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load connects src, collects once and disconnects.
func Load(ctx context.Context, src Source) (content.List, error) {
	if err := src.Connect(ctx); err != nil {
		return content.List{}, fmt.Errorf("connect %s: %w", src.Name(), err)
	}
	defer src.Disconnect(ctx)

	list, err := src.Collect(ctx)
	if err != nil {
		return content.List{}, fmt.Errorf("collect %s: %w", src.Name(), err)
	}
	return list, nil
}
