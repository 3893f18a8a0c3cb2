package source

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v4/process"

	"wheelview/internal/content"
)

// DefaultProcessLimit caps how many processes are listed.
const DefaultProcessLimit = 50

// ProcessInfo is one running process as shown on a wheel.
type ProcessInfo struct {
	PID  int32
	Name string
}

func (p ProcessInfo) String() string {
	if p.Name == "" {
		return fmt.Sprintf("[%d]", p.PID)
	}
	return fmt.Sprintf("%s [%d]", p.Name, p.PID)
}

// Processes lists running processes, one item per process.
type Processes struct {
	Limit int
}

func NewProcesses(limit int) *Processes {
	if limit <= 0 {
		limit = DefaultProcessLimit
	}
	return &Processes{Limit: limit}
}

func (s *Processes) Name() string                         { return "processes" }
func (s *Processes) Connect(ctx context.Context) error    { return nil }
func (s *Processes) Disconnect(ctx context.Context) error { return nil }

func (s *Processes) Collect(ctx context.Context) (content.List, error) {
	pids, err := process.PidsWithContext(ctx)
	if err != nil {
		return content.List{}, fmt.Errorf("failed to list pids: %w", err)
	}

	items := make([]content.Item, 0, min(len(pids), s.Limit))
	for _, pid := range pids {
		if len(items) >= s.Limit {
			break
		}
		p, err := process.NewProcessWithContext(ctx, pid)
		if err != nil {
			continue
		}
		name, _ := p.NameWithContext(ctx)
		items = append(items, content.Other(ProcessInfo{PID: pid, Name: name}))
	}
	return content.NewList(items...), nil
}
