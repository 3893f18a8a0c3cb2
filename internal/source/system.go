package source

import (
	"context"
	"fmt"
	"sort"

	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/net"

	"wheelview/internal/content"
)

// Mounts lists the mountpoints of physical partitions.
type Mounts struct {
	All bool // include pseudo filesystems
}

func (s *Mounts) Name() string                         { return "mounts" }
func (s *Mounts) Connect(ctx context.Context) error    { return nil }
func (s *Mounts) Disconnect(ctx context.Context) error { return nil }

func (s *Mounts) Collect(ctx context.Context) (content.List, error) {
	parts, err := disk.PartitionsWithContext(ctx, s.All)
	if err != nil {
		return content.List{}, fmt.Errorf("failed to get partitions: %w", err)
	}
	seen := make(map[string]bool, len(parts))
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if p.Mountpoint == "" || seen[p.Mountpoint] {
			continue
		}
		seen[p.Mountpoint] = true
		names = append(names, p.Mountpoint)
	}
	sort.Strings(names)
	return content.Of(names...), nil
}

// Interfaces lists network interfaces that carry IO counters.
type Interfaces struct{}

func (s *Interfaces) Name() string                         { return "interfaces" }
func (s *Interfaces) Connect(ctx context.Context) error    { return nil }
func (s *Interfaces) Disconnect(ctx context.Context) error { return nil }

func (s *Interfaces) Collect(ctx context.Context) (content.List, error) {
	counters, err := net.IOCountersWithContext(ctx, true)
	if err != nil {
		return content.List{}, fmt.Errorf("failed to get net io counters: %w", err)
	}
	names := make([]string, 0, len(counters))
	for _, c := range counters {
		names = append(names, c.Name)
	}
	sort.Strings(names)
	return content.Of(names...), nil
}
