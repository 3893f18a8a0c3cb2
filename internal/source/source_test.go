package source

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wheelview/internal/content"
)

type sourceTestCase struct {
	name     string
	factory  func() Source
	want     int
	optional bool
}

var sourceCases = []sourceTestCase{
	{name: "Weekdays", factory: func() Source { return Weekdays() }, want: 7},
	{name: "Noon", factory: func() Source { return Noon() }, want: 2},
	{name: "Hours", factory: func() Source { return Hours() }, want: 12},
	{name: "Minutes", factory: func() Source { return Minutes() }, want: 60},
	{name: "Provinces", factory: func() Source { return NewProvinces(nil) }, want: 5},
	{name: "Query", factory: func() Source { return NewQuery("", "SELECT * FROM range(1, 6)") }, want: 5},
	{name: "Processes", factory: func() Source { return NewProcesses(5) }, optional: true},
	{name: "Mounts", factory: func() Source { return &Mounts{} }, optional: true},
	{name: "Interfaces", factory: func() Source { return &Interfaces{} }, optional: true},
}

func TestSourcesSuite(t *testing.T) {
	ctx := context.Background()

	for _, tc := range sourceCases {
		t.Run(tc.name, func(t *testing.T) {
			src := tc.factory()
			require.NoError(t, src.Connect(ctx))
			defer src.Disconnect(ctx)

			list, err := src.Collect(ctx)
			if err != nil {
				if tc.optional {
					t.Logf("%s Collect skipped (optional): %v", tc.name, err)
					return
				}
				t.Fatalf("%s Collect failed: %v", tc.name, err)
			}
			if tc.want > 0 {
				assert.Equal(t, tc.want, list.Len())
			}
			t.Logf("%s: %s", tc.name, strings.Join(list.Labels(content.Format{}), ", "))
		})
	}
}

func TestRange(t *testing.T) {
	cases := []struct {
		name           string
		from, to, step int
		want           []any
	}{
		{name: "ascending", from: 1, to: 4, step: 1, want: []any{1, 2, 3, 4}},
		{name: "stepped", from: 0, to: 10, step: 5, want: []any{0, 5, 10}},
		{name: "descending fixes sign", from: 3, to: 1, step: 1, want: []any{3, 2, 1}},
		{name: "zero step", from: 1, to: 2, step: 0, want: []any{1, 2}},
		{name: "single", from: 7, to: 7, step: 1, want: []any{7}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			list, err := NewRange("r", tc.from, tc.to, tc.step).Collect(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tc.want, list.Values())
		})
	}
}

func TestStaticDropsNil(t *testing.T) {
	list, err := NewStatic("s", "a", nil, 3).Collect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []any{"a", 3}, list.Values())
}

func TestByName(t *testing.T) {
	src, err := ByName(" Hours ")
	require.NoError(t, err)
	assert.Equal(t, "hours", src.Name())

	_, err = ByName("nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownSource))

	assert.Contains(t, Names(), "provinces")
	assert.Contains(t, Names(), "weekdays")
}

func TestRegister(t *testing.T) {
	Register("Colors", func() Source { return NewStatic("colors", "red", "green") })
	t.Cleanup(func() { delete(registry, "colors") })

	src, err := ByName("colors")
	require.NoError(t, err)
	list, err := Load(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, 2, list.Len())
}

func TestProvincesLinked(t *testing.T) {
	p := NewProvinces(nil)
	require.NoError(t, p.Connect(context.Background()))

	names, err := p.Collect(context.Background())
	require.NoError(t, err)
	first, ok := names.At(0)
	require.True(t, ok)
	assert.Equal(t, "Beijing", first.String())

	cities := p.Cities(1)
	assert.Equal(t, []any{"Guangzhou", "Shenzhen", "Zhuhai"}, cities.Values())

	areas := p.Areas(1, 1)
	assert.Equal(t, 5, areas.Len())

	// positions clamp
	assert.Equal(t, p.Cities(len(p.Data())-1).Values(), p.Cities(99).Values())
	assert.Equal(t, p.Areas(0, 0).Values(), p.Areas(-3, -3).Values())
}

func TestProvincesEmpty(t *testing.T) {
	p := NewProvinces([]Province{})
	list, err := p.Collect(context.Background())
	require.NoError(t, err)
	assert.True(t, list.Empty())
	assert.True(t, p.Cities(0).Empty())
	assert.True(t, p.Areas(0, 0).Empty())
}

func TestProvincesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"name":"X","city":[{"name":"Y","area":["Z"]}]}]`), 0o644))

	p := NewProvincesFile(path)
	list, err := Load(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, []any{"X"}, list.Values())
	assert.Equal(t, []any{"Z"}, p.Areas(0, 0).Values())
}

func TestProvincesFileErrors(t *testing.T) {
	_, err := Load(context.Background(), NewProvincesFile(filepath.Join(t.TempDir(), "missing.json")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connect provinces")

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o644))
	_, err = Load(context.Background(), NewProvincesFile(bad))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode provinces")
}

func TestQuerySetupAndNulls(t *testing.T) {
	q := NewQuery("", "SELECT name, id FROM fruit ORDER BY id",
		WithSetup(
			"CREATE TABLE fruit (id INTEGER, name VARCHAR)",
			"INSERT INTO fruit VALUES (1, 'apple'), (2, NULL), (3, 'cherry')",
		),
		WithThreads(1),
	)
	list, err := Load(context.Background(), q)
	require.NoError(t, err)
	assert.Equal(t, []any{"apple", "cherry"}, list.Values())
}

func TestQueryArgs(t *testing.T) {
	q := NewQuery("", "SELECT * FROM range(?, ?)", WithArgs(2, 5))
	list, err := Load(context.Background(), q)
	require.NoError(t, err)
	assert.Equal(t, []any{2, 3, 4}, list.Values())
}

func TestQueryErrors(t *testing.T) {
	q := NewQuery("", "SELECT 1")
	_, err := q.Collect(context.Background())
	require.Error(t, err)

	_, err = Load(context.Background(), NewQuery("", "SELECT * FROM missing_table"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "collect query")
}

func TestProcessInfoString(t *testing.T) {
	assert.Equal(t, "sh [12]", ProcessInfo{PID: 12, Name: "sh"}.String())
	assert.Equal(t, "[3]", ProcessInfo{PID: 3}.String())
}
