package tui

import (
	"testing"
	"time"

	"wheelview/internal/config"
	"wheelview/internal/source"
	"wheelview/ui/tui/components"
	"wheelview/ui/tui/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEnv(now time.Time) env {
	return env{
		cfg:        config.Default(),
		events:     state.NewEventLog(),
		trajectory: components.NewTrajectoryWidget(30, 10),
		now:        func() time.Time { return now },
	}
}

func tickAll(t *testing.T, p *Picker) {
	t.Helper()
	for i := 0; p.Tick(); i++ {
		require.Less(t, i, 10000)
	}
}

func TestCrossesNoon(t *testing.T) {
	cases := []struct {
		last, next int
		want       bool
	}{
		{11, 12, true},
		{12, 11, true},
		{12, 1, false},
		{1, 12, false},
		{5, 6, false},
		{11, 11, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, crossesNoon(tc.last, tc.next), "%d -> %d", tc.last, tc.next)
	}
}

func TestClockStartsAtNow(t *testing.T) {
	p := newClockPicker(testEnv(time.Date(2024, 5, 1, 15, 7, 0, 0, time.UTC)))
	assert.Equal(t, "3:07 PM", p.Describe())
	assert.Equal(t, 1, p.Focus)

	midnight := newClockPicker(testEnv(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "12:00 AM", midnight.Describe())
}

func TestClockFlipsNoonAcrossTwelve(t *testing.T) {
	p := newClockPicker(testEnv(time.Date(2024, 5, 1, 11, 30, 0, 0, time.UTC)))
	require.Equal(t, "11:30 AM", p.Describe())

	hour := p.Widgets[1]
	require.True(t, hour.Step(1))
	tickAll(t, p)
	assert.Equal(t, "12:30 PM", p.Describe())

	require.True(t, hour.Step(1))
	tickAll(t, p)
	assert.Equal(t, "1:30 PM", p.Describe())

	require.True(t, hour.Step(-1))
	tickAll(t, p)
	require.True(t, hour.Step(-1))
	tickAll(t, p)
	assert.Equal(t, "11:30 AM", p.Describe())
}

func TestProvinceLinking(t *testing.T) {
	p, err := newProvincePicker(testEnv(time.Now()), source.NewProvinces(nil))
	require.NoError(t, err)
	province, city, area := p.Widgets[0], p.Widgets[1], p.Widgets[2]

	assert.Equal(t, "Beijing / Beijing / Dongcheng", p.Describe())
	assert.Equal(t, 1, city.Wheel.Items().Len())

	province.Wheel.SetSelectedItemPosition(2, false, 0)
	assert.Equal(t, []any{"Hangzhou", "Ningbo", "Wenzhou"}, city.Wheel.Items().Values())
	assert.Equal(t, "Zhejiang / Hangzhou / Shangcheng", p.Describe())

	city.Wheel.SetSelectedItemPosition(1, false, 0)
	assert.Equal(t, "Zhejiang / Ningbo / Haishu", p.Describe())
	assert.Equal(t, 5, area.Wheel.Items().Len())

	// a new province resets the city
	require.True(t, province.Step(1))
	tickAll(t, p)
	assert.Equal(t, "Sichuan / Chengdu / Jinjiang", p.Describe())
}

func TestProvincePickerEmptyDataset(t *testing.T) {
	p, err := newProvincePicker(testEnv(time.Now()), source.NewProvinces([]source.Province{}))
	require.NoError(t, err)
	assert.Equal(t, "- / - / -", p.Describe())
}

func TestPickerMoveFocusWithoutWidgets(t *testing.T) {
	p := &Picker{}
	p.MoveFocus(1)
	assert.Nil(t, p.Focused())
	assert.False(t, p.Tick())
	assert.Equal(t, "", p.Describe())
}

func TestPickerEventsReachLogAndChart(t *testing.T) {
	e := testEnv(time.Now())
	p := newWeekdayPicker(e)
	e.trajectory.Reset()
	require.True(t, p.Focused().Step(1))
	tickAll(t, p)

	assert.NotEmpty(t, e.trajectory.History)
	assert.Contains(t, e.events.Lines[len(e.events.Lines)-1], "weekday: state idle")
}
