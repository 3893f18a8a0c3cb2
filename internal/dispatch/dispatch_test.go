package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wheelview/internal/content"
)

type fakeSound struct {
	volumes []float64
}

func (f *fakeSound) Play(volume float64) { f.volumes = append(f.volumes, volume) }

func lookupIn(list content.List) Lookup {
	return func(position int) (content.Item, bool) { return list.At(position) }
}

func TestDispatcherWithoutListeners(t *testing.T) {
	d := New("wheel", nil, nil)
	assert.NotPanics(t, func() {
		d.ScrollOffsetChanged(10)
		d.ItemChanged(0, 1)
		d.Selected(1)
		d.StateChanged(Idle)
	})
}

func TestDispatcherOrdering(t *testing.T) {
	list := content.Of("a", "b", "c")
	d := New("wheel", lookupIn(list), nil)

	var got []string
	d.SetItemSelectedListener(SelectedFunc(func(source any, item content.Item, position int) {
		assert.Equal(t, "wheel", source)
		got = append(got, "item:"+item.String())
	}))
	d.SetWheelChangedListener(Funcs{
		ItemChanged: func(o, n int) { got = append(got, "changed") },
		Selected:    func(p int) { got = append(got, "wheel-selected") },
	})
	sound := &fakeSound{}
	d.SetSoundPlayer(sound)
	d.SetSoundEnabled(true)
	d.SetVolume(0.4)

	d.ItemChanged(0, 1)
	d.ScrollOffsetChanged(5)
	d.Selected(2)

	assert.Equal(t, []string{"changed", "item:c", "wheel-selected"}, got)
	assert.Equal(t, []float64{0.4}, sound.volumes)
}

func TestSoundDisabled(t *testing.T) {
	d := New(nil, nil, nil)
	sound := &fakeSound{}
	d.SetSoundPlayer(sound)
	d.ItemChanged(0, 1)
	assert.Empty(t, sound.volumes)
}

func TestSetVolumeClamps(t *testing.T) {
	d := New(nil, nil, nil)
	d.SetVolume(-1)
	assert.Equal(t, 0.0, d.Volume())
	d.SetVolume(3)
	assert.Equal(t, 1.0, d.Volume())
}

func TestFuncsNilFieldsSkipped(t *testing.T) {
	var f Funcs
	assert.NotPanics(t, func() {
		f.OnWheelScroll(1)
		f.OnWheelItemChanged(1, 2)
		f.OnWheelSelected(1)
		f.OnWheelScrollStateChanged(Settling)
	})
}

func TestRecorderAndTee(t *testing.T) {
	a, b := &Recorder{}, &Recorder{}
	sink := Tee(a, nil, b)

	sink.StateChanged(Dragging)
	sink.ScrollOffsetChanged(30)
	sink.ItemChanged(0, 1)
	sink.StateChanged(Settling)
	sink.Selected(1)
	sink.StateChanged(Idle)

	require.Len(t, a.Events, 6)
	assert.Equal(t, a.Events, b.Events)
	assert.Equal(t, []ScrollState{Dragging, Settling, Idle}, a.States())
	assert.Equal(t, 1, a.Count(KindSelected))

	last, ok := a.Last(KindItemChanged)
	require.True(t, ok)
	assert.Equal(t, "item-changed 0 -> 1", last.String())

	a.Reset()
	assert.Empty(t, a.Events)
	_, ok = a.Last(KindSelected)
	assert.False(t, ok)
}

func TestScrollStateString(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "dragging", Dragging.String())
	assert.Equal(t, "settling", Settling.String())
	assert.Equal(t, "state(9)", ScrollState(9).String())
}

func TestListenAdaptsListener(t *testing.T) {
	var got []string
	sink := Listen(Funcs{
		Scroll:       func(offset int) { got = append(got, "scroll") },
		ItemChanged:  func(o, n int) { got = append(got, "item") },
		Selected:     func(p int) { got = append(got, "selected") },
		StateChanged: func(s ScrollState) { got = append(got, s.String()) },
	})
	sink.StateChanged(Dragging)
	sink.ScrollOffsetChanged(4)
	sink.ItemChanged(0, 1)
	sink.Selected(1)
	assert.Equal(t, []string{"dragging", "scroll", "item", "selected"}, got)
}
