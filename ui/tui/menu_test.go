package tui

import (
	"errors"
	"math"
	"os"
	"testing"
	"time"

	"wheelview/internal/config"
	"wheelview/internal/content"
	"wheelview/ui/tui/state"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

// Wednesday, 11:30
var fixedNow = time.Date(2024, 5, 1, 11, 30, 0, 0, time.UTC)

func newModel() MainModel {
	return InitialModel(config.Default(), Options{Now: func() time.Time { return fixedNow }})
}

// runFrames feeds AnimateMsg until the model stops re-arming the loop.
func runFrames(t *testing.T, m *MainModel) {
	t.Helper()
	for i := 0; ; i++ {
		require.Less(t, i, 10000, "animation never settled")
		_, cmd := m.Update(AnimateMsg(fixedNow))
		if cmd == nil {
			return
		}
	}
}

func press(m *MainModel, msg tea.KeyMsg) *MainModel {
	updated, _ := m.Update(msg)
	return updated.(*MainModel)
}

var (
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyBack  = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}}
)

func TestMenuNavigation(t *testing.T) {
	model := newModel()

	if model.menuCursor != 0 {
		t.Errorf("Expected initial menu cursor 0, got %d", model.menuCursor)
	}
	if model.state.CurrentPage != state.PageMenu {
		t.Errorf("Expected initial page PageMenu, got %v", model.state.CurrentPage)
	}

	m := press(&model, keyDown)
	if m.menuCursor != 1 {
		t.Errorf("Expected menu cursor 1 after Down key, got %d", m.menuCursor)
	}

	m = press(m, keyUp)
	if m.menuCursor != 0 {
		t.Errorf("Expected menu cursor 0 after Up key, got %d", m.menuCursor)
	}

	m = press(m, keyUp)
	assert.Equal(t, 0, m.menuCursor)
}

func TestMenuAnimationLogic(t *testing.T) {
	model := newModel()
	model.menuCursor = 1

	if model.animCursor != 0 {
		t.Errorf("Expected initial animCursor 0, got %f", model.animCursor)
	}

	animateMsg := AnimateMsg(time.Now())
	updatedModel, cmd := model.Update(animateMsg)
	m := updatedModel.(*MainModel)
	require.NotNil(t, cmd, "spring in motion must re-arm the loop")

	if m.animCursor <= 0 {
		t.Errorf("Expected animCursor to increase after animation frame, got %f", m.animCursor)
	}
	if m.animCursor >= 1.0 {
		t.Errorf("Expected animCursor to not reach target immediately, got %f", m.animCursor)
	}

	updatedModel, _ = m.Update(animateMsg)
	m = updatedModel.(*MainModel)
	prevCursor := m.animCursor

	updatedModel, _ = m.Update(animateMsg)
	m = updatedModel.(*MainModel)

	if m.animCursor <= prevCursor {
		t.Errorf("Expected animCursor to continue increasing, got %f (prev %f)", m.animCursor, prevCursor)
	}

	runFrames(t, m)
	assert.InDelta(t, 1.0, m.animCursor, 1e-2)
	assert.False(t, m.animating)
}

func TestMenuSpringStaysBoundedAndIdles(t *testing.T) {
	model := newModel()
	m := &model
	m.menuCursor = 3

	frames := 0
	for {
		require.Less(t, frames, 600, "spring kept the loop armed")
		_, cmd := m.Update(AnimateMsg(fixedNow))
		frames++
		assert.Less(t, math.Abs(m.animCursor), 4.5, "cursor overshot at frame %d", frames)
		if cmd == nil {
			break
		}
	}
	assert.InDelta(t, 3.0, m.animCursor, 1e-2)
	assert.InDelta(t, 0.0, m.velocity, 1e-2)
	assert.False(t, m.animating)

	_, cmd := m.Update(AnimateMsg(fixedNow))
	assert.Nil(t, cmd, "an idle menu must not re-arm the loop")
}

func TestPageTransition(t *testing.T) {
	model := newModel()

	model.menuCursor = 0
	m := press(&model, keyEnter)
	if m.state.CurrentPage != state.PageWeekday {
		t.Errorf("Expected page to change to PageWeekday, got %v", m.state.CurrentPage)
	}

	m = press(m, keyBack)
	if m.state.CurrentPage != state.PageMenu {
		t.Errorf("Expected page to change back to PageMenu, got %v", m.state.CurrentPage)
	}

	m.menuCursor = 4
	m = press(m, keyEnter)
	assert.Equal(t, state.PageConsole, m.state.CurrentPage)
	assert.Equal(t, state.PageWeekday, m.state.LastPicker)
}

func TestWeekdayStartsOnToday(t *testing.T) {
	model := newModel()
	p := model.pickers[state.PageWeekday]
	assert.Equal(t, "Wednesday", p.Describe())
}

func TestPickerKeysStepWheel(t *testing.T) {
	model := newModel()
	m := press(&model, keyEnter)
	require.Equal(t, state.PageWeekday, m.state.CurrentPage)

	updated, cmd := m.Update(keyDown)
	m = updated.(*MainModel)
	require.NotNil(t, cmd)
	runFrames(t, m)
	assert.Equal(t, "Thursday", m.pickers[state.PageWeekday].Describe())

	m = press(m, keyEnter)
	assert.Equal(t, "Weekday Picker: Thursday", m.state.Selection)
	assert.Contains(t, m.state.Log.Lines[len(m.state.Log.Lines)-1], "confirmed Weekday Picker: Thursday")
}

func TestPickerFocusCycles(t *testing.T) {
	model := newModel()
	model.menuCursor = 1
	m := press(&model, keyEnter)
	p := m.pickers[state.PageProvince]
	require.Len(t, p.Widgets, 3)

	m = press(m, keyRight)
	assert.Equal(t, 1, p.Focus)
	m = press(m, keyRight)
	m = press(m, keyRight)
	assert.Equal(t, 0, p.Focus)
	m = press(m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 2, p.Focus)
}

func TestSourceLoaded(t *testing.T) {
	model := newModel()
	p := model.pickers[state.PageProcesses]
	require.True(t, p.Loading)

	model.Update(SourceLoadedMsg{Page: state.PageProcesses, Items: content.Of("init [1]", "sh [42]")})
	assert.False(t, p.Loading)
	assert.Equal(t, 2, p.Focused().Wheel.Items().Len())
	assert.Equal(t, "init [1]", p.Describe())

	failing := newModel()
	fp := failing.pickers[state.PageProcesses]
	failing.Update(SourceLoadedMsg{Page: state.PageProcesses, Err: errors.New("denied")})
	assert.False(t, fp.Loading)
	assert.EqualError(t, fp.Err, "denied")
}

func TestConsoleScroll(t *testing.T) {
	model := newModel()
	model.menuCursor = 4
	m := press(&model, keyEnter)
	require.Equal(t, state.PageConsole, m.state.CurrentPage)

	m = press(m, keyDown)
	m = press(m, keyDown)
	assert.Equal(t, 2, m.consoleScrollY)
	m = press(m, keyUp)
	assert.Equal(t, 1, m.consoleScrollY)

	m = press(m, keyBack)
	assert.Zero(t, m.consoleScrollY)
}

func TestViewsRender(t *testing.T) {
	model := newModel()
	model.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	for cursor := range 6 {
		model.state.CurrentPage = state.PageMenu
		model.menuCursor = cursor
		model.navigateTo(cursor)
		assert.NotEmpty(t, model.View(), "page %d", cursor)
	}

	model.quitting = true
	assert.Equal(t, "Bye!\n", model.View())
}
