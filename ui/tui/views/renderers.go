package views

import (
	"wheelview/ui/tui/state"
)

func RenderMenu(s state.AppState, width, height, cursor int, animCursor float64, mouseX, mouseY int, helpView string) string {
	v := MenuView{}
	return v.Render(s, ViewProps{
		Width:      width,
		Height:     height,
		MenuCursor: cursor,
		AnimCursor: animCursor,
		MouseX:     mouseX,
		MouseY:     mouseY,
		HelpView:   helpView,
	})
}

func RenderPicker(s state.AppState, props ViewProps) string {
	return PickerView{}.Render(s, props)
}

func RenderRawConsole(s state.AppState, width, height, scrollY int) string {
	v := ConsoleView{}
	return v.Render(s, ViewProps{
		Width:   width,
		Height:  height,
		ScrollY: scrollY,
	})
}

func RenderTrajectory(s state.AppState, chartView, detail string, panels []string, width, height int) string {
	v := TrajectoryView{}
	return v.Render(s, ViewProps{
		Width:     width,
		Height:    height,
		ChartView: chartView,
		Detail:    detail,
		Panels:    panels,
	})
}
