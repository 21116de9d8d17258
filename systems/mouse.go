package systems

import (
	"github.com/automoto/padstate/components"
	"github.com/automoto/padstate/state"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var mouseViewQuery = donburi.NewQuery(filter.Contains(components.InputView, components.MouseMarker))

// Reusable slice to avoid allocations
var mouseViews []*components.InputViewData

// TranslateMouseButtonEvents applies mouse button events to every view.
func TranslateMouseButtonEvents(views []*components.InputViewData, events []components.MouseButtonEvent) {
	for _, ev := range events {
		r := components.MouseButton(ev.Button)
		press := state.FromButtonState(ev.State)
		for _, view := range views {
			view.LastInputSource = components.SourceMouse
			view.SetAxisValue(r, buttonValue(ev.State), press)
		}
	}
}

// TranslateMouseWheelEvents applies wheel movement to the wheel axes of
// every view. Any movement counts as a press; a still wheel releases.
func TranslateMouseWheelEvents(views []*components.InputViewData, events []components.MouseWheelEvent) {
	for _, ev := range events {
		for _, view := range views {
			view.LastInputSource = components.SourceMouse
			setWheelAxis(view, components.WheelX, ev.X)
			setWheelAxis(view, components.WheelY, ev.Y)
		}
	}
}

func setWheelAxis(view *components.InputViewData, axis int, value float32) {
	r := components.MouseWheel(axis)
	press := ClassifyDeadZone(value, 0)
	// keep the stamp while the wheel keeps turning
	if prev := view.State(r); press.IsPressed() && prev.Press.IsPressed() {
		press = prev.Press
	}
	view.SetAxisValue(r, value, press)
}

// UpdateMouseInput drains the mouse queues into the listening views.
func UpdateMouseInput(ecs *ecs.ECS) {
	queue := getOrCreateInputEvents(ecs)
	buttons := queue.DrainMouseButton()
	wheel := queue.DrainMouseWheel()
	if len(buttons) == 0 && len(wheel) == 0 {
		return
	}

	mouseViews = mouseViews[:0]
	mouseViewQuery.Each(ecs.World, func(entry *donburi.Entry) {
		mouseViews = append(mouseViews, components.InputView.Get(entry))
	})

	TranslateMouseButtonEvents(mouseViews, buttons)
	TranslateMouseWheelEvents(mouseViews, wheel)
}
