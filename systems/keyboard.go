package systems

import (
	"github.com/automoto/padstate/components"
	"github.com/automoto/padstate/state"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var keyboardViewQuery = donburi.NewQuery(filter.Contains(components.InputView, components.KeyboardMarker))

// Reusable slice to avoid allocations
var keyboardViews []*components.InputViewData

// buttonValue is the axis value of a digital button.
func buttonValue(b state.ButtonState) float32 {
	if b == state.ButtonPressed {
		return 1
	}
	return 0
}

// TranslateKeyboardEvents applies key events to every view. The keyboard
// is shared, so unlike gamepads every listening view sees every key.
func TranslateKeyboardEvents(views []*components.InputViewData, events []components.KeyboardEvent) {
	for _, ev := range events {
		r := components.KeyboardKey(ev.Key)
		press := state.FromButtonState(ev.State)
		for _, view := range views {
			view.LastInputSource = components.SourceKeyboard
			view.SetAxisValue(r, buttonValue(ev.State), press)
		}
	}
}

// UpdateKeyboardInput drains the keyboard queue into the listening views.
func UpdateKeyboardInput(ecs *ecs.ECS) {
	queue := getOrCreateInputEvents(ecs)
	events := queue.DrainKeyboard()
	if len(events) == 0 {
		return
	}

	keyboardViews = keyboardViews[:0]
	keyboardViewQuery.Each(ecs.World, func(entry *donburi.Entry) {
		keyboardViews = append(keyboardViews, components.InputView.Get(entry))
	})

	TranslateKeyboardEvents(keyboardViews, events)
}
