package systems

import (
	"time"

	"github.com/automoto/padstate/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// now is swapped out by tests.
var now = time.Now

// StampPresses gives every unstamped press in view the start instant t.
// Translators leave new presses unstamped so that JustPressed is true on
// the tick they happen; this second step makes durations measurable from
// the next tick on. Without it JustPressed never turns false.
func StampPresses(view *components.InputViewData, t time.Time) {
	for r, s := range view.Receivers {
		if !s.Press.IsPressed() {
			continue
		}
		if _, stamped := s.Press.StartedAt(); stamped {
			continue
		}
		s.Press = s.Press.Stamp(t)
		view.Receivers[r] = s
	}
}

// UpdatePressStamps stamps the presses produced during this tick.
// Must run LAST in the system order, after everything that reads input,
// so readers see new presses unstamped for exactly one tick.
func UpdatePressStamps(ecs *ecs.ECS) {
	t := now()
	components.InputView.Each(ecs.World, func(entry *donburi.Entry) {
		StampPresses(components.InputView.Get(entry), t)
	})
}
