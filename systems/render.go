package systems

import (
	"fmt"
	"image/color"
	"slices"

	"github.com/automoto/padstate/components"
	cfg "github.com/automoto/padstate/config"
	"github.com/automoto/padstate/fonts"
	"github.com/automoto/padstate/state"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slices to avoid allocations
var (
	drawViews     []*components.InputViewData
	drawMarkers   []*components.GamepadMarkerData
	drawReceivers []components.Receiver
)

// DrawHeader renders the title line with the current dead zone.
func DrawHeader(ecs *ecs.ECS, screen *ebiten.Image) {
	vc := cfg.Viewer
	title := fmt.Sprintf("padstate  dead zone %.2f  [-/=] adjust  [F1] receivers", cfg.Input.GamepadDeadZone)
	text.Draw(screen, title, fonts.MonoTitle.Get(), int(vc.Margin), int(vc.Margin+vc.TitleFontSize), vc.TextColor)
}

// DrawInputViews renders one column per player: every action with its
// strongest reading, and optionally every raw receiver.
func DrawInputViews(ecs *ecs.ECS, screen *ebiten.Image) {
	drawViews = drawViews[:0]
	drawMarkers = drawMarkers[:0]
	components.InputView.Each(ecs.World, func(entry *donburi.Entry) {
		drawViews = append(drawViews, components.InputView.Get(entry))
		var marker *components.GamepadMarkerData
		if entry.HasComponent(components.GamepadMarker) {
			marker = components.GamepadMarker.Get(entry)
		}
		drawMarkers = append(drawMarkers, marker)
	})

	var flash map[components.FlashKey]float32
	if entry, ok := components.Viewer.First(ecs.World); ok {
		flash = components.Viewer.Get(entry).Flash
	}

	for i, view := range drawViews {
		x := cfg.Viewer.Margin + float64(i)*cfg.Viewer.ColumnWidth
		drawViewColumn(screen, view, drawMarkers[i], flash, x)
	}
}

func drawViewColumn(screen *ebiten.Image, view *components.InputViewData, marker *components.GamepadMarkerData, flash map[components.FlashKey]float32, x float64) {
	vc := cfg.Viewer
	face := fonts.Mono.Get()
	y := vc.Margin + vc.HeaderHeight

	text.Draw(screen, fmt.Sprintf("Player %d  last: %s", view.PlayerIndex+1, view.LastInputSource), face, int(x), int(y), vc.TextColor)
	y += vc.RowHeight
	text.Draw(screen, gamepadLabel(marker), face, int(x), int(y), vc.DimTextColor)
	y += vc.RowHeight * 1.5

	for action := cfg.ActionNone + 1; action < cfg.ActionCount; action++ {
		s := view.Action(action)
		if alpha := flash[components.FlashKey{Player: view.PlayerIndex, Action: action}]; alpha > 0 {
			fc := vc.FlashColor
			fc.A = uint8(alpha * 120)
			vector.FillRect(screen, float32(x-2), float32(y-vc.RowHeight+4), float32(vc.ColumnWidth-8), float32(vc.RowHeight), fc, false)
		}
		drawReading(screen, action.String(), s, x, y)
		y += vc.RowHeight
	}

	// chords read as a whole
	chord := view.ActionStates(cfg.ActionDash)
	chordColor := vc.DimTextColor
	if len(chord) > 0 && chord.IsAllPressed() {
		chordColor = vc.PressedColor
	}
	text.Draw(screen, fmt.Sprintf("Dash chord: %d/%d held", countPressed(chord), len(chord)), face, int(x), int(y), chordColor)
	y += vc.RowHeight * 1.5

	if !cfg.Debug.ShowReceivers {
		return
	}
	drawReceivers = drawReceivers[:0]
	for r := range view.Receivers {
		drawReceivers = append(drawReceivers, r)
	}
	// most recent press first, released receivers last
	slices.SortFunc(drawReceivers, func(a, b components.Receiver) int {
		if c := state.Compare(view.State(b).Press, view.State(a).Press); c != 0 {
			return c
		}
		if a.Kind != b.Kind {
			return int(a.Kind) - int(b.Kind)
		}
		return a.Code - b.Code
	})
	for _, r := range drawReceivers {
		drawReading(screen, r.String(), view.State(r), x, y)
		y += vc.RowHeight
	}
}

func drawReading(screen *ebiten.Image, label string, s state.AxisState, x, y float64) {
	vc := cfg.Viewer
	face := fonts.Mono.Get()

	labelColor := vc.DimTextColor
	if s.Press.IsPressed() {
		labelColor = vc.PressedColor
	}
	text.Draw(screen, label, face, int(x), int(y), labelColor)

	barX := float32(x + vc.ColumnWidth - vc.BarWidth - 12)
	barY := float32(y - vc.BarHeight)
	vector.FillRect(screen, barX, barY, float32(vc.BarWidth), float32(vc.BarHeight), vc.BarBgColor, false)

	magnitude := s.Value
	if magnitude < 0 {
		magnitude = -magnitude
	}
	magnitude = min(magnitude, 1)
	var barColor color.Color = vc.BarFgColor
	if s.Press.IsPressed() {
		barColor = vc.PressedColor
	}
	vector.FillRect(screen, barX, barY, float32(vc.BarWidth)*magnitude, float32(vc.BarHeight), barColor, false)
}

func gamepadLabel(marker *components.GamepadMarkerData) string {
	if marker == nil || !marker.Bound {
		return "no gamepad"
	}
	return fmt.Sprintf("gamepad %d (%s)", int(marker.Gamepad), marker.Flavor)
}

func countPressed(states state.AxisStates) int {
	n := 0
	for _, s := range states {
		if s.Press.IsPressed() {
			n++
		}
	}
	return n
}
