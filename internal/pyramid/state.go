package pyramid

import "github.com/vovakirdan/pyramid/internal/core"

// ScreenState is the screen currently shown. Exactly one is active.
type ScreenState int

const (
	Home ScreenState = iota
	Instructions
	Playing
	LevelComplete
	Win
	Lose
)

// String returns the snake_case screen name.
func (s ScreenState) String() string {
	switch s {
	case Home:
		return "home"
	case Instructions:
		return "instructions"
	case Playing:
		return "playing"
	case LevelComplete:
		return "level_complete"
	case Win:
		return "win"
	case Lose:
		return "lose"
	default:
		return "unknown"
	}
}

// Button is a clickable control on a non-playing screen.
type Button int

const (
	ButtonNone Button = iota
	ButtonPlay        // Play on home and level-complete, Restart on win and lose
	ButtonHelp
	ButtonBack
)

// String returns the button label.
func (b Button) String() string {
	switch b {
	case ButtonPlay:
		return "play"
	case ButtonHelp:
		return "help"
	case ButtonBack:
		return "back"
	default:
		return "none"
	}
}

// Button hit boxes in window pixels.
var buttonRects = map[Button]core.Rect{
	ButtonPlay: core.RectFromBounds(558, 276, 785, 502),
	ButtonHelp: core.RectFromBounds(1213, 74, 1270, 127),
	ButtonBack: core.RectFromBounds(72, 73, 129, 127),
}

// ButtonRect returns the hit box of b.
func ButtonRect(b Button) core.Rect {
	return buttonRects[b]
}

// Buttons lists the buttons present on the screen.
func (s ScreenState) Buttons() []Button {
	switch s {
	case Home:
		return []Button{ButtonPlay, ButtonHelp}
	case Instructions:
		return []Button{ButtonBack}
	case LevelComplete, Win, Lose:
		return []Button{ButtonPlay}
	default:
		return nil
	}
}

// actionButtons maps keyboard actions to the button they press, in priority
// order when a frame carries more than one.
var actionButtons = []struct {
	action core.Action
	button Button
}{
	{core.ActionConfirm, ButtonPlay},
	{core.ActionHelp, ButtonHelp},
	{core.ActionBack, ButtonBack},
}

// Press resolves the input against the screen's buttons. A click must land
// inside a hit box; keyboard actions press their button directly.
func (s ScreenState) Press(in core.InputFrame) Button {
	for _, b := range s.Buttons() {
		if in.Has(core.ActionClick) && buttonRects[b].Contains(in.Pointer.X, in.Pointer.Y) {
			return b
		}
	}
	for _, ab := range actionButtons {
		if !in.Has(ab.action) {
			continue
		}
		for _, avail := range s.Buttons() {
			if avail == ab.button {
				return ab.button
			}
		}
	}
	return ButtonNone
}
