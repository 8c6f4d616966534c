package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/brick-duel/internal/core"
)

// KeyMap holds the two fixed player schemes and the shared commands.
// Player 1 plays on the letter keys, player 2 on the arrows.
type KeyMap struct {
	P1Left  key.Binding
	P1Right key.Binding
	P1Fire  key.Binding
	P2Left  key.Binding
	P2Right key.Binding
	P2Fire  key.Binding

	Confirm  key.Binding
	Back     key.Binding
	Settings key.Binding
	Menu     key.Binding
	Sound    key.Binding
	Music    key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the bindings used by every front end.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		P1Left: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a/d", "P1 move"),
		),
		P1Right: key.NewBinding(
			key.WithKeys("d"),
		),
		P1Fire: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "P1 launch/fire"),
		),
		P2Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←/→", "P2 move"),
		),
		P2Right: key.NewBinding(
			key.WithKeys("right"),
		),
		P2Fire: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "P2 launch/fire"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "pause/back"),
		),
		Settings: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "settings"),
		),
		Menu: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "main menu"),
		),
		Sound: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "sound"),
		),
		Music: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "music"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the in-game bindings.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.P1Left, k.P1Fire, k.P2Left, k.P2Fire, k.Back, k.Quit}
}

// FullHelp returns every binding grouped by purpose.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.P1Left, k.P1Fire},
		{k.P2Left, k.P2Fire},
		{k.Confirm, k.Back, k.Settings, k.Menu},
		{k.Sound, k.Music, k.Quit},
	}
}

// Input is what a single key press means.
type Input struct {
	Player core.PlayerID // NoPlayer for shared commands
	Action core.Action
}

// Resolve translates a key message. Unbound keys yield ActionNone.
func (k KeyMap) Resolve(msg tea.KeyMsg) Input {
	switch {
	case key.Matches(msg, k.P1Left):
		return Input{core.Player1, core.ActionLeft}
	case key.Matches(msg, k.P1Right):
		return Input{core.Player1, core.ActionRight}
	case key.Matches(msg, k.P1Fire):
		return Input{core.Player1, core.ActionFire}
	case key.Matches(msg, k.P2Left):
		return Input{core.Player2, core.ActionLeft}
	case key.Matches(msg, k.P2Right):
		return Input{core.Player2, core.ActionRight}
	case key.Matches(msg, k.P2Fire):
		return Input{core.Player2, core.ActionFire}
	case key.Matches(msg, k.Confirm):
		return Input{Action: core.ActionConfirm}
	case key.Matches(msg, k.Back):
		return Input{Action: core.ActionBack}
	case key.Matches(msg, k.Settings):
		return Input{Action: core.ActionSettings}
	case key.Matches(msg, k.Menu):
		return Input{Action: core.ActionMenu}
	case key.Matches(msg, k.Sound):
		return Input{Action: core.ActionSound}
	case key.Matches(msg, k.Music):
		return Input{Action: core.ActionMusic}
	case key.Matches(msg, k.Quit):
		return Input{Action: core.ActionQuit}
	}
	return Input{}
}

// HeldKeys turns discrete key presses into held movement. Terminals report
// presses and auto-repeats but never releases, so a press counts as held
// for a few ticks and each repeat refreshes it.
type HeldKeys struct {
	window int
	left   [2]int // Ticks remaining per player
	right  [2]int
}

// NewHeldKeys returns a tracker where a press lasts window ticks.
func NewHeldKeys(window int) *HeldKeys {
	return &HeldKeys{window: max(window, 1)}
}

// Press records a movement press. Pressing one direction releases the other.
func (h *HeldKeys) Press(id core.PlayerID, a core.Action) {
	if !id.Valid() {
		return
	}
	i := id.Index()
	switch a {
	case core.ActionLeft:
		h.left[i] = h.window
		h.right[i] = 0
	case core.ActionRight:
		h.right[i] = h.window
		h.left[i] = 0
	}
}

// Frame returns the movement held this tick and ages every press by one.
func (h *HeldKeys) Frame() core.MultiInputFrame {
	frame := core.NewMultiInputFrame()
	for _, id := range core.Players {
		i := id.Index()
		if h.left[i] > 0 {
			frame.Set(id, core.ActionLeft)
			h.left[i]--
		}
		if h.right[i] > 0 {
			frame.Set(id, core.ActionRight)
			h.right[i]--
		}
	}
	return frame
}

// Release drops all held movement.
func (h *HeldKeys) Release() {
	h.left = [2]int{}
	h.right = [2]int{}
}
