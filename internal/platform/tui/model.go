package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/brick-duel/internal/core"
	"github.com/vovakirdan/brick-duel/internal/session"
)

// DefaultHoldWindow is how long a movement press keeps the paddle moving
// without a repeat.
const DefaultHoldWindow = 120 * time.Millisecond

// Options configures a Model.
type Options struct {
	TickRate   int           // Ticks per second, default 60
	HoldWindow time.Duration // Default DefaultHoldWindow
	Width      int           // Initial terminal size
	Height     int
}

// Model is the Bubble Tea model driving one session. The session is shared
// by pointer, so value copies of Model all see the same game.
type Model struct {
	sess     *session.Session
	keys     KeyMap
	held     *HeldKeys
	help     help.Model
	screen   *core.Screen
	tickRate int
	width    int
	height   int
}

// NewModel wraps sess for display.
func NewModel(sess *session.Session, opts Options) Model {
	if opts.TickRate <= 0 {
		opts.TickRate = core.DefaultConfig().TickRate
	}
	if opts.HoldWindow <= 0 {
		opts.HoldWindow = DefaultHoldWindow
	}
	window := int(opts.HoldWindow * time.Duration(opts.TickRate) / time.Second)

	h := help.New()
	h.Width = opts.Width

	return Model{
		sess:     sess,
		keys:     DefaultKeyMap(),
		held:     NewHeldKeys(window),
		help:     h,
		screen:   core.NewScreen(opts.Width, max(opts.Height-1, 0)),
		tickRate: opts.TickRate,
		width:    opts.Width,
		height:   opts.Height,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-1, 0))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if m.sess.Quitting() {
			return m, tea.Quit
		}
		m.sess.Tick(m.held.Frame())
		return m, tickCmd(m.tickRate)
	}

	return m, nil
}

// handleKey routes one key press to the session.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	in := m.keys.Resolve(msg)

	switch in.Action {
	case core.ActionQuit:
		m.sess.Quit()
		return m, tea.Quit

	case core.ActionLeft, core.ActionRight:
		if m.sess.State() == session.StatePlaying && !m.sess.Paused() {
			m.held.Press(in.Player, in.Action)
		}

	case core.ActionFire:
		m.sess.Action(in.Player)

	case core.ActionConfirm:
		switch m.sess.State() {
		case session.StateMenu:
			m.sess.Start()
		case session.StateGameOver:
			m.sess.PlayAgain()
		}
		m.held.Release()

	case core.ActionBack:
		switch m.sess.State() {
		case session.StatePlaying:
			m.sess.TogglePause()
			m.held.Release()
		case session.StateSettings:
			m.sess.Back()
		}

	case core.ActionSettings:
		m.sess.OpenSettings()

	case core.ActionMenu:
		if m.sess.MainMenu() {
			m.held.Release()
		}

	case core.ActionSound:
		m.sess.ToggleSound()

	case core.ActionMusic:
		m.sess.ToggleMusic()
	}

	return m, nil
}

// View renders the screen for the current session state.
func (m Model) View() string {
	if m.sess.Quitting() {
		return ""
	}

	switch m.sess.State() {
	case session.StateSettings:
		return viewSettings(m.width, m.height, m.sess.SoundEnabled(), m.sess.MusicEnabled())

	case session.StateGameOver:
		return viewGameOver(m.width, m.height, m.sess.LastResult(), m.sess.HighScores())

	case session.StatePlaying:
		snap, ok := m.sess.Snapshot()
		if !ok {
			return ""
		}
		DrawSnapshot(m.screen, snap)
		return RenderScreen(m.screen) + "\n" + centerText(m.help.View(m.keys), m.width)

	default:
		return viewMenu(m.width, m.height, m.sess.HighScores())
	}
}

// Run starts a full-screen Bubble Tea program for sess and blocks until the
// players quit.
func Run(sess *session.Session, opts Options) error {
	p := tea.NewProgram(
		NewModel(sess, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
