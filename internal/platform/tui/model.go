package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/arcadeworks/gridsnake/internal/config"
	"github.com/arcadeworks/gridsnake/internal/core"
	"github.com/arcadeworks/gridsnake/internal/sim"
	"github.com/arcadeworks/gridsnake/internal/storage"
)

// Model is the Bubble Tea model driving one simulation session. It feeds
// real elapsed time and the latched input frame into the world every
// platform frame; the world handles its own game-over reset, so the session
// runs until the user quits.
type Model struct {
	world      *sim.World
	gameCfg    config.Config
	screen     *core.Screen
	store      *storage.Store
	rtCfg      core.RuntimeConfig
	inputFrame core.InputFrame
	keyMapper  *KeyMapper
	lastFrame  time.Time
	runStart   time.Time
	quitting   bool
	initErr    error
}

// NewModel creates a session model for the given simulation config.
func NewModel(gameCfg config.Config, store *storage.Store, rtCfg core.RuntimeConfig) Model {
	if rtCfg.Seed == 0 {
		rtCfg.Seed = time.Now().UnixNano()
	}

	world, err := sim.New(gameCfg, rtCfg.Seed)
	return Model{
		world:      world,
		gameCfg:    gameCfg,
		screen:     core.NewScreen(rtCfg.ScreenW, rtCfg.ScreenH),
		store:      store,
		rtCfg:      rtCfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		initErr:    err,
	}
}

// Err returns the construction error, if any.
func (m Model) Err() error {
	return m.initErr
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	if m.initErr != nil {
		return tea.Quit
	}
	return frameCmd(m.rtCfg.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.rtCfg.ScreenW = msg.Width
		m.rtCfg.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleFrame runs one simulation update cycle.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	if m.lastFrame.IsZero() {
		m.lastFrame = now
		m.runStart = now
	}
	dt := now.Sub(m.lastFrame)
	m.lastFrame = now

	rep := m.world.Update(dt, m.inputFrame)

	// The world has already reset itself; record the finished run.
	if rep.GameOver {
		if m.store != nil {
			// Best-effort: play continues without persistence.
			_, _ = m.store.SaveRun(rep.FinalLength, now.Sub(m.runStart))
		}
		m.runStart = now
	}

	m.inputFrame.Clear()
	return m, frameCmd(m.rtCfg.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.initErr != nil {
		return ""
	}

	DrawWorld(m.screen, m.world)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a local session.
func Run(gameCfg config.Config, store *storage.Store, rtCfg core.RuntimeConfig) error {
	model := NewModel(gameCfg, store, rtCfg)
	if err := model.Err(); err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
