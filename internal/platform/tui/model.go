package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/trio-arcade/trio/internal/core"
	"github.com/trio-arcade/trio/internal/hub"
	"github.com/trio-arcade/trio/internal/platform/export"
	"github.com/trio-arcade/trio/internal/storage"
)

// thumbnailWidth is the pixel width of screenshot thumbnails.
const thumbnailWidth = 240

// GameModel is the Bubble Tea model running a single engine. It owns
// the frame loop that feeds the engine clock and redraws the screen.
type GameModel struct {
	engine     hub.Engine
	view       gameView
	screen     *core.Screen
	store      *storage.Store
	width      int
	height     int
	quitting   bool
	backToMenu bool
	scoreSaved bool
}

// NewGameModel creates a model for the given engine.
func NewGameModel(engine hub.Engine, store *storage.Store, width, height int) GameModel {
	return GameModel{
		engine: engine,
		view:   viewFor(engine),
		screen: core.NewScreen(width, height),
		store:  store,
		width:  width,
		height: height,
	}
}

// Init deals the first game and starts the frame loop.
func (m GameModel) Init() tea.Cmd {
	m.engine.Reset(time.Now())
	return frameCmd()
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input. Platform keys are handled here;
// everything else goes to the game view.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	now := time.Now()
	st := m.engine.Status()

	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit

	case "esc":
		// First press pauses, second returns to the menu.
		if st.GameOver || !st.Running {
			m.backToMenu = true
			return m, tea.Quit
		}
		m.engine.Stop(now)
		return m, nil

	case "b":
		if st.GameOver || !st.Running {
			m.backToMenu = true
			return m, tea.Quit
		}
		return m, nil

	case "p":
		if st.Running {
			m.engine.Stop(now)
		} else if !st.GameOver {
			m.engine.Start(now)
		}
		return m, nil

	case "r":
		if st.GameOver {
			m.engine.Reset(now)
			m.scoreSaved = false
		}
		return m, nil

	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	m.view.handleKey(now, msg.String())
	return m, nil
}

// handleFrame polls the engine clock and persists the result once per run.
func (m GameModel) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	m.engine.Advance(now)

	st := m.engine.Status()
	if st.GameOver && !m.scoreSaved {
		if m.store != nil {
			if score, moves := m.view.result(); score > 0 {
				//nolint:errcheck // Best-effort save, the session continues regardless
				m.store.SaveScore(m.engine.ID(), score, moves)
			}
		}
		m.scoreSaved = true
	}

	return m, frameCmd()
}

// saveScreenshot writes the current frame as plain text, a PNG and a
// scaled thumbnail. All best-effort; the game continues regardless.
func (m *GameModel) saveScreenshot() {
	m.screen.Clear()
	m.view.draw(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".trio", "screenshots")
	//nolint:errcheck
	os.MkdirAll(dir, 0o755)

	base := fmt.Sprintf("%s_%s", m.engine.ID(), time.Now().Format("20060102_150405"))
	//nolint:errcheck
	os.WriteFile(filepath.Join(dir, base+".txt"), []byte(m.screen.String()), 0o600)

	img := export.Image(m.screen)
	//nolint:errcheck
	export.WritePNG(img, filepath.Join(dir, base+".png"))
	//nolint:errcheck
	export.WritePNG(export.Thumbnail(img, thumbnailWidth), filepath.Join(dir, base+"_thumb.png"))
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()

	minW, minH := m.view.minSize()
	if m.width < minW || m.height < minH {
		m.screen.DrawTextCentered(m.height/2, fmt.Sprintf("Terminal too small: need %dx%d", minW, minH))
		return RenderScreen(m.screen)
	}

	m.view.draw(m.screen)
	m.screen.DrawTextColored(1, m.height-1,
		"p pause | r restart | esc menu | q quit | ctrl+s screenshot", core.ColorGray)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a standalone Bubble Tea program for one engine.
// Returns true if the user quit outright rather than backing out to the menu.
func Run(engine hub.Engine, store *storage.Store, width, height int) (quit bool, err error) {
	model := NewGameModel(engine, store, width, height)
	if model.view == nil {
		return false, fmt.Errorf("tui: no view for engine %q", engine.ID())
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	if m, ok := finalModel.(GameModel); ok {
		return m.IsQuitting(), nil
	}
	return false, nil
}
