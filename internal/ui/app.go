package ui

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/five82/coverflow/internal/carousel"
	"github.com/five82/coverflow/internal/config"
	"github.com/five82/coverflow/internal/prefs"
	"github.com/five82/coverflow/internal/state"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	Config    config.Config
	DeckName  string
	PollTick  time.Duration
	ThemeName string
	CardWidth int
	PrefsPath string
	Logger    *log.Logger
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	store     *state.Store
	log       *log.Logger
	prefsPath string
	deckName  string
	cardWidth int
	pollTick  time.Duration
	frameTick time.Duration
	now       func() time.Time

	// Carousel
	carousel *carousel.Carousel
	source   *deckSource

	// UI state
	theme    Theme
	keys     keyMap
	help     help.Model
	spinner  spinner.Model
	search   search
	width    int
	height   int
	ready    bool
	showHelp bool

	// Data state
	snapshot state.Snapshot
	revision uint64
	loaded   bool

	// Input and animation state
	pointerHeld    bool
	frameScheduled bool
	lastFrame      time.Time
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	cfg := opts.Config
	if cfg == (config.Config{}) {
		cfg = config.Default()
	}

	pollTick := opts.PollTick
	if pollTick <= 0 {
		pollTick = time.Second
	}
	frameTick := cfg.FrameInterval
	if frameTick <= 0 {
		frameTick = 16 * time.Millisecond
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.Default().Theme
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	c := carousel.New(
		carousel.WithMarginFraction(cfg.MarginFraction),
		carousel.WithSensitivity(cfg.DragSensitivity),
		carousel.WithTouchSlop(cfg.TouchSlop),
		carousel.WithShiftDuration(cfg.ShiftDuration),
		carousel.WithSettleDuration(cfg.SettleDuration),
		carousel.WithPaging(cfg.Paging),
		carousel.WithLogger(logger),
	)
	src := newDeckSource(minCardWidth, minCardHeight)
	c.Attach(src)

	return Model{
		store:     opts.Store,
		log:       logger,
		prefsPath: prefsPath,
		deckName:  opts.DeckName,
		cardWidth: opts.CardWidth,
		pollTick:  pollTick,
		frameTick: frameTick,
		now:       time.Now,
		carousel:  c,
		source:    src,
		theme:     GetTheme(themeName),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
		search:    newSearch(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tickCmd(m.pollTick),
		m.spinner.Tick,
	}
	// Fetch snapshot immediately on start
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.help.Width = msg.Width
		m.resize()
		return m, nil

	case frameMsg:
		return m.handleFrame(time.Time(msg))

	case tickMsg:
		cmds := []tea.Cmd{tickCmd(m.pollTick)}
		if m.store != nil {
			cmds = append(cmds, fetchSnapshotCmd(m.store))
		}
		return m, tea.Batch(cmds...)

	case snapshotMsg:
		m.applySnapshot(state.Snapshot(msg))
		return m, m.scheduleFrame()

	case spinner.TickMsg:
		if m.loaded {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// carouselHeight is the screen height minus the header and footer rows.
func (m Model) carouselHeight() int {
	return max(m.height-2, 0)
}

// resize measures the carousel viewport and re-sizes cards to fit it.
func (m *Model) resize() {
	sc := m.carousel.Measure(m.width, m.carouselHeight())
	w, h := cardSize(sc, m.width, m.cardWidth)
	m.source.resize(w, h)
}

// applySnapshot records the latest store state and hands changed decks to
// the carousel source.
func (m *Model) applySnapshot(snap state.Snapshot) {
	m.snapshot = snap
	if !snap.Loaded {
		return
	}
	if m.loaded && snap.Revision == m.revision {
		return
	}
	m.loaded = true
	m.revision = snap.Revision
	m.source.replace(snap.Cards)
	if m.search.active {
		m.search.refilter(m.source.cards)
	}
	m.log.Debug("deck updated", "revision", snap.Revision, "cards", len(snap.Cards))
}

// handleFrame advances running animations by the time since the last frame.
func (m Model) handleFrame(at time.Time) (tea.Model, tea.Cmd) {
	m.frameScheduled = false
	elapsed := at.Sub(m.lastFrame)
	if elapsed < 0 {
		elapsed = 0
	}
	m.lastFrame = at
	m.carousel.Advance(elapsed)
	if !m.carousel.Animating() {
		return m, nil
	}
	m.frameScheduled = true
	return m, frameCmd(m.frameTick)
}

// scheduleFrame starts the frame clock when an animation is pending and no
// frame is already on its way.
func (m *Model) scheduleFrame() tea.Cmd {
	if m.frameScheduled || !m.carousel.Animating() {
		return nil
	}
	m.frameScheduled = true
	m.lastFrame = m.now()
	return frameCmd(m.frameTick)
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	p := prefs.Prefs{Theme: m.theme.Name, CardWidth: m.cardWidth}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.log.Warn("save prefs failed", "err", err)
	}
}

// Messages

type tickMsg time.Time

type frameMsg time.Time

type snapshotMsg state.Snapshot

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func frameCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// Run starts the Bubble Tea program and blocks until it exits. Cancelling
// the options context stops the program without an error.
func Run(opts Options) error {
	m := New(opts)
	programOpts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
	if opts.Context != nil {
		programOpts = append(programOpts, tea.WithContext(opts.Context))
	}
	p := tea.NewProgram(m, programOpts...)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && opts.Context != nil && opts.Context.Err() != nil {
		return nil
	}
	return err
}
