package wordarena

import (
	"fmt"
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"
)

const placeholderText = "type a word, press Enter"

// RunConfig holds optional settings for Run.
type RunConfig struct {
	// Title sets the window title.
	Title string
	// Width and Height set the window size. Zero fits the stage and header.
	Width, Height int
	// ShowFPS starts with the FPS widget visible; F3 toggles it.
	ShowFPS bool
	// TestScript, when non-empty, is a JSON script driven by a TestRunner.
	TestScript []byte
}

type exportKind uint8

const (
	exportCopy exportKind = iota
	exportSave
	exportFile
)

type captureRequest struct {
	kind  exportKind
	label string
}

type exportResult struct {
	kind exportKind
	path string
	err  error
}

// Game hosts an Arena in an ebiten window: the text field and counter on
// top, the stage below.
type Game struct {
	arena    *Arena
	log      zerolog.Logger
	input    *Input
	field    *TextField
	faces    faces
	sound    *Sound
	exporter *Exporter

	status   statusLine
	captures []captureRequest
	results  chan exportResult
	fps      fpsWidget
	stats    statsReporter
	runner   *TestRunner
	debug    bool

	clock   func() time.Time
	now     time.Time
	prevNow time.Time
	width   int
	height  int
}

// NewGame builds a game around arena. Sound is started when the arena's
// config asks for it; failing to open the speaker only disables sound.
func NewGame(arena *Arena, log zerolog.Logger) (*Game, error) {
	ff, err := loadFaces()
	if err != nil {
		return nil, err
	}
	cfg := arena.Config()
	g := &Game{
		arena:    arena,
		log:      log,
		input:    NewInput(arena, Vec2{Y: headerHeight}),
		field:    NewTextField(cfg.MaxWordRunes, placeholderText),
		faces:    ff,
		exporter: NewExporter(cfg.ExportDir),
		results:  make(chan exportResult, 4),
		stats:    statsReporter{interval: debugInterval},
		clock:    time.Now,
		debug:    cfg.Debug,
		width:    int(cfg.StageSize),
		height:   int(cfg.StageSize) + headerHeight,
	}
	arena.SetLogger(log)
	if cfg.Sound {
		s, err := NewSound()
		if err != nil {
			log.Warn().Err(err).Msg("audio unavailable, continuing without sound")
		}
		g.sound = s
		arena.OnRemove(func(RemoveEvent) { g.sound.Pop() })
	}
	return g, nil
}

// SetClock replaces the wall clock, for deterministic runs.
func (g *Game) SetClock(clock func() time.Time) { g.clock = clock }

// SetTestRunner attaches a TestRunner. Its step method is called from
// Update before input is processed each frame.
func (g *Game) SetTestRunner(r *TestRunner) { g.runner = r }

// Close releases audio resources.
func (g *Game) Close() { g.sound.Close() }

// Update implements ebiten.Game.
func (g *Game) Update() error {
	g.prevNow, g.now = g.now, g.clock()
	if g.prevNow.IsZero() {
		g.prevNow = g.now
	}
	g.drainResults()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.fps.toggle()
	}
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	switch {
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.captures = append(g.captures, captureRequest{kind: exportCopy})
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.captures = append(g.captures, captureRequest{kind: exportSave})
	case !ctrl:
		if g.field.Update() {
			g.field.Submit(g.submitWord)
		}
	}

	if g.runner != nil {
		g.runner.step(g)
		if g.runner.Done() && len(g.captures) == 0 && g.input.PendingInjections() == 0 {
			g.log.Info().Int("skipped", g.runner.Skipped()).Msg("test script finished")
			return ebiten.Termination
		}
	}

	g.input.Update(g.now)
	g.arena.Update(g.now)
	g.fps.update(g.now.Sub(g.prevNow).Seconds())
	if g.debug {
		g.stats.tick(g.now, g.arena, g.log)
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	frame := g.arena.Project(g.now)
	cfg := g.arena.Config()

	drawHeader(screen, g.field, frame, g.status.current(g.now), g.faces, float64(g.width))
	drawStage(screen, frame, g.faces, cfg, 0, headerHeight)

	if len(g.captures) > 0 {
		region := g.arena.CaptureRegion().Offset(0, headerHeight)
		if cfg.UserName != "" {
			drawOverlay(screen, cfg.UserName, g.faces.overlay, region)
		}
		img, err := captureRegion(screen, region)
		g.flushCaptures(img, err)
	}

	g.fps.draw(screen, 4, 4)
}

// Layout implements ebiten.Game.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// flushCaptures hands the captured image to the exporter for every queued
// request. Saving runs off the game loop because the dialog blocks.
func (g *Game) flushCaptures(img *image.NRGBA, err error) {
	for _, req := range g.captures {
		if err != nil {
			g.report(exportResult{kind: req.kind, err: err})
			continue
		}
		switch req.kind {
		case exportCopy:
			path, err := g.exporter.Copy(img)
			g.report(exportResult{kind: req.kind, path: path, err: err})
		case exportSave:
			go func() {
				path, err := g.exporter.Save(img)
				g.results <- exportResult{kind: exportSave, path: path, err: err}
			}()
		case exportFile:
			path, err := g.exporter.WriteFile(img, req.label)
			g.report(exportResult{kind: req.kind, path: path, err: err})
		}
	}
	g.captures = g.captures[:0]
}

func (g *Game) drainResults() {
	for {
		select {
		case r := <-g.results:
			g.report(r)
		default:
			return
		}
	}
}

// report logs an export outcome and shows it on the status line.
func (g *Game) report(r exportResult) {
	msg := statusForExport(r.kind, r.path, r.err)
	if r.err != nil {
		g.log.Warn().Err(r.err).Msg("export failed")
	} else if r.path != "" {
		g.log.Info().Str("path", r.path).Msg("image exported")
	}
	if msg != "" {
		g.status.set(msg, g.now)
	}
}

func (g *Game) submitWord(text string) bool {
	_, ok := g.arena.Add(text)
	return ok
}

func (g *Game) runnerInput() *Input { return g.input }

func (g *Game) queueCapture(label string) {
	g.captures = append(g.captures, captureRequest{kind: exportFile, label: label})
}

func (g *Game) wordScreenPosition(text string) (Vec2, bool) {
	for _, b := range g.arena.Bodies() {
		if b.Text == text {
			return b.Position.Add(g.input.origin), true
		}
	}
	return Vec2{}, false
}

// Run builds an arena from cfg and runs it in a window until the user quits
// or the test script finishes.
func Run(cfg Config, rc RunConfig, log zerolog.Logger) error {
	arena, err := NewArena(cfg)
	if err != nil {
		return err
	}
	g, err := NewGame(arena, log)
	if err != nil {
		return err
	}
	defer g.Close()

	if len(rc.TestScript) > 0 {
		r, err := LoadTestScript(rc.TestScript)
		if err != nil {
			return err
		}
		g.SetTestRunner(r)
	}
	if rc.ShowFPS {
		g.fps.toggle()
	}

	w, h := rc.Width, rc.Height
	if w <= 0 || h <= 0 {
		w, h = g.width, g.height
	}
	title := rc.Title
	if title == "" {
		title = "Word Arena"
	}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	log.Info().
		Int("max_words", cfg.MaxWords).
		Stringer("interaction", cfg.Interaction).
		Stringer("sync", cfg.Sync).
		Msg("starting arena")
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
