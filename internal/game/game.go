// Package game runs the pattern scenes inside ebiten.
package game

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/ncruces/zenity"
	"github.com/rs/zerolog/log"

	"github.com/iburimskiy/pattern-playground/internal/chime"
	"github.com/iburimskiy/pattern-playground/internal/config"
	"github.com/iburimskiy/pattern-playground/internal/geom"
	"github.com/iburimskiy/pattern-playground/internal/honeycomb"
	"github.com/iburimskiy/pattern-playground/internal/scene"
)

var sceneKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4}

var boardKeys = map[ebiten.Key]scene.Command{
	ebiten.KeyW: scene.WiderBoard,
	ebiten.KeyS: scene.NarrowerBoard,
	ebiten.KeyE: scene.TallerBoard,
	ebiten.KeyD: scene.ShorterBoard,
	ebiten.KeyR: scene.LongerSide,
	ebiten.KeyF: scene.ShorterSide,
}

type Game struct {
	cfg     config.Config
	chime   *chime.Player
	scenes  []scene.Scene
	current int

	viewport geom.Point
	mounted  bool
	frame    uint64

	// input
	touchIDs []ebiten.TouchID
	pending  []geom.Point

	canvas  screen
	lastErr error
}

// New returns a game showing cfg's start scene. The player may be nil.
func New(cfg config.Config, player *chime.Player) *Game {
	g := &Game{
		chime:    player,
		viewport: geom.Pt(float64(cfg.Window.Width), float64(cfg.Window.Height)),
	}
	g.apply(cfg)
	return g
}

func buildScenes(cfg config.Config) []scene.Scene {
	board := honeycomb.Board{
		Width:  cfg.Honeycomb.Width,
		Height: cfg.Honeycomb.Height,
		Side:   cfg.Honeycomb.Side,
	}
	return []scene.Scene{
		scene.NewHoneycomb(board, cfg.Honeycomb.RotateStep),
		scene.NewPhyllotaxis(cfg.Phyllotaxis.Count, cfg.Phyllotaxis.RotationGap, cfg.Phyllotaxis.Duration.Seconds()),
		scene.NewRotator(),
		scene.NewTriangle(),
	}
}

// apply rebuilds every scene from cfg and mounts its start scene.
func (g *Game) apply(cfg config.Config) {
	g.cfg = cfg
	g.scenes = buildScenes(cfg)
	g.current = max(cfg.SceneIndex(), 0)
	g.mounted = false
	g.pending = g.pending[:0]
}

// Scene returns the scene on screen.
func (g *Game) Scene() scene.Scene { return g.scenes[g.current] }

func (g *Game) switchTo(i int) {
	if i < 0 || i >= len(g.scenes) || i == g.current {
		return
	}
	g.current = i
	g.mounted = false
	g.pending = g.pending[:0]
	log.Info().Str("scene", g.Scene().Name()).Msg("scene switched")
}

// queueTouch records a touch start for the next step.
func (g *Game) queueTouch(p geom.Point) {
	g.pending = append(g.pending, p)
}

// step mounts the scene if needed, dispatches queued touches and then
// advances the scene by dt.
func (g *Game) step(dt float64) {
	s := g.Scene()
	if !g.mounted {
		s.Mount(g.viewport)
		g.mounted = true
	}
	for _, p := range g.pending {
		if !s.Touch(p) {
			continue
		}
		log.Trace().Str("scene", s.Name()).Float64("x", p.X).Float64("y", p.Y).Msg("touch accepted")
		if err := g.chime.Play(); err != nil {
			log.Warn().Err(err).Msg("tap tone disabled")
			g.lastErr = err
		}
	}
	g.pending = g.pending[:0]
	g.frame++
	s.Update(g.frame, dt)
}

func (g *Game) command(cmd scene.Command) {
	c, ok := g.Scene().(scene.Configurable)
	if !ok {
		return
	}
	c.Apply(cmd)
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	for i, k := range sceneKeys {
		if inpututil.IsKeyJustPressed(k) {
			g.switchTo(i)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.switchTo((g.current + 1) % len(g.scenes))
	}
	for k, cmd := range boardKeys {
		if inpututil.IsKeyJustPressed(k) {
			g.command(cmd)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		if err := g.openConfigDialog(); err != nil {
			log.Error().Err(err).Msg("error loading config")
			g.lastErr = err
		}
	}

	// Only the first new touch of a frame counts.
	g.touchIDs = inpututil.AppendJustPressedTouchIDs(g.touchIDs[:0])
	if len(g.touchIDs) > 0 {
		x, y := ebiten.TouchPosition(g.touchIDs[0])
		g.queueTouch(geom.Pt(float64(x), float64(y)))
	} else if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.queueTouch(geom.Pt(float64(x), float64(y)))
	}

	g.step(1 / float64(ebiten.TPS()))
	return nil
}

func (g *Game) Draw(dst *ebiten.Image) {
	g.canvas.reset(dst)
	g.Scene().Draw(&g.canvas)

	status := g.Scene().Name() + " - tap to animate, 1-4/Tab: scene, O: open config, Esc/Q: quit"
	if _, ok := g.Scene().(scene.Configurable); ok {
		status += "\nW/S width, E/D height, R/F side"
	}
	if g.lastErr != nil {
		status += "\nError: " + g.lastErr.Error()
	}
	g.canvas.DrawText(status, geom.Pt(12, 12))
}

// Layout uses the whole window. A new size remounts the scene so
// viewport-relative layouts follow it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	vp := geom.Pt(float64(outsideWidth), float64(outsideHeight))
	if vp != g.viewport {
		g.viewport = vp
		g.mounted = false
	}
	return outsideWidth, outsideHeight
}

func (g *Game) openConfigDialog() error {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Configuration"),
		zenity.FileFilters{{
			Name:     "Configuration",
			Patterns: []string{"*.yaml", "*.yml", "*.toml", "*.json"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return fmt.Errorf("error opening file dialog: %w", err)
	}
	return g.reload(filename)
}

// reload replaces the configuration with the one in file. Window and
// log settings only apply on the next start.
func (g *Game) reload(file string) error {
	cfg, meta, err := config.Load(nil, file)
	if err != nil {
		return err
	}
	if meta.FileNotFound {
		return fmt.Errorf("config file %s not found", file)
	}
	g.chime.Close()
	g.chime = chime.New(chimeConfig(cfg.Chime))
	g.apply(cfg)
	g.lastErr = nil
	log.Info().Str("file", file).Str("scene", cfg.Scene).Msg("configuration reloaded")
	return nil
}

// chimeConfig converts the chime section of the configuration.
func chimeConfig(c config.Chime) chime.Config {
	return chime.Config{
		Enabled:   c.Enabled,
		Frequency: c.Frequency,
		Duration:  c.Duration,
		Gain:      c.Gain,
		Sample:    c.Sample,
	}
}

// NewChime returns the tap tone player for cfg.
func NewChime(cfg config.Config) *chime.Player {
	return chime.New(chimeConfig(cfg.Chime))
}
