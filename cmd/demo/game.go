package main

import (
	_ "embed"
	"fmt"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"go.uber.org/zap"

	"github.com/milk9111/controls"
	"github.com/milk9111/controls/bindings"
	"github.com/milk9111/controls/ebitenhost"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

//go:embed bindings.yaml
var defaultProfile []byte

type Game struct {
	frames int
	debug  bool
	log    *zap.Logger

	host    *ebitenhost.Host
	reg     *controls.Registry
	watcher *bindings.Watcher
	path    string

	player *Player

	paused bool
	ui     *ebitenui.UI
}

func NewGame(profilePath string, debug bool, log *zap.Logger) (*Game, error) {
	g := &Game{
		debug: debug,
		log:   log,
		host:  ebitenhost.New(),
		path:  profilePath,
	}

	if err := g.reload(); err != nil {
		return nil, err
	}

	if profilePath != "" {
		w, err := bindings.NewWatcher(profilePath)
		if err != nil {
			return nil, fmt.Errorf("watch %s: %w", profilePath, err)
		}
		g.watcher = w
	}

	g.player = NewPlayer(baseWidth/2, baseHeight/2)
	g.ui = NewMenuUI(g)
	return g, nil
}

// reload builds a fresh registry from the profile so a bad edit never leaves
// the old bindings half-replaced.
func (g *Game) reload() error {
	var profile *bindings.Profile
	var err error
	if g.path != "" {
		profile, err = bindings.Load(g.path)
	} else {
		profile, err = bindings.Parse(defaultProfile)
	}
	if err != nil {
		return err
	}

	reg := controls.New(g.host)
	if err := profile.Apply(reg); err != nil {
		return err
	}
	for _, name := range []string{"jump", "left", "right", "menu"} {
		if _, err := reg.IsDown(name); err != nil {
			g.log.Warn("profile is missing a button the demo uses", zap.String("button", name))
		}
	}
	if _, err := reg.AxisValue("move_x"); err != nil {
		g.log.Warn("profile is missing the move_x axis")
	}

	g.reg = reg
	g.log.Info("bindings applied",
		zap.Strings("buttons", g.reg.ButtonNames()),
		zap.Strings("axes", g.reg.AxisNames()),
		zap.Float64("deadzone", g.reg.Deadzone()))
	return nil
}

func (g *Game) Close() error {
	if g.watcher != nil {
		return g.watcher.Close()
	}
	return nil
}

func (g *Game) Update() error {
	g.frames++

	if g.watcher != nil {
		select {
		case path := <-g.watcher.Events:
			if err := g.reload(); err != nil {
				g.log.Error("bindings reload failed, keeping previous profile",
					zap.String("path", path), zap.Error(err))
			} else {
				// The panel captions the registry it was built against.
				g.ui = NewMenuUI(g)
			}
		case err := <-g.watcher.Errors:
			g.log.Error("bindings watcher error", zap.Error(err))
		default:
		}
	}

	for _, id := range g.host.JustConnected() {
		g.log.Info("gamepad connected", zap.Int64("id", int64(id)), zap.String("name", ebiten.GamepadName(id)))
		g.reg.RefreshDevices()
	}
	for _, id := range g.host.JustDisconnected() {
		g.log.Info("gamepad disconnected", zap.Int64("id", int64(id)))
		g.reg.RefreshDevices()
	}

	g.reg.Update()

	if g.pressed("menu") {
		g.paused = !g.paused
	}
	if g.paused {
		g.ui.Update()
		return nil
	}

	g.player.Update(g)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.player.Draw(screen)

	moveX, _ := g.reg.AxisValue("move_x")
	jump, _ := g.reg.IsDown("jump")
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"FPS: %.0f   move_x: %+.2f   jump: %v   pads: %d   (menu key toggles the panel)",
		ebiten.ActualFPS(), moveX, jump, len(g.reg.Gamepads())))

	if g.debug {
		y := 20
		for _, name := range g.reg.ButtonNames() {
			down, _ := g.reg.IsDown(name)
			ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s: %v", name, down), 8, y)
			y += 14
		}
	}

	if g.paused {
		g.ui.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}

// pressed swallows lookup errors: a profile without the control just means
// the action is unbound this session, which reload already warned about.
func (g *Game) pressed(name string) bool {
	p, err := g.reg.Pressed(name)
	return err == nil && p
}

func (g *Game) axis(name string) float64 {
	v, err := g.reg.AxisValue(name)
	if err != nil {
		return 0
	}
	return v
}
