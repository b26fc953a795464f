package main

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/milk9111/mathbuilder/common"
	"github.com/milk9111/mathbuilder/grid"
	"github.com/milk9111/mathbuilder/levels"
	"github.com/milk9111/mathbuilder/prefabs"
	"github.com/milk9111/mathbuilder/save"
	"github.com/milk9111/mathbuilder/session"
)

const maxAnswerDigits = 3

type Game struct {
	spec       prefabs.GameSpec
	bridgeSpec prefabs.BridgeSpec
	mapper     grid.Mapper
	store      *save.Store
	debug      bool

	number   int
	session  *session.Session
	bridges  []*session.Bridge
	answer   string
	feedback string
	summary  *session.Summary
	progress save.State

	input   Input
	hud     *HUD
	watcher *common.Watcher
	tiles   map[string]*ebiten.Image
}

func NewGame(spec prefabs.GameSpec, bridgeSpec prefabs.BridgeSpec, store *save.Store, number int, debug bool) (*Game, error) {
	g := &Game{
		spec:       spec,
		bridgeSpec: bridgeSpec,
		mapper:     grid.New(spec.TileSize),
		store:      store,
		debug:      debug,
	}
	g.hud = NewHUD(spec)

	// Specs are only hot-reloaded when run from a checkout with a prefabs/ dir.
	if w, err := prefabs.NewWatcher("prefabs"); err == nil {
		g.watcher = w
	}

	g.tiles = map[string]*ebiten.Image{
		"platform": g.solidTile(colornames.Forestgreen),
		"bridge":   g.solidTile(colornames.Saddlebrown),
		"start":    g.solidTile(colornames.Royalblue),
		"goal":     g.solidTile(colornames.Gold),
	}

	if number <= 0 {
		number = min(store.Load().LevelsUnlocked, g.levelCount())
	}
	if err := g.openLevel(number); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) levelCount() int {
	return min(g.spec.LevelCount, levels.LevelCount)
}

func (g *Game) solidTile(c color.Color) *ebiten.Image {
	img := ebiten.NewImage(g.mapper.TileSize, g.mapper.TileSize)
	img.Fill(c)
	return img
}

func (g *Game) openLevel(number int) error {
	st := g.store.Load()
	if !st.IsUnlocked(number) {
		return fmt.Errorf("level %d is locked", number)
	}
	lvl, err := levels.Load(number)
	if err != nil {
		return err
	}
	for _, w := range levels.Lint(lvl) {
		log.Printf("level %d: %s", number, w)
	}

	g.number = number
	g.progress = st
	g.session = session.New(lvl, number).WithMapper(g.mapper)
	g.session.FallMargin = g.spec.FallMargin
	g.bridges = nil
	g.answer = ""
	g.feedback = ""
	g.summary = nil
	return nil
}

func (g *Game) Update() error {
	g.reloadSpecs()
	dt := float32(1.0 / float64(ebiten.TPS()))
	for _, b := range g.bridges {
		b.Update(dt)
	}

	g.input.Update()
	switch {
	case g.input.Restart:
		return g.openLevel(g.number)
	case g.input.NextLevel:
		g.tryOpen(g.number + 1)
	case g.input.PrevLevel:
		g.tryOpen(g.number - 1)
	case g.input.ToggleGrid:
		g.debug = !g.debug
	}

	if g.summary == nil {
		g.updateAnswer()
	} else if g.input.Submit {
		g.tryOpen(g.number + 1)
	}

	g.hud.Refresh(g.progress, g.number, g.session.WrongAttempts(), g.feedback)
	g.hud.UI.Update()
	return nil
}

// reloadSpecs picks up edits to the bridge spec without blocking the frame.
func (g *Game) reloadSpecs() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if filepath.Base(name) != "bridge.yaml" {
				continue
			}
			spec, err := prefabs.LoadBridgeSpec()
			if err != nil {
				log.Printf("reload %s: %v", name, err)
				continue
			}
			g.bridgeSpec = spec
			log.Printf("reloaded %s", name)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("prefab watch: %v", err)
		default:
			return
		}
	}
}

// Close stops the prefab watcher.
func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

func (g *Game) tryOpen(number int) {
	if number < 1 || number > g.levelCount() {
		return
	}
	if err := g.openLevel(number); err != nil {
		g.feedback = err.Error()
	}
}

func (g *Game) updateAnswer() {
	for _, r := range g.input.Digits {
		if len(g.answer) < maxAnswerDigits {
			g.answer += string(r)
		}
	}
	if g.input.Backspace && len(g.answer) > 0 {
		g.answer = g.answer[:len(g.answer)-1]
	}
	if !g.input.Submit {
		return
	}

	gap, open := g.session.NextUnsolved()
	if !open {
		sum, err := g.session.Complete(g.store)
		if err != nil {
			log.Printf("complete level %d: %v", g.number, err)
			g.feedback = "Could not save progress."
			return
		}
		g.summary = &sum
		g.progress = sum.Save
		g.feedback = fmt.Sprintf("Level complete! %d stars, +%d XP. You are a %s.", sum.Stars, sum.XPEarned, sum.Title)
		return
	}

	verdict := g.session.Submit(gap, g.answer)
	g.answer = ""
	if verdict == session.VerdictIgnored {
		return
	}
	g.feedback = verdict.Message()
	if verdict == session.VerdictCorrect {
		g.bridges = append(g.bridges, session.NewBridge(g.session.Level().Gaps[gap], g.mapper, g.bridgeSpec))
	}
}

// viewScale fits the whole level on screen, never enlarging it.
func (g *Game) viewScale() float64 {
	lvl := g.session.Level()
	w := g.mapper.TileToPixel(lvl.GridWidth)
	h := g.mapper.TileToPixel(lvl.GridHeight)
	return math.Min(1, math.Min(float64(g.spec.Screen.Width)/w, float64(g.spec.Screen.Height)/h))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.spec.Screen.Width, g.spec.Screen.Height
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Skyblue)
	lvl := g.session.Level()
	view := g.viewScale()

	for _, p := range lvl.Platforms {
		for i := 0; i < p.Width; i++ {
			g.drawTile(screen, g.tiles["platform"], g.mapper.GridToPixel(p.GridX+i, p.GridY), 1, view)
		}
	}

	for _, b := range g.bridges {
		for _, blk := range b.Blocks {
			half := float64(g.mapper.TileSize) / 2
			g.drawTile(screen, g.tiles["bridge"], grid.Pixel{X: blk.Center.X - half, Y: blk.Center.Y - half}, float64(blk.Scale), view)
		}
	}

	g.drawTile(screen, g.tiles["start"], g.mapper.GridToPixel(lvl.Start.GridX, lvl.Start.GridY), 1, view)
	g.drawTile(screen, g.tiles["goal"], g.mapper.GridToPixel(lvl.Goal.GridX, lvl.Goal.GridY), 1, view)

	if g.debug {
		for _, l := range g.mapper.DebugGridLines(lvl.GridWidth, lvl.GridHeight) {
			vector.StrokeLine(screen,
				float32(l.From.X*view), float32(l.From.Y*view),
				float32(l.To.X*view), float32(l.To.Y*view),
				1, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x26}, false)
		}
	}

	ebitenutil.DebugPrintAt(screen, g.prompt(), 10, g.spec.Screen.Height-40)
	g.hud.UI.Draw(screen)
}

// drawTile draws img with its top-left at p, scaled about its center.
func (g *Game) drawTile(screen, img *ebiten.Image, p grid.Pixel, scale, view float64) {
	if scale <= 0 {
		return
	}
	half := float64(g.mapper.TileSize) / 2
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-half, -half)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(p.X+half, p.Y+half)
	op.GeoM.Scale(view, view)
	screen.DrawImage(img, op)
}

func (g *Game) prompt() string {
	if g.summary != nil {
		return "Enter: next level   R: replay   P/N: previous/next"
	}
	gap, open := g.session.NextUnsolved()
	if !open {
		return "All bridges built! Press Enter to reach the flag."
	}
	width := g.session.Level().Gaps[gap].Width
	a, b := splitAddends(width)
	return fmt.Sprintf("How many blocks? %d + %d = %s_", a, b, strings.TrimSpace(g.answer))
}

// splitAddends writes n as a sum of two parts, the larger first, for the
// question shown over a gap. Gaps of width 1 read "1 + 0".
func splitAddends(n int) (int, int) {
	a := (n + 1) / 2
	return a, n - a
}
