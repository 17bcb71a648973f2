package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/fishtown/ecs"
	"github.com/milk9111/fishtown/ecs/component"
	"github.com/milk9111/fishtown/ecs/entity"
	"github.com/milk9111/fishtown/ecs/system"
	"github.com/milk9111/fishtown/prefabs"
	"golang.org/x/image/colornames"
)

const (
	screenWidth  = 640
	screenHeight = 240
	cellSize     = 28
)

// previewGame plays one player animation at a time so frame ranges and
// timings in player.yaml can be checked without running the game.
type previewGame struct {
	world   *ecs.World
	anims   *system.AnimationSystem
	e       ecs.Entity
	states  []component.PlayerStateID
	current int
	done    int
}

func newPreviewGame(specs map[string]prefabs.AnimationFrameSpec) (*previewGame, error) {
	configs, err := entity.AnimationConfigs(specs)
	if err != nil {
		return nil, err
	}

	w := ecs.NewWorld()
	anims := system.NewAnimationSystem()
	w.Events().Register(anims)

	g := &previewGame{world: w, anims: anims, states: component.PlayerStates()}
	w.Events().Subscribe(ecs.EventAnimationFinished, func(*ecs.World, ecs.Event) { g.done++ })

	g.e = ecs.CreateEntity(w)
	if err := ecs.Add(w, g.e, component.AnimationComponent.Kind(), &component.Animation{Configs: configs}); err != nil {
		return nil, err
	}
	g.show(0)
	return g, nil
}

func (g *previewGame) show(i int) {
	n := len(g.states)
	g.current = ((i % n) + n) % n
	g.done = 0
	if err := g.world.Raise(ecs.Event{Type: ecs.EventSwitchSprite, Entity: g.e, Index: g.states[g.current].SpriteIndex()}); err != nil {
		log.Printf("animpreview: %v", err)
	}
}

func (g *previewGame) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyRight):
		g.show(g.current + 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		g.show(g.current - 1)
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.show(g.current)
	}
	g.anims.Update(g.world, ecs.Tick{Dt: 1 / float64(ebiten.TPS())})
	return nil
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x00, 0x00, 0x00, 0xff})
	anim, ok := ecs.Get(g.world, g.e, component.AnimationComponent.Kind())
	if !ok {
		return
	}
	cfg, ok := anim.Current()
	if !ok {
		return
	}

	x := float32(screenWidth-cfg.FrameCount()*cellSize) / 2
	for f := cfg.First; f <= cfg.Last; f++ {
		clr := colornames.Dimgray
		if f == anim.Frame {
			clr = colornames.Gold
		}
		vector.FillRect(screen, x+2, screenHeight/2-cellSize/2, cellSize-4, cellSize-4, clr, false)
		ebitenutil.DebugPrintAt(screen, fmt.Sprint(f), int(x)+6, screenHeight/2+cellSize/2)
		x += cellSize
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s  frames %d..%d  %.2fs/frame  %s  finished %d",
		cfg.Name, cfg.First, cfg.Last, cfg.FrameDuration, cfg.Mode, g.done), 8, 8)
	ebitenutil.DebugPrintAt(screen, "left/right: state  space: restart  esc: quit", 8, screenHeight-24)
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	file := flag.String("prefab", prefabs.PlayerFile, "player prefab to preview")
	flag.Parse()

	spec, err := prefabs.LoadSpec[prefabs.PlayerSpec](*file)
	if err != nil {
		log.Fatal(err)
	}
	g, err := newPreviewGame(spec.Animations)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Player Animation Preview")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
