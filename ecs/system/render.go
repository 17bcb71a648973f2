package system

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/fishtown/common"
	"github.com/milk9111/fishtown/ecs"
	"github.com/milk9111/fishtown/ecs/component"
	"golang.org/x/image/colornames"
)

// RenderSystem draws shapes back to front, tinted by the time of day.
type RenderSystem struct {
	// NightTint is the fraction of color kept at midnight.
	NightTint float64
	Debug     bool
}

func NewRenderSystem(debug bool) *RenderSystem {
	return &RenderSystem{NightTint: 0.25, Debug: debug}
}

type drawItem struct {
	depth float64
	e     ecs.Entity
	x, y  float64
	shape *component.Shape
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	light := float64(common.Lerp(float32(r.NightTint), 1, float32(Daylight(w))))
	screen.Fill(tint(colornames.Skyblue, light))

	camX := CameraX(w)
	var items []drawItem
	ecs.ForEach2(w, component.ShapeComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, s *component.Shape, t *component.Transform) {
		item := drawItem{e: e, x: t.X, y: t.Y, shape: s}
		if layer, ok := ecs.Get(w, e, component.LayerComponent.Kind()); ok {
			item.depth = layer.Depth
			item.x += layer.ScrollX
		}
		items = append(items, item)
	})
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].depth != items[j].depth {
			return items[i].depth < items[j].depth
		}
		return uint64(items[i].e) < uint64(items[j].e)
	})

	for _, it := range items {
		sx, sy := worldToScreen(it.x, it.y, camX)
		clr := tint(it.shape.Color, light)
		switch it.shape.Kind {
		case component.ShapeCircle:
			radius := max(it.shape.Width, it.shape.Height) / 2
			vector.FillCircle(screen, float32(sx), float32(sy), float32(radius), clr, true)
		default:
			vector.FillRect(screen,
				float32(sx-it.shape.Width/2), float32(sy-it.shape.Height/2),
				float32(it.shape.Width), float32(it.shape.Height), clr, false)
		}
	}

	r.drawHUD(w, screen)
}

func (r *RenderSystem) drawHUD(w *ecs.World, screen *ebiten.Image) {
	e, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	player, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok {
		return
	}
	frame := 0
	if anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok {
		frame = anim.Frame
	}
	facing := "right"
	if player.FacingLeft {
		facing = "left"
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("State: %s  Frame: %d  Facing: %s  Money: %.2f  Items: %d",
		player.State, frame, facing, player.Money, len(player.Inventory)), 0, 0)
	if r.Debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.2f  Events: %d", ebiten.ActualFPS(), w.Events().Delivered()), 0, 16)
	}
}

// worldToScreen maps y-up world coordinates centered on camX to screen
// pixels.
func worldToScreen(x, y, camX float64) (float64, float64) {
	return x - camX + common.BaseWidth/2, common.BaseHeight/2 - y
}

func tint(c color.Color, light float64) color.Color {
	if c == nil {
		c = colornames.White
	}
	r, g, b, a := c.RGBA()
	scale := func(v uint32) uint8 {
		return uint8(float64(v>>8) * light)
	}
	return color.RGBA{R: scale(r), G: scale(g), B: scale(b), A: uint8(a >> 8)}
}
