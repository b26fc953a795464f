package session

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/milk9111/mathbuilder/grid"
	"github.com/milk9111/mathbuilder/levels"
	"github.com/milk9111/mathbuilder/prefabs"
)

var easings = map[string]ease.TweenFunc{
	"linear":      ease.Linear,
	"out_quad":    ease.OutQuad,
	"out_cubic":   ease.OutCubic,
	"out_back":    ease.OutBack,
	"out_bounce":  ease.OutBounce,
	"out_elastic": ease.OutElastic,
}

// Easing looks up an easing function by its prefab name, defaulting to OutBack.
func Easing(name string) ease.TweenFunc {
	if fn, ok := easings[name]; ok {
		return fn
	}
	return ease.OutBack
}

// BridgeBlock is one tile of a bridge: its center and current scale.
type BridgeBlock struct {
	Center grid.Pixel
	Scale  float32
}

// Bridge pops blocks in left to right across a solved gap, each starting
// BlockStagger seconds after the previous one.
type Bridge struct {
	Gap     levels.Gap
	Blocks  []BridgeBlock
	tweens  []*gween.Tween
	stagger float32
	elapsed float32
	done    bool
}

func NewBridge(gap levels.Gap, m grid.Mapper, spec prefabs.BridgeSpec) *Bridge {
	centers := m.SpanCenters(gap.GridX, gap.GridY, gap.Width)
	b := &Bridge{
		Gap:     gap,
		Blocks:  make([]BridgeBlock, len(centers)),
		tweens:  make([]*gween.Tween, len(centers)),
		stagger: spec.BlockStagger,
	}
	fn := Easing(spec.Ease)
	for i, c := range centers {
		b.Blocks[i] = BridgeBlock{Center: c}
		b.tweens[i] = gween.New(0, 1, spec.BlockDuration, fn)
	}
	b.done = len(centers) == 0
	return b
}

// Update advances the animation by dt seconds and reports whether every
// block has reached full size.
func (b *Bridge) Update(dt float32) bool {
	if b.done {
		return true
	}
	b.elapsed += dt
	finished := true
	for i, tw := range b.tweens {
		scale, ok := tw.Set(b.elapsed - float32(i)*b.stagger)
		b.Blocks[i].Scale = scale
		if !ok {
			finished = false
		}
	}
	b.done = finished
	return finished
}

func (b *Bridge) Done() bool { return b.done }
