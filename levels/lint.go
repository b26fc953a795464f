package levels

import (
	"fmt"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/mathbuilder/grid"
)

// Lint reports authoring problems that do not make a level unplayable
// enough to reject: gaps overlapping platforms, and geometry or markers
// lying outside the grid.
func Lint(lvl *Level) []string {
	if lvl == nil {
		return nil
	}

	var warnings []string
	bounds := cp.BB{L: 0, B: 0, R: grid.TileToPixel(lvl.GridWidth), T: grid.TileToPixel(lvl.GridHeight)}

	platformBBs := make([]cp.BB, len(lvl.Platforms))
	for i, p := range lvl.Platforms {
		platformBBs[i] = grid.SpanBB(p.GridX, p.GridY, p.Width)
		if !bounds.Contains(platformBBs[i]) {
			warnings = append(warnings, fmt.Sprintf("platforms[%d] extends outside the %dx%d grid", i, lvl.GridWidth, lvl.GridHeight))
		}
	}

	for i, g := range lvl.Gaps {
		gapBB := grid.SpanBB(g.GridX, g.GridY, g.Width)
		if !bounds.Contains(gapBB) {
			warnings = append(warnings, fmt.Sprintf("gaps[%d] extends outside the %dx%d grid", i, lvl.GridWidth, lvl.GridHeight))
		}
		for j, pbb := range platformBBs {
			if overlaps(gapBB, pbb) {
				warnings = append(warnings, fmt.Sprintf("gaps[%d] overlaps platforms[%d]", i, j))
			}
		}
	}

	for _, m := range []struct {
		name string
		pos  GridPos
	}{{"start", lvl.Start}, {"goal", lvl.Goal}} {
		center := cp.Vector{X: grid.TileToPixelCenter(m.pos.GridX), Y: grid.TileToPixelCenter(m.pos.GridY)}
		if !bounds.ContainsVect(center) {
			warnings = append(warnings, fmt.Sprintf("%s (%d,%d) is outside the grid", m.name, m.pos.GridX, m.pos.GridY))
		}
	}

	return warnings
}

// overlaps is BB.Intersects without counting shared edges; adjacent tile
// runs touch but do not overlap.
func overlaps(a, b cp.BB) bool {
	return a.Intersects(b) && a.L < b.R && b.L < a.R && a.B < b.T && b.B < a.T
}
