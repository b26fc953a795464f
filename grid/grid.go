// Package grid converts between tile-grid and pixel coordinates.
// All level positions are authored on a square tile lattice; pixels are
// derived by scaling with the tile size.
package grid

import (
	"math"

	"github.com/jakecoffman/cp"
)

const TileSize = 64

// Pixel is a screen-space position.
type Pixel struct {
	X float64
	Y float64
}

// Line is a segment in pixel space.
type Line struct {
	From Pixel
	To   Pixel
}

// Mapper holds the tile size used for conversions.
type Mapper struct {
	TileSize int
}

var defaultMapper = Mapper{TileSize: TileSize}

// New returns a mapper for the given tile size, falling back to TileSize
// when size is not positive.
func New(size int) Mapper {
	if size <= 0 {
		size = TileSize
	}
	return Mapper{TileSize: size}
}

func (m Mapper) size() float64 {
	if m.TileSize <= 0 {
		return TileSize
	}
	return float64(m.TileSize)
}

func (m Mapper) TileToPixel(tile int) float64 {
	return float64(tile) * m.size()
}

// PixelToTile floors, so negative pixels map to negative tiles.
func (m Mapper) PixelToTile(pixel float64) int {
	return int(math.Floor(pixel / m.size()))
}

func (m Mapper) TileToPixelCenter(tile int) float64 {
	return float64(tile)*m.size() + m.size()/2
}

func (m Mapper) SnapToGrid(pixel float64) float64 {
	return float64(m.PixelToTile(pixel)) * m.size()
}

// GridToPixel returns the top-left corner of the tile.
func (m Mapper) GridToPixel(gridX, gridY int) Pixel {
	return Pixel{X: m.TileToPixel(gridX), Y: m.TileToPixel(gridY)}
}

// SpanCenters returns the centers of width tiles starting at (gridX, gridY)
// and running to the right.
func (m Mapper) SpanCenters(gridX, gridY, width int) []Pixel {
	if width <= 0 {
		return nil
	}
	out := make([]Pixel, 0, width)
	cy := m.TileToPixelCenter(gridY)
	for i := 0; i < width; i++ {
		out = append(out, Pixel{X: m.TileToPixelCenter(gridX + i), Y: cy})
	}
	return out
}

// SpanBB returns the pixel bounds of a horizontal run of tiles. B is the
// top edge and T the bottom edge since screen Y grows downward.
func (m Mapper) SpanBB(gridX, gridY, width int) cp.BB {
	if width < 0 {
		width = 0
	}
	x0 := m.TileToPixel(gridX)
	y0 := m.TileToPixel(gridY)
	return cp.BB{L: x0, B: y0, R: x0 + float64(width)*m.size(), T: y0 + m.size()}
}

// DebugGridLines returns every vertical line followed by every horizontal
// line of a widthTiles x heightTiles grid.
func (m Mapper) DebugGridLines(widthTiles, heightTiles int) []Line {
	if widthTiles < 0 || heightTiles < 0 {
		return nil
	}
	w := m.TileToPixel(widthTiles)
	h := m.TileToPixel(heightTiles)
	lines := make([]Line, 0, widthTiles+heightTiles+2)
	for x := 0; x <= widthTiles; x++ {
		px := m.TileToPixel(x)
		lines = append(lines, Line{From: Pixel{X: px}, To: Pixel{X: px, Y: h}})
	}
	for y := 0; y <= heightTiles; y++ {
		py := m.TileToPixel(y)
		lines = append(lines, Line{From: Pixel{Y: py}, To: Pixel{X: w, Y: py}})
	}
	return lines
}

func TileToPixel(tile int) float64 { return defaultMapper.TileToPixel(tile) }

func PixelToTile(pixel float64) int { return defaultMapper.PixelToTile(pixel) }

func TileToPixelCenter(tile int) float64 { return defaultMapper.TileToPixelCenter(tile) }

func SnapToGrid(pixel float64) float64 { return defaultMapper.SnapToGrid(pixel) }

func GridToPixel(gridX, gridY int) Pixel { return defaultMapper.GridToPixel(gridX, gridY) }

func SpanCenters(gridX, gridY, width int) []Pixel {
	return defaultMapper.SpanCenters(gridX, gridY, width)
}

func SpanBB(gridX, gridY, width int) cp.BB { return defaultMapper.SpanBB(gridX, gridY, width) }

func DebugGridLines(widthTiles, heightTiles int) []Line {
	return defaultMapper.DebugGridLines(widthTiles, heightTiles)
}
