package brickduel

import (
	"math"

	"github.com/vovakirdan/brick-duel/internal/config"
	"github.com/vovakirdan/brick-duel/internal/core"
	"github.com/vovakirdan/brick-duel/internal/registry"
)

// LayoutArgs is everything a layout generator needs.
type LayoutArgs struct {
	Arena  config.Arena
	Bricks config.Bricks
}

var layouts = registry.New[LayoutArgs, *Brick]()

func init() {
	layouts.Register(1, "Grid", gridLayout)
	layouts.Register(2, "Pyramid", pyramidLayout)
	layouts.Register(3, "Rings", ringLayout)
	layouts.Register(4, "Checkerboard", checkerLayout)
	layouts.Register(5, "Fortress", fortressLayout)
}

// Layouts lists the registered layouts in index order.
func Layouts() []registry.LayoutInfo {
	return layouts.List()
}

// LayoutName returns the display name of the layout at index.
func LayoutName(index int) string {
	return layouts.Name(index)
}

// WrapLayout maps any index onto 1..5.
func WrapLayout(index int) int {
	return layouts.Wrap(index)
}

// GenerateLayout builds the bricks of layout index (wrapped into range).
func GenerateLayout(index int, arena config.Arena, bricks config.Bricks) []*Brick {
	out, err := layouts.Generate(index, LayoutArgs{Arena: arena, Bricks: bricks})
	if err != nil {
		return nil
	}
	return out
}

func (a LayoutArgs) brick(x, y float64, color core.Color, points int) *Brick {
	return NewBrick(core.NewRectF(x, y, a.Bricks.Width, a.Bricks.Height), color, points, a.Bricks.DropChance)
}

// gridLayout is 5 rows of 10, worth 50 on the top row down to 10.
func gridLayout(a LayoutArgs) []*Brick {
	w, h := a.Bricks.Width, a.Bricks.Height
	out := make([]*Brick, 0, 50)
	for row := range 5 {
		for col := range 10 {
			x := float64(col)*(w+10) + 100
			y := float64(row)*(h+5) + 50
			out = append(out, a.brick(x, y, core.BrickPalette[row], (5-row)*10))
		}
	}
	return out
}

// pyramidLayout is 8 rows widening by one brick per row from the midline.
func pyramidLayout(a LayoutArgs) []*Brick {
	w, h := a.Bricks.Width, a.Bricks.Height
	mid := math.Floor(a.Arena.Width / 2)
	out := make([]*Brick, 0, 36)
	for row := range 8 {
		for col := range row + 1 {
			x := mid - math.Floor(float64(row)*w/2) + float64(col)*w
			y := 50 + float64(row)*h
			out = append(out, a.brick(x, y, core.BrickPalette[row%len(core.BrickPalette)], (8-row)*10))
		}
	}
	return out
}

// ringRadii are the concentric rings of the circular layout.
var ringRadii = []float64{100, 130, 160, 190}

// ringLayout places a brick every 15 degrees on four rings around
// (W/2, H/3), each brick centered on its arc point.
func ringLayout(a LayoutArgs) []*Brick {
	w, h := a.Bricks.Width, a.Bricks.Height
	cx := math.Floor(a.Arena.Width / 2)
	cy := math.Floor(a.Arena.Height / 3)
	out := make([]*Brick, 0, 24*len(ringRadii))
	for deg := 0; deg < 360; deg += 15 {
		rad := float64(deg) * math.Pi / 180
		for i, radius := range ringRadii {
			x := cx + radius*math.Cos(rad) - math.Floor(w/2)
			y := cy + radius*math.Sin(rad) - math.Floor(h/2)
			out = append(out, a.brick(x, y, core.BrickPalette[i%len(core.BrickPalette)], 10))
		}
	}
	return out
}

var checkerPalette = []core.Color{core.ColorRed, core.ColorYellow, core.ColorGreen, core.ColorBlue}

// checkerLayout is an 8x12 grid keeping only cells where row+col is even.
func checkerLayout(a LayoutArgs) []*Brick {
	w, h := a.Bricks.Width, a.Bricks.Height
	out := make([]*Brick, 0, 48)
	for row := range 8 {
		for col := range 12 {
			if (row+col)%2 != 0 {
				continue
			}
			x := float64(col)*w + 50
			y := float64(row)*h + 50
			out = append(out, a.brick(x, y, checkerPalette[((row+col)/2)%len(checkerPalette)], 10))
		}
	}
	return out
}

var fortressPalette = []core.Color{core.ColorYellow, core.ColorGreen, core.ColorBlue}

// fortressLayout is a full 10x12 grid with a three-hit core at
// rows 4..6, cols 4..8.
func fortressLayout(a LayoutArgs) []*Brick {
	w, h := a.Bricks.Width, a.Bricks.Height
	out := make([]*Brick, 0, 120)
	for row := range 10 {
		for col := range 12 {
			x := float64(col)*w + 50
			y := float64(row)*h + 50
			if row >= 4 && row <= 6 && col >= 4 && col <= 8 {
				b := a.brick(x, y, core.ColorRed, 30)
				b.HitsToBreak = 3
				out = append(out, b)
				continue
			}
			out = append(out, a.brick(x, y, fortressPalette[(row+col)%len(fortressPalette)], 10))
		}
	}
	return out
}
