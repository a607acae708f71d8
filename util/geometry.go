package util

type Dimension struct {
	Width  int32
	Height int32
}

func (d Dimension) IsEmpty() bool {
	return d.Width <= 0 || d.Height <= 0
}

func (d Dimension) Area() int64 {
	if d.IsEmpty() {
		return 0
	}
	return int64(d.Width) * int64(d.Height)
}

type Point struct {
	X int32
	Y int32
}

func NewPoint(y int32, x int32) *Point {
	return &Point{
		X: x,
		Y: y,
	}
}

// Box is a position plus a size. Boxes are half open: a box at X=1 with
// Width=2 covers columns 1 and 2.
type Box struct {
	Pos  Point
	Size Dimension
}

func NewBox(y int32, x int32, height int32, width int32) Box {
	return Box{
		Pos:  Point{X: x, Y: y},
		Size: Dimension{Width: width, Height: height},
	}
}

func (b Box) IsEmpty() bool {
	return b.Size.IsEmpty()
}

func (b Box) EndX() int32 {
	return b.Pos.X + b.Size.Width
}

func (b Box) EndY() int32 {
	return b.Pos.Y + b.Size.Height
}

// ContainedIn reports whether b lies fully inside a box at the origin with
// the given size.
func (b Box) ContainedIn(size Dimension) bool {
	return b.Pos.X >= 0 && b.Pos.Y >= 0 && b.EndX() <= size.Width && b.EndY() <= size.Height
}
