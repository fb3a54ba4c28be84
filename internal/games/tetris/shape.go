package tetris

// Kind identifies one of the seven tetromino shapes.
type Kind int

const (
	KindSquare Kind = iota
	KindLong
	KindT
	KindZ
	KindS
	KindL
	KindJ
)

// KindCount is the number of distinct shapes.
const KindCount = 7

// String returns the shape name.
func (k Kind) String() string {
	switch k {
	case KindSquare:
		return "Square"
	case KindLong:
		return "Long"
	case KindT:
		return "T"
	case KindZ:
		return "Z"
	case KindS:
		return "S"
	case KindL:
		return "L"
	case KindJ:
		return "J"
	default:
		return "Unknown"
	}
}

// Rotation is a quarter-turn orientation, clockwise from Rot0.
type Rotation int

const (
	Rot0 Rotation = iota
	Rot90
	Rot180
	Rot270
)

// RotationCount is the number of orientations per shape.
const RotationCount = 4

// Next returns the orientation one quarter-turn clockwise.
func (r Rotation) Next() Rotation {
	return (r + 1) % RotationCount
}

// Offset is a cell position relative to a piece pivot.
type Offset struct {
	DX, DY int
}

// Point is an absolute (column, row) board position.
type Point struct {
	X, Y int
}

// shapes holds the four cell offsets of every shape in every orientation.
// Each orientation is the previous one turned clockwise about the pivot
// ((dx, dy) -> (-dy, dx), rows grow downward), except Square which never changes.
var shapes = [KindCount][RotationCount][4]Offset{
	KindSquare: {
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	},
	KindLong: {
		{{-1, 0}, {0, 0}, {1, 0}, {2, 0}},
		{{0, -1}, {0, 0}, {0, 1}, {0, 2}},
		{{1, 0}, {0, 0}, {-1, 0}, {-2, 0}},
		{{0, 1}, {0, 0}, {0, -1}, {0, -2}},
	},
	KindT: {
		{{0, 0}, {0, -1}, {-1, 0}, {1, 0}},
		{{0, 0}, {1, 0}, {0, -1}, {0, 1}},
		{{0, 0}, {0, 1}, {1, 0}, {-1, 0}},
		{{0, 0}, {-1, 0}, {0, 1}, {0, -1}},
	},
	KindZ: {
		{{0, 0}, {1, 0}, {0, -1}, {-1, -1}},
		{{0, 0}, {0, 1}, {1, 0}, {1, -1}},
		{{0, 0}, {-1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {0, -1}, {-1, 0}, {-1, 1}},
	},
	KindS: {
		{{0, 0}, {1, 0}, {0, 1}, {-1, 1}},
		{{0, 0}, {0, 1}, {-1, 0}, {-1, -1}},
		{{0, 0}, {-1, 0}, {0, -1}, {1, -1}},
		{{0, 0}, {0, -1}, {1, 0}, {1, 1}},
	},
	KindL: {
		{{0, -1}, {0, 0}, {0, 1}, {1, 1}},
		{{1, 0}, {0, 0}, {-1, 0}, {-1, 1}},
		{{0, 1}, {0, 0}, {0, -1}, {-1, -1}},
		{{-1, 0}, {0, 0}, {1, 0}, {1, -1}},
	},
	KindJ: {
		{{0, -1}, {0, 0}, {0, 1}, {-1, 1}},
		{{1, 0}, {0, 0}, {-1, 0}, {-1, -1}},
		{{0, 1}, {0, 0}, {0, -1}, {1, -1}},
		{{-1, 0}, {0, 0}, {1, 0}, {1, 1}},
	},
}

// Offsets returns the four cell offsets of a shape in an orientation.
func Offsets(k Kind, r Rotation) [4]Offset {
	return shapes[k][r]
}

// Pose is the active piece: its shape, orientation and pivot. The pivot row
// may be negative while the piece is entering from above the board.
type Pose struct {
	Kind     Kind
	Rotation Rotation
	X, Y     int
}

// Cells returns the absolute board positions the pose covers.
func (p Pose) Cells() [4]Point {
	var pts [4]Point
	for i, o := range shapes[p.Kind][p.Rotation] {
		pts[i] = Point{X: p.X + o.DX, Y: p.Y + o.DY}
	}
	return pts
}

// Moved returns the pose shifted by (dx, dy).
func (p Pose) Moved(dx, dy int) Pose {
	p.X += dx
	p.Y += dy
	return p
}

// Rotated returns the pose turned one quarter clockwise.
func (p Pose) Rotated() Pose {
	p.Rotation = p.Rotation.Next()
	return p
}
