package t2048

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists the four valid directions in declaration order.
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// Valid reports whether d is one of the four canonical directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "invalid"
	}
}
