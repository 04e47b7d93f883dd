// Package geometry computes seat coordinates around tables and in rows for
// the floor-plan renderer. All functions are pure.
package geometry

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Point is a 2D coordinate in renderer units. Y grows downwards.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Shape is the outline of a table.
type Shape string

const (
	ShapeRound Shape = "round"
	ShapeRect  Shape = "rect"
)

// ErrUnknownShape is returned by ParseShape for unsupported values.
var ErrUnknownShape = errors.New("unknown table shape")

// ParseShape normalises s into a Shape. "rectangle" is accepted as an alias
// of rect.
func ParseShape(s string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "round", "circle":
		return ShapeRound, nil
	case "rect", "rectangle":
		return ShapeRect, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownShape, s)
}

const (
	// RectSeatOffset is the distance of rectangular-table seats from the
	// long edges.
	RectSeatOffset = 20

	// TheaterSpacingX and TheaterSpacingY separate seats and rows in a
	// theater layout.
	TheaterSpacingX = 50
	TheaterSpacingY = 60

	// StandardTableSize is the width of a rendered table; round tables use
	// it as their diameter.
	StandardTableSize = 120
	// StandardRectHeight is the depth of a rendered rectangular table.
	StandardRectHeight = 60
	// standardRoundClearance is added to the round table's radius so seats
	// sit outside its edge.
	standardRoundClearance = 25
)

// RoundTableSeats places seatCount seats evenly on a circle of the given
// radius, starting at the top and proceeding clockwise.
func RoundTableSeats(center Point, radius float64, seatCount int) []Point {
	if seatCount <= 0 {
		return []Point{}
	}
	seats := make([]Point, 0, seatCount)
	step := 2 * math.Pi / float64(seatCount)
	for i := 0; i < seatCount; i++ {
		angle := float64(i)*step - math.Pi/2
		seats = append(seats, Point{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y + radius*math.Sin(angle),
		})
	}
	return seats
}

// RectTableSeats splits seatCount seats between the top and bottom edges of
// a width×height table whose top-left corner is (x, y). The top edge gets
// the larger half; seats are evenly spaced along the width.
func RectTableSeats(x, y, width, height float64, seatCount int) []Point {
	if seatCount <= 0 {
		return []Point{}
	}
	perSide := (seatCount + 1) / 2
	spacing := width / float64(perSide+1)

	seats := make([]Point, 0, seatCount)
	for i := 1; i <= perSide && len(seats) < seatCount; i++ {
		seats = append(seats, Point{X: x + float64(i)*spacing, Y: y - RectSeatOffset})
	}
	for i := 1; i <= perSide && len(seats) < seatCount; i++ {
		seats = append(seats, Point{X: x + float64(i)*spacing, Y: y + height + RectSeatOffset})
	}
	return seats
}

// TheaterSeats lays out rowCount rows of seatsPerRow seats starting at
// start, in row-major order. A block whose seat count does not fit in an
// int has no seats.
func TheaterSeats(start Point, seatsPerRow, rowCount int) []Point {
	if seatsPerRow <= 0 || rowCount <= 0 || seatsPerRow > math.MaxInt/rowCount {
		return []Point{}
	}
	seats := make([]Point, 0, seatsPerRow*rowCount)
	for row := 0; row < rowCount; row++ {
		for col := 0; col < seatsPerRow; col++ {
			seats = append(seats, Point{
				X: start.X + float64(col*TheaterSpacingX),
				Y: start.Y + float64(row*TheaterSpacingY),
			})
		}
	}
	return seats
}

// TableSeats returns the seats of a standard rendered table of the given
// shape and capacity.
func TableSeats(shape Shape, capacity int) ([]Point, error) {
	switch shape {
	case ShapeRound:
		half := float64(StandardTableSize) / 2
		return RoundTableSeats(Point{X: half, Y: half}, half+standardRoundClearance, capacity), nil
	case ShapeRect:
		return RectTableSeats(0, 0, StandardTableSize, StandardRectHeight, capacity), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownShape, shape)
}
