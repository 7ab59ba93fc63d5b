package lsystem

import (
	"iter"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/lvfractal/geom"
)

// Turtle is a forward-kinematics simulator for Commands. Headings are in
// degrees, 0 along +X, counter-clockwise positive; TurnRight decreases the
// heading. Moves with the pen down are recorded as strokes; lifting the pen
// closes the current stroke.
type Turtle struct {
	pos     geom.Point2D
	heading float64
	penDown bool
	turned  float64

	strokes []geom.PolyLine
	current geom.PolyLine
}

// NewTurtle places a turtle at start facing heading degrees, pen down.
func NewTurtle(start geom.Point2D, heading float64) *Turtle {
	return &Turtle{pos: start, heading: heading, penDown: true}
}

// Position returns the current location.
func (t *Turtle) Position() geom.Point2D { return t.pos }

// Heading returns the current heading in [0, 360).
func (t *Turtle) Heading() float64 {
	h := math.Mod(t.heading, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// NetTurn returns the signed sum of all turns executed so far
// (left positive), not reduced modulo 360.
func (t *Turtle) NetTurn() float64 { return t.turned }

// Exec applies one command.
func (t *Turtle) Exec(c Command) {
	switch c.Op {
	case OpMoveForward:
		sin, cos := math.Sincos(t.heading * math.Pi / 180)
		next := r2.Add(t.pos, r2.Scale(c.Arg, r2.Vec{X: cos, Y: sin}))
		if t.penDown {
			if len(t.current) == 0 {
				t.current = append(t.current, t.pos)
			}
			t.current = append(t.current, next)
		}
		t.pos = next
	case OpPenUp:
		t.flush()
		t.penDown = false
	case OpPenDown:
		t.penDown = true
	case OpTurnRight:
		t.heading = math.Mod(t.heading-c.Arg, 360)
		t.turned -= c.Arg
	case OpTurnLeft:
		t.heading = math.Mod(t.heading+c.Arg, 360)
		t.turned += c.Arg
	}
}

// Run executes every command of seq.
func (t *Turtle) Run(seq iter.Seq[Command]) {
	for c := range seq {
		t.Exec(c)
	}
}

// Strokes returns the drawn polylines, closing any open stroke.
func (t *Turtle) Strokes() []geom.PolyLine {
	t.flush()
	return t.strokes
}

func (t *Turtle) flush() {
	if len(t.current) >= 2 {
		t.strokes = append(t.strokes, t.current)
	}
	t.current = nil
}

// NetTurn sums the turns of cmds in degrees, left positive.
func NetTurn(cmds []Command) float64 {
	var total float64
	for _, c := range cmds {
		switch c.Op {
		case OpTurnLeft:
			total += c.Arg
		case OpTurnRight:
			total -= c.Arg
		}
	}
	return total
}
