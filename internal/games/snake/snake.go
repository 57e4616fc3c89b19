package snake

import (
	"time"

	"github.com/vovakirdan/term-snake/internal/config"
	"github.com/vovakirdan/term-snake/internal/core"
	"github.com/vovakirdan/term-snake/internal/render"
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Velocity returns the per-move displacement. Horizontal moves are two
// columns because each segment is a 2x1 square.
func (d Direction) Velocity() core.Vector {
	switch d {
	case DirUp:
		return core.Vector{X: 0, Y: -1}
	case DirDown:
		return core.Vector{X: 0, Y: 1}
	case DirLeft:
		return core.Vector{X: -2, Y: 0}
	default:
		return core.Vector{X: 2, Y: 0}
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

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
		return "unknown"
	}
}

// flashColors is the cycle used by the flash style.
var flashColors = []core.Color{core.ColorRed, core.ColorGreen, core.ColorYellow, core.ColorBlue}

const flashPeriod = time.Second

// Snake is the player's body. The head is at index 0.
type Snake struct {
	body      []core.Point
	size      int       // Target length; the body grows one segment per move until reached
	direction Direction // Direction of the last move
	nextDir   Direction // Buffered direction for next move
	speed     float64   // Moves per second
	progress  float64   // Accumulated fraction of a move

	style      config.SnakeStyle
	colorIndex int
	colorTime  time.Duration
}

// NewSnake creates a snake of the given length heading right, with its tail
// at tail and each further segment two columns to the right.
func NewSnake(tail core.Point, size int, speed float64, style config.SnakeStyle) *Snake {
	size = max(size, 1)
	s := &Snake{
		body:      make([]core.Point, size),
		size:      size,
		direction: DirRight,
		nextDir:   DirRight,
		speed:     speed,
		style:     style,
	}
	for i := range s.body {
		s.body[i] = tail.Add(core.Pt((size-1-i)*2, 0))
	}
	return s
}

// Head returns the head position.
func (s *Snake) Head() core.Point {
	return s.body[0]
}

// Body returns the segments, head first. The slice must not be modified.
func (s *Snake) Body() []core.Point {
	return s.body
}

// Len returns the current number of segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Direction returns the direction of the last move.
func (s *Snake) Direction() Direction {
	return s.direction
}

// Speed returns the moves per second.
func (s *Snake) Speed() float64 {
	return s.speed
}

// SetSpeed changes the moves per second.
func (s *Snake) SetSpeed(speed float64) {
	s.speed = speed
}

// Turn buffers a direction change for the next move. Reversing onto the
// neck is rejected.
func (s *Snake) Turn(d Direction) bool {
	if d == s.direction.Opposite() {
		return false
	}
	s.nextDir = d
	return true
}

// Grow extends the target length by n segments.
func (s *Snake) Grow(n int) {
	s.size += n
}

// Advance accumulates elapsed time and returns how many moves are due.
// It also steps the flash color cycle.
func (s *Snake) Advance(elapsed time.Duration) int {
	if s.style == config.StyleFlash {
		s.colorTime += elapsed
		for s.colorTime >= flashPeriod {
			s.colorTime -= flashPeriod
			s.colorIndex = (s.colorIndex + 1) % len(flashColors)
		}
	}

	s.progress += s.speed * elapsed.Seconds()
	moves := int(s.progress)
	s.progress -= float64(moves)
	return moves
}

// NextHead returns where the head goes on the next move.
func (s *Snake) NextHead() core.Point {
	return s.Head().Translate(s.nextDir.Velocity())
}

// growing reports whether the next move keeps the tail in place.
func (s *Snake) growing() bool {
	return len(s.body) < s.size
}

// Occupies reports whether p will still be covered by the body after the
// next move. The tail cell is free unless the snake is growing.
func (s *Snake) Occupies(p core.Point) bool {
	n := len(s.body)
	if !s.growing() {
		n--
	}
	for _, seg := range s.body[:n] {
		if seg == p {
			return true
		}
	}
	return false
}

// Covers reports whether any segment is at p.
func (s *Snake) Covers(p core.Point) bool {
	for _, seg := range s.body {
		if seg == p {
			return true
		}
	}
	return false
}

// Move applies the buffered direction and moves one step.
func (s *Snake) Move() core.Point {
	s.direction = s.nextDir
	head := s.NextHead()

	if s.growing() {
		s.body = append(s.body, core.Point{})
	}
	copy(s.body[1:], s.body[:len(s.body)-1])
	s.body[0] = head
	return head
}

// Color returns the current body color.
func (s *Snake) Color() core.Color {
	if s.style == config.StyleFlash {
		return flashColors[s.colorIndex]
	}
	return core.ColorGreen
}

// Instructions draws every segment as a 2x1 square.
func (s *Snake) Instructions() []render.Instruction {
	style := render.Style{Fg: s.Color()}
	out := make([]render.Instruction, 0, len(s.body))
	for _, seg := range s.body {
		out = append(out, render.Square{Origin: seg, Size: 1, Style: style})
	}
	return out
}
