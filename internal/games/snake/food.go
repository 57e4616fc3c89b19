package snake

import (
	"math/rand"

	"github.com/vovakirdan/term-snake/internal/core"
	"github.com/vovakirdan/term-snake/internal/render"
)

// respawnAttempts bounds how often Respawn retries a position under the snake.
const respawnAttempts = 4

// Food is the item the snake eats.
type Food struct {
	Position core.Point
}

// Respawn moves the food to a random position, retrying a few times to avoid
// the snake's body. On a crowded field it may land on the body.
func (f *Food) Respawn(w World, rng *rand.Rand, s *Snake) {
	for range respawnAttempts {
		f.Position = w.RandomPosition(rng)
		if !s.Covers(f.Position) {
			return
		}
	}
}

// Instructions draws the food.
func (f Food) Instructions() []render.Instruction {
	return []render.Instruction{render.Square{
		Origin: f.Position,
		Size:   1,
		Style:  render.Style{Fg: core.ColorRed},
	}}
}
