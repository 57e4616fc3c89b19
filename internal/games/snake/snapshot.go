package snake

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Ticks    int
	Score    int
	SnakeLen int
	HeadX    int
	HeadY    int
	Dir      Direction
	FoodX    int
	FoodY    int
	Speed    float64
	State    State
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	head := g.snake.Head()
	return Snapshot{
		Ticks:    g.ticks,
		Score:    g.score.Value(),
		SnakeLen: g.snake.Len(),
		HeadX:    head.X,
		HeadY:    head.Y,
		Dir:      g.snake.Direction(),
		FoodX:    g.food.Position.X,
		FoodY:    g.food.Position.Y,
		Speed:    g.snake.Speed(),
		State:    g.state,
	}
}
