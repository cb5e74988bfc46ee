package snake

import "fmt"

// ShareText is the message offered to players after a game.
func ShareText(score int) string {
	return fmt.Sprintf("I scored %d points in Snake! Can you beat my score?", score)
}
