package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/pathseek/bfs"
	"github.com/katalvlaran/pathseek/space"
)

// cell is a position on a 3×3 board.
type cell struct{ x, y int }

func (c cell) Key() string { return fmt.Sprintf("%d,%d", c.x, c.y) }

// ExampleSearch_grid finds the fewest-move route across a 3×3 board using
// two actions, "right" and "down", that are no-ops at the board edge.
func ExampleSearch_grid() {
	right := space.NewAction("right", func(c cell) cell {
		if c.x == 2 {
			return c
		}
		return cell{c.x + 1, c.y}
	})
	down := space.NewAction("down", func(c cell) cell {
		if c.y == 2 {
			return c
		}
		return cell{c.x, c.y + 1}
	})

	res, err := bfs.Search(cell{0, 0}, []space.Action[cell]{right, down},
		func(c cell) bool { return c == cell{2, 2} })
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(res.Actions(), res.Depth, res.Expanded)
	// Output:
	// [right right down down] 4 8
}
