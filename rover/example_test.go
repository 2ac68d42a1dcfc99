package rover_test

import (
	"fmt"

	"github.com/katalvlaran/pathseek/bfs"
	"github.com/katalvlaran/pathseek/rover"
)

func Example() {
	res, err := bfs.Search(rover.Start(), rover.ToolActions(), rover.MissionComplete)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Actions())
	fmt.Println(res.State)
	// Output:
	// [pick_up_tool move_to_sample use_tool move_to_battery charge]
	// battery [extracted holding-tool charged]
}
