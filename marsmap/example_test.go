package marsmap_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/pathseek/astar"
	"github.com/katalvlaran/pathseek/marsmap"
)

func ExampleParse() {
	src := "1,1: 1,2\n1,2: 1,1 2,2\n2,2: 1,2\n"
	g, err := marsmap.Parse(strings.NewReader(src))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	goal := marsmap.Coord{X: 1, Y: 1}
	res, _ := astar.Search("2,2", astar.FromGraph(g), marsmap.StraightLine(goal), marsmap.Goal(goal))
	fmt.Println(res.IDs(), res.Cost)
	// Output: [2,2 1,2 1,1] 2
}
