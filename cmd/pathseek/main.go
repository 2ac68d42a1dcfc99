// Command pathseek runs the search strategies on the rover mission and on
// grid maps.
//
//	pathseek rover                     # BFS/DFS/DLS report, plain and decomposed
//	pathseek route --map MarsMap       # A* from 8,8 to 1,1
//	pathseek compare                   # all uninformed strategies in parallel
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "pathseek:", err)
		os.Exit(1)
	}
}
