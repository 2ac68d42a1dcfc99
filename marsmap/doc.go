// Package marsmap loads grid maps in the "node: neighbor neighbor ..." text
// format into a graph.Graph and provides coordinate heuristics for A*.
//
// Each non-blank line names a vertex followed by a colon and its
// space-separated neighbors. Every listed neighbor contributes one
// undirected edge of weight 1; a vertex with no neighbors may be declared
// as "node:". Vertex IDs are "x,y" integer pairs.
//
//	1,1: 1,2 2,1
//	1,2: 1,1 2,2
//
// StraightLine is admissible on any map whose edges join cells at most one
// unit apart. Manhattan is admissible only on 4-connected grids.
package marsmap
