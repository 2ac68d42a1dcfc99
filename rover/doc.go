// Package rover models a sample-return mission as a state space for the
// uninformed searches in bfs and dfs.
//
// A rover moves between three sites (station, sample, battery). It must
// extract a rock sample, which in the full problem requires fetching a tool
// from the station first, then end up charged at the battery without the
// sample in hand.
//
// Two action sets are provided. BasicActions omits the tool, so the sample
// can never be extracted and MissionComplete is unreachable; the searches
// exhaust the six reachable states. ToolActions is the full problem.
//
// Decompose solves the mission as a chain of stages, each searched from the
// state the previous stage ended in.
package rover
