// Package telemetry instruments searches with OpenTelemetry.
//
// A Recorder owns the instruments. Each search gets a Run from
// Recorder.Start; Run.OnExpand plugs into the WithOnExpand option of bfs,
// dfs and astar, and Run.End records the outcome:
//
//	pathseek_searches_total            counter   {strategy, outcome}
//	pathseek_expansions_total          counter   successors pushed
//	pathseek_nodes_expanded_total      counter   states expanded
//	pathseek_search_duration_seconds   histogram
//
// plus one span per search named "search.<strategy>".
//
// Setup builds SDK providers for the CLI: either silent or exporting to a
// writer via the stdout exporters.
package telemetry
