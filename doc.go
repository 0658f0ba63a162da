// Package crucible finds least heat-loss routes for crucibles pushed across
// a city block map, where every move is limited by how long the crucible has
// already been travelling in a straight line.
//
// 🚀 What is crucible?
//
//	A small, dependency-light toolkit that brings together:
//		• A digit grid with parsing and bounds-checked weights
//		• Dijkstra over (cell, run) states with pluggable movement policies
//		• Two stock policies: bounded runs (max 3) and minimum commitment (4..10)
//		• Route reconstruction and box-drawing overlays
//		• A concurrent multi-variant solver with slog, OpenTelemetry metrics & spans
//
// Under the hood, everything is organized under these subpackages:
//
//	grid/          Coordinate, Direction, Grid, Parse
//	dijkstra/      Policy, State, Search, ShortestCost and search budgets
//	render/        route overlay and summaries
//	observability/ slog helpers, OTel metrics and tracing, no-op fallbacks
//	config/        YAML/JSON settings and variant definitions
//	solver/        runs several variants over one grid concurrently
//	cmd/crucible/  the batch command: crucible [options] GRID_FILE...
//
// Quick start:
//
//	g, _ := grid.ParseString("2413\n3215\n")
//	p := dijkstra.Crucible()
//	cost, err := dijkstra.ShortestCost(g, dijkstra.Start(g.Origin()),
//		dijkstra.Arrive(p, g.Corner()), p)
package crucible
