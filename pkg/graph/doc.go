// Package graph provides the transit network graph that the optimizer reads
// from: nodes, directed edges, and the route occurrences that run along each
// edge.
//
// # Overview
//
// A [Graph] models a transit network as a directed multigraph. Each [Edge]
// carries an ordered bag of [RouteOccurrence] values describing which lines
// run along it and in which direction. Nodes carry a [NodeFront] per
// incident edge, mapping a line's position on that edge to a physical point
// — the information the optimizer's crossing predicate needs.
//
// # Handles, not pointers
//
// Nodes, edges, and routes live in owning arenas inside the Graph and are
// referenced by integer handles ([NodeHandle], [EdgeHandle], [RouteHandle])
// rather than pointers. Edges point at their endpoints by handle, and a
// route occurrence's direction is a handle too. This keeps the graph free of
// reference cycles and trivially copyable by value in tests.
//
// # Relative routes
//
// A route may be declared "relative to" another route via
// [Graph.AddRelativeRoute]. Relative routes are folded into their reference
// for the purposes of ordering (see package optgraph and package decoder);
// [Route.IsRelative] reports which routes those are.
package graph
