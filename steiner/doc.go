// Package steiner implements a heuristic solver for the Directed Steiner
// Tree problem: given a directed graph with non-negative integer arc costs,
// a root vertex, and a set of terminal vertices, it produces a feasible
// arborescence rooted at the root that spans every terminal, attempting to
// minimize total arc cost.
//
// The solver is built from two tightly coupled algorithms:
//
//   - FLAC grows a simulated flow from the terminals backward toward the
//     root and returns a low-density partial arborescence: a tree reaching
//     some terminals with a small cost-per-terminal ratio.
//   - G_F (Solve) repeatedly invokes FLAC, commits its returned tree into a
//     cumulative solution, zeroes the committed arcs' costs so later FLAC
//     runs are biased to reuse them, removes the newly reached terminals,
//     and iterates until every terminal is covered.
//
// Graph storage is layered on this module's core.Graph; this package treats
// the graph as an external collaborator reached only through the Instance
// interface.
package steiner
