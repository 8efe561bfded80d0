// Package dstalgoeval is a toolkit for building and solving Directed
// Steiner Tree instances: finding a minimum-cost arborescence, rooted at a
// given vertex, that spans a chosen set of terminals in a directed graph
// with non-negative arc costs.
//
// What's inside:
//
//	A thread-safe graph core plus the algorithms layered on it:
//		• Core primitives: create vertices & edges, mutate safely under locks
//		• Traversals: BFS, DFS
//		• Shortest paths: Dijkstra
//		• Minimum spanning trees: Prim, Kruskal
//		• Directed Steiner Tree: the FLAC/G_F heuristic solver
//		• Baselines: shortest-path-tree and MST metric-closure comparisons
//
// Under the hood, everything is organized under focused subpackages:
//
//	core/         — fundamental Graph, Vertex, Edge types & thread-safe primitives
//	bfs/          — breadth-first traversal
//	dfs/          — depth-first traversal & cycle detection
//	dijkstra/     — single-source shortest paths
//	prim_kruskal/ — minimum spanning trees
//	steiner/      — the Directed Steiner Tree solver (FLAC + G_F)
//	steinerbench/ — classical comparison baselines for the solver
//	cmd/dstsolve/ — a CLI that loads a JSON instance and runs the solver
//
// Quick ASCII example, a directed Steiner instance with root A and
// terminals {C, D}:
//
//	    A──►B──►C
//	        └──►D
//
// A minimum-cost arborescence here reuses the shared prefix A→B rather
// than two independent root-to-terminal paths.
//
//	go get github.com/wsgan001/DSTAlgoEvaluation
package dstalgoeval
