// Package steinerbench implements classical comparison baselines for the
// Directed Steiner Tree solver in package steiner: a shortest-path-tree
// construction and an MST-based (metric-closure) construction. Neither
// baseline is part of the solver's own decisions — they exist purely to
// quantify how much density FLAC/G_F buys over naive alternatives.
package steinerbench
