package steiner

import "github.com/sirupsen/logrus"

// Option configures a Solver, in the functional-options house style used
// throughout this module (bfs.Option, dfs.Option, prim_kruskal.Option).
type Option func(*Solver)

// WithValidation enables a post-solve acyclicity/in-degree/reachability
// check (component J) of any Feasible result. It exists for defensive use
// against instances that might provoke a latent solver bug; a correct
// FLAC/G_F run never fails it.
func WithValidation() Option {
	return func(s *Solver) { s.validate = true }
}

// WithReachabilityPrecheck enables a one-shot bfs.BFS reachability check
// (component K) before the first FLAC invocation and after every committed
// tree, restricted to the still-outstanding terminals. It is a pure
// performance optimization: without it, an unreachable terminal is still
// correctly reported Infeasible once its FLAC run's schedule empties.
func WithReachabilityPrecheck() Option {
	return func(s *Solver) { s.reachabilityPrecheck = true }
}

// WithLogger installs l as the Solver's structured logger. The default
// Solver logs nothing.
func WithLogger(l *logrus.Logger) Option {
	return func(s *Solver) { s.logger = l }
}
