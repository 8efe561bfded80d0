package steiner

import (
	"github.com/sirupsen/logrus"

	"github.com/wsgan001/DSTAlgoEvaluation/core"
)

// Result is the outcome of a Solve call (spec §6/§7): either a feasible
// arborescence and its cost, or the Infeasible sentinel (Feasible==false,
// no arcs, no cost — never an error, per spec §7).
type Result struct {
	Feasible     bool
	Arborescence []*core.Edge
	TotalCost    int64
}

// Solver runs the G_F greedy outer loop (spec §4.A) around FLAC. The zero
// value is ready to use; Solve constructs one from Option values.
type Solver struct {
	validate             bool
	reachabilityPrecheck bool
	logger               *logrus.Logger
}

// Solve runs G_F to completion on inst: repeatedly invoking FLAC, merging
// its returned tree into the cumulative solution, zeroing the committed
// arcs' mutable cost, retiring the terminals FLAC reached, until every
// terminal is covered or a FLAC run cannot reach the root.
func Solve(inst Instance, opts ...Option) (Result, error) {
	s := &Solver{}
	for _, opt := range opts {
		opt(s)
	}

	return s.solve(inst)
}

func (s *Solver) solve(inst Instance) (Result, error) {
	root := inst.Root()

	outstanding := make(map[string]struct{})
	for t := range inst.Terminals() {
		if t != root {
			outstanding[t] = struct{}{}
		}
	}

	cost := newCostMap(inst)
	idx := newEnteringIndex(inst, cost)

	var solutionArcs []*core.Edge
	committed := make(map[string]bool) // edge ID -> already in solutionArcs

	for len(outstanding) > 0 {
		if s.reachabilityPrecheck {
			if gaps := unreachableTerminals(inst, outstanding); len(gaps) > 0 {
				s.logInfeasible(gaps)

				return Result{}, nil
			}
		}

		fs := newFlacState(inst, outstanding, idx, cost)
		tree, reached, ok := fs.run()
		if !ok {
			s.logInfeasible(outstanding)

			return Result{}, nil
		}

		for _, a := range tree {
			if !committed[a.ID] {
				committed[a.ID] = true
				solutionArcs = append(solutionArcs, a)
			}
			// Zeroing sequence required by spec §4.B: remove under the old
			// cost, mutate, reinsert under the new one.
			idx.remove(a)
			cost.zero(a)
			idx.insert(a)
		}
		for t := range reached {
			delete(outstanding, t)
		}

		s.logCommit(tree, len(reached), len(outstanding))
	}

	var total int64
	for _, a := range solutionArcs {
		total += inst.Cost(a)
	}

	result := Result{Feasible: true, Arborescence: solutionArcs, TotalCost: total}

	if s.validate {
		if err := validateArborescence(inst, result); err != nil {
			return Result{}, err
		}
	}

	return result, nil
}

func (s *Solver) logCommit(tree []*core.Edge, reached, outstanding int) {
	if s.logger == nil {
		return
	}
	var treeCost int64
	for _, a := range tree {
		treeCost += a.Weight
	}
	density := float64(0)
	if reached > 0 {
		density = float64(treeCost) / float64(reached)
	}
	s.logger.WithFields(logrus.Fields{
		"tree_arcs":           len(tree),
		"tree_density":        density,
		"terminals_remaining": outstanding,
	}).Info("FLAC run committed a tree")
}

func (s *Solver) logInfeasible(gaps map[string]struct{}) {
	if s.logger == nil {
		return
	}
	s.logger.WithField("unreached_terminals", len(gaps)).Warn("G_F cannot reach all terminals: infeasible")
}
