package steiner

import "errors"

// Sentinel errors for package steiner. They are never stringified into the
// sentinel itself; callers wrap them with fmt.Errorf("%w: ...", Err...) for
// context and match them with errors.Is.
var (
	// ErrNegativeCost indicates an arc with a negative cost was supplied to
	// NewGraphInstance. Arc costs must be non-negative per the data model.
	ErrNegativeCost = errors.New("steiner: negative arc cost")

	// ErrUnknownVertex indicates an arc or terminal referenced a vertex that
	// was never added to the instance.
	ErrUnknownVertex = errors.New("steiner: arc references unknown vertex")

	// ErrDuplicateArcCost indicates two parallel arcs between the same pair
	// of vertices were supplied with differing costs. core.Graph already
	// rejects a second parallel arc outright unless multi-edges are enabled;
	// this sentinel covers instance construction paths that pre-validate the
	// raw arc list before it ever reaches core.Graph.
	ErrDuplicateArcCost = errors.New("steiner: duplicate arc with differing cost")

	// ErrArborescenceInvalid indicates a solved result failed the
	// acyclicity/in-degree/reachability check performed by WithValidation().
	// A correct FLAC/G_F run must never produce this; seeing it means the
	// instance or the solver itself is broken.
	ErrArborescenceInvalid = errors.New("steiner: returned arborescence failed validation")
)
