package pipeline

import (
	"encoding/json"

	griderrors "github.com/mveltman/gridlock/pkg/errors"
	"github.com/mveltman/gridlock/pkg/grid"
	"github.com/mveltman/gridlock/pkg/grid/engine"
	"github.com/mveltman/gridlock/pkg/grid/gesture"
)

// Gesture is one recorded drag or resize: the item it targets and the
// pointer-move samples captured between pointer-down and pointer-up, in
// order.
type Gesture struct {
	ItemID  string             `json:"item_id"`
	Kind    string             `json:"kind"`
	Samples []gesture.Dragging `json:"samples"`
}

// Trace is a recorded gesture session. Replaying a trace against the layout
// it was captured on reproduces the session's final layout exactly.
type Trace struct {
	Gestures []Gesture `json:"gestures"`
}

// Steps returns the total number of pointer-move samples across all gestures.
func (t Trace) Steps() int {
	n := 0
	for _, g := range t.Gestures {
		n += len(g.Samples)
	}
	return n
}

// Validate checks the trace against the layout it will be replayed on: every
// gesture must have a known kind, samples, and target an item present in the
// layout. The resolvers fault on unknown item ids, so this is the boundary
// where bad traces are turned into errors instead.
func (t Trace) Validate(l grid.Layout) error {
	if len(t.Gestures) == 0 {
		return griderrors.New(griderrors.ErrCodeInvalidTrace, "trace has no gestures")
	}
	for i, g := range t.Gestures {
		if !gesture.ValidKinds[g.Kind] {
			return griderrors.New(griderrors.ErrCodeInvalidTrace,
				"gesture %d: unknown kind %q", i, g.Kind)
		}
		if len(g.Samples) == 0 {
			return griderrors.New(griderrors.ErrCodeInvalidTrace,
				"gesture %d: no samples", i)
		}
		if l.Find(g.ItemID) == nil {
			return griderrors.New(griderrors.ErrCodeItemNotFound,
				"gesture %d: item %q not in layout", i, g.ItemID)
		}
	}
	return nil
}

// MarshalTrace serializes a trace to JSON.
func MarshalTrace(t Trace) ([]byte, error) {
	data, err := json.Marshal(t)
	if err != nil {
		return nil, griderrors.Wrap(griderrors.ErrCodeInvalidTrace, err, "marshal trace")
	}
	return data, nil
}

// UnmarshalTrace deserializes a trace from JSON.
func UnmarshalTrace(data []byte) (Trace, error) {
	var t Trace
	if err := json.Unmarshal(data, &t); err != nil {
		return Trace{}, griderrors.Wrap(griderrors.ErrCodeInvalidTrace, err, "unmarshal trace")
	}
	return t, nil
}

// Replay applies a trace to the config's layout one sample at a time, exactly
// as a live session would: each sample becomes a resolver call, and each
// resolved layout feeds the next sample. The trace must have been validated
// against cfg.Layout first.
func Replay(eng engine.Engine, cfg grid.Config, t Trace) grid.Layout {
	for _, g := range t.Gestures {
		for _, d := range g.Samples {
			var res gesture.Result
			switch g.Kind {
			case gesture.KindResize:
				res = gesture.ResolveResize(eng, cfg, g.ItemID, d)
			default:
				res = gesture.ResolveDrag(eng, cfg, g.ItemID, d)
			}
			cfg.Layout = res.Layout
		}
	}
	return cfg.Layout
}
