// Package derive keeps auto-filled form fields in step with the inputs they
// are computed from. Rules subscribe to source fields; after each edit the
// engine runs the subscribed rules synchronously, in registration order, and
// follows the cascade when a rule's output feeds another rule.
package derive

import (
	"context"

	"github.com/de-tools/destiny-report/pkg/models/domain"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Rule recomputes Outputs from the current form whenever one of Sources changes.
type Rule struct {
	Name    string
	Sources []domain.Field
	// Outputs are the derived fields a practitioner may override by hand.
	Outputs []domain.Field
	Apply   func(w *Writer)
}

// State is the per-session data the engine reads and mutates.
type State struct {
	Form *domain.ReportFormData
	// Overrides marks derived fields edited by hand; rules leave them alone.
	Overrides map[domain.Field]bool
	// LastSource remembers the most recent dasha source typed for each planet.
	LastSource map[domain.Planet]string
}

func NewState() *State {
	return &State{
		Form:       &domain.ReportFormData{},
		Overrides:  make(map[domain.Field]bool),
		LastSource: make(map[domain.Planet]string),
	}
}

type Engine interface {
	// Notify runs every rule subscribed to the changed fields and returns
	// the fields the rules rewrote.
	Notify(ctx context.Context, st *State, changed ...domain.Field) []domain.Field
	// Recompute reruns the rules that produce field, ignoring which sources changed.
	Recompute(ctx context.Context, st *State, field domain.Field) []domain.Field
	// IsDerived reports whether field is the output of any rule.
	IsDerived(field domain.Field) bool
}

type engine struct {
	rules   []Rule
	outputs map[domain.Field]bool
	newID   func() string
}

type Option func(*engine)

// WithIDGenerator replaces the uuid generator used for new list records.
func WithIDGenerator(gen func() string) Option {
	return func(e *engine) {
		e.newID = gen
	}
}

func NewEngine(rules []Rule, opts ...Option) Engine {
	e := &engine{
		rules:   rules,
		outputs: make(map[domain.Field]bool),
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	for _, r := range rules {
		for _, out := range r.Outputs {
			e.outputs[out] = true
		}
	}
	return e
}

// NewDefaultEngine wires every built-in rule.
func NewDefaultEngine(opts ...Option) Engine {
	return NewEngine(DefaultRules(), opts...)
}

func (e *engine) IsDerived(field domain.Field) bool {
	return e.outputs[field]
}

func (e *engine) Notify(ctx context.Context, st *State, changed ...domain.Field) []domain.Field {
	return e.run(ctx, st, nil, changed)
}

func (e *engine) Recompute(ctx context.Context, st *State, field domain.Field) []domain.Field {
	forced := make(map[int]bool)
	for i, r := range e.rules {
		for _, out := range r.Outputs {
			if out == field {
				forced[i] = true
			}
		}
	}
	return e.run(ctx, st, forced, nil)
}

// run executes rules until no unrun rule is forced or subscribed to the
// pending change set. Each rule runs at most once per call and rules are
// picked in registration order, so a producer registered before its
// consumers is settled before they read its output.
func (e *engine) run(
	ctx context.Context,
	st *State,
	forced map[int]bool,
	changed []domain.Field,
) []domain.Field {
	logger := zerolog.Ctx(ctx)

	pending := make(map[domain.Field]bool, len(changed))
	for _, f := range changed {
		pending[f] = true
	}

	var written []domain.Field
	ran := make([]bool, len(e.rules))

	for {
		next := -1
		for i, r := range e.rules {
			if !ran[i] && (forced[i] || subscribes(r.Sources, pending)) {
				next = i
				break
			}
		}
		if next < 0 {
			break
		}
		ran[next] = true

		w := &Writer{state: st, newID: e.newID, pending: pending}
		e.rules[next].Apply(w)

		logger.Debug().
			Str("rule", e.rules[next].Name).
			Int("changed", len(w.changed)).
			Msg("rule evaluated")

		for _, f := range w.changed {
			pending[f] = true
			written = append(written, f)
		}
	}

	return written
}

func subscribes(fields []domain.Field, set map[domain.Field]bool) bool {
	for _, f := range fields {
		if set[f] {
			return true
		}
	}
	return false
}
