package derive

import (
	"context"
	"fmt"
	"testing"

	"github.com/de-tools/destiny-report/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

type fixture struct {
	engine Engine
	state  *State
}

func newFixture() *fixture {
	return &fixture{
		engine: NewDefaultEngine(WithIDGenerator(sequentialIDs())),
		state:  NewState(),
	}
}

// set writes a scalar field the way the form manager does and notifies.
func (f *fixture) set(field domain.Field, value string) []domain.Field {
	*f.state.Form.Text(field) = value
	return f.engine.Notify(context.Background(), f.state, field)
}

func TestEngine_RunsSubscribedRulesInOrder(t *testing.T) {
	var calls []string
	rule := func(name string, sources ...domain.Field) Rule {
		return Rule{
			Name:    name,
			Sources: sources,
			Apply:   func(*Writer) { calls = append(calls, name) },
		}
	}

	e := NewEngine([]Rule{
		rule("a", domain.FieldName),
		rule("b", domain.FieldPlaceOfBirth),
		rule("c", domain.FieldName, domain.FieldPlaceOfBirth),
	})

	e.Notify(context.Background(), NewState(), domain.FieldPlaceOfBirth, domain.FieldName)
	assert.Equal(t, []string{"a", "b", "c"}, calls)

	calls = nil
	e.Notify(context.Background(), NewState(), domain.FieldDateOfBirth)
	assert.Empty(t, calls)
}

func TestEngine_CascadesOutputsToLaterRules(t *testing.T) {
	e := NewEngine([]Rule{
		{
			Name:    "upper",
			Sources: []domain.Field{domain.FieldName},
			Outputs: []domain.Field{domain.FieldVastuAnalysis},
			Apply: func(w *Writer) {
				w.Set(domain.FieldVastuAnalysis, "analysis for "+w.Get(domain.FieldName))
			},
		},
		{
			Name:    "lower",
			Sources: []domain.Field{domain.FieldVastuAnalysis},
			Outputs: []domain.Field{domain.FieldVastuRemedies},
			Apply: func(w *Writer) {
				w.Set(domain.FieldVastuRemedies, "remedies after "+w.Get(domain.FieldVastuAnalysis))
			},
		},
	})

	st := NewState()
	st.Form.Client.Name = "Asha"
	written := e.Notify(context.Background(), st, domain.FieldName)

	assert.Equal(t, []domain.Field{domain.FieldVastuAnalysis, domain.FieldVastuRemedies}, written)
	assert.Equal(t, "remedies after analysis for Asha", st.Form.VastuRemedies)
}

func TestEngine_SkipsOverriddenFields(t *testing.T) {
	f := newFixture()
	f.state.Overrides[domain.FieldGemstones] = true
	f.state.Form.Gemstones = "my own choice"

	f.set(domain.FieldGemstonePlanet, "Sun")
	assert.Equal(t, "my own choice", f.state.Form.Gemstones)

	delete(f.state.Overrides, domain.FieldGemstones)
	written := f.engine.Recompute(context.Background(), f.state, domain.FieldGemstones)
	assert.Equal(t, []domain.Field{domain.FieldGemstones}, written)
	assert.Equal(t, "Sun - Ruby (माणिक्य (Maanikya))", f.state.Form.Gemstones)
}

func TestEngine_IsDerived(t *testing.T) {
	e := NewDefaultEngine()

	assert.True(t, e.IsDerived(domain.FieldDonationsToDo))
	assert.True(t, e.IsDerived(domain.FieldColorObjectsToUse))
	assert.True(t, e.IsDerived(domain.FieldSaturnRelation))
	assert.False(t, e.IsDerived(domain.FieldName))
	assert.False(t, e.IsDerived(domain.FieldMahadashaSource))
}

func TestEngine_IdempotentOnUnchangedInputs(t *testing.T) {
	f := newFixture()
	f.set(domain.FieldMantraPlanet, "Moon")
	first := f.state.Form.Mantra
	require.NotEmpty(t, first)

	written := f.engine.Notify(context.Background(), f.state, domain.FieldMantraPlanet)
	assert.Empty(t, written)
	assert.Equal(t, first, f.state.Form.Mantra)
}
