// Package form owns the mutable report form of one editing session. Every
// mutation goes through the manager so the derivation engine sees it.
package form

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/de-tools/destiny-report/pkg/models/domain"
	"github.com/de-tools/destiny-report/pkg/services/derive"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// readOnly fields are always derived and cannot be overridden by hand.
var readOnly = map[domain.Field]bool{
	domain.FieldGemstones:      true,
	domain.FieldMantra:         true,
	domain.FieldSaturnRelation: true,
	domain.FieldVenusRelation:  true,
}

var dateFields = map[domain.Field]bool{
	domain.FieldDateOfBirth:               true,
	domain.FieldPratyantardashaPeriodFrom: true,
	domain.FieldPratyantardashaPeriodTo:   true,
}

// Relation selects one of the two Bhrigunanda Nadi chains.
type Relation string

const (
	RelationSaturn Relation = "saturn"
	RelationVenus  Relation = "venus"
)

// Manager is not safe for concurrent use; callers serialise access.
type Manager interface {
	SetField(ctx context.Context, field domain.Field, value string) error
	Field(field domain.Field) (string, error)
	Overridden() []domain.Field
	Snapshot() *domain.ReportFormData
	Restore(ctx context.Context, form *domain.ReportFormData, overrides []domain.Field)
	Validate() error
	Reset(ctx context.Context)
	ReportTypes() []domain.ReportType

	AddHouseAspect(ctx context.Context, planet domain.Planet) (string, error)
	SetHouseAspectPlanet(ctx context.Context, aspectID string, planet domain.Planet) error
	RemoveHouseAspect(ctx context.Context, aspectID string) error
	AddHouseGroup(ctx context.Context, aspectID string, houses []int, degree int) (string, error)
	SetHouseGroup(ctx context.Context, aspectID, groupID string, houses []int, degree int) error
	RemoveHouseGroup(ctx context.Context, aspectID, groupID string) error

	AddPlanetAspect(ctx context.Context, planet domain.Planet) (string, error)
	SetPlanetAspectPlanet(ctx context.Context, aspectID string, planet domain.Planet) error
	RemovePlanetAspect(ctx context.Context, aspectID string) error
	AddPlanetGroup(ctx context.Context, aspectID string, planets []domain.Planet, degree int) (string, error)
	SetPlanetGroup(ctx context.Context, aspectID, groupID string, planets []domain.Planet, degree int) error
	RemovePlanetGroup(ctx context.Context, aspectID, groupID string) error

	AddDirectionSlot(ctx context.Context, removalID string) (string, error)
	RemoveDirectionSlot(ctx context.Context, removalID, slotID string) error
	SetRemovalDirection(ctx context.Context, removalID, slotID string, dir domain.Direction) error
	SetPlacementDirection(ctx context.Context, placementID string, dir domain.Direction) error

	AddRelationLink(ctx context.Context, rel Relation, code string, benefic bool) (string, error)
	SetRelationLink(ctx context.Context, rel Relation, linkID, code string, benefic bool) error
	RemoveRelationLink(ctx context.Context, rel Relation, linkID string) error

	AddHouseMap(ctx context.Context, label string, image *domain.Attachment) (string, error)
	RemoveHouseMap(ctx context.Context, mapID string) error
	SetRoomDirection(ctx context.Context, mapID, room string, dir domain.Direction) error

	SetKundli(ctx context.Context, kundli *domain.Attachment)
	ApplyExtracted(ctx context.Context, info domain.ClientInfo) []domain.Field
}

type manager struct {
	engine      derive.Engine
	state       *derive.State
	reportTypes []domain.ReportType
	newID       func() string
}

type Option func(*manager)

func WithIDGenerator(gen func() string) Option {
	return func(m *manager) {
		m.newID = gen
	}
}

// WithReportTypes narrows the formats a practitioner may pick. The first one
// is preselected on a fresh form.
func WithReportTypes(types []domain.ReportType) Option {
	return func(m *manager) {
		if len(types) > 0 {
			m.reportTypes = append([]domain.ReportType(nil), types...)
		}
	}
}

func NewManager(engine derive.Engine, opts ...Option) (Manager, error) {
	if engine == nil {
		return nil, fmt.Errorf("derivation engine is required")
	}
	m := &manager{
		engine:      engine,
		reportTypes: append([]domain.ReportType(nil), domain.ReportTypes...),
		newID:       uuid.NewString,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.state = m.freshState()
	return m, nil
}

func (m *manager) freshState() *derive.State {
	st := derive.NewState()
	st.Form.ReportType = m.reportTypes[0]
	return st
}

func (m *manager) ReportTypes() []domain.ReportType {
	return append([]domain.ReportType(nil), m.reportTypes...)
}

func (m *manager) SetField(ctx context.Context, field domain.Field, value string) error {
	kind, ok := field.Kind()
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	if readOnly[field] {
		return fmt.Errorf("%w: %s", ErrReadOnlyField, field)
	}
	if err := m.check(field, kind, value); err != nil {
		return err
	}

	logger := zerolog.Ctx(ctx)

	if kind == domain.KindFlag {
		b, _ := strconv.ParseBool(value)
		*m.state.Form.Flag(field) = b
		m.engine.Notify(ctx, m.state, field)
		return nil
	}

	p := m.state.Form.Text(field)
	if m.engine.IsDerived(field) {
		if value == "" {
			delete(m.state.Overrides, field)
			*p = ""
			written := m.engine.Recompute(ctx, m.state, field)
			logger.Debug().Str("field", field.String()).Int("written", len(written)).Msg("override released")
			return nil
		}
		m.state.Overrides[field] = true
	}

	*p = value
	written := m.engine.Notify(ctx, m.state, field)
	logger.Debug().Str("field", field.String()).Int("written", len(written)).Msg("field set")
	return nil
}

func (m *manager) check(field domain.Field, kind domain.FieldKind, value string) error {
	invalid := func(reason string) error {
		return fmt.Errorf("%w: %s %s", ErrInvalidValue, field, reason)
	}

	switch kind {
	case domain.KindPlanet:
		if value != "" && !domain.Planet(value).Valid() {
			return invalid(fmt.Sprintf("%q is not a planet", value))
		}
	case domain.KindDirection:
		if value != "" && !domain.Direction(value).Valid() {
			return invalid(fmt.Sprintf("%q is not a direction", value))
		}
	case domain.KindFlag:
		if _, err := strconv.ParseBool(value); value != "" && err != nil {
			return invalid(fmt.Sprintf("%q is not a boolean", value))
		}
	case domain.KindReportType:
		if value != "" && !m.supports(domain.ReportType(value)) {
			return fmt.Errorf("%w: %q", ErrUnsupportedFormat, value)
		}
	case domain.KindText:
		if value == "" {
			return nil
		}
		if dateFields[field] {
			if _, err := time.Parse(dateLayout, value); err != nil {
				return invalid("must be YYYY-MM-DD")
			}
		}
		if field == domain.FieldTimeOfBirth {
			if _, err := time.Parse(timeLayout, value); err != nil {
				return invalid("must be HH:MM")
			}
		}
	}
	return nil
}

func (m *manager) supports(rt domain.ReportType) bool {
	for _, t := range m.reportTypes {
		if t == rt {
			return true
		}
	}
	return false
}

func (m *manager) Field(field domain.Field) (string, error) {
	kind, ok := field.Kind()
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	if kind == domain.KindFlag {
		return strconv.FormatBool(*m.state.Form.Flag(field)), nil
	}
	return *m.state.Form.Text(field), nil
}

func (m *manager) Overridden() []domain.Field {
	fields := make([]domain.Field, 0, len(m.state.Overrides))
	for f, on := range m.state.Overrides {
		if on {
			fields = append(fields, f)
		}
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i] < fields[j] })
	return fields
}

func (m *manager) Snapshot() *domain.ReportFormData {
	return m.state.Form.Clone()
}

// Restore replaces the form with a saved copy. Source memory is rebuilt from
// the dasha slots so auto-carry keeps working on the restored form.
func (m *manager) Restore(ctx context.Context, form *domain.ReportFormData, overrides []domain.Field) {
	st := derive.NewState()
	st.Form = form.Clone()
	if st.Form.ReportType == "" {
		st.Form.ReportType = m.reportTypes[0]
	}
	for _, f := range overrides {
		if m.engine.IsDerived(f) {
			st.Overrides[f] = true
		}
	}
	for _, pair := range domain.DashaPairs {
		planet := *st.Form.Text(pair.Planet)
		source := *st.Form.Text(pair.Source)
		if planet != "" && source != "" {
			st.LastSource[domain.Planet(planet)] = source
		}
	}
	m.state = st

	zerolog.Ctx(ctx).Debug().Int("overrides", len(st.Overrides)).Msg("form restored")
}

// Validate checks required fields only; it runs when a preview is requested.
func (m *manager) Validate() error {
	missing := make(map[domain.Field]string)
	for _, f := range domain.RequiredFields {
		if strings.TrimSpace(*m.state.Form.Text(f)) == "" {
			missing[f] = requiredMessages[f]
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return &ValidationError{Fields: missing}
}

func (m *manager) Reset(ctx context.Context) {
	m.state = m.freshState()
	zerolog.Ctx(ctx).Debug().Msg("form reset")
}

func (m *manager) SetKundli(ctx context.Context, kundli *domain.Attachment) {
	m.state.Form.Kundli = kundli.Clone()
	m.engine.Notify(ctx, m.state, domain.FieldKundli)
}

// ApplyExtracted overwrites client identity with the non-empty values read
// from an uploaded chart and returns the fields it wrote. Values that do not
// parse are skipped.
func (m *manager) ApplyExtracted(ctx context.Context, info domain.ClientInfo) []domain.Field {
	logger := zerolog.Ctx(ctx)

	var applied []domain.Field
	for field, value := range map[domain.Field]string{
		domain.FieldName:         info.Name,
		domain.FieldDateOfBirth:  info.DateOfBirth,
		domain.FieldTimeOfBirth:  info.TimeOfBirth,
		domain.FieldPlaceOfBirth: info.PlaceOfBirth,
	} {
		if value == "" {
			continue
		}
		if err := m.SetField(ctx, field, value); err != nil {
			logger.Warn().Err(err).Str("field", field.String()).Msg("extracted value skipped")
			continue
		}
		applied = append(applied, field)
	}
	sort.Slice(applied, func(i, j int) bool { return applied[i] < applied[j] })
	return applied
}
