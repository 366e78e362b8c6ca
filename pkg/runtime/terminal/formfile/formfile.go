// Package formfile reads a report form from YAML and replays it into a
// session, so the CLI goes through the same derivation as the web front end.
package formfile

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/de-tools/destiny-report/pkg/models/domain"
	"github.com/de-tools/destiny-report/pkg/services/form"
	"github.com/de-tools/destiny-report/pkg/services/session"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

type HouseGroup struct {
	Houses []int `yaml:"houses"`
	Degree int   `yaml:"degree"`
}

type HouseAspect struct {
	Planet string       `yaml:"planet"`
	Groups []HouseGroup `yaml:"groups"`
}

type PlanetGroup struct {
	Planets []string `yaml:"planets"`
	Degree  int      `yaml:"degree"`
}

type PlanetAspect struct {
	Planet string        `yaml:"planet"`
	Groups []PlanetGroup `yaml:"groups"`
}

type RelationLink struct {
	Code    string `yaml:"code"`
	Benefic bool   `yaml:"benefic"`
}

type HouseMap struct {
	Label string `yaml:"label"`
	// Image is a png, jpeg or pdf path relative to the form file.
	Image string            `yaml:"image"`
	Rooms map[string]string `yaml:"rooms"`
}

type Kundli struct {
	Path    string `yaml:"path"`
	Extract bool   `yaml:"extract"`
}

// File is the YAML layout of a form. Removals and placements are keyed by
// planet since their records only exist once the aspects are in.
type File struct {
	Kundli         *Kundli             `yaml:"kundli"`
	Fields         map[string]string   `yaml:"fields"`
	HouseAspects   []HouseAspect       `yaml:"house_aspects"`
	PlanetAspects  []PlanetAspect      `yaml:"planet_aspects"`
	Removals       map[string][]string `yaml:"removals"`
	Placements     map[string]string   `yaml:"placements"`
	SaturnRelation []RelationLink      `yaml:"saturn_relation"`
	VenusRelation  []RelationLink      `yaml:"venus_relation"`
	HouseMaps      []HouseMap          `yaml:"house_maps"`

	dir string
}

func Load(fs afero.Fs, path string) (*File, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read form file: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse form file %s: %w", path, err)
	}
	f.dir = filepath.Dir(path)
	return &f, nil
}

func (f *File) resolve(path string) string {
	if filepath.IsAbs(path) || f.dir == "" {
		return path
	}
	return filepath.Join(f.dir, path)
}

// Apply replays the file into s. The kundli goes first so that values in
// fields win over extracted ones. Scalar fields are set in a stable order.
func (f *File) Apply(ctx context.Context, fs afero.Fs, s *session.Session) error {
	if f.Kundli != nil && f.Kundli.Path != "" {
		path := f.resolve(f.Kundli.Path)
		content, err := afero.ReadFile(fs, path)
		if err != nil {
			return fmt.Errorf("failed to read kundli: %w", err)
		}
		if _, err := s.UploadKundli(ctx, filepath.Base(path), content, f.Kundli.Extract); err != nil {
			return fmt.Errorf("failed to upload kundli: %w", err)
		}
	}

	if err := s.Edit(func(m form.Manager) error {
		return f.applyForm(ctx, m)
	}); err != nil {
		return err
	}

	for i, hm := range f.HouseMaps {
		if err := f.applyHouseMap(ctx, fs, s, hm); err != nil {
			return fmt.Errorf("house_maps[%d]: %w", i, err)
		}
	}
	return nil
}

func (f *File) applyForm(ctx context.Context, m form.Manager) error {
	if err := f.applyFields(ctx, m); err != nil {
		return err
	}

	for i, ha := range f.HouseAspects {
		id, err := m.AddHouseAspect(ctx, domain.Planet(ha.Planet))
		if err != nil {
			return fmt.Errorf("house_aspects[%d]: %w", i, err)
		}
		for _, g := range ha.Groups {
			if _, err := m.AddHouseGroup(ctx, id, g.Houses, g.Degree); err != nil {
				return fmt.Errorf("house_aspects[%d]: %w", i, err)
			}
		}
	}
	for i, pa := range f.PlanetAspects {
		id, err := m.AddPlanetAspect(ctx, domain.Planet(pa.Planet))
		if err != nil {
			return fmt.Errorf("planet_aspects[%d]: %w", i, err)
		}
		for _, g := range pa.Groups {
			planets := make([]domain.Planet, 0, len(g.Planets))
			for _, p := range g.Planets {
				planets = append(planets, domain.Planet(p))
			}
			if _, err := m.AddPlanetGroup(ctx, id, planets, g.Degree); err != nil {
				return fmt.Errorf("planet_aspects[%d]: %w", i, err)
			}
		}
	}

	if err := f.applyDirections(ctx, m); err != nil {
		return err
	}

	chains := []struct {
		rel   form.Relation
		links []RelationLink
	}{
		{form.RelationSaturn, f.SaturnRelation},
		{form.RelationVenus, f.VenusRelation},
	}
	for _, c := range chains {
		for _, l := range c.links {
			if _, err := m.AddRelationLink(ctx, c.rel, l.Code, l.Benefic); err != nil {
				return fmt.Errorf("%s_relation: %w", c.rel, err)
			}
		}
	}
	return nil
}

func (f *File) applyFields(ctx context.Context, m form.Manager) error {
	pending := make(map[string]string, len(f.Fields))
	for k, v := range f.Fields {
		pending[k] = v
	}
	for _, field := range domain.ScalarFields() {
		value, ok := pending[field.String()]
		if !ok {
			continue
		}
		delete(pending, field.String())
		if err := m.SetField(ctx, field, value); err != nil {
			return err
		}
	}

	// whatever is left is not a form field; let the manager say so
	leftover := make([]string, 0, len(pending))
	for k := range pending {
		leftover = append(leftover, k)
	}
	sort.Strings(leftover)
	for _, k := range leftover {
		if err := m.SetField(ctx, domain.Field(k), pending[k]); err != nil {
			return err
		}
	}
	return nil
}

func (f *File) applyDirections(ctx context.Context, m form.Manager) error {
	snap := m.Snapshot()

	for _, item := range snap.RemovalItems {
		dirs, ok := f.Removals[item.Planet.String()]
		if !ok {
			continue
		}
		slots := make([]string, 0, len(dirs))
		for _, s := range item.Slots {
			slots = append(slots, s.ID)
		}
		for len(slots) < len(dirs) {
			id, err := m.AddDirectionSlot(ctx, item.ID)
			if err != nil {
				return fmt.Errorf("removals.%s: %w", item.Planet, err)
			}
			slots = append(slots, id)
		}
		for i, d := range dirs {
			if err := m.SetRemovalDirection(ctx, item.ID, slots[i], domain.Direction(d)); err != nil {
				return fmt.Errorf("removals.%s: %w", item.Planet, err)
			}
		}
	}
	for planet := range f.Removals {
		if !hasRemoval(snap.RemovalItems, planet) {
			return fmt.Errorf("removals.%s: %w: no aspect names this planet", planet, form.ErrRecordNotFound)
		}
	}

	for _, item := range snap.PlacementItems {
		if d, ok := f.Placements[item.Planet.String()]; ok {
			if err := m.SetPlacementDirection(ctx, item.ID, domain.Direction(d)); err != nil {
				return fmt.Errorf("placements.%s: %w", item.Planet, err)
			}
		}
	}
	for planet := range f.Placements {
		if !hasPlacement(snap.PlacementItems, planet) {
			return fmt.Errorf("placements.%s: %w: no aspect names this planet", planet, form.ErrRecordNotFound)
		}
	}
	return nil
}

func hasRemoval(items []domain.RemovalItem, planet string) bool {
	for _, r := range items {
		if r.Planet.String() == planet {
			return true
		}
	}
	return false
}

func hasPlacement(items []domain.PlacementItem, planet string) bool {
	for _, p := range items {
		if p.Planet.String() == planet {
			return true
		}
	}
	return false
}

func (f *File) applyHouseMap(ctx context.Context, fs afero.Fs, s *session.Session, hm HouseMap) error {
	var ids []string
	if hm.Image != "" {
		path := f.resolve(hm.Image)
		content, err := afero.ReadFile(fs, path)
		if err != nil {
			return fmt.Errorf("failed to read house map: %w", err)
		}
		name := hm.Label
		if name == "" {
			name = filepath.Base(path)
		}
		if ids, err = s.UploadHouseMap(ctx, name, content); err != nil {
			return err
		}
	} else {
		err := s.Edit(func(m form.Manager) error {
			id, err := m.AddHouseMap(ctx, hm.Label, nil)
			ids = append(ids, id)
			return err
		})
		if err != nil {
			return err
		}
	}
	if len(hm.Rooms) == 0 || len(ids) == 0 {
		return nil
	}

	// rooms describe the first page of a multi page plan
	return s.Edit(func(m form.Manager) error {
		rooms := make([]string, 0, len(hm.Rooms))
		for room := range hm.Rooms {
			rooms = append(rooms, room)
		}
		sort.Strings(rooms)
		for _, room := range rooms {
			if err := m.SetRoomDirection(ctx, ids[0], room, domain.Direction(hm.Rooms[room])); err != nil {
				return err
			}
		}
		return nil
	})
}
