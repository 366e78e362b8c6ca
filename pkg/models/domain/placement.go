package domain

// DirectionSlot is one direction choice of a removal item. Direction is
// empty until the practitioner picks one.
type DirectionSlot struct {
	ID        string
	Direction Direction
}

// RemovalItem lists the directions a planet's influence is removed from.
type RemovalItem struct {
	ID     string
	Planet Planet
	Slots  []DirectionSlot
	// SlotPolicy is the slot count last derived from the aspect lists.
	// Slots added or removed by hand since then are left alone until it
	// changes.
	SlotPolicy int
}

func (r RemovalItem) clone() RemovalItem {
	r.Slots = append([]DirectionSlot(nil), r.Slots...)
	return r
}

// Directions returns the non-empty slot directions in slot order.
func (r RemovalItem) Directions() []Direction {
	var out []Direction
	for _, s := range r.Slots {
		if s.Direction != "" {
			out = append(out, s.Direction)
		}
	}
	return out
}

// PlacementItem is the single direction a planet is placed in.
type PlacementItem struct {
	ID        string
	Planet    Planet
	Direction Direction
}
