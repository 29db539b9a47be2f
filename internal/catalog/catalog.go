// Package catalog holds the static reference data for memorizable units.
// A unit is a surah; the catalog is loaded once and never mutated.
package catalog

import "sort"

// Unit is one memorizable text unit.
type Unit struct {
	ID         int64  `json:"id"`
	Ordinal    int    `json:"ordinal"`
	Name       string `json:"name"`
	VerseCount int    `json:"verse_count"`
}

// Catalog is an immutable, ordered set of units. Safe for concurrent reads.
type Catalog struct {
	byID  map[int64]Unit
	units []Unit
}

// New builds a catalog from the embedded surah table.
func New() *Catalog {
	return newFrom(surahs)
}

func newFrom(units []Unit) *Catalog {
	c := &Catalog{byID: make(map[int64]Unit, len(units))}
	c.units = make([]Unit, len(units))
	copy(c.units, units)
	sort.Slice(c.units, func(i, j int) bool { return c.units[i].Ordinal < c.units[j].Ordinal })
	for _, u := range c.units {
		c.byID[u.ID] = u
	}
	return c
}

// Get returns the unit with the given ID.
func (c *Catalog) Get(id int64) (Unit, bool) {
	u, ok := c.byID[id]
	return u, ok
}

// Valid reports whether the unit ID exists in the catalog.
func (c *Catalog) Valid(id int64) bool {
	_, ok := c.byID[id]
	return ok
}

// All returns the units in canonical order.
func (c *Catalog) All() []Unit {
	out := make([]Unit, len(c.units))
	copy(out, c.units)
	return out
}

// Len returns the number of units.
func (c *Catalog) Len() int {
	return len(c.units)
}

// TotalVerses sums the verse counts of the given units. Unknown IDs are
// skipped and reported so callers can flag degraded aggregations.
func (c *Catalog) TotalVerses(ids []int64) (total int, missing []int64) {
	for _, id := range ids {
		u, ok := c.byID[id]
		if !ok {
			missing = append(missing, id)
			continue
		}
		total += u.VerseCount
	}
	return total, missing
}
