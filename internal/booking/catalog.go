package booking

import "turfBooker/internal/models"

// Catalog is the process-wide static configuration: the sports on offer
// and the ordered time-slot labels of a booking day. It is built once at
// startup and never mutated.
type Catalog struct {
	sports map[string]models.Sport
	order  []string
	slots  []string
	slotOK map[string]struct{}
}

func NewCatalog(sports []models.Sport, slots []string) *Catalog {
	c := &Catalog{
		sports: make(map[string]models.Sport, len(sports)),
		order:  make([]string, 0, len(sports)),
		slots:  slots,
		slotOK: make(map[string]struct{}, len(slots)),
	}

	for _, s := range sports {
		c.sports[s.ID] = s
		c.order = append(c.order, s.ID)
	}

	for _, label := range slots {
		c.slotOK[label] = struct{}{}
	}

	return c
}

func (c *Catalog) Sport(id string) (models.Sport, bool) {
	s, ok := c.sports[id]
	return s, ok
}

func (c *Catalog) Sports() []models.Sport {
	out := make([]models.Sport, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.sports[id])
	}

	return out
}

func (c *Catalog) Slots() []string {
	return c.slots
}

func (c *Catalog) HasSlot(label string) bool {
	_, ok := c.slotOK[label]
	return ok
}
