package building

import (
	"fmt"

	"isocity/internal/domain/world"
)

type Building struct {
	ID      world.BuildingID `json:"id"`
	Type    Type             `json:"type"`
	Anchor  world.Point      `json:"anchor"`
	Covered []world.Point    `json:"covered"`
}

// Registry is the arena of placed buildings. IDs are dense and start at 1 so
// that id-1 is the slot index.
type Registry struct {
	items []Building
}

func NewRegistry() *Registry {
	return &Registry{}
}

func (r *Registry) NextID() world.BuildingID {
	return world.BuildingID(len(r.items) + 1)
}

func (r *Registry) Add(b Building) {
	if b.ID != r.NextID() {
		panic(fmt.Sprintf("building: id %d out of sequence, next is %d", b.ID, r.NextID()))
	}
	b.Covered = append([]world.Point(nil), b.Covered...)
	r.items = append(r.items, b)
}

func (r *Registry) Get(id world.BuildingID) (Building, bool) {
	i := int(id) - 1
	if i < 0 || i >= len(r.items) {
		return Building{}, false
	}
	return r.items[i], true
}

func (r *Registry) Len() int { return len(r.items) }

func (r *Registry) All() []Building {
	out := make([]Building, len(r.items))
	copy(out, r.items)
	return out
}

func (r *Registry) TotalOccupation() int64 {
	var total int64
	for _, b := range r.items {
		total += b.Type.Occupation()
	}
	return total
}
