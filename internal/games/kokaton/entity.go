package kokaton

// EntityState marks whether an entity is still part of the world.
// Entities are marked Removed during a frame and filtered out in one pass.
type EntityState int

const (
	Alive EntityState = iota
	Removed
)

// compact returns a new slice of the live entities, preserving order.
// items is left untouched.
func compact[T interface{ State() EntityState }](items []T) []T {
	kept := make([]T, 0, len(items))
	for _, it := range items {
		if it.State() == Alive {
			kept = append(kept, it)
		}
	}
	return kept
}
