// AngelaMos | 2026
// optional.go

package core

// Optional distinguishes "leave unchanged" (Set false) from an explicit
// value. For pointer types, Set with a nil Value means "clear".
type Optional[T any] struct {
	Set   bool
	Value T
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: v}
}

func (o Optional[T]) Or(fallback T) T {
	if o.Set {
		return o.Value
	}
	return fallback
}
