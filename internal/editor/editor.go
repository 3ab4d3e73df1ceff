// Package editor translates user edits into CV aggregate replacement
// operations. Every operation is pure: it takes the current aggregate by
// value and returns a new one, leaving untouched entities and fields
// byte-for-byte identical. A malformed id is a silent no-op.
package editor

// Keyed is any list entity carrying a locally-unique id.
type Keyed interface {
	EntityID() string
}

// Append returns a new sequence with item added at the end. The input
// sequence is never mutated.
func Append[T Keyed](list []T, item T) []T {
	out := make([]T, 0, len(list)+1)
	out = append(out, list...)
	return append(out, item)
}

// UpdateByID returns a new sequence where the entity matching id has been
// replaced by mutate's result. When id matches nothing the original sequence
// is returned unchanged.
func UpdateByID[T Keyed](list []T, id string, mutate func(T) T) []T {
	matched := false
	out := make([]T, len(list))
	for i, item := range list {
		if item.EntityID() == id {
			out[i] = mutate(item)
			matched = true
		} else {
			out[i] = item
		}
	}
	if !matched {
		return list
	}
	return out
}

// RemoveByID returns a new sequence without the entity matching id. When id
// matches nothing the original sequence is returned unchanged.
func RemoveByID[T Keyed](list []T, id string) []T {
	matched := false
	out := make([]T, 0, len(list))
	for _, item := range list {
		if item.EntityID() == id {
			matched = true
			continue
		}
		out = append(out, item)
	}
	if !matched {
		return list
	}
	return out
}
