package textutil

// AddNested appends v to the slice stored under key, creating it on first use.
func AddNested[K comparable, V any](m map[K][]V, key K, v V) {
	m[key] = append(m[key], v)
}
