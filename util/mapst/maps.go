// Package mapst holds the small generic map helpers used across the
// codebase. The x suffix marks the error-propagating variant.
package mapst

// Eachx calls fn for every entry of m, stopping on the first error.
// Iteration order is the map's order, i.e. unspecified.
func Eachx[K comparable, V any, M ~map[K]V](m M, fn func(K, V) error) error {
	for k, v := range m {
		if err := fn(k, v); err != nil {
			return err
		}
	}
	return nil
}
