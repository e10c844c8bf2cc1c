// Package slicest holds the small generic slice helpers used across the
// codebase. The X suffix marks the error-propagating variant.
package slicest

// Map transforms every element of s with fn.
func Map[T, U any, S ~[]T](s S, fn func(T) U) []U {
	result, _ := MapX(s, func(t T) (U, error) {
		return fn(t), nil
	})
	return result
}

// MapX transforms every element of s with fn, stopping on the first error.
func MapX[T, U any, S ~[]T](s S, fn func(T) (U, error)) ([]U, error) {
	result := make([]U, len(s))
	for i, v := range s {
		out, err := fn(v)
		if err != nil {
			return nil, err
		}
		result[i] = out
	}
	return result, nil
}

// Filter returns the elements of s for which fn is true.
func Filter[T any, S ~[]T](s S, fn func(T) bool) S {
	var result S
	for _, v := range s {
		if fn(v) {
			result = append(result, v)
		}
	}
	return result
}
