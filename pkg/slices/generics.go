package slices

import (
	originSlices "slices"

	"golang.org/x/exp/constraints"
)

func GenericsUniqueSliceValues[T comparable](list []T) []T {
	result := make([]T, 0, len(list))
	seen := make(map[T]struct{}, len(list))
	for _, v := range list {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			result = append(result, v)
		}
	}
	return result
}

// GenericsStandardizeSlice drops empty values and duplicates, then sorts.
func GenericsStandardizeSlice[T constraints.Ordered](list []T) []T {
	var empty T
	result := GenericsFilter(GenericsUniqueSliceValues(list), func(v T) bool { return v != empty })
	originSlices.Sort(result)
	return result
}

// GenericsFilter keeps the elements matching keep, preserving order.
func GenericsFilter[T any](list []T, keep func(T) bool) []T {
	result := make([]T, 0, len(list))
	for _, v := range list {
		if keep(v) {
			result = append(result, v)
		}
	}
	return result
}

// GenericsPaginate returns list[offset:offset+size], clamped to bounds.
// A size of zero or less returns everything from offset.
func GenericsPaginate[T any](list []T, offset, size int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(list) {
		return []T{}
	}
	end := len(list)
	if size > 0 && offset+size < end {
		end = offset + size
	}
	return list[offset:end]
}

func GenericsSumBy[T any, N constraints.Integer | constraints.Float](list []T, value func(T) N) N {
	var total N
	for _, v := range list {
		total += value(v)
	}
	return total
}

func GenericsSliceContainsOne[T comparable](list []T, in ...T) bool {
	for _, v := range in {
		if originSlices.Contains(list, v) {
			return true
		}
	}
	return false
}
