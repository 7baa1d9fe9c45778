package util

// CloneSlice clones slice with cloneSize.
// This function will use src length as the clone size if cloneSize is 0.
func CloneSlice[T any](src []T, cloneSize int) []T {
	if cloneSize == 0 {
		cloneSize = len(src)
	}
	clone := make([]T, cloneSize)
	copy(clone, src)

	return clone
}

// ReverseInPlace reverses the elements of s.
func ReverseInPlace[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// Reversed returns a reversed copy of s when swap is true, otherwise a plain copy.
func Reversed[T any](s []T, swap bool) []T {
	out := CloneSlice(s, 0)
	if swap {
		ReverseInPlace(out)
	}

	return out
}
