package utils

// ContainsID reports whether id is present in the list.
func ContainsID(list []uint, id uint) bool {
	for _, v := range list {
		if v == id {
			return true
		}
	}
	return false
}

// RemoveID returns the list with every occurrence of id removed. Removal is
// by value, keeping the order of the remaining entries.
func RemoveID(list []uint, id uint) []uint {
	out := list[:0]
	for _, v := range list {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
