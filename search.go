package strview

// NotFound is the sentinel index search operations return when no match
// exists. Searches never fail with an error.
const NotFound = -1

// Find returns the first index at which needle occurs, or NotFound.
func (v View[U, T]) Find(needle View[U, T]) int { return v.FindFrom(needle, 0) }

// FindFrom returns the smallest index i >= pos with a full needle match at
// i, or NotFound when pos is past the view or no window fits. An empty
// needle matches at pos. Naive scan, O((Len-pos)*needle.Len()).
func (v View[U, T]) FindFrom(needle View[U, T], pos int) int {
	if pos < 0 {
		pos = 0
	}
	if pos > len(v.s) || len(needle.s) > len(v.s)-pos {
		return NotFound
	}
	var tr T
scan:
	for i := pos; i <= len(v.s)-len(needle.s); i++ {
		for j := range needle.s {
			if !tr.Eq(v.s[i+j], needle.s[j]) {
				continue scan
			}
		}
		return i
	}
	return NotFound
}

// FindUnit returns the first index holding the unit u, or NotFound.
func (v View[U, T]) FindUnit(u U) int { return v.FindUnitFrom(u, 0) }

// FindUnitFrom is FindUnit starting at pos.
func (v View[U, T]) FindUnitFrom(u U, pos int) int {
	if pos < 0 {
		pos = 0
	}
	var tr T
	for i := pos; i < len(v.s); i++ {
		if tr.Eq(v.s[i], u) {
			return i
		}
	}
	return NotFound
}

// Rfind returns the last index at which needle occurs, or NotFound.
func (v View[U, T]) Rfind(needle View[U, T]) int { return v.RfindBefore(needle, len(v.s)) }

// RfindBefore returns the largest index i <= min(pos, Len-needle.Len())
// with a full needle match at i, or NotFound. An empty needle yields
// min(Len-1, pos), or 0 when the view itself is empty.
func (v View[U, T]) RfindBefore(needle View[U, T], pos int) int {
	if len(v.s) == 0 {
		if len(needle.s) == 0 {
			return 0
		}
		return NotFound
	}
	if pos < 0 {
		return NotFound
	}
	if len(needle.s) == 0 {
		return min(len(v.s)-1, pos)
	}
	if len(needle.s) > len(v.s) {
		return NotFound
	}
	var tr T
scan:
	for i := min(pos, len(v.s)-len(needle.s)); i >= 0; i-- {
		for j := range needle.s {
			if !tr.Eq(v.s[i+j], needle.s[j]) {
				continue scan
			}
		}
		return i
	}
	return NotFound
}

// RfindUnit returns the last index holding the unit u, or NotFound.
func (v View[U, T]) RfindUnit(u U) int { return v.RfindUnitBefore(u, len(v.s)) }

// RfindUnitBefore is RfindUnit scanning backward from min(Len-1, pos).
func (v View[U, T]) RfindUnitBefore(u U, pos int) int {
	if len(v.s) == 0 || pos < 0 {
		return NotFound
	}
	var tr T
	for i := min(len(v.s)-1, pos); i >= 0; i-- {
		if tr.Eq(v.s[i], u) {
			return i
		}
	}
	return NotFound
}

// FindFirstOf returns the first index whose unit is a member of set, or
// NotFound. set is a set of units, not a contiguous needle.
func (v View[U, T]) FindFirstOf(set View[U, T]) int { return v.FindFirstOfFrom(set, 0) }

// FindFirstOfFrom is FindFirstOf starting at pos.
func (v View[U, T]) FindFirstOfFrom(set View[U, T], pos int) int {
	if pos < 0 {
		pos = 0
	}
	var tr T
	for i := pos; i < len(v.s); i++ {
		if isOneOf(tr, v.s[i], set.s) {
			return i
		}
	}
	return NotFound
}

// FindFirstNotOf returns the first index whose unit is not a member of set.
func (v View[U, T]) FindFirstNotOf(set View[U, T]) int { return v.FindFirstNotOfFrom(set, 0) }

// FindFirstNotOfFrom is FindFirstNotOf starting at pos.
func (v View[U, T]) FindFirstNotOfFrom(set View[U, T], pos int) int {
	if pos < 0 {
		pos = 0
	}
	var tr T
	for i := pos; i < len(v.s); i++ {
		if !isOneOf(tr, v.s[i], set.s) {
			return i
		}
	}
	return NotFound
}

// FindLastOf returns the last index whose unit is a member of set.
func (v View[U, T]) FindLastOf(set View[U, T]) int {
	return v.FindLastOfBefore(set, len(v.s)-1)
}

// FindLastOfBefore is FindLastOf scanning backward from min(Len-1, pos).
func (v View[U, T]) FindLastOfBefore(set View[U, T], pos int) int {
	if len(v.s) == 0 || pos < 0 {
		return NotFound
	}
	var tr T
	for i := min(len(v.s)-1, pos); i >= 0; i-- {
		if isOneOf(tr, v.s[i], set.s) {
			return i
		}
	}
	return NotFound
}

// FindLastNotOf returns the last index whose unit is not a member of set.
func (v View[U, T]) FindLastNotOf(set View[U, T]) int {
	return v.FindLastNotOfBefore(set, len(v.s)-1)
}

// FindLastNotOfBefore is FindLastNotOf scanning backward from
// min(Len-1, pos).
func (v View[U, T]) FindLastNotOfBefore(set View[U, T], pos int) int {
	if len(v.s) == 0 || pos < 0 {
		return NotFound
	}
	var tr T
	for i := min(len(v.s)-1, pos); i >= 0; i-- {
		if !isOneOf(tr, v.s[i], set.s) {
			return i
		}
	}
	return NotFound
}

func isOneOf[U Unit, T Traits[U]](tr T, u U, set []U) bool {
	for _, s := range set {
		if tr.Eq(u, s) {
			return true
		}
	}
	return false
}
