// Package scan provides read-only tokenization helpers over views. Every
// result is a window into the input view; the only allocations are the
// result slices of Split and Fields.
package scan

import "github.com/rawbytedev/strview"

// Cut splits v around the first occurrence of sep, like strings.Cut.
// When sep is absent it returns v, an empty view and false.
func Cut[U strview.Unit, T strview.Traits[U]](v, sep strview.View[U, T]) (before, after strview.View[U, T], found bool) {
	i := v.Find(sep)
	if i == strview.NotFound {
		return v, strview.View[U, T]{}, false
	}
	return v.Prefix(i), v.Suffix(v.Len() - i - sep.Len()), true
}

// Split returns the windows between occurrences of sep. An empty sep is
// not a separator; the result is then just v.
func Split[U strview.Unit, T strview.Traits[U]](v, sep strview.View[U, T]) []strview.View[U, T] {
	if sep.Empty() {
		return []strview.View[U, T]{v}
	}
	var out []strview.View[U, T]
	pos := 0
	for {
		i := v.FindFrom(sep, pos)
		if i == strview.NotFound {
			return append(out, v.Suffix(v.Len()-pos))
		}
		out = append(out, v.Suffix(v.Len()-pos).Prefix(i-pos))
		pos = i + sep.Len()
	}
}

// Fields returns the maximal runs of units not in set. Unlike Split it
// never yields empty windows.
func Fields[U strview.Unit, T strview.Traits[U]](v, set strview.View[U, T]) []strview.View[U, T] {
	var out []strview.View[U, T]
	pos := 0
	for {
		start := v.FindFirstNotOfFrom(set, pos)
		if start == strview.NotFound {
			return out
		}
		end := v.FindFirstOfFrom(set, start)
		if end == strview.NotFound {
			end = v.Len()
		}
		out = append(out, v.Suffix(v.Len()-start).Prefix(end-start))
		pos = end
	}
}

// TrimLeft narrows v past leading units in cutset.
func TrimLeft[U strview.Unit, T strview.Traits[U]](v, cutset strview.View[U, T]) strview.View[U, T] {
	i := v.FindFirstNotOf(cutset)
	if i == strview.NotFound {
		return strview.View[U, T]{}
	}
	return v.Suffix(v.Len() - i)
}

// TrimRight narrows v before trailing units in cutset.
func TrimRight[U strview.Unit, T strview.Traits[U]](v, cutset strview.View[U, T]) strview.View[U, T] {
	i := v.FindLastNotOf(cutset)
	if i == strview.NotFound {
		return strview.View[U, T]{}
	}
	return v.Prefix(i + 1)
}

// Trim narrows v from both ends.
func Trim[U strview.Unit, T strview.Traits[U]](v, cutset strview.View[U, T]) strview.View[U, T] {
	return TrimRight(TrimLeft(v, cutset), cutset)
}
