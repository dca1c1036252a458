// Package accordion provides a collapsible-panel widget for Fyne with
// single or multiple selection, controlled or uncontrolled state, and
// stable tree-order indexing of its panels.
package accordion

import (
	"fmt"
	"slices"
)

// Config holds the selection behaviour of an Accordion. It is fixed for
// the lifetime of a widget instance.
type Config struct {
	// Multiple allows more than one panel to be open at once.
	Multiple bool

	// ReadOnly disables all toggling.
	ReadOnly bool

	// Collapsible allows the last open panel to be closed, leaving none
	// open. In single mode it also allows the open panel to be closed by
	// toggling it.
	Collapsible bool
}

// OpenSet is the value describing which panels are open. Its shape follows
// the Multiple flag of the Config it was created for: single mode carries
// one index (-1 for none), multiple mode carries a sorted set of unique
// indices. An OpenSet is an immutable value; transitions produce new values.
type OpenSet struct {
	multiple bool
	index    int   // single mode; -1 means none open
	indices  []int // multiple mode; unique, ascending
}

// NoneOpen returns the single-mode OpenSet with no panel open.
func NoneOpen() OpenSet {
	return OpenSet{index: -1}
}

// SingleOpen returns the single-mode OpenSet with the given panel open.
// A negative index is normalized to NoneOpen.
func SingleOpen(index int) OpenSet {
	if index < 0 {
		return NoneOpen()
	}
	return OpenSet{index: index}
}

// MultipleOpen returns the multiple-mode OpenSet with the given panels
// open. Duplicates are dropped and the result is sorted ascending.
func MultipleOpen(indices ...int) OpenSet {
	sorted := slices.Clone(indices)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)
	return OpenSet{multiple: true, indices: sorted}
}

// AllClosed returns the empty OpenSet of the requested shape.
func AllClosed(multiple bool) OpenSet {
	if multiple {
		return MultipleOpen()
	}
	return NoneOpen()
}

// DefaultOpenSet computes the initial open-state for an uncontrolled
// accordion. A nil defaults slice means the caller supplied no default:
// collapsible accordions then start fully closed, non-collapsible ones
// start with panel 0 open. An explicit default is coerced to the
// configured shape; single mode takes the first element, or 0 when the
// slice is non-nil but empty.
func DefaultOpenSet(defaults []int, cfg Config) OpenSet {
	if defaults == nil {
		if cfg.Collapsible {
			return AllClosed(cfg.Multiple)
		}
		if cfg.Multiple {
			return MultipleOpen(0)
		}
		return SingleOpen(0)
	}

	if cfg.Multiple {
		return MultipleOpen(defaults...)
	}
	if len(defaults) == 0 {
		return SingleOpen(0)
	}
	return SingleOpen(defaults[0])
}

// Next computes the open-state after toggling the panel at the given
// index. It is a pure function; absorbed toggles return the input value
// unchanged so callers can skip redundant refreshes via Equal.
//
// Single mode: toggling the open panel closes it only when collapsible,
// otherwise the toggle is absorbed; toggling any other panel replaces the
// open one. Multiple mode: toggling an open panel closes it unless it is
// the last one open and the accordion is not collapsible; toggling a
// closed panel opens it, keeping the set sorted ascending.
//
// Passing an OpenSet whose shape does not match cfg.Multiple is a
// programming error and panics.
func Next(current OpenSet, toggled int, cfg Config) OpenSet {
	if current.multiple != cfg.Multiple {
		panic(fmt.Sprintf("accordion: OpenSet shape (multiple=%v) does not match Config (multiple=%v)",
			current.multiple, cfg.Multiple))
	}

	if !cfg.Multiple {
		if current.index == toggled {
			if cfg.Collapsible {
				return NoneOpen()
			}
			return current // sticky: the open panel cannot be closed
		}
		return SingleOpen(toggled)
	}

	pos, found := slices.BinarySearch(current.indices, toggled)
	if found {
		if len(current.indices) == 1 && !cfg.Collapsible {
			return current // last open panel stays open
		}
		next := make([]int, 0, len(current.indices)-1)
		next = append(next, current.indices[:pos]...)
		next = append(next, current.indices[pos+1:]...)
		return OpenSet{multiple: true, indices: next}
	}

	next := make([]int, 0, len(current.indices)+1)
	next = append(next, current.indices[:pos]...)
	next = append(next, toggled)
	next = append(next, current.indices[pos:]...)
	return OpenSet{multiple: true, indices: next}
}

// IsOpen reports whether the panel at index is open.
func (s OpenSet) IsOpen(index int) bool {
	if s.multiple {
		_, found := slices.BinarySearch(s.indices, index)
		return found
	}
	return s.index >= 0 && s.index == index
}

// Equal reports whether two OpenSets have the same shape and contents.
func (s OpenSet) Equal(other OpenSet) bool {
	if s.multiple != other.multiple {
		return false
	}
	if s.multiple {
		return slices.Equal(s.indices, other.indices)
	}
	return s.index == other.index
}

// Multiple reports the shape of the OpenSet.
func (s OpenSet) Multiple() bool {
	return s.multiple
}

// Index returns the open index in single mode, -1 when none is open.
// Calling it on a multiple-mode OpenSet is a programming error and panics.
func (s OpenSet) Index() int {
	if s.multiple {
		panic("accordion: Index called on a multiple-mode OpenSet")
	}
	return s.index
}

// Indices returns a copy of the open indices, ascending. In single mode it
// returns a one-element slice, or an empty slice when none is open.
func (s OpenSet) Indices() []int {
	if s.multiple {
		return slices.Clone(s.indices)
	}
	if s.index < 0 {
		return []int{}
	}
	return []int{s.index}
}

// Normalize coerces the OpenSet to the requested shape, for callers that
// change the Multiple configuration or supply externally-built values.
// Widening wraps the open index in a set; narrowing keeps the lowest open
// index, or none when the set is empty.
func (s OpenSet) Normalize(multiple bool) OpenSet {
	if s.multiple == multiple {
		if multiple {
			// Rebuild in case the value was assembled outside the constructors.
			return MultipleOpen(s.indices...)
		}
		return SingleOpen(s.index)
	}
	if multiple {
		if s.index < 0 {
			return MultipleOpen()
		}
		return MultipleOpen(s.index)
	}
	if len(s.indices) == 0 {
		return NoneOpen()
	}
	return SingleOpen(s.indices[0])
}

// String renders the OpenSet for logs and test failures.
func (s OpenSet) String() string {
	if s.multiple {
		return fmt.Sprintf("OpenSet%v", s.indices)
	}
	return fmt.Sprintf("OpenSet(%d)", s.index)
}
