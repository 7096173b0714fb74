package entity

// Lifecycle is the placement of a note or todo in the
// active/pinned/archived/trashed flow. It replaces the three independent
// boolean flags of the stored schema with a single tagged state, so
// combinations like archived+trashed cannot exist in the domain layer.
// The persistence mapper converts between the enum and the flag columns.
type Lifecycle string

const (
	LifecycleActive   Lifecycle = "active"
	LifecyclePinned   Lifecycle = "pinned"
	LifecycleArchived Lifecycle = "archived"
	LifecycleTrashed  Lifecycle = "trashed"
)

// LifecycleFromFlags normalizes the stored flag triad into a state.
// Precedence: trash > archived > pinned. Rows written by older clients with
// contradictory flags collapse deterministically.
func LifecycleFromFlags(pinned, archived, trashed bool) Lifecycle {
	switch {
	case trashed:
		return LifecycleTrashed
	case archived:
		return LifecycleArchived
	case pinned:
		return LifecyclePinned
	default:
		return LifecycleActive
	}
}

// Flags renders the state back into the three stored booleans.
func (l Lifecycle) Flags() (pinned, archived, trashed bool) {
	switch l {
	case LifecyclePinned:
		return true, false, false
	case LifecycleArchived:
		return false, true, false
	case LifecycleTrashed:
		return false, false, true
	default:
		return false, false, false
	}
}

func (l Lifecycle) Pinned() bool   { return l == LifecyclePinned }
func (l Lifecycle) Archived() bool { return l == LifecycleArchived }
func (l Lifecycle) Trashed() bool  { return l == LifecycleTrashed }

// Transitions are total and idempotent: no state rejects an operation,
// and applying the same operation twice yields the same terminal state.

// Archive moves the item into the archive. Archiving a trashed item pulls
// it out of the trash first, keeping the states mutually exclusive.
func (l Lifecycle) Archive() Lifecycle {
	return LifecycleArchived
}

// Unarchive returns an archived item to the active list. Other states are
// unaffected (they already carry archived=false).
func (l Lifecycle) Unarchive() Lifecycle {
	if l == LifecycleArchived {
		return LifecycleActive
	}
	return l
}

// Trash moves the item into the trash, dropping pin and archive placement.
func (l Lifecycle) Trash() Lifecycle {
	return LifecycleTrashed
}

// Restore returns a trashed item to the active list. Other states are
// unaffected.
func (l Lifecycle) Restore() Lifecycle {
	if l == LifecycleTrashed {
		return LifecycleActive
	}
	return l
}

// TogglePin flips pin placement. Pinning an archived or trashed item
// promotes it back to the pinned shelf, since a pin implies visibility.
func (l Lifecycle) TogglePin() Lifecycle {
	if l == LifecyclePinned {
		return LifecycleActive
	}
	return LifecyclePinned
}
