package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var allStates = []Lifecycle{LifecycleActive, LifecyclePinned, LifecycleArchived, LifecycleTrashed}

func TestLifecycleFromFlags(t *testing.T) {
	assert.Equal(t, LifecycleActive, LifecycleFromFlags(false, false, false))
	assert.Equal(t, LifecyclePinned, LifecycleFromFlags(true, false, false))
	assert.Equal(t, LifecycleArchived, LifecycleFromFlags(false, true, false))
	assert.Equal(t, LifecycleTrashed, LifecycleFromFlags(false, false, true))

	// Contradictory flags collapse with trash > archived > pinned.
	assert.Equal(t, LifecycleTrashed, LifecycleFromFlags(true, true, true))
	assert.Equal(t, LifecycleTrashed, LifecycleFromFlags(false, true, true))
	assert.Equal(t, LifecycleArchived, LifecycleFromFlags(true, true, false))
}

func TestFlagsRoundTrip(t *testing.T) {
	for _, state := range allStates {
		pinned, archived, trashed := state.Flags()
		assert.Equal(t, state, LifecycleFromFlags(pinned, archived, trashed))
	}
}

func TestFlagsExclusive(t *testing.T) {
	for _, state := range allStates {
		pinned, archived, trashed := state.Flags()
		set := 0
		for _, b := range []bool{pinned, archived, trashed} {
			if b {
				set++
			}
		}
		assert.LessOrEqual(t, set, 1, "state %s renders more than one flag", state)
	}
}

func TestArchive(t *testing.T) {
	for _, state := range allStates {
		assert.Equal(t, LifecycleArchived, state.Archive())
	}
}

func TestUnarchive(t *testing.T) {
	assert.Equal(t, LifecycleActive, LifecycleArchived.Unarchive())
	assert.Equal(t, LifecycleActive, LifecycleActive.Unarchive())
	assert.Equal(t, LifecyclePinned, LifecyclePinned.Unarchive())
	assert.Equal(t, LifecycleTrashed, LifecycleTrashed.Unarchive())
}

func TestTrash(t *testing.T) {
	for _, state := range allStates {
		got := state.Trash()
		assert.Equal(t, LifecycleTrashed, got)

		pinned, archived, trashed := got.Flags()
		assert.False(t, pinned)
		assert.False(t, archived)
		assert.True(t, trashed)
	}
}

func TestRestore(t *testing.T) {
	assert.Equal(t, LifecycleActive, LifecycleTrashed.Restore())
	assert.Equal(t, LifecycleActive, LifecycleActive.Restore())
	assert.Equal(t, LifecyclePinned, LifecyclePinned.Restore())
	assert.Equal(t, LifecycleArchived, LifecycleArchived.Restore())
}

func TestTogglePinSelfInverse(t *testing.T) {
	assert.Equal(t, LifecycleActive, LifecyclePinned.TogglePin())
	assert.Equal(t, LifecyclePinned, LifecycleActive.TogglePin())

	// Pinning an archived or trashed item promotes it to the shelf, and a
	// second toggle lands on active: toggle twice is active for any start.
	for _, state := range allStates {
		assert.Equal(t, LifecycleActive, state.TogglePin().TogglePin())
	}
}

func TestTransitionsIdempotent(t *testing.T) {
	for _, state := range allStates {
		assert.Equal(t, state.Archive(), state.Archive().Archive())
		assert.Equal(t, state.Trash(), state.Trash().Trash())
		assert.Equal(t, state.Unarchive(), state.Unarchive().Unarchive())
		assert.Equal(t, state.Restore(), state.Restore().Restore())
	}
}

func TestArchiveClearsTrash(t *testing.T) {
	got := LifecycleTrashed.Archive()
	_, archived, trashed := got.Flags()
	assert.True(t, archived)
	assert.False(t, trashed)
}
