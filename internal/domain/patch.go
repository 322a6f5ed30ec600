package domain

import "time"

// MissionPatch carries the optional column updates applied together with a
// guarded status transition. Nil fields leave the column untouched;
// MetadataMerge is merged into the jsonb map, not replaced.
type MissionPatch struct {
	PickedUpAt       *time.Time
	CompletedAt      *time.Time
	ActualDistanceKM *float64
	CourierEarnings  *float64
	MetadataMerge    map[string]any
}
