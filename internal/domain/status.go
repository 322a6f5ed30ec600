package domain

type MissionStatus string

const (
	MissionAvailable MissionStatus = "AVAILABLE"
	MissionClaimed   MissionStatus = "CLAIMED"
	MissionPickedUp  MissionStatus = "PICKED_UP"
	MissionDelivered MissionStatus = "DELIVERED"
	MissionCancelled MissionStatus = "CANCELLED"
	MissionFailed    MissionStatus = "FAILED"
)

// allowedTransitions is the single adjacency table for mission status
// changes. CLAIMED/PICKED_UP -> AVAILABLE is the release path; it is the
// only backward edge and is driven exclusively by the dispatch service.
// Terminal states have no outgoing edges.
var allowedTransitions = map[MissionStatus][]MissionStatus{
	MissionAvailable: {MissionClaimed, MissionCancelled},
	MissionClaimed:   {MissionPickedUp, MissionAvailable, MissionCancelled, MissionFailed},
	MissionPickedUp:  {MissionDelivered, MissionAvailable, MissionCancelled, MissionFailed},
}

func (s MissionStatus) CanTransitionTo(target MissionStatus) bool {
	for _, t := range allowedTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

func (s MissionStatus) Terminal() bool {
	switch s {
	case MissionDelivered, MissionCancelled, MissionFailed:
		return true
	}
	return false
}

// Releasable reports whether a mission in this status may be returned to the
// pool, by the owning courier or by the reaper.
func (s MissionStatus) Releasable() bool {
	return s == MissionClaimed || s == MissionPickedUp
}

func (s MissionStatus) Valid() bool {
	switch s {
	case MissionAvailable, MissionClaimed, MissionPickedUp,
		MissionDelivered, MissionCancelled, MissionFailed:
		return true
	}
	return false
}

func (t MissionType) Valid() bool {
	switch t {
	case FoodDelivery, PrivateParcel, RideHailing:
		return true
	}
	return false
}
