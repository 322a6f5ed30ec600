package domain

import (
	"time"

	"github.com/google/uuid"
)

type EventKind string

const (
	EventMissionAvailable EventKind = "mission_available"
	EventMissionClaimed   EventKind = "mission_claimed"
	EventMissionUpdated   EventKind = "mission_updated"
	EventDriverLocation   EventKind = "driver_location_updated"
)

// MissionEvent is emitted after every committed mission mutation. The
// broadcaster fans it out best-effort; the mission row stays the system of
// record, so a subscriber that misses an event re-reads on its next poll.
type MissionEvent struct {
	Kind    EventKind `json:"type"`
	Mission *Mission  `json:"mission"`
	At      time.Time `json:"timestamp"`
}

type LocationEvent struct {
	MissionID uuid.UUID     `json:"mission_id"`
	OrderID   *uuid.UUID    `json:"order_id,omitempty"`
	Lat       float64       `json:"lat"`
	Lng       float64       `json:"lng"`
	Status    MissionStatus `json:"status,omitempty"`
	At        time.Time     `json:"timestamp"`
}

// OrderCallback syncs the upstream order when its mission moves. DeliveryOtp
// rides along so the orders service can show the recipient the code the
// courier must collect; it is never present on courier-facing surfaces.
type OrderCallback struct {
	OrderID     uuid.UUID     `json:"order_id"`
	MissionID   uuid.UUID     `json:"mission_id"`
	Status      MissionStatus `json:"status"`
	DeliveryOtp string        `json:"delivery_otp,omitempty"`
	At          time.Time     `json:"at"`
}
