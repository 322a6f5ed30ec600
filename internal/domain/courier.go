package domain

import (
	"time"

	"github.com/google/uuid"
)

type CourierStatus string

const (
	CourierPending  CourierStatus = "PENDING"
	CourierVerified CourierStatus = "VERIFIED"
	CourierRejected CourierStatus = "REJECTED"
)

// Courier is a read-only snapshot from the users collaborator. Eligibility
// is re-checked at claim time, never cached past it.
type Courier struct {
	ID            uuid.UUID     `json:"id"`
	FullName      string        `json:"full_name"`
	CourierStatus CourierStatus `json:"courier_status"`
	IsOnline      bool          `json:"is_online"`
	AcceptsFood   bool          `json:"accepts_food"`
	AcceptsParcel bool          `json:"accepts_parcel"`
	AcceptsRides  bool          `json:"accepts_rides"`
	CreatedAt     time.Time     `json:"created_at"`
}

// CourierStats is the courier-facing performance snapshot: lifetime delivered
// count plus earnings accrued since local midnight.
type CourierStats struct {
	CourierID     uuid.UUID `json:"courier_id"`
	Delivered     int64     `json:"delivered"`
	EarningsToday float64   `json:"earnings_today"`
}

func (c *Courier) Verified() bool {
	return c.CourierStatus == CourierVerified
}

func (c *Courier) Accepts(t MissionType) bool {
	switch t {
	case FoodDelivery:
		return c.AcceptsFood
	case PrivateParcel:
		return c.AcceptsParcel
	case RideHailing:
		return c.AcceptsRides
	}
	return false
}
