package domain

import (
	"time"

	"github.com/google/uuid"
)

type MissionType string

const (
	FoodDelivery  MissionType = "FOOD_DELIVERY"
	PrivateParcel MissionType = "PRIVATE_PARCEL"
	RideHailing   MissionType = "RIDE_HAILING"
)

// Metadata keys stored in the jsonb column.
const (
	MetaDeliveryOtp  = "deliveryOtp"
	MetaOtpAttempts  = "otpAttempts"
	MetaIsSurge      = "isSurge"
	MetaCourierTip   = "courierTip"
	MetaCancelReason = "cancelReason"
	MetaCancelledBy  = "cancelledBy"
	MetaAssignedBy   = "assignedByAdmin"
	MetaReleaseBy    = "releasedBy"
	MetaVerifiedAt   = "verifiedAt"
	MetaCurrentLat   = "currentLat"
	MetaCurrentLng   = "currentLng"
)

// Mission is the unit of dispatchable work. The postgres row is the single
// source of truth; Version is the optimistic concurrency token bumped on
// every committed mutation.
type Mission struct {
	ID         uuid.UUID     `json:"id"`
	Type       MissionType   `json:"type"`
	Status     MissionStatus `json:"status"`
	OrderID    *uuid.UUID    `json:"order_id,omitempty"`
	ClientID   uuid.UUID     `json:"client_id"`
	MerchantID *uuid.UUID    `json:"merchant_id,omitempty"`
	CourierID  *uuid.UUID    `json:"courier_id,omitempty"`

	OriginAddress      string  `json:"origin_address"`
	OriginLat          float64 `json:"origin_lat"`
	OriginLng          float64 `json:"origin_lng"`
	DestinationAddress string  `json:"destination_address"`
	DestinationLat     float64 `json:"destination_lat"`
	DestinationLng     float64 `json:"destination_lng"`

	EstimatedDistanceKM float64  `json:"estimated_distance_km"`
	ActualDistanceKM    *float64 `json:"actual_distance_km,omitempty"`
	EstimatedPrice      float64  `json:"estimated_price"`
	CourierEarnings     float64  `json:"courier_earnings"`
	EstimatedMinutes    int      `json:"estimated_minutes"`

	Metadata map[string]any `json:"metadata,omitempty"`
	Version  int64          `json:"version"`

	ClaimedAt   *time.Time `json:"claimed_at,omitempty"`
	PickedUpAt  *time.Time `json:"picked_up_at,omitempty"`
	ReleasedAt  *time.Time `json:"released_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (m *Mission) OwnedBy(courierID uuid.UUID) bool {
	return m.CourierID != nil && *m.CourierID == courierID
}

// secretMetaKeys never leave the service over courier-facing surfaces. The
// delivery OTP belongs to the recipient; a courier who can read it could
// confirm a delivery that never happened.
var secretMetaKeys = [...]string{MetaDeliveryOtp, MetaOtpAttempts}

// Redacted returns a copy of the mission safe to hand to couriers and live
// subscribers. The original is left untouched.
func (m *Mission) Redacted() *Mission {
	cp := *m
	if m.Metadata == nil {
		return &cp
	}
	cp.Metadata = make(map[string]any, len(m.Metadata))
	for k, v := range m.Metadata {
		cp.Metadata[k] = v
	}
	for _, k := range secretMetaKeys {
		delete(cp.Metadata, k)
	}
	return &cp
}

// MetaString reads a string value out of the metadata map; missing or
// non-string values come back empty.
func (m *Mission) MetaString(key string) string {
	if m.Metadata == nil {
		return ""
	}
	if v, ok := m.Metadata[key].(string); ok {
		return v
	}
	return ""
}

// MetaInt tolerates the float64 that json decoding produces for numbers.
func (m *Mission) MetaInt(key string) int {
	if m.Metadata == nil {
		return 0
	}
	switch v := m.Metadata[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

func (m *Mission) MetaBool(key string) bool {
	if m.Metadata == nil {
		return false
	}
	v, _ := m.Metadata[key].(bool)
	return v
}

func (m *Mission) MetaFloat(key string) float64 {
	if m.Metadata == nil {
		return 0
	}
	switch v := m.Metadata[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}
