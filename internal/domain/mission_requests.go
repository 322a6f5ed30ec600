package domain

import "github.com/google/uuid"

type CreateMissionRequest struct {
	Type       MissionType `json:"type" validate:"required,oneof=FOOD_DELIVERY PRIVATE_PARCEL RIDE_HAILING"`
	OrderID    *uuid.UUID  `json:"order_id,omitempty"`
	ClientID   uuid.UUID   `json:"client_id" validate:"required"`
	MerchantID *uuid.UUID  `json:"merchant_id,omitempty"`

	OriginAddress      string  `json:"origin_address" validate:"required"`
	OriginLat          float64 `json:"origin_lat" validate:"lat"`
	OriginLng          float64 `json:"origin_lng" validate:"lng"`
	DestinationAddress string  `json:"destination_address" validate:"required"`
	DestinationLat     float64 `json:"destination_lat" validate:"lat"`
	DestinationLng     float64 `json:"destination_lng" validate:"lng"`

	EstimatedPrice float64        `json:"estimated_price" validate:"min=0"`
	CourierTip     float64        `json:"courier_tip" validate:"min=0"`
	Metadata       map[string]any `json:"metadata,omitempty"`
}

// AvailableFilter narrows the claimable pool for courier discovery.
// When Lat/Lng are set the search is a radius query around that point.
type AvailableFilter struct {
	Type     *MissionType `json:"type,omitempty"`
	Lat      *float64     `json:"lat,omitempty"`
	Lng      *float64     `json:"lng,omitempty"`
	RadiusKM float64      `json:"radius_km,omitempty"`
	Limit    int          `json:"limit,omitempty"`
}

type UpdateStatusRequest struct {
	Status   MissionStatus  `json:"status" validate:"required"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

type VerifyDeliveryRequest struct {
	Otp   string         `json:"otp" validate:"required,len=4,numeric"`
	Proof map[string]any `json:"proof,omitempty"`
}

type LocationUpdateRequest struct {
	Lat float64 `json:"lat" validate:"lat"`
	Lng float64 `json:"lng" validate:"lng"`
}
