// Package pricing computes courier earnings and delivery fees. All amounts
// are in CRC (Costa Rican colón).
package pricing

import "math"

const (
	BaseCourierFee    = 500.0 // per delivery
	PerKMRate         = 300.0
	MinCourierPayment = 800.0
	MaxCourierPayment = 5000.0

	SurgePoolThreshold = 5 // available missions in pool that trigger surge
	SurgeMultiplier    = 1.25
	PlatformCut        = 0.10
)

// Average speeds in km/h for ETA estimates.
const (
	speedDefault = 20.0
	pickupBuffer = 5 // minutes to park and collect
)

// CourierEarnings is BASE + distance*rate, surged, clamped to min/max.
// Tip always goes 100% to the courier and is never clamped.
func CourierEarnings(distanceKM float64, surge bool, tip float64) float64 {
	mult := 1.0
	if surge {
		mult = SurgeMultiplier
	}
	base := (BaseCourierFee + distanceKM*PerKMRate) * mult
	clamped := math.Min(MaxCourierPayment, math.Max(MinCourierPayment, base))
	return math.Round(clamped + tip)
}

// DeliveryFee is the customer-facing charge: courier earnings grossed up by
// the platform cut.
func DeliveryFee(distanceKM float64, surge bool) float64 {
	courierPart := CourierEarnings(distanceKM, surge, 0)
	return math.Round(courierPart / (1 - PlatformCut))
}

// EstimatedMinutes includes the pickup buffer and never promises under 10.
func EstimatedMinutes(distanceKM float64) int {
	travel := distanceKM / speedDefault * 60
	mins := int(math.Round(travel + pickupBuffer))
	if mins < 10 {
		return 10
	}
	return mins
}

func IsSurge(availableCount int) bool {
	return availableCount >= SurgePoolThreshold
}
