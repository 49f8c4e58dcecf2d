package statemachine

import "rex-dinner-api/models"

// OrderPipeline is the intended preparation flow shown to staff. Staff may
// set any known status at any time; the pipeline only drives the panel's
// suggested next step and the public workflow endpoint.
var OrderPipeline = []models.OrderStatus{
	models.OrderNew,
	models.OrderPreparing,
	models.OrderPrepared,
	models.OrderDelivered,
}

// ReservationOutcomes are the staff decisions available on a new
// reservation. Once set, the panel offers no way back to "Neu".
var ReservationOutcomes = []models.ReservationStatus{
	models.ReservationAccepted,
	models.ReservationDeclined,
}

// KnownOrderStatus reports whether the value is a recognized order status.
func KnownOrderStatus(status models.OrderStatus) bool {
	for _, s := range OrderPipeline {
		if s == status {
			return true
		}
	}
	return false
}

// KnownReservationStatus reports whether the value is a recognized
// reservation status.
func KnownReservationStatus(status models.ReservationStatus) bool {
	if status == models.ReservationNew {
		return true
	}
	for _, s := range ReservationOutcomes {
		if s == status {
			return true
		}
	}
	return false
}

// NextOrderStatus returns the pipeline step after the given status, or
// ok=false when the status is terminal or unknown.
func NextOrderStatus(status models.OrderStatus) (models.OrderStatus, bool) {
	for i, s := range OrderPipeline {
		if s == status && i+1 < len(OrderPipeline) {
			return OrderPipeline[i+1], true
		}
	}
	return "", false
}
