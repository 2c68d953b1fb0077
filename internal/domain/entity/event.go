package entity

// Realtime event names delivered to connected sessions
const (
	EventNewBooking          = "newBooking"
	EventBookingStatusUpdate = "bookingStatusUpdate"
	EventPaymentStatusUpdate = "paymentStatusUpdate"
	EventAdminReplyUpdate    = "adminReplyUpdate"
	EventBookingRemoved      = "bookingRemoved"
)

// Event is a single realtime message: a name plus a JSON-serializable payload
type Event struct {
	Name    string      `json:"event"`
	Payload interface{} `json:"payload"`
}
