package entity

import "time"

// Notification status
const (
	NotificationPending  = "pending"
	NotificationAccepted = "accepted"
	NotificationRejected = "rejected"
)

// NotificationService is the snapshot of a requested service kept on a
// notification. It is written once at booking creation and never updated,
// so it can go stale relative to the booking.
type NotificationService struct {
	Name        string    `bson:"name" json:"name"`
	Price       float64   `bson:"price" json:"price"`
	Quantity    int       `bson:"quantity" json:"quantity"`
	BookingDate time.Time `bson:"bookingDate" json:"bookingDate"`
}

// Notification is the admin-facing record of a booking creation event
type Notification struct {
	ID          string                `bson:"_id,omitempty" json:"id"`
	Email       string                `bson:"email" json:"email"`
	Services    []NotificationService `bson:"services" json:"services"`
	TotalAmount float64               `bson:"totalAmount" json:"totalAmount"`
	Status      string                `bson:"status" json:"status"`
	CreatedAt   time.Time             `bson:"createdAt" json:"createdAt"`
	IsRead      bool                  `bson:"isRead" json:"isRead"`
}
