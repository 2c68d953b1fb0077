package entity

import (
	"time"
)

// Booking status
const (
	BookingPending   = "pending"
	BookingAccepted  = "accepted"
	BookingRejected  = "rejected"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
)

// Payment status
const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
)

// Payment method
const (
	MethodCard = "card"
	MethodUPI  = "upi"
	MethodCOD  = "cod"
)

// bookingTransitions is the set of legal status changes. Anything not
// listed here, including writing the current status again, is rejected.
var bookingTransitions = map[string][]string{
	BookingPending:  {BookingAccepted, BookingRejected, BookingCancelled},
	BookingAccepted: {BookingCompleted, BookingCancelled},
}

// CanTransition reports whether a booking may move from one status to another
func CanTransition(from, to string) bool {
	for _, t := range bookingTransitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

// ValidBookingStatus reports whether s is a known booking status
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingPending, BookingAccepted, BookingRejected, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

// ValidPaymentStatus reports whether s is a known payment status
func ValidPaymentStatus(s string) bool {
	switch s {
	case PaymentPending, PaymentCompleted, PaymentFailed:
		return true
	}
	return false
}

// ValidPaymentMethod reports whether m is a known payment method
func ValidPaymentMethod(m string) bool {
	switch m {
	case MethodCard, MethodUPI, MethodCOD:
		return true
	}
	return false
}

// BookingService is a single line item on a booking
type BookingService struct {
	ServiceID   string  `bson:"serviceId" json:"serviceId"`
	ServiceName string  `bson:"serviceName" json:"serviceName"`
	Quantity    int     `bson:"quantity" json:"quantity"`
	Price       float64 `bson:"price" json:"price"`
	TotalPrice  float64 `bson:"totalPrice" json:"totalPrice"`
}

// Booking is a customer's scheduled service order
type Booking struct {
	ID            string           `bson:"_id,omitempty" json:"id"`
	UserID        string           `bson:"userId" json:"userId"`
	CustomerName  string           `bson:"customerName" json:"customerName"`
	CustomerEmail string           `bson:"customerEmail" json:"customerEmail"`
	CustomerPhone string           `bson:"customerPhone" json:"customerPhone"`
	Address       string           `bson:"address" json:"address"`
	Pincode       string           `bson:"pincode" json:"pincode"`
	ScheduledDate string           `bson:"scheduledDate" json:"scheduledDate"`
	ScheduledTime string           `bson:"scheduledTime" json:"scheduledTime"`
	Services      []BookingService `bson:"services" json:"services"`
	TotalAmount   float64          `bson:"totalAmount" json:"totalAmount"`
	PaymentMethod string           `bson:"paymentMethod" json:"paymentMethod"`
	PaymentStatus string           `bson:"paymentStatus" json:"paymentStatus"`
	Status        string           `bson:"status" json:"status"`
	AdminReply    string           `bson:"adminReply,omitempty" json:"adminReply,omitempty"`
	CreatedAt     time.Time        `bson:"createdAt" json:"createdAt"`
}

// LineTotalsMatch checks the creation invariant: the booking total equals
// the sum of the line totals. Mutations never re-check it.
func (b *Booking) LineTotalsMatch() bool {
	var sum float64
	for _, s := range b.Services {
		sum += s.TotalPrice
	}
	return sum == b.TotalAmount
}
