package entity

import "time"

// ArchivedBooking is a copy of a completed booking moved out of the active
// store, stamped with the archival time and a back-reference to the
// original id.
type ArchivedBooking struct {
	ID            string           `bson:"_id,omitempty" json:"id"`
	OriginalID    string           `bson:"originalId" json:"originalId"`
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
	ArchivedAt    time.Time        `bson:"archivedAt" json:"archivedAt"`
}

// NewArchivedBooking copies a booking's full field set into an archive record
func NewArchivedBooking(b *Booking, archivedAt time.Time) *ArchivedBooking {
	return &ArchivedBooking{
		OriginalID:    b.ID,
		UserID:        b.UserID,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		CustomerPhone: b.CustomerPhone,
		Address:       b.Address,
		Pincode:       b.Pincode,
		ScheduledDate: b.ScheduledDate,
		ScheduledTime: b.ScheduledTime,
		Services:      b.Services,
		TotalAmount:   b.TotalAmount,
		PaymentMethod: b.PaymentMethod,
		PaymentStatus: b.PaymentStatus,
		Status:        b.Status,
		AdminReply:    b.AdminReply,
		CreatedAt:     b.CreatedAt,
		ArchivedAt:    archivedAt,
	}
}
