package entity

import (
	"testing"
	"time"
)

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to string }{
		{BookingPending, BookingAccepted},
		{BookingPending, BookingRejected},
		{BookingPending, BookingCancelled},
		{BookingAccepted, BookingCompleted},
		{BookingAccepted, BookingCancelled},
	}
	for _, tc := range allowed {
		if !CanTransition(tc.from, tc.to) {
			t.Errorf("expected %s -> %s to be allowed", tc.from, tc.to)
		}
	}

	denied := []struct{ from, to string }{
		{BookingPending, BookingCompleted},
		{BookingPending, BookingPending},
		{BookingAccepted, BookingRejected},
		{BookingAccepted, BookingPending},
		{BookingRejected, BookingAccepted},
		{BookingRejected, BookingPending},
		{BookingCompleted, BookingCancelled},
		{BookingCompleted, BookingAccepted},
		{BookingCancelled, BookingPending},
		{BookingCancelled, BookingAccepted},
		{"", BookingAccepted},
		{BookingPending, "unknown"},
	}
	for _, tc := range denied {
		if CanTransition(tc.from, tc.to) {
			t.Errorf("expected %s -> %s to be rejected", tc.from, tc.to)
		}
	}
}

func TestValidators(t *testing.T) {
	for _, s := range []string{BookingPending, BookingAccepted, BookingRejected, BookingCompleted, BookingCancelled} {
		if !ValidBookingStatus(s) {
			t.Errorf("expected %q to be a valid booking status", s)
		}
	}
	if ValidBookingStatus("archived") || ValidBookingStatus("") {
		t.Error("unknown booking status accepted")
	}

	for _, s := range []string{PaymentPending, PaymentCompleted, PaymentFailed} {
		if !ValidPaymentStatus(s) {
			t.Errorf("expected %q to be a valid payment status", s)
		}
	}
	if ValidPaymentStatus("refunded") {
		t.Error("unknown payment status accepted")
	}

	for _, m := range []string{MethodCard, MethodUPI, MethodCOD} {
		if !ValidPaymentMethod(m) {
			t.Errorf("expected %q to be a valid payment method", m)
		}
	}
	if ValidPaymentMethod("netbanking") || ValidPaymentMethod("") {
		t.Error("unknown payment method accepted")
	}
}

func TestLineTotalsMatch(t *testing.T) {
	b := &Booking{
		Services: []BookingService{
			{ServiceName: "Fan Repair", Quantity: 1, Price: 109, TotalPrice: 109},
			{ServiceName: "Switchboard Fitting", Quantity: 2, Price: 50, TotalPrice: 100},
		},
		TotalAmount: 209,
	}
	if !b.LineTotalsMatch() {
		t.Error("expected totals to match")
	}

	b.TotalAmount = 210
	if b.LineTotalsMatch() {
		t.Error("expected mismatch to be detected")
	}
}

func TestNewArchivedBookingCopiesAllFields(t *testing.T) {
	b := &Booking{
		ID:            "abc123",
		UserID:        "u1",
		CustomerName:  "Ravi",
		CustomerEmail: "ravi@example.com",
		Address:       "12 MG Road",
		Pincode:       "560001",
		Services:      []BookingService{{ServiceName: "Fan Repair", Quantity: 1, Price: 109, TotalPrice: 109}},
		TotalAmount:   109,
		PaymentMethod: MethodCOD,
		PaymentStatus: PaymentPending,
		Status:        BookingCompleted,
		AdminReply:    "on our way",
	}

	archivedAt := time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)
	archived := NewArchivedBooking(b, archivedAt)
	if !archived.ArchivedAt.Equal(archivedAt) {
		t.Errorf("expected archivedAt %v, got %v", archivedAt, archived.ArchivedAt)
	}
	if archived.OriginalID != "abc123" {
		t.Errorf("expected originalId abc123, got %q", archived.OriginalID)
	}
	if archived.ID != "" {
		t.Error("archive record must get its own id on insert")
	}
	if archived.CustomerEmail != b.CustomerEmail || archived.TotalAmount != b.TotalAmount ||
		archived.Status != b.Status || archived.AdminReply != b.AdminReply {
		t.Error("archive record did not copy booking fields")
	}
	if len(archived.Services) != 1 || archived.Services[0].ServiceName != "Fan Repair" {
		t.Error("archive record did not copy services")
	}
}
