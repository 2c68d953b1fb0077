package repository

import "context"

// PaymentGateway defines the interface for the card/UPI payment processor
type PaymentGateway interface {
	// CreateOrder registers an order for the given amount (in rupees) and
	// returns the processor's order id. The receipt ties the order back to
	// a booking.
	CreateOrder(ctx context.Context, amount float64, receipt string) (string, error)
	// VerifySignature checks the processor's callback signature for an
	// order/payment pair.
	VerifySignature(orderID, paymentID, signature string) bool
}
