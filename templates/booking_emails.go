package templates

import (
	"fmt"
	"strings"

	"github.com/prkservices/booking-service/internal/domain/entity"
	"github.com/prkservices/booking-service/internal/domain/repository"
)

// Mail bodies mirror the notices the business has always sent: a detailed
// admin copy on every new booking, a confirmation to the customer, and
// rejection/cancellation notices.

func serviceListItems(services []entity.BookingService, withPrices bool) string {
	var b strings.Builder
	for _, s := range services {
		if withPrices {
			fmt.Fprintf(&b, "<li>%s - Quantity: %d - Price: ₹%.2f (Total: ₹%.2f)</li>",
				s.ServiceName, s.Quantity, s.Price, s.TotalPrice)
		} else {
			fmt.Fprintf(&b, "<li>%s - Quantity: %d</li>", s.ServiceName, s.Quantity)
		}
	}
	return b.String()
}

// AdminBookingMail is the admin notice for a newly created booking
func AdminBookingMail(adminEmail string, b *entity.Booking) *repository.Mail {
	body := fmt.Sprintf(`<h2>New Service Booking Details</h2>
<p><strong>Customer Name:</strong> %s</p>
<p><strong>Customer Email:</strong> %s</p>
<p><strong>Customer Phone:</strong> %s</p>
<p><strong>Address:</strong> %s</p>
<p><strong>Pincode:</strong> %s</p>
<p><strong>Scheduled Date:</strong> %s</p>
<p><strong>Scheduled Time:</strong> %s</p>
<p><strong>Payment Method:</strong> %s</p>
<h3>Services Booked:</h3>
<ul>%s</ul>
<p><strong>Total Amount:</strong> ₹%.2f</p>
<p><strong>Payment Status:</strong> %s</p>
<p><strong>Booking Status:</strong> %s</p>`,
		b.CustomerName, b.CustomerEmail, b.CustomerPhone, b.Address, b.Pincode,
		b.ScheduledDate, b.ScheduledTime, b.PaymentMethod,
		serviceListItems(b.Services, true), b.TotalAmount, b.PaymentStatus, b.Status)

	return &repository.Mail{
		To:       adminEmail,
		Subject:  "New Service Booking",
		HTMLBody: body,
	}
}

// CustomerConfirmationMail is the confirmation sent to the customer on creation
func CustomerConfirmationMail(b *entity.Booking) *repository.Mail {
	body := fmt.Sprintf(`<h2>Booking Confirmation</h2>
<p>Dear %s,</p>
<p>Thank you for booking our services. Here are your booking details:</p>
<p><strong>Scheduled Date:</strong> %s</p>
<p><strong>Scheduled Time:</strong> %s</p>
<h3>Services Booked:</h3>
<ul>%s</ul>
<p><strong>Total Amount:</strong> ₹%.2f</p>
<p><strong>Payment Method:</strong> %s</p>
<p>We will contact you shortly to confirm your booking.</p>
<p>Thank you for choosing our services!</p>`,
		b.CustomerName, b.ScheduledDate, b.ScheduledTime,
		serviceListItems(b.Services, false), b.TotalAmount, b.PaymentMethod)

	return &repository.Mail{
		To:       b.CustomerEmail,
		Subject:  "Your Service Booking Confirmation",
		HTMLBody: body,
	}
}

// RejectionMail is the notice sent when an admin rejects a booking
func RejectionMail(b *entity.Booking) *repository.Mail {
	body := fmt.Sprintf(`<h2>Booking Rejection Notice</h2>
<p>Dear %s,</p>
<p>We regret to inform you that your service booking has been rejected due to technician unavailability.</p>
<h3>Booking Details:</h3>
<p><strong>Booking ID:</strong> %s</p>
<p><strong>Scheduled Date:</strong> %s</p>
<p><strong>Scheduled Time:</strong> %s</p>
<h3>Services Requested:</h3>
<ul>%s</ul>
<p>Please try booking for a different time slot. We apologize for any inconvenience caused.</p>
<p>Best regards,<br>PRK Service Group</p>`,
		b.CustomerName, b.ID, b.ScheduledDate, b.ScheduledTime,
		serviceListItems(b.Services, false))

	return &repository.Mail{
		To:       b.CustomerEmail,
		Subject:  "Booking Rejection Notification",
		HTMLBody: body,
	}
}

// CancellationAdminMail is the admin notice for a customer cancellation
func CancellationAdminMail(adminEmail string, b *entity.Booking) *repository.Mail {
	body := fmt.Sprintf(`<h2>Booking Cancellation Notice</h2>
<p>A booking has been cancelled by the customer.</p>
<h3>Booking Details:</h3>
<p><strong>Booking ID:</strong> %s</p>
<p><strong>Customer:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Scheduled Date:</strong> %s</p>
<p><strong>Scheduled Time:</strong> %s</p>
<p><strong>Total Amount:</strong> ₹%.2f</p>`,
		b.ID, b.CustomerName, b.CustomerEmail, b.ScheduledDate, b.ScheduledTime, b.TotalAmount)

	return &repository.Mail{
		To:       adminEmail,
		Subject:  "Booking Cancellation Notice",
		HTMLBody: body,
	}
}

// CancellationCustomerMail confirms a cancellation to the customer
func CancellationCustomerMail(b *entity.Booking) *repository.Mail {
	body := fmt.Sprintf(`<h2>Booking Cancellation Confirmation</h2>
<p>Dear %s,</p>
<p>Your booking has been successfully cancelled as per your request.</p>
<h3>Cancelled Booking Details:</h3>
<p><strong>Booking ID:</strong> %s</p>
<p><strong>Scheduled Date:</strong> %s</p>
<p><strong>Scheduled Time:</strong> %s</p>
<p>We hope to serve you again in the future.</p>
<p>Best regards,<br>PRK Service Group</p>`,
		b.CustomerName, b.ID, b.ScheduledDate, b.ScheduledTime)

	return &repository.Mail{
		To:       b.CustomerEmail,
		Subject:  "Booking Cancellation Confirmation",
		HTMLBody: body,
	}
}

// OTPMail carries a login code
func OTPMail(email, code string, ttlMinutes int) *repository.Mail {
	return &repository.Mail{
		To:       email,
		Subject:  "Your OTP Code",
		HTMLBody: fmt.Sprintf("<p>Your OTP is <strong>%s</strong>. It is valid for %d minutes.</p>", code, ttlMinutes),
	}
}
