package response

import "golftrip-service/internal/module/booking/models/entity"

type UserServiceValidate struct {
	IsValid bool   `json:"is_valid"`
	UserID  string `json:"user_id"`
	Email   string `json:"email"`
	Role    string `json:"role"`
}

type PaymentSummary struct {
	ID              int64   `json:"id"`
	XenditInvoiceID string  `json:"xendit_invoice_id,omitempty"`
	Amount          float64 `json:"amount"`
	Status          string  `json:"status"`
	PaidAt          string  `json:"paid_at,omitempty"`
	PaymentMethod   string  `json:"payment_method,omitempty"`
}

type Booking struct {
	ID              string                 `json:"id"`
	UserID          string                 `json:"user_id"`
	BookingType     string                 `json:"booking_type"`
	BookingDetails  entity.BookingDetails  `json:"booking_details"`
	VendorApprovals entity.VendorApprovals `json:"vendor_approvals"`
	Status          string                 `json:"status"`
	TotalAmount     float64                `json:"total_amount"`
	Notes           string                 `json:"notes,omitempty"`
	CreatedAt       string                 `json:"created_at"`
	Payment         *PaymentSummary        `json:"payment,omitempty"`
}

type InvoiceCreated struct {
	InvoiceURL string `json:"invoiceUrl"`
	InvoiceID  string `json:"invoiceId"`
	PaymentID  int64  `json:"paymentId"`
	ExpiryDate string `json:"expiryDate,omitempty"`
}

// XenditInvoice is the gateway's invoice-creation response.
type XenditInvoice struct {
	ID         string  `json:"id"`
	ExternalID string  `json:"external_id"`
	Status     string  `json:"status"`
	Amount     float64 `json:"amount"`
	InvoiceURL string  `json:"invoice_url"`
	ExpiryDate string  `json:"expiry_date"`
}
