package request

type GolfBooking struct {
	CourseID string `json:"course_id" validate:"required"`
	Date     string `json:"date" validate:"required"`
	TeeTime  string `json:"tee_time"`
	Players  int    `json:"players" validate:"omitempty,gte=1"`
}

type HotelBooking struct {
	HotelID  string `json:"hotel_id" validate:"required"`
	CheckIn  string `json:"check_in" validate:"required"`
	CheckOut string `json:"check_out" validate:"required"`
	Rooms    int    `json:"rooms" validate:"omitempty,gte=1"`
	Guests   int    `json:"guests" validate:"omitempty,gte=1"`
}

type TravelBooking struct {
	PackageID     string `json:"package_id" validate:"required"`
	DepartureDate string `json:"departure_date" validate:"required"`
	Passengers    int    `json:"passengers" validate:"omitempty,gte=1"`
}

type BookingDetails struct {
	Golf   *GolfBooking   `json:"golf,omitempty"`
	Hotel  *HotelBooking  `json:"hotel,omitempty"`
	Travel *TravelBooking `json:"travel,omitempty"`
}

type CreateBooking struct {
	BookingType    string         `json:"booking_type" validate:"required,oneof=golf hotel travel package"`
	BookingDetails BookingDetails `json:"booking_details"`
	TotalAmount    float64        `json:"total_amount" validate:"required,gt=0"`
	Notes          string         `json:"notes"`
}

type VendorDecision struct {
	BookingID string `json:"booking_id" validate:"required,uuid4"`
	Action    string `json:"action" validate:"required,oneof=approve reject"`
	Notes     string `json:"notes"`
}

// PaymentWebhook is the gateway's invoice callback payload.
type PaymentWebhook struct {
	ID                 string  `json:"id"`
	ExternalID         string  `json:"external_id" validate:"required"`
	Status             string  `json:"status" validate:"required"`
	Amount             float64 `json:"amount"`
	PaidAmount         float64 `json:"paid_amount"`
	PayerEmail         string  `json:"payer_email"`
	PaidAt             string  `json:"paid_at"`
	PaymentMethod      string  `json:"payment_method"`
	PaymentChannel     string  `json:"payment_channel"`
	PaymentDestination string  `json:"payment_destination"`
}

type InvoiceItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Category string  `json:"category,omitempty"`
}

// XenditInvoice is the outbound invoice-creation request to the gateway.
type XenditInvoice struct {
	ExternalID         string        `json:"external_id"`
	Amount             float64       `json:"amount"`
	PayerEmail         string        `json:"payer_email"`
	Description        string        `json:"description"`
	CustomerName       string        `json:"customer_name,omitempty"`
	CustomerPhone      string        `json:"customer_phone,omitempty"`
	SuccessRedirectURL string        `json:"success_redirect_url"`
	FailureRedirectURL string        `json:"failure_redirect_url"`
	Currency           string        `json:"currency"`
	InvoiceDuration    int           `json:"invoice_duration"`
	Items              []InvoiceItem `json:"items,omitempty"`
}

type Notification struct {
	RecipientID string                 `json:"recipient_id"`
	Type        string                 `json:"type" validate:"required"`
	Title       string                 `json:"title" validate:"required"`
	Message     string                 `json:"message" validate:"required"`
	Data        map[string]interface{} `json:"data"`
}

type PoisonedQueue struct {
	TopicTarget string      `json:"topic_target" validate:"required"`
	ErrorMsg    string      `json:"error_msg" validate:"required"`
	Payload     interface{} `json:"payload" validate:"required"`
}
