package entity

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// Booking statuses. Cancelled and completed are terminal.
const (
	BookingPendingApproval = "pending_approval"
	BookingApproved        = "approved"
	BookingPendingPayment  = "pending_payment"
	BookingPaid            = "paid"
	BookingConfirmed       = "confirmed"
	BookingCancelled       = "cancelled"
	BookingCompleted       = "completed"
)

const (
	BookingTypeGolf    = "golf"
	BookingTypeHotel   = "hotel"
	BookingTypeTravel  = "travel"
	BookingTypePackage = "package"
)

const (
	ApprovalPending  = "pending"
	ApprovalApproved = "approved"
	ApprovalRejected = "rejected"
)

const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
	PaymentExpired = "expired"
	PaymentFailed  = "failed"
)

const (
	SettlementPending    = "pending"
	SettlementProcessing = "processing"
	SettlementCompleted  = "completed"
	SettlementFailed     = "failed"
)

const (
	RoleAdmin        = "admin"
	RoleUser         = "user"
	RoleGolfVendor   = "golf_vendor"
	RoleHotelVendor  = "hotel_vendor"
	RoleTravelVendor = "travel_vendor"
)

// Principal is the resolved caller identity, built once by the auth
// middleware and passed into every usecase.
type Principal struct {
	UserID string
	Email  string
	Role   string
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

func (p Principal) IsVendor() bool {
	switch p.Role {
	case RoleGolfVendor, RoleHotelVendor, RoleTravelVendor:
		return true
	}
	return false
}

type VendorApproval struct {
	Status     string     `json:"status"`
	ApprovedAt *time.Time `json:"approved_at,omitempty"`
	Notes      string     `json:"notes,omitempty"`
}

// VendorApprovals maps vendor id to that vendor's decision. Keys are fixed
// at booking creation; only the values mutate afterwards.
type VendorApprovals map[string]VendorApproval

// Evaluate derives the booking status from the current decisions:
// a single rejection cancels the booking no matter what else arrived,
// unanimous approval moves it to approved, anything else stays pending.
// An empty map needs no gate and evaluates to approved.
func (va VendorApprovals) Evaluate() string {
	allApproved := true
	for _, approval := range va {
		if approval.Status == ApprovalRejected {
			return BookingCancelled
		}
		if approval.Status != ApprovalApproved {
			allApproved = false
		}
	}
	if allApproved {
		return BookingApproved
	}
	return BookingPendingApproval
}

func (va VendorApprovals) VendorIDs() []string {
	ids := make([]string, 0, len(va))
	for id := range va {
		ids = append(ids, id)
	}
	return ids
}

func (va VendorApprovals) Value() (driver.Value, error) {
	if va == nil {
		return json.Marshal(VendorApprovals{})
	}
	return json.Marshal(va)
}

func (va *VendorApprovals) Scan(src interface{}) error {
	return scanJSON(src, va)
}

type GolfDetails struct {
	CourseID string `json:"course_id"`
	VendorID string `json:"vendor_id"`
	Date     string `json:"date"`
	TeeTime  string `json:"tee_time"`
	Players  int    `json:"players"`
}

type HotelDetails struct {
	HotelID  string `json:"hotel_id"`
	VendorID string `json:"vendor_id"`
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
	Rooms    int    `json:"rooms"`
	Guests   int    `json:"guests"`
}

type TravelDetails struct {
	PackageID     string `json:"package_id"`
	VendorID      string `json:"vendor_id"`
	DepartureDate string `json:"departure_date"`
	Passengers    int    `json:"passengers"`
}

// BookingDetails holds one sub-item per catalog kind. Vendor ids are
// resolved from the catalog once at creation and stored alongside.
type BookingDetails struct {
	Golf   *GolfDetails   `json:"golf,omitempty"`
	Hotel  *HotelDetails  `json:"hotel,omitempty"`
	Travel *TravelDetails `json:"travel,omitempty"`
}

func (bd BookingDetails) IsEmpty() bool {
	return bd.Golf == nil && bd.Hotel == nil && bd.Travel == nil
}

func (bd BookingDetails) Value() (driver.Value, error) {
	return json.Marshal(bd)
}

func (bd *BookingDetails) Scan(src interface{}) error {
	return scanJSON(src, bd)
}

type Booking struct {
	ID              uuid.UUID       `db:"id"`
	UserID          string          `db:"user_id"`
	BookingType     string          `db:"booking_type"`
	BookingDetails  BookingDetails  `db:"booking_details"`
	VendorApprovals VendorApprovals `db:"vendor_approvals"`
	Status          string          `db:"status"`
	TotalAmount     float64         `db:"total_amount"`
	Notes           string          `db:"notes"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       sql.NullTime    `db:"updated_at"`
}

type Payment struct {
	ID               int64          `db:"id"`
	BookingID        uuid.UUID      `db:"booking_id"`
	XenditInvoiceID  string         `db:"xendit_invoice_id"`
	XenditExternalID string         `db:"xendit_external_id"`
	Amount           float64        `db:"amount"`
	Status           string         `db:"status"`
	PaidAt           sql.NullTime   `db:"paid_at"`
	PaymentMethod    sql.NullString `db:"payment_method"`
	PaymentChannel   sql.NullString `db:"payment_channel"`
	CreatedAt        time.Time      `db:"created_at"`
	UpdatedAt        sql.NullTime   `db:"updated_at"`
}

type SplitSettlement struct {
	ID        int64        `db:"id"`
	PaymentID int64        `db:"payment_id"`
	VendorID  string       `db:"vendor_id"`
	Amount    float64      `db:"amount"`
	Status    string       `db:"status"`
	SettledAt sql.NullTime `db:"settled_at"`
	Notes     string       `db:"notes"`
	CreatedAt time.Time    `db:"created_at"`
}

// CatalogItem is the read-only projection of a vendor-owned sellable item
// (golf course, hotel, travel package).
type CatalogItem struct {
	ID       string  `db:"id" json:"id"`
	VendorID string  `db:"vendor_id" json:"vendor_id"`
	Name     string  `db:"name" json:"name"`
	Price    float64 `db:"price" json:"price"`
}

type JSONMap map[string]interface{}

func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return json.Marshal(JSONMap{})
	}
	return json.Marshal(m)
}

func (m *JSONMap) Scan(src interface{}) error {
	return scanJSON(src, m)
}

type Notification struct {
	ID          int64          `db:"id"`
	RecipientID sql.NullString `db:"recipient_id"`
	Type        string         `db:"type"`
	Title       string         `db:"title"`
	Message     string         `db:"message"`
	Data        JSONMap        `db:"data"`
	CreatedAt   time.Time      `db:"created_at"`
}

// BookingFilter narrows listings; zero-value fields are ignored.
type BookingFilter struct {
	UserID      string
	VendorID    string
	Status      string
	BookingType string
}

func scanJSON(src, dest interface{}) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return fmt.Errorf("unsupported scan type %T", src)
	}
}
