package usecases

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"golftrip-service/config"
	"golftrip-service/internal/module/booking/models/entity"
	"golftrip-service/internal/module/booking/models/request"
	"golftrip-service/internal/module/booking/models/response"
	"golftrip-service/internal/module/booking/repositories"
	"golftrip-service/internal/pkg/errors"
	"golftrip-service/internal/pkg/log"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

const TopicNotification = "notification"

// AllocationFunc splits a paid amount into per-vendor settlement rows.
// Swappable so the payout policy can change without touching the webhook path.
type AllocationFunc func(payment *entity.Payment, vendorIDs []string, feeRate float64) []entity.SplitSettlement

// EqualSplit takes the platform fee off the top and divides the remainder
// evenly across vendors, rounded to whole currency units. Every vendor is
// owed at least one minor unit; the fee absorbs the shortfall on tiny
// amounts so no settlement row is ever zero.
func EqualSplit(payment *entity.Payment, vendorIDs []string, feeRate float64) []entity.SplitSettlement {
	if len(vendorIDs) == 0 {
		return nil
	}
	platformFee := math.Round(payment.Amount * feeRate)
	vendorPool := payment.Amount - platformFee
	perVendor := math.Round(vendorPool / float64(len(vendorIDs)))
	// tiny amounts still owe every vendor one minor unit, eating the fee
	if perVendor < 1 {
		perVendor = 1
	}

	settlements := make([]entity.SplitSettlement, 0, len(vendorIDs))
	for _, vendorID := range vendorIDs {
		settlements = append(settlements, entity.SplitSettlement{
			PaymentID: payment.ID,
			VendorID:  vendorID,
			Amount:    perVendor,
			Status:    entity.SettlementPending,
			Notes:     fmt.Sprintf("Auto-generated from payment %d", payment.ID),
		})
	}
	return settlements
}

type usecase struct {
	repo      repositories.Repositories
	log       log.Logger
	publisher message.Publisher
	cfgXendit *config.XenditConfig
	allocate  AllocationFunc
}

type Usecase interface {
	CreateBooking(ctx context.Context, principal entity.Principal, payload *request.CreateBooking) (response.Booking, error)
	ShowBookings(ctx context.Context, principal entity.Principal, status, bookingType string) ([]response.Booking, error)
	VendorDecision(ctx context.Context, principal entity.Principal, payload *request.VendorDecision) (response.Booking, error)
	CreateInvoice(ctx context.Context, principal entity.Principal, bookingID string) (response.InvoiceCreated, error)
	ProcessPaymentWebhook(ctx context.Context, payload *request.PaymentWebhook) error
	ConsumeNotificationQueue(ctx context.Context, payload *request.Notification) error
}

func New(repo repositories.Repositories, log log.Logger, publisher message.Publisher, cfgXendit *config.XenditConfig, allocate AllocationFunc) Usecase {
	if allocate == nil {
		allocate = EqualSplit
	}
	return &usecase{
		repo:      repo,
		log:       log,
		publisher: publisher,
		cfgXendit: cfgXendit,
		allocate:  allocate,
	}
}

func (u *usecase) CreateBooking(ctx context.Context, principal entity.Principal, payload *request.CreateBooking) (response.Booking, error) {
	if payload.BookingDetails.Golf == nil && payload.BookingDetails.Hotel == nil && payload.BookingDetails.Travel == nil {
		return response.Booking{}, errors.BadRequest("booking details are required")
	}
	if payload.TotalAmount <= 0 {
		return response.Booking{}, errors.BadRequest("total amount must be positive")
	}

	// Resolve owning vendors from the catalog once; the approvals map and
	// the quoted amount are locked in from here on.
	details := entity.BookingDetails{}
	approvals := entity.VendorApprovals{}

	if g := payload.BookingDetails.Golf; g != nil {
		course, err := u.repo.FindGolfCourseByID(ctx, g.CourseID)
		if err != nil {
			return response.Booking{}, err
		}
		if course.ID == "" {
			return response.Booking{}, errors.NotFoundError("golf course not found")
		}
		approvals[course.VendorID] = entity.VendorApproval{Status: entity.ApprovalPending}
		details.Golf = &entity.GolfDetails{
			CourseID: g.CourseID,
			VendorID: course.VendorID,
			Date:     g.Date,
			TeeTime:  g.TeeTime,
			Players:  g.Players,
		}
	}

	if h := payload.BookingDetails.Hotel; h != nil {
		hotel, err := u.repo.FindHotelByID(ctx, h.HotelID)
		if err != nil {
			return response.Booking{}, err
		}
		if hotel.ID == "" {
			return response.Booking{}, errors.NotFoundError("hotel not found")
		}
		approvals[hotel.VendorID] = entity.VendorApproval{Status: entity.ApprovalPending}
		details.Hotel = &entity.HotelDetails{
			HotelID:  h.HotelID,
			VendorID: hotel.VendorID,
			CheckIn:  h.CheckIn,
			CheckOut: h.CheckOut,
			Rooms:    h.Rooms,
			Guests:   h.Guests,
		}
	}

	if t := payload.BookingDetails.Travel; t != nil {
		pkg, err := u.repo.FindTravelPackageByID(ctx, t.PackageID)
		if err != nil {
			return response.Booking{}, err
		}
		if pkg.ID == "" {
			return response.Booking{}, errors.NotFoundError("travel package not found")
		}
		approvals[pkg.VendorID] = entity.VendorApproval{Status: entity.ApprovalPending}
		details.Travel = &entity.TravelDetails{
			PackageID:     t.PackageID,
			VendorID:      pkg.VendorID,
			DepartureDate: t.DepartureDate,
			Passengers:    t.Passengers,
		}
	}

	status := entity.BookingApproved
	if len(approvals) > 0 {
		status = entity.BookingPendingApproval
	}

	booking := entity.Booking{
		ID:              uuid.New(),
		UserID:          principal.UserID,
		BookingType:     payload.BookingType,
		BookingDetails:  details,
		VendorApprovals: approvals,
		Status:          status,
		TotalAmount:     payload.TotalAmount,
		Notes:           payload.Notes,
		CreatedAt:       time.Now(),
	}

	if err := u.repo.InsertBooking(ctx, &booking); err != nil {
		return response.Booking{}, err
	}

	for vendorID := range approvals {
		u.publishNotification(ctx, vendorID, "approval_needed", "New Booking Request",
			fmt.Sprintf("A new %s booking requires your approval.", booking.BookingType),
			map[string]interface{}{
				"booking_id":   booking.ID.String(),
				"booking_type": booking.BookingType,
				"total_amount": booking.TotalAmount,
			})
	}

	return toBookingResponse(&booking, nil), nil
}

func (u *usecase) ShowBookings(ctx context.Context, principal entity.Principal, status, bookingType string) ([]response.Booking, error) {
	filter := entity.BookingFilter{
		Status:      status,
		BookingType: bookingType,
	}
	switch {
	case principal.IsAdmin():
		// admin sees everything
	case principal.IsVendor():
		filter.VendorID = principal.UserID
	default:
		filter.UserID = principal.UserID
	}

	bookings, err := u.repo.FindBookings(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := make([]response.Booking, 0, len(bookings))
	for i := range bookings {
		payment, err := u.repo.FindPaymentByBookingID(ctx, bookings[i].ID.String())
		if err != nil {
			u.log.Warn(ctx, "error find payment for booking listing", err)
		}
		var summary *response.PaymentSummary
		if payment.ID != 0 {
			summary = toPaymentSummary(&payment)
		}
		resp = append(resp, toBookingResponse(&bookings[i], summary))
	}
	return resp, nil
}

func (u *usecase) VendorDecision(ctx context.Context, principal entity.Principal, payload *request.VendorDecision) (response.Booking, error) {
	mutex, err := u.repo.AcquireBookingLock(ctx, payload.BookingID)
	if err != nil {
		return response.Booking{}, err
	}
	defer u.repo.ReleaseBookingLock(ctx, mutex)

	booking, err := u.repo.FindBookingByID(ctx, payload.BookingID)
	if err != nil {
		return response.Booking{}, err
	}
	if booking.ID == uuid.Nil {
		return response.Booking{}, errors.NotFoundError("booking not found")
	}

	approval, ok := booking.VendorApprovals[principal.UserID]
	if !ok {
		return response.Booking{}, errors.ForbiddenError("not authorized to approve this booking")
	}

	if booking.Status != entity.BookingPendingApproval {
		if booking.Status == entity.BookingCancelled {
			u.log.Warn(ctx, "vendor decision after cancellation ignored", payload.BookingID, principal.UserID)
		}
		return response.Booking{}, errors.UnprocessableEntity("booking is no longer awaiting approval")
	}

	if payload.Action == "approve" {
		now := time.Now()
		approval.Status = entity.ApprovalApproved
		approval.ApprovedAt = &now
	} else {
		approval.Status = entity.ApprovalRejected
	}
	approval.Notes = payload.Notes
	booking.VendorApprovals[principal.UserID] = approval

	booking.Status = booking.VendorApprovals.Evaluate()

	if err := u.repo.UpdateBookingApprovals(ctx, &booking); err != nil {
		return response.Booking{}, err
	}

	title := "Booking Update"
	msg := "A vendor has declined your booking request."
	if approval.Status == entity.ApprovalApproved {
		if booking.Status == entity.BookingApproved {
			title = "Booking Approved!"
			msg = "All vendors have approved your booking. You can now proceed to payment."
		} else {
			msg = "A vendor has approved your booking. Waiting for other approvals."
		}
	}
	u.publishNotification(ctx, booking.UserID, "booking_request", title, msg, map[string]interface{}{
		"booking_id": booking.ID.String(),
		"action":     payload.Action,
		"status":     booking.Status,
	})

	return toBookingResponse(&booking, nil), nil
}

func (u *usecase) CreateInvoice(ctx context.Context, principal entity.Principal, bookingID string) (response.InvoiceCreated, error) {
	mutex, err := u.repo.AcquireBookingLock(ctx, bookingID)
	if err != nil {
		return response.InvoiceCreated{}, err
	}
	defer u.repo.ReleaseBookingLock(ctx, mutex)

	booking, err := u.repo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return response.InvoiceCreated{}, err
	}
	// a booking someone else owns looks the same as a missing one
	if booking.ID == uuid.Nil || (!principal.IsAdmin() && booking.UserID != principal.UserID) {
		return response.InvoiceCreated{}, errors.NotFoundError("booking not found")
	}

	if booking.Status != entity.BookingApproved && booking.Status != entity.BookingPendingPayment {
		return response.InvoiceCreated{}, errors.BadRequest("booking must be approved before payment")
	}

	existing, err := u.repo.FindPendingPaymentByBookingID(ctx, bookingID)
	if err != nil {
		return response.InvoiceCreated{}, err
	}
	if existing.ID != 0 && existing.XenditInvoiceID != "" {
		return response.InvoiceCreated{
			InvoiceURL: fmt.Sprintf("https://checkout.xendit.co/web/%s", existing.XenditInvoiceID),
			InvoiceID:  existing.XenditInvoiceID,
			PaymentID:  existing.ID,
		}, nil
	}

	externalID := fmt.Sprintf("GOLF-%s-%d", strings.ToUpper(bookingID[:8]), time.Now().UnixMilli())

	invoice, err := u.repo.CreateXenditInvoice(ctx, &request.XenditInvoice{
		ExternalID:         externalID,
		Amount:             booking.TotalAmount,
		PayerEmail:         principal.Email,
		Description:        fmt.Sprintf("Golf Tourism Booking - %s", booking.BookingType),
		SuccessRedirectURL: fmt.Sprintf("%s/booking/success?id=%s", u.cfgXendit.AppURL, bookingID),
		FailureRedirectURL: fmt.Sprintf("%s/booking/failed?id=%s", u.cfgXendit.AppURL, bookingID),
		Currency:           u.cfgXendit.Currency,
		InvoiceDuration:    u.cfgXendit.InvoiceDuration,
		Items:              buildInvoiceItems(&booking),
	})
	if err != nil {
		return response.InvoiceCreated{}, err
	}

	payment := entity.Payment{
		ID:               existing.ID,
		BookingID:        booking.ID,
		XenditInvoiceID:  invoice.ID,
		XenditExternalID: externalID,
		Amount:           booking.TotalAmount,
		Status:           entity.PaymentPending,
	}
	if existing.ID != 0 {
		if err := u.repo.UpdatePayment(ctx, &payment); err != nil {
			return response.InvoiceCreated{}, err
		}
	} else {
		id, err := u.repo.InsertPayment(ctx, &payment)
		if err != nil {
			return response.InvoiceCreated{}, err
		}
		payment.ID = id
	}

	if err := u.repo.UpdateBookingStatus(ctx, bookingID, entity.BookingPendingPayment); err != nil {
		return response.InvoiceCreated{}, err
	}

	return response.InvoiceCreated{
		InvoiceURL: invoice.InvoiceURL,
		InvoiceID:  invoice.ID,
		PaymentID:  payment.ID,
		ExpiryDate: invoice.ExpiryDate,
	}, nil
}

// buildInvoiceItems reconstructs a display breakdown for the gateway's
// checkout page. The proportions are cosmetic; settlement math only ever
// reads the payment amount.
func buildInvoiceItems(booking *entity.Booking) []request.InvoiceItem {
	items := []request.InvoiceItem{}

	if g := booking.BookingDetails.Golf; g != nil {
		qty := g.Players
		if qty < 1 {
			qty = 1
		}
		items = append(items, request.InvoiceItem{
			Name:     "Golf Tee Time",
			Quantity: qty,
			Price:    math.Round(booking.TotalAmount * 0.6),
			Category: "Golf",
		})
	}
	if booking.BookingDetails.Hotel != nil {
		items = append(items, request.InvoiceItem{
			Name:     "Hotel Accommodation",
			Quantity: 1,
			Price:    math.Round(booking.TotalAmount * 0.3),
			Category: "Accommodation",
		})
	}
	if t := booking.BookingDetails.Travel; t != nil {
		qty := t.Passengers
		if qty < 1 {
			qty = 1
		}
		items = append(items, request.InvoiceItem{
			Name:     "Travel Package",
			Quantity: qty,
			Price:    math.Round(booking.TotalAmount * 0.1),
			Category: "Travel",
		})
	}

	if len(items) == 0 {
		items = append(items, request.InvoiceItem{
			Name:     "Golf Tourism Package",
			Quantity: 1,
			Price:    booking.TotalAmount,
			Category: "Package",
		})
	}
	return items
}

func (u *usecase) ProcessPaymentWebhook(ctx context.Context, payload *request.PaymentWebhook) error {
	payment, err := u.repo.FindPaymentByExternalID(ctx, payload.ExternalID)
	if err != nil {
		return err
	}
	if payment.ID == 0 {
		// a missed payment confirmation is a revenue bug, so unknown
		// external ids answer loudly instead of acking
		return errors.NotFoundError("payment not found")
	}

	// gateways retry aggressively; serialize concurrent deliveries of the
	// same payment so the settlements-exist guard stays race-free
	mutex, err := u.repo.AcquireBookingLock(ctx, payment.BookingID.String())
	if err != nil {
		return err
	}
	defer u.repo.ReleaseBookingLock(ctx, mutex)

	status := strings.ToLower(payload.Status)
	payment.Status = status
	if status == entity.PaymentPaid {
		paidAt := time.Now()
		if t, err := time.Parse(time.RFC3339, payload.PaidAt); err == nil {
			paidAt = t
		}
		payment.PaidAt = sql.NullTime{Time: paidAt, Valid: true}
		payment.PaymentMethod = sql.NullString{String: payload.PaymentMethod, Valid: payload.PaymentMethod != ""}
		payment.PaymentChannel = sql.NullString{String: payload.PaymentChannel, Valid: payload.PaymentChannel != ""}
	}

	// the payment row is the durable source of truth; everything after this
	// update is replay-safe follow-up
	if err := u.repo.UpdatePayment(ctx, &payment); err != nil {
		return err
	}

	booking, err := u.repo.FindBookingByID(ctx, payment.BookingID.String())
	if err != nil {
		return err
	}
	if booking.ID == uuid.Nil {
		u.log.Error(ctx, "payment references missing booking", payment.ID, payment.BookingID.String())
		return nil
	}

	switch status {
	case entity.PaymentPaid:
		if err := u.repo.UpdateBookingStatus(ctx, booking.ID.String(), entity.BookingPaid); err != nil {
			return err
		}
		u.settleAndNotify(ctx, &payment, &booking)
	case entity.PaymentExpired:
		// keep the booking payable so the user can request a fresh invoice
		if err := u.repo.UpdateBookingStatus(ctx, booking.ID.String(), entity.BookingPendingPayment); err != nil {
			return err
		}
	}

	return nil
}

// settleAndNotify fans out vendor settlements and notifications after a paid
// webhook. Failures are logged and never unwind the committed payment state.
func (u *usecase) settleAndNotify(ctx context.Context, payment *entity.Payment, booking *entity.Booking) {
	vendorIDs := booking.VendorApprovals.VendorIDs()
	sort.Strings(vendorIDs)

	if len(vendorIDs) > 0 {
		count, err := u.repo.CountSettlementsByPaymentID(ctx, payment.ID)
		if err != nil {
			u.log.Error(ctx, "error check existing settlements", payment.ID, err)
			return
		}
		if count == 0 {
			settlements := u.allocate(payment, vendorIDs, u.cfgXendit.PlatformFeeRate)
			if err := u.repo.InsertSettlements(ctx, settlements); err != nil {
				u.log.Error(ctx, "error insert settlements", payment.ID, err)
				return
			}
			u.publishNotification(ctx, "", "settlement", "New payment received - settlements pending",
				fmt.Sprintf("Payment of %.0f received for booking %s. %d vendor settlements pending.", payment.Amount, booking.ID.String(), len(vendorIDs)),
				map[string]interface{}{
					"payment_id":   payment.ID,
					"booking_id":   booking.ID.String(),
					"vendor_count": len(vendorIDs),
					"total_amount": payment.Amount,
				})
		}
	}

	u.publishNotification(ctx, booking.UserID, "payment_received", "Payment Successful!",
		fmt.Sprintf("Your payment of %.0f has been received. Your booking is now confirmed.", payment.Amount),
		map[string]interface{}{
			"payment_id": payment.ID,
			"booking_id": booking.ID.String(),
		})

	for _, vendorID := range vendorIDs {
		u.publishNotification(ctx, vendorID, "payment_received", "Booking Payment Received",
			"Payment received for a booking at your establishment. Settlement pending admin processing.",
			map[string]interface{}{
				"payment_id": payment.ID,
				"booking_id": booking.ID.String(),
			})
	}
}

func (u *usecase) ConsumeNotificationQueue(ctx context.Context, payload *request.Notification) error {
	notification := entity.Notification{
		RecipientID: sql.NullString{String: payload.RecipientID, Valid: payload.RecipientID != ""},
		Type:        payload.Type,
		Title:       payload.Title,
		Message:     payload.Message,
		Data:        entity.JSONMap(payload.Data),
	}
	return u.repo.InsertNotification(ctx, &notification)
}

func (u *usecase) publishNotification(ctx context.Context, recipientID, notifType, title, msg string, data map[string]interface{}) {
	if u.publisher == nil {
		return
	}
	payload, err := json.Marshal(request.Notification{
		RecipientID: recipientID,
		Type:        notifType,
		Title:       title,
		Message:     msg,
		Data:        data,
	})
	if err != nil {
		u.log.Warn(ctx, "error marshal notification", err)
		return
	}
	if err := u.publisher.Publish(TopicNotification, message.NewMessage(watermill.NewUUID(), payload)); err != nil {
		u.log.Warn(ctx, "error publish notification", err)
	}
}

func toPaymentSummary(payment *entity.Payment) *response.PaymentSummary {
	summary := &response.PaymentSummary{
		ID:              payment.ID,
		XenditInvoiceID: payment.XenditInvoiceID,
		Amount:          payment.Amount,
		Status:          payment.Status,
	}
	if payment.PaidAt.Valid {
		summary.PaidAt = payment.PaidAt.Time.Format("2006-01-02 15:04:05")
	}
	if payment.PaymentMethod.Valid {
		summary.PaymentMethod = payment.PaymentMethod.String
	}
	return summary
}

func toBookingResponse(booking *entity.Booking, payment *response.PaymentSummary) response.Booking {
	return response.Booking{
		ID:              booking.ID.String(),
		UserID:          booking.UserID,
		BookingType:     booking.BookingType,
		BookingDetails:  booking.BookingDetails,
		VendorApprovals: booking.VendorApprovals,
		Status:          booking.Status,
		TotalAmount:     booking.TotalAmount,
		Notes:           booking.Notes,
		CreatedAt:       booking.CreatedAt.Format("2006-01-02 15:04:05"),
		Payment:         payment,
	}
}
