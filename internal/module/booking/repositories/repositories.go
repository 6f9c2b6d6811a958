package repositories

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"golftrip-service/config"
	"golftrip-service/internal/module/booking/models/entity"
	"golftrip-service/internal/module/booking/models/request"
	"golftrip-service/internal/module/booking/models/response"
	"golftrip-service/internal/pkg/errors"

	"github.com/go-redsync/redsync/v4"
	"github.com/goccy/go-json"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	circuit "github.com/rubyist/circuitbreaker"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

const (
	catalogCacheTTL   = 10 * time.Minute
	bookingLockExpiry = 8 * time.Second
)

type repositories struct {
	db             *sqlx.DB
	log            *otelzap.Logger
	httpClient     *circuit.HTTPClient
	redisClient    *redis.Client
	rs             *redsync.Redsync
	cfgUserService *config.UserServiceConfig
	cfgXendit      *config.XenditConfig
}

type Repositories interface {
	// http
	ValidateToken(ctx context.Context, token string) (response.UserServiceValidate, error)
	CreateXenditInvoice(ctx context.Context, payload *request.XenditInvoice) (response.XenditInvoice, error)
	// catalog (redis read-through)
	FindGolfCourseByID(ctx context.Context, id string) (entity.CatalogItem, error)
	FindHotelByID(ctx context.Context, id string) (entity.CatalogItem, error)
	FindTravelPackageByID(ctx context.Context, id string) (entity.CatalogItem, error)
	// db
	InsertBooking(ctx context.Context, booking *entity.Booking) error
	FindBookingByID(ctx context.Context, id string) (entity.Booking, error)
	FindBookings(ctx context.Context, filter entity.BookingFilter) ([]entity.Booking, error)
	UpdateBookingApprovals(ctx context.Context, booking *entity.Booking) error
	UpdateBookingStatus(ctx context.Context, id string, status string) error
	InsertPayment(ctx context.Context, payment *entity.Payment) (int64, error)
	UpdatePayment(ctx context.Context, payment *entity.Payment) error
	FindPendingPaymentByBookingID(ctx context.Context, bookingID string) (entity.Payment, error)
	FindPaymentByBookingID(ctx context.Context, bookingID string) (entity.Payment, error)
	FindPaymentByExternalID(ctx context.Context, externalID string) (entity.Payment, error)
	InsertSettlements(ctx context.Context, settlements []entity.SplitSettlement) error
	CountSettlementsByPaymentID(ctx context.Context, paymentID int64) (int64, error)
	InsertNotification(ctx context.Context, notification *entity.Notification) error
	// distributed lock
	AcquireBookingLock(ctx context.Context, bookingID string) (*redsync.Mutex, error)
	ReleaseBookingLock(ctx context.Context, mutex *redsync.Mutex) error
}

func New(db *sqlx.DB, log *otelzap.Logger, httpClient *circuit.HTTPClient, redisClient *redis.Client, rs *redsync.Redsync, cfgUserService *config.UserServiceConfig, cfgXendit *config.XenditConfig) Repositories {
	return &repositories{
		db:             db,
		log:            log,
		httpClient:     httpClient,
		redisClient:    redisClient,
		rs:             rs,
		cfgUserService: cfgUserService,
		cfgXendit:      cfgXendit,
	}
}

func (r *repositories) ValidateToken(ctx context.Context, token string) (response.UserServiceValidate, error) {
	url := fmt.Sprintf("http://%s:%s/api/private/token/validate?token=%s", r.cfgUserService.Host, r.cfgUserService.Port, token)
	resp, err := r.httpClient.Get(url)
	if err != nil {
		return response.UserServiceValidate{}, errors.ExternalServiceError("error validate token")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		r.log.Ctx(ctx).Error(fmt.Sprintf("invalid token: status %d", resp.StatusCode))
		return response.UserServiceValidate{}, errors.UnauthorizedError("invalid token")
	}

	var respData response.UserServiceValidate
	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(&respData); err != nil {
		return response.UserServiceValidate{}, errors.InternalServerError("error decode token response")
	}

	if !respData.IsValid {
		return response.UserServiceValidate{}, errors.UnauthorizedError("invalid token")
	}

	return respData, nil
}

// CreateXenditInvoice implements Repositories.
func (r *repositories) CreateXenditInvoice(ctx context.Context, payload *request.XenditInvoice) (response.XenditInvoice, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return response.XenditInvoice{}, errors.InternalServerError("error marshal invoice request")
	}

	url := fmt.Sprintf("%s/v2/invoices", r.cfgXendit.BaseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return response.XenditInvoice{}, errors.InternalServerError("error build invoice request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(r.cfgXendit.SecretKey, "")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error call invoice gateway: %v", err))
		return response.XenditInvoice{}, errors.ExternalServiceError("error create invoice")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		r.log.Ctx(ctx).Error(fmt.Sprintf("invoice gateway returned status %d for external id %s", resp.StatusCode, payload.ExternalID))
		return response.XenditInvoice{}, errors.ExternalServiceError("error create invoice")
	}

	var invoice response.XenditInvoice
	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(&invoice); err != nil {
		return response.XenditInvoice{}, errors.InternalServerError("error decode invoice response")
	}

	return invoice, nil
}

// FindGolfCourseByID implements Repositories.
func (r *repositories) FindGolfCourseByID(ctx context.Context, id string) (entity.CatalogItem, error) {
	return r.findCatalogItem(ctx, "golf_courses", "catalog:golf:"+id, id)
}

// FindHotelByID implements Repositories.
func (r *repositories) FindHotelByID(ctx context.Context, id string) (entity.CatalogItem, error) {
	return r.findCatalogItem(ctx, "hotels", "catalog:hotel:"+id, id)
}

// FindTravelPackageByID implements Repositories.
func (r *repositories) FindTravelPackageByID(ctx context.Context, id string) (entity.CatalogItem, error) {
	return r.findCatalogItem(ctx, "travel_packages", "catalog:travel:"+id, id)
}

func (r *repositories) findCatalogItem(ctx context.Context, table, cacheKey, id string) (entity.CatalogItem, error) {
	if r.redisClient != nil {
		if data, err := r.redisClient.Get(ctx, cacheKey).Result(); err == nil {
			var item entity.CatalogItem
			if err := json.Unmarshal([]byte(data), &item); err == nil {
				return item, nil
			}
		}
	}

	query := fmt.Sprintf(`SELECT id, vendor_id, name, price FROM %s WHERE id = $1`, table)
	var item entity.CatalogItem
	err := r.db.GetContext(ctx, &item, query, id)
	if err == sql.ErrNoRows {
		return entity.CatalogItem{}, nil
	}
	if err != nil {
		return entity.CatalogItem{}, errors.InternalServerError("error find catalog item")
	}

	if r.redisClient != nil {
		if data, err := json.Marshal(item); err == nil {
			if err := r.redisClient.Set(ctx, cacheKey, data, catalogCacheTTL).Err(); err != nil {
				r.log.Ctx(ctx).Warn(fmt.Sprintf("error cache catalog item %s: %v", cacheKey, err))
			}
		}
	}

	return item, nil
}

// InsertBooking implements Repositories.
func (r *repositories) InsertBooking(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, user_id, booking_type, booking_details, vendor_approvals, status, total_amount, notes, created_at)
		VALUES (:id, :user_id, :booking_type, :booking_details, :vendor_approvals, :status, :total_amount, :notes, :created_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, booking)
	if err != nil {
		return errors.InternalServerError("error insert booking")
	}
	return nil
}

// FindBookingByID implements Repositories.
func (r *repositories) FindBookingByID(ctx context.Context, id string) (entity.Booking, error) {
	query := `SELECT * FROM bookings WHERE id = $1`
	var booking entity.Booking
	err := r.db.GetContext(ctx, &booking, query, id)
	if err == sql.ErrNoRows {
		return entity.Booking{}, nil
	}
	if err != nil {
		return entity.Booking{}, errors.InternalServerError("error find booking by id")
	}
	return booking, nil
}

// FindBookings implements Repositories.
func (r *repositories) FindBookings(ctx context.Context, filter entity.BookingFilter) ([]entity.Booking, error) {
	query := `SELECT * FROM bookings WHERE 1=1`
	args := []interface{}{}

	if filter.UserID != "" {
		args = append(args, filter.UserID)
		query += fmt.Sprintf(" AND user_id = $%d", len(args))
	}
	if filter.VendorID != "" {
		args = append(args, filter.VendorID)
		query += fmt.Sprintf(" AND jsonb_exists(vendor_approvals, $%d)", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.BookingType != "" {
		args = append(args, filter.BookingType)
		query += fmt.Sprintf(" AND booking_type = $%d", len(args))
	}
	query += " ORDER BY created_at DESC"

	bookings := []entity.Booking{}
	if err := r.db.SelectContext(ctx, &bookings, query, args...); err != nil {
		return nil, errors.InternalServerError("error find bookings")
	}
	return bookings, nil
}

// UpdateBookingApprovals persists a decision as a read-modify-write under a
// row lock so concurrent vendor responses cannot clobber each other.
func (r *repositories) UpdateBookingApprovals(ctx context.Context, booking *entity.Booking) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.InternalServerError("error starting transaction")
	}

	var currentStatus string
	err = tx.GetContext(ctx, &currentStatus, `SELECT status FROM bookings WHERE id = $1 FOR UPDATE`, booking.ID)
	if err == sql.ErrNoRows {
		tx.Rollback()
		return errors.NotFoundError("booking not found")
	}
	if err != nil {
		tx.Rollback()
		return errors.InternalServerError("error locking booking row")
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE bookings
		SET vendor_approvals = $1, status = $2, updated_at = NOW()
		WHERE id = $3
	`, booking.VendorApprovals, booking.Status, booking.ID)
	if err != nil {
		tx.Rollback()
		return errors.InternalServerError("error update booking approvals")
	}

	if err := tx.Commit(); err != nil {
		return errors.InternalServerError("error committing transaction")
	}
	return nil
}

// UpdateBookingStatus implements Repositories.
func (r *repositories) UpdateBookingStatus(ctx context.Context, id string, status string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE bookings SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return errors.InternalServerError("error update booking status")
	}
	return nil
}

// InsertPayment implements Repositories.
func (r *repositories) InsertPayment(ctx context.Context, payment *entity.Payment) (int64, error) {
	query := `
		INSERT INTO payments (booking_id, xendit_invoice_id, xendit_external_id, amount, status, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id
	`
	var id int64
	err := r.db.QueryRowxContext(ctx, query,
		payment.BookingID, payment.XenditInvoiceID, payment.XenditExternalID, payment.Amount, payment.Status,
	).Scan(&id)
	if err != nil {
		return 0, errors.InternalServerError("error insert payment")
	}
	payment.ID = id
	return id, nil
}

// UpdatePayment updates a payment row under a row lock, keyed by id.
func (r *repositories) UpdatePayment(ctx context.Context, payment *entity.Payment) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.InternalServerError("error starting transaction")
	}

	var currentStatus string
	err = tx.GetContext(ctx, &currentStatus, `SELECT status FROM payments WHERE id = $1 FOR UPDATE`, payment.ID)
	if err == sql.ErrNoRows {
		tx.Rollback()
		return errors.NotFoundError("payment not found")
	}
	if err != nil {
		tx.Rollback()
		return errors.InternalServerError("error locking payment row")
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE payments
		SET xendit_invoice_id = $1, xendit_external_id = $2, amount = $3, status = $4,
		    paid_at = $5, payment_method = $6, payment_channel = $7, updated_at = NOW()
		WHERE id = $8
	`, payment.XenditInvoiceID, payment.XenditExternalID, payment.Amount, payment.Status,
		payment.PaidAt, payment.PaymentMethod, payment.PaymentChannel, payment.ID)
	if err != nil {
		tx.Rollback()
		return errors.InternalServerError("error update payment")
	}

	if err := tx.Commit(); err != nil {
		return errors.InternalServerError("error committing transaction")
	}
	return nil
}

// FindPendingPaymentByBookingID implements Repositories.
func (r *repositories) FindPendingPaymentByBookingID(ctx context.Context, bookingID string) (entity.Payment, error) {
	query := `SELECT * FROM payments WHERE booking_id = $1 AND status = $2 ORDER BY created_at DESC LIMIT 1`
	var payment entity.Payment
	err := r.db.GetContext(ctx, &payment, query, bookingID, entity.PaymentPending)
	if err == sql.ErrNoRows {
		return entity.Payment{}, nil
	}
	if err != nil {
		return entity.Payment{}, errors.InternalServerError("error find pending payment by booking id")
	}
	return payment, nil
}

// FindPaymentByBookingID returns the most recent payment attempt.
func (r *repositories) FindPaymentByBookingID(ctx context.Context, bookingID string) (entity.Payment, error) {
	query := `SELECT * FROM payments WHERE booking_id = $1 ORDER BY created_at DESC LIMIT 1`
	var payment entity.Payment
	err := r.db.GetContext(ctx, &payment, query, bookingID)
	if err == sql.ErrNoRows {
		return entity.Payment{}, nil
	}
	if err != nil {
		return entity.Payment{}, errors.InternalServerError("error find payment by booking id")
	}
	return payment, nil
}

// FindPaymentByExternalID implements Repositories.
func (r *repositories) FindPaymentByExternalID(ctx context.Context, externalID string) (entity.Payment, error) {
	query := `SELECT * FROM payments WHERE xendit_external_id = $1`
	var payment entity.Payment
	err := r.db.GetContext(ctx, &payment, query, externalID)
	if err == sql.ErrNoRows {
		return entity.Payment{}, nil
	}
	if err != nil {
		return entity.Payment{}, errors.InternalServerError("error find payment by external id")
	}
	return payment, nil
}

// InsertSettlements implements Repositories.
func (r *repositories) InsertSettlements(ctx context.Context, settlements []entity.SplitSettlement) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.InternalServerError("error starting transaction")
	}

	query := `
		INSERT INTO split_settlements (payment_id, vendor_id, amount, status, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`
	for _, s := range settlements {
		if _, err := tx.ExecContext(ctx, query, s.PaymentID, s.VendorID, s.Amount, s.Status, s.Notes); err != nil {
			tx.Rollback()
			return errors.InternalServerError("error insert settlement")
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.InternalServerError("error committing transaction")
	}
	return nil
}

// CountSettlementsByPaymentID implements Repositories.
func (r *repositories) CountSettlementsByPaymentID(ctx context.Context, paymentID int64) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM split_settlements WHERE payment_id = $1`, paymentID)
	if err != nil {
		return 0, errors.InternalServerError("error count settlements by payment id")
	}
	return count, nil
}

// InsertNotification implements Repositories.
func (r *repositories) InsertNotification(ctx context.Context, notification *entity.Notification) error {
	query := `
		INSERT INTO notifications (recipient_id, type, title, message, data, created_at)
		VALUES (:recipient_id, :type, :title, :message, :data, NOW())
	`
	if _, err := r.db.NamedExecContext(ctx, query, notification); err != nil {
		return errors.InternalServerError("error insert notification")
	}
	return nil
}

// AcquireBookingLock serializes mutations of a single booking across
// concurrent requests and instances.
func (r *repositories) AcquireBookingLock(ctx context.Context, bookingID string) (*redsync.Mutex, error) {
	mutex := r.rs.NewMutex("lock:booking:"+bookingID, redsync.WithExpiry(bookingLockExpiry))
	if err := mutex.LockContext(ctx); err != nil {
		return nil, errors.InternalServerError("error acquire booking lock")
	}
	return mutex, nil
}

// ReleaseBookingLock implements Repositories.
func (r *repositories) ReleaseBookingLock(ctx context.Context, mutex *redsync.Mutex) error {
	if mutex == nil {
		return nil
	}
	if _, err := mutex.UnlockContext(ctx); err != nil {
		r.log.Ctx(ctx).Warn(fmt.Sprintf("error release booking lock: %v", err))
		return err
	}
	return nil
}
