package repositories_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	log_internal "golftrip-service/internal/pkg/log"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	sqlxmock "github.com/zhashkevych/go-sqlxmock"

	"golftrip-service/internal/module/booking/models/entity"
	"golftrip-service/internal/module/booking/repositories"
)

var (
	mock    sqlxmock.Sqlmock
	dbx     *sqlx.DB
	logMock *otelzap.Logger
)

func setup() {
	dbx, mock, _ = sqlxmock.Newx()
	logMock = log_internal.Setup()
}

func bookingColumns() []string {
	return []string{"id", "user_id", "booking_type", "booking_details", "vendor_approvals", "status", "total_amount", "notes", "created_at", "updated_at"}
}

func paymentColumns() []string {
	return []string{"id", "booking_id", "xendit_invoice_id", "xendit_external_id", "amount", "status", "paid_at", "payment_method", "payment_channel", "created_at", "updated_at"}
}

func TestFindBookingByID(t *testing.T) {
	setup()
	repo := repositories.New(dbx, logMock, nil, nil, nil, nil, nil)

	bookingID := uuid.New()

	t.Run("found", func(t *testing.T) {
		rows := sqlxmock.NewRows(bookingColumns()).AddRow(
			bookingID.String(), "user-1", entity.BookingTypeGolf,
			[]byte(`{"golf":{"course_id":"course-1","vendor_id":"V1","date":"2026-09-01","players":4}}`),
			[]byte(`{"V1":{"status":"pending"}}`),
			entity.BookingPendingApproval, 2500000.0, "", time.Now(), nil,
		)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM bookings WHERE id = $1`)).
			WithArgs(bookingID.String()).
			WillReturnRows(rows)

		booking, err := repo.FindBookingByID(context.Background(), bookingID.String())
		assert.NoError(t, err)
		assert.Equal(t, bookingID, booking.ID)
		assert.Equal(t, entity.BookingPendingApproval, booking.Status)
		assert.Equal(t, entity.ApprovalPending, booking.VendorApprovals["V1"].Status)
		assert.Equal(t, "V1", booking.BookingDetails.Golf.VendorID)
	})

	t.Run("not found yields zero booking and no error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM bookings WHERE id = $1`)).
			WithArgs(bookingID.String()).
			WillReturnRows(sqlxmock.NewRows(bookingColumns()))

		booking, err := repo.FindBookingByID(context.Background(), bookingID.String())
		assert.NoError(t, err)
		assert.Equal(t, uuid.Nil, booking.ID)
	})
}

func TestFindBookings(t *testing.T) {
	setup()
	repo := repositories.New(dbx, logMock, nil, nil, nil, nil, nil)

	t.Run("vendor filter uses the approvals key", func(t *testing.T) {
		rows := sqlxmock.NewRows(bookingColumns()).AddRow(
			uuid.New().String(), "user-1", entity.BookingTypePackage,
			[]byte(`{}`), []byte(`{"V1":{"status":"approved"},"V2":{"status":"pending"}}`),
			entity.BookingPendingApproval, 7800000.0, "", time.Now(), nil,
		)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM bookings WHERE 1=1 AND jsonb_exists(vendor_approvals, $1) ORDER BY created_at DESC`)).
			WithArgs("V1").
			WillReturnRows(rows)

		bookings, err := repo.FindBookings(context.Background(), entity.BookingFilter{VendorID: "V1"})
		assert.NoError(t, err)
		assert.Len(t, bookings, 1)
	})

	t.Run("stacked filters keep placeholder order", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM bookings WHERE 1=1 AND user_id = $1 AND status = $2 AND booking_type = $3 ORDER BY created_at DESC`)).
			WithArgs("user-1", entity.BookingPaid, entity.BookingTypeGolf).
			WillReturnRows(sqlxmock.NewRows(bookingColumns()))

		bookings, err := repo.FindBookings(context.Background(), entity.BookingFilter{
			UserID:      "user-1",
			Status:      entity.BookingPaid,
			BookingType: entity.BookingTypeGolf,
		})
		assert.NoError(t, err)
		assert.Empty(t, bookings)
	})
}

func TestFindPaymentByExternalID(t *testing.T) {
	setup()
	repo := repositories.New(dbx, logMock, nil, nil, nil, nil, nil)

	bookingID := uuid.New()

	t.Run("found", func(t *testing.T) {
		rows := sqlxmock.NewRows(paymentColumns()).AddRow(
			int64(42), bookingID.String(), "inv-123", "GOLF-ABC12345-1700000000000",
			2500000.0, entity.PaymentPending, nil, nil, nil, time.Now(), nil,
		)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM payments WHERE xendit_external_id = $1`)).
			WithArgs("GOLF-ABC12345-1700000000000").
			WillReturnRows(rows)

		payment, err := repo.FindPaymentByExternalID(context.Background(), "GOLF-ABC12345-1700000000000")
		assert.NoError(t, err)
		assert.Equal(t, int64(42), payment.ID)
		assert.Equal(t, bookingID, payment.BookingID)
	})

	t.Run("unknown external id yields zero payment", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM payments WHERE xendit_external_id = $1`)).
			WithArgs("GOLF-UNKNOWN-1").
			WillReturnRows(sqlxmock.NewRows(paymentColumns()))

		payment, err := repo.FindPaymentByExternalID(context.Background(), "GOLF-UNKNOWN-1")
		assert.NoError(t, err)
		assert.Equal(t, int64(0), payment.ID)
	})
}

func TestUpdateBookingApprovals(t *testing.T) {
	setup()
	repo := repositories.New(dbx, logMock, nil, nil, nil, nil, nil)

	bookingID := uuid.New()

	t.Run("locks the row before writing", func(t *testing.T) {
		booking := entity.Booking{
			ID:              bookingID,
			VendorApprovals: entity.VendorApprovals{"V1": {Status: entity.ApprovalApproved}},
			Status:          entity.BookingApproved,
		}

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT status FROM bookings WHERE id = $1 FOR UPDATE`)).
			WithArgs(booking.ID).
			WillReturnRows(sqlxmock.NewRows([]string{"status"}).AddRow(entity.BookingPendingApproval))
		mock.ExpectExec("UPDATE bookings").
			WillReturnResult(sqlxmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.UpdateBookingApprovals(context.Background(), &booking)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing booking rolls back", func(t *testing.T) {
		booking := entity.Booking{ID: bookingID, Status: entity.BookingApproved}

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT status FROM bookings WHERE id = $1 FOR UPDATE`)).
			WithArgs(booking.ID).
			WillReturnRows(sqlxmock.NewRows([]string{"status"}))
		mock.ExpectRollback()

		err := repo.UpdateBookingApprovals(context.Background(), &booking)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdateBookingStatus(t *testing.T) {
	setup()
	repo := repositories.New(dbx, logMock, nil, nil, nil, nil, nil)

	id := uuid.New().String()
	mock.ExpectExec("UPDATE bookings SET status").
		WithArgs(entity.BookingPaid, id).
		WillReturnResult(sqlxmock.NewResult(0, 1))

	err := repo.UpdateBookingStatus(context.Background(), id, entity.BookingPaid)
	assert.NoError(t, err)
}

func TestInsertPayment(t *testing.T) {
	setup()
	repo := repositories.New(dbx, logMock, nil, nil, nil, nil, nil)

	payment := entity.Payment{
		BookingID:        uuid.New(),
		XenditInvoiceID:  "inv-123",
		XenditExternalID: "GOLF-ABC12345-1700000000000",
		Amount:           2500000,
		Status:           entity.PaymentPending,
	}

	mock.ExpectQuery("INSERT INTO payments").
		WithArgs(payment.BookingID, payment.XenditInvoiceID, payment.XenditExternalID, payment.Amount, payment.Status).
		WillReturnRows(sqlxmock.NewRows([]string{"id"}).AddRow(int64(42)))

	id, err := repo.InsertPayment(context.Background(), &payment)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.Equal(t, int64(42), payment.ID)
}

func TestInsertSettlements(t *testing.T) {
	setup()
	repo := repositories.New(dbx, logMock, nil, nil, nil, nil, nil)

	settlements := []entity.SplitSettlement{
		{PaymentID: 42, VendorID: "V1", Amount: 3705000, Status: entity.SettlementPending, Notes: "Auto-generated from payment 42"},
		{PaymentID: 42, VendorID: "V2", Amount: 3705000, Status: entity.SettlementPending, Notes: "Auto-generated from payment 42"},
	}

	mock.ExpectBegin()
	for _, s := range settlements {
		mock.ExpectExec("INSERT INTO split_settlements").
			WithArgs(s.PaymentID, s.VendorID, s.Amount, s.Status, s.Notes).
			WillReturnResult(sqlxmock.NewResult(1, 1))
	}
	mock.ExpectCommit()

	err := repo.InsertSettlements(context.Background(), settlements)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountSettlementsByPaymentID(t *testing.T) {
	setup()
	repo := repositories.New(dbx, logMock, nil, nil, nil, nil, nil)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM split_settlements WHERE payment_id = $1`)).
		WithArgs(int64(42)).
		WillReturnRows(sqlxmock.NewRows([]string{"count"}).AddRow(int64(2)))

	count, err := repo.CountSettlementsByPaymentID(context.Background(), 42)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestFindGolfCourseByID(t *testing.T) {
	setup()
	repo := repositories.New(dbx, logMock, nil, nil, nil, nil, nil)

	t.Run("falls through to the database without a cache", func(t *testing.T) {
		rows := sqlxmock.NewRows([]string{"id", "vendor_id", "name", "price"}).
			AddRow("course-1", "V1", "Pinehurst Valley", 2500000.0)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, vendor_id, name, price FROM golf_courses WHERE id = $1`)).
			WithArgs("course-1").
			WillReturnRows(rows)

		item, err := repo.FindGolfCourseByID(context.Background(), "course-1")
		assert.NoError(t, err)
		assert.Equal(t, "V1", item.VendorID)
		assert.Equal(t, float64(2500000), item.Price)
	})

	t.Run("unknown course yields zero item", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, vendor_id, name, price FROM golf_courses WHERE id = $1`)).
			WithArgs("missing").
			WillReturnRows(sqlxmock.NewRows([]string{"id", "vendor_id", "name", "price"}))

		item, err := repo.FindGolfCourseByID(context.Background(), "missing")
		assert.NoError(t, err)
		assert.Empty(t, item.ID)
	})
}
