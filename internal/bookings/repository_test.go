package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var bookingColumns = []string{
	"id", "email", "contact", "origin", "destination", "trip_type", "date", "start_date", "end_date",
	"passenger_count", "payment_amount", "payment_status", "created_at", "updated_at",
}

func newMockRepository(t *testing.T) (Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("gorm open error: %v", err)
	}
	return NewRepository(gdb), mock
}

func TestGormFindByID(t *testing.T) {
	repo, mock := newMockRepository(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "bookings" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(bookingColumns).
			AddRow("b-1", "a@b.com", "999", "Delhi", "Mumbai", "oneway", "01/01/2025", nil, nil, 2, 0.0, "pending", now, now))

	b, err := repo.FindByID(context.Background(), "b-1")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if b.From != "Delhi" || b.To != "Mumbai" || b.TripType != TripTypeOneWay {
		t.Fatalf("unexpected booking %+v", b)
	}
	if b.Date == nil || *b.Date != "01/01/2025" || b.StartDate != nil {
		t.Fatalf("unexpected dates %v %v", b.Date, b.StartDate)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestGormFindByIDNotFound(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`SELECT \* FROM "bookings" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(bookingColumns))

	if _, err := repo.FindByID(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGormFindAll(t *testing.T) {
	repo, mock := newMockRepository(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "bookings"`).
		WillReturnRows(sqlmock.NewRows(bookingColumns).
			AddRow("b-1", "a@b.com", "1", "A", "B", "oneway", "d", nil, nil, 1, 0.0, "pending", now, now).
			AddRow("b-2", "c@d.com", "2", "C", "D", "roundtrip", nil, "s", "e", 3, 100.0, "paid", now, now))

	list, err := repo.FindAll(context.Background())
	if err != nil {
		t.Fatalf("find all: %v", err)
	}
	if len(list) != 2 || list[1].PaymentStatus != PaymentStatusPaid {
		t.Fatalf("unexpected list %+v", list)
	}
}

func TestGormReplaceNotFound(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec(`UPDATE "bookings" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Replace(context.Background(), &Booking{ID: "nope", TripType: TripTypeOneWay, PaymentStatus: PaymentStatusPending})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGormDeleteByIDReturnsSnapshot(t *testing.T) {
	repo, mock := newMockRepository(t)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "bookings" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(bookingColumns).
			AddRow("b-1", "a@b.com", "1", "A", "B", "oneway", "d", nil, nil, 1, 0.0, "pending", now, now))
	mock.ExpectExec(`DELETE FROM "bookings" WHERE id = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	removed, err := repo.DeleteByID(context.Background(), "b-1")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if removed.ID != "b-1" || removed.Email != "a@b.com" {
		t.Fatalf("unexpected snapshot %+v", removed)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestGormDeleteByIDNotFoundRollsBack(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "bookings" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(bookingColumns))
	mock.ExpectRollback()

	if _, err := repo.DeleteByID(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
