package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestMigrateConstraints(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("gorm open error: %v", err)
	}

	for _, c := range bookingConstraints {
		mock.ExpectExec(`ALTER TABLE bookings DROP CONSTRAINT IF EXISTS ` + c.name).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`ALTER TABLE bookings ADD CONSTRAINT ` + c.name).
			WillReturnResult(sqlmock.NewResult(0, 0))
	}
	mock.ExpectExec(`CREATE INDEX IF NOT EXISTS idx_bookings_created_at`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := MigrateConstraints(db); err != nil {
		t.Fatalf("migrate constraints: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
