package bookings

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrNotFound is returned by a Repository when no booking has the given id
var ErrNotFound = errors.New("booking not found")

// Repository persists bookings keyed by a store-assigned id
type Repository interface {
	Insert(ctx context.Context, booking *Booking) error
	FindByID(ctx context.Context, id string) (*Booking, error)
	FindAll(ctx context.Context) ([]Booking, error)
	Replace(ctx context.Context, booking *Booking) error
	// DeleteByID removes the booking and returns the removed snapshot
	DeleteByID(ctx context.Context, id string) (*Booking, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository returns the PostgreSQL-backed repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Insert(ctx context.Context, booking *Booking) error {
	booking.ID = uuid.NewString()
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Booking, error) {
	var booking Booking
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (r *repository) FindAll(ctx context.Context) ([]Booking, error) {
	bookings := []Booking{}
	if err := r.db.WithContext(ctx).Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *repository) Replace(ctx context.Context, booking *Booking) error {
	result := r.db.WithContext(ctx).
		Model(&Booking{}).
		Where("id = ?", booking.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(booking)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repository) DeleteByID(ctx context.Context, id string) (*Booking, error) {
	var removed Booking
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&removed).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&Booking{}).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &removed, nil
}
