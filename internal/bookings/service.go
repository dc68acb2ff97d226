package bookings

import (
	"context"
	"errors"
	"strings"
	"time"

	"tripbook/internal/notifications"
	"tripbook/internal/shared/apperrors"
	"tripbook/internal/shared/constants"
	"tripbook/internal/shared/utils/validation"
	"tripbook/pkg/cache"
	"tripbook/pkg/logger"
)

// Service is the booking lifecycle manager
type Service interface {
	CreateBooking(ctx context.Context, req CreateBookingRequest) (*Booking, error)
	ListBookings(ctx context.Context) ([]Booking, error)
	GetBooking(ctx context.Context, id string) (*Booking, error)
	UpdateBooking(ctx context.Context, id string, req UpdateBookingRequest) (*Booking, error)
	DeleteBooking(ctx context.Context, id string) (*Booking, error)
	UpdatePayment(ctx context.Context, id string, req UpdatePaymentRequest) (*Booking, error)

	SetCacheService(cacheService cache.Service)
	SetPublisher(publisher notifications.Publisher)
}

type service struct {
	repo         Repository
	cacheService cache.Service
	publisher    notifications.Publisher
	log          *logger.Logger
	now          func() time.Time
}

func NewService(repo Repository, log *logger.Logger) Service {
	return &service{
		repo:      repo,
		publisher: notifications.NoopPublisher{},
		log:       log,
		now:       time.Now,
	}
}

// SetCacheService injects the cache service dependency
func (s *service) SetCacheService(cacheService cache.Service) {
	s.cacheService = cacheService
}

// SetPublisher injects the booking event publisher
func (s *service) SetPublisher(publisher notifications.Publisher) {
	if publisher == nil {
		publisher = notifications.NoopPublisher{}
	}
	s.publisher = publisher
}

func (s *service) CreateBooking(ctx context.Context, req CreateBookingRequest) (*Booking, error) {
	req.trim()
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	now := s.now()
	booking := &Booking{
		Email:          req.Email,
		Contact:        req.Contact,
		From:           req.From,
		To:             req.To,
		TripType:       TripType(req.TripType),
		Date:           req.Date,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		PassengerCount: req.PassengerCount,
		PaymentAmount:  0,
		PaymentStatus:  PaymentStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	booking.normalizeDates()

	if err := s.repo.Insert(ctx, booking); err != nil {
		return nil, apperrors.StoreError{Op: "insert", Err: err}
	}

	s.log.LogBookingCreated(ctx, booking.ID, booking.TripType.String(), booking.PassengerCount)
	s.afterMutation(ctx, notifications.EventTypeBookingCreated, booking)
	return booking, nil
}

func (s *service) ListBookings(ctx context.Context) ([]Booking, error) {
	listKey, cacheable := s.listCacheKey(ctx)
	if cacheable {
		var cached []Booking
		if err := s.getCache(ctx, listKey, &cached); err == nil {
			return cached, nil
		}
	}

	bookings, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.StoreError{Op: "find all", Err: err}
	}
	if bookings == nil {
		bookings = []Booking{}
	}

	if cacheable {
		s.addCache(ctx, listKey, bookings, constants.TTL_BOOKING_LIST)
	}
	return bookings, nil
}

func (s *service) GetBooking(ctx context.Context, id string) (*Booking, error) {
	cacheKey := constants.BuildBookingDetailKey(id)

	var cached cachedBooking
	if err := s.getCache(ctx, cacheKey, &cached); err == nil {
		if cached.Deleted {
			return nil, apperrors.NotFoundError{Resource: "booking", ID: id, Err: ErrNotFound}
		}
		if cached.Booking != nil {
			return cached.Booking, nil
		}
	}

	booking, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	// NX: a mutation that landed while we read the store owns the key.
	s.addCache(ctx, cacheKey, cachedBooking{Booking: booking}, constants.TTL_BOOKING_DETAIL)
	return booking, nil
}

func (s *service) UpdateBooking(ctx context.Context, id string, req UpdateBookingRequest) (*Booking, error) {
	if err := validatePatch(req); err != nil {
		return nil, err
	}

	booking, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	changed := booking.applyPatch(req)
	booking.UpdatedAt = s.now()

	if err := s.replace(ctx, booking); err != nil {
		return nil, err
	}

	s.log.LogBookingUpdated(ctx, booking.ID, changed)
	s.afterMutation(ctx, notifications.EventTypeBookingUpdated, booking)
	return booking, nil
}

func (s *service) DeleteBooking(ctx context.Context, id string) (*Booking, error) {
	removed, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return nil, storeErr("delete", id, err)
	}

	s.log.LogBookingDeleted(ctx, id)
	s.afterMutation(ctx, notifications.EventTypeBookingDeleted, removed)
	return removed, nil
}

func (s *service) UpdatePayment(ctx context.Context, id string, req UpdatePaymentRequest) (*Booking, error) {
	req.PaymentStatus = strings.TrimSpace(req.PaymentStatus)
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	booking, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	booking.PaymentAmount = *req.PaymentAmount
	booking.PaymentStatus = PaymentStatus(req.PaymentStatus)
	booking.UpdatedAt = s.now()

	if err := s.replace(ctx, booking); err != nil {
		return nil, err
	}

	s.log.LogPaymentUpdated(ctx, booking.ID, booking.PaymentStatus.String(), booking.PaymentAmount)
	s.afterMutation(ctx, notifications.EventTypeBookingPaymentUpdated, booking)
	return booking, nil
}

func (s *service) find(ctx context.Context, id string) (*Booking, error) {
	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr("find", id, err)
	}
	return booking, nil
}

func (s *service) replace(ctx context.Context, booking *Booking) error {
	if err := s.repo.Replace(ctx, booking); err != nil {
		return storeErr("replace", booking.ID, err)
	}
	return nil
}

// storeErr maps repository failures onto the error taxonomy
func storeErr(op, id string, err error) error {
	if errors.Is(err, ErrNotFound) {
		return apperrors.NotFoundError{Resource: "booking", ID: id, Err: err}
	}
	return apperrors.StoreError{Op: op, Err: err}
}

// cachedBooking is a detail cache entry. A deleted entry is a tombstone.
type cachedBooking struct {
	Booking *Booking `json:"booking,omitempty"`
	Deleted bool     `json:"deleted,omitempty"`
}

// afterMutation refreshes the cache and emits the lifecycle event.
// Neither failure affects the outcome of the operation.
func (s *service) afterMutation(ctx context.Context, eventType notifications.EventType, booking *Booking) {
	if err := s.refreshCache(ctx, eventType == notifications.EventTypeBookingDeleted, booking); err != nil {
		s.log.WarnWithContext(ctx, "failed to refresh booking cache", err,
			map[string]interface{}{"booking_id": booking.ID})
	}

	event := notifications.NewBookingEvent(eventType, booking.ID, booking)
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.log.WarnWithContext(ctx, "failed to publish booking event", err,
			map[string]interface{}{"booking_id": booking.ID, "event_type": string(eventType)})
	}
}

// Cache helper methods

func (s *service) getCache(ctx context.Context, key string, dest interface{}) error {
	if s.cacheService == nil {
		return cache.ErrCacheMiss
	}
	return s.cacheService.Get(ctx, key, dest)
}

// addCache fills a key on read without replacing anything a mutation wrote
func (s *service) addCache(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if s.cacheService == nil {
		return
	}
	if _, err := s.cacheService.SetNX(ctx, key, value, ttl); err != nil {
		s.log.WarnWithContext(ctx, "failed to cache bookings", err, map[string]interface{}{"key": key})
	}
}

// listCacheKey returns the list key for the current generation. The list is
// not cached when the generation cannot be read.
func (s *service) listCacheKey(ctx context.Context) (string, bool) {
	if s.cacheService == nil {
		return "", false
	}

	var generation int64
	err := s.cacheService.Get(ctx, constants.CACHE_KEY_BOOKING_LIST_GENERATION, &generation)
	if err != nil && !errors.Is(err, cache.ErrCacheMiss) {
		return "", false
	}
	return constants.BuildBookingListKey(generation), true
}

// refreshCache writes the mutated booking through, or a tombstone when it was
// deleted, and retires every cached list.
func (s *service) refreshCache(ctx context.Context, deleted bool, booking *Booking) error {
	if s.cacheService == nil {
		return nil
	}

	key := constants.BuildBookingDetailKey(booking.ID)
	entry, ttl := cachedBooking{Booking: booking}, constants.TTL_BOOKING_DETAIL
	if deleted {
		entry, ttl = cachedBooking{Deleted: true}, constants.TTL_BOOKING_TOMBSTONE
	}

	var errs []error
	if err := s.cacheService.Set(ctx, key, entry, ttl); err != nil {
		errs = append(errs, err)
		if err := s.cacheService.Delete(ctx, key); err != nil {
			errs = append(errs, err)
		}
	}
	if _, err := s.cacheService.Incr(ctx, constants.CACHE_KEY_BOOKING_LIST_GENERATION); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
