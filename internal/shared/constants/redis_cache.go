package constants

import (
	"strconv"
	"time"
)

// Redis Cache Configuration
// Pattern: tripbook:{module}:{operation}:{identifier}

const CACHE_PREFIX = "tripbook"

// ================== CACHE TTL DURATIONS ==================

const (
	TTL_DYNAMIC_MEDIUM = 10 * time.Minute // 10 minutes - for booking details
	TTL_DYNAMIC_SHORT  = 5 * time.Minute  // 5 minutes - for booking listings
)

// ================== BOOKINGS MODULE ==================

// Booking Cache Keys
const (
	CACHE_KEY_BOOKING_DETAIL = CACHE_PREFIX + ":bookings:detail:" // + booking-id
	CACHE_KEY_BOOKING_LIST   = CACHE_PREFIX + ":bookings:list:" // + generation

	// Bumped on every mutation; list entries cached under an older generation are never read again.
	CACHE_KEY_BOOKING_LIST_GENERATION = CACHE_PREFIX + ":bookings:list-generation"
)

// Booking Cache TTLs
const (
	TTL_BOOKING_DETAIL = TTL_DYNAMIC_MEDIUM
	TTL_BOOKING_LIST   = TTL_DYNAMIC_SHORT

	// Must outlive any store read that started before the delete.
	TTL_BOOKING_TOMBSTONE = 1 * time.Minute
)

// ================== CACHE INVALIDATION PATTERNS ==================

const (
	PATTERN_INVALIDATE_BOOKINGS_ALL = CACHE_PREFIX + ":bookings:*"
)

// BuildBookingDetailKey returns the cache key of a single booking
func BuildBookingDetailKey(bookingID string) string {
	return CACHE_KEY_BOOKING_DETAIL + bookingID
}

// BuildBookingListKey returns the cache key of the booking list for a generation
func BuildBookingListKey(generation int64) string {
	return CACHE_KEY_BOOKING_LIST + strconv.FormatInt(generation, 10)
}
