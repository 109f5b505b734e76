package domain

// Default slot computation values
const (
	DefaultTimeGapMinutes    = 30 // step between customer slot starts when the template has none
	DefaultCloseGuardMinutes = 1  // no slot may end later than close - guard
	DefaultDayStart          = "09:00"
	DefaultDayEnd            = "17:00"
)

// Default field-service values
const (
	DefaultFieldWorkdayStart      = "12:00"
	DefaultFieldWorkdayEnd        = "20:00"
	DefaultSlotStepMinutes        = 15
	DefaultServiceDurationMinutes = 60
	DefaultTravelBufferMinutes    = 30
	DefaultMinFreeIntervalMinutes = 30
	DefaultSlotsLimit             = 12
)

// Business validation constants
const (
	MinTimeGapMinutes           = 0
	MaxTimeGapMinutes           = 240
	MaxServiceDurationMinutes   = 480 // 8 hours
	MaxSlotsLimit               = 100
	MaxNotesLength              = 500
	MaxCustomerNameLength       = 100
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses bookings in these statuses do not occupy time
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
	StatusNoShow,
}
