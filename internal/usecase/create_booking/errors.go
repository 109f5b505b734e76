package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidDate возвращается, если дата в прошлом
	ErrInvalidDate = errors.New("create_booking: invalid date")

	// ErrDayUnavailable возвращается, если по шаблону день нерабочий
	ErrDayUnavailable = errors.New("create_booking: day is not available")

	// ErrSlotNotAvailable возвращается, если выбранное время не входит в список свободных слотов
	ErrSlotNotAvailable = errors.New("create_booking: slot not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
