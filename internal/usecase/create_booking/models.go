package create_booking

import (
	"time"

	"github.com/m04kA/SMC-TireSlotService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	Date          time.Time    `validate:"required"`
	StartTime     types.Minute // Время начала слота
	Duration      int          `validate:"gte=0,lte=480"` // 0 - определить по Service
	Service       string       `validate:"max=200"`
	CustomerName  string       `validate:"required,max=100"`
	CustomerPhone string       `validate:"required,max=20"`
	Notes         *string      `validate:"omitempty,max=500"`
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            int64
	BookingDate   time.Time
	StartTime     types.Minute
	EndTime       types.Minute
	Status        string
	CustomerName  string
	CustomerPhone string
	ServiceName   string
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
