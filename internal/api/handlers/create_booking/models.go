package create_booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-TireSlotService/internal/domain"
	createBooking "github.com/m04kA/SMC-TireSlotService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-TireSlotService/pkg/types"
)

var (
	errParseDate = errors.New("invalid bookingDate")
	errParseTime = errors.New("invalid startTime")
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	BookingDate   string  `json:"bookingDate"` // "2025-10-15"
	StartTime     string  `json:"startTime"`   // "10:00"
	Duration      int     `json:"duration,omitempty"`
	Service       string  `json:"service,omitempty"`
	CustomerName  string  `json:"customerName"`
	CustomerPhone string  `json:"customerPhone"`
	Notes         *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64   `json:"id"`
	BookingDate   string  `json:"bookingDate"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	Status        string  `json:"status"`
	CustomerName  string  `json:"customerName"`
	CustomerPhone string  `json:"customerPhone"`
	ServiceName   string  `json:"serviceName,omitempty"`
	Notes         *string `json:"notes,omitempty"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	bookingDate, err := domain.ParseDate(r.BookingDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errParseDate, err)
	}

	startTime, err := types.ParseMinute(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errParseTime, err)
	}

	return &createBooking.Request{
		Date:          bookingDate,
		StartTime:     startTime,
		Duration:      r.Duration,
		Service:       r.Service,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		Notes:         r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		BookingDate:   resp.BookingDate.Format(domain.DateFormat),
		StartTime:     resp.StartTime.String(),
		EndTime:       resp.EndTime.String(),
		Status:        resp.Status,
		CustomerName:  resp.CustomerName,
		CustomerPhone: resp.CustomerPhone,
		ServiceName:   resp.ServiceName,
		Notes:         resp.Notes,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
