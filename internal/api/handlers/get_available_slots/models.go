package get_available_slots

import (
	"strconv"

	"github.com/m04kA/SMC-TireSlotService/internal/domain"
	"github.com/m04kA/SMC-TireSlotService/internal/slotengine"
	getAvailableSlots "github.com/m04kA/SMC-TireSlotService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date        string            `json:"date"`
	IsAvailable bool              `json:"isAvailable"`
	TimeGap     int               `json:"timeGap"`
	Duration    int               `json:"duration"`
	Slots       []slotengine.Slot `json:"slots"` // [{"start":"09:00","end":"10:00"}]
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := resp.Slots
	if slots == nil {
		slots = []slotengine.Slot{}
	}

	return &AvailableSlotsResponse{
		Date:        resp.Date.Format(domain.DateFormat),
		IsAvailable: resp.IsAvailable,
		TimeGap:     resp.TimeGap,
		Duration:    resp.Duration,
		Slots:       slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(dateStr, durationStr, service string) (*getAvailableSlots.Request, error) {
	date, err := domain.ParseDate(dateStr)
	if err != nil {
		return nil, err
	}

	duration := 0
	if durationStr != "" {
		duration, err = strconv.Atoi(durationStr)
		if err != nil {
			return nil, err
		}
	}

	return &getAvailableSlots.Request{
		Date:     date,
		Duration: duration,
		Service:  service,
	}, nil
}
