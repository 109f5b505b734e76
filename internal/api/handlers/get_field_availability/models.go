package get_field_availability

import (
	"strconv"

	"github.com/m04kA/SMC-TireSlotService/internal/domain"
	getFieldAvailability "github.com/m04kA/SMC-TireSlotService/internal/usecase/get_field_availability"
)

// DayRangesResponse свободные диапазоны одного дня
type DayRangesResponse struct {
	Label  string   `json:"label"`
	Date   string   `json:"date"`
	Ranges []string `json:"ranges"` // ["12:30–13:30"]
}

// DaysResponse диапазоны на три дня
type DaysResponse struct {
	Today    DayRangesResponse `json:"today"`
	Tomorrow DayRangesResponse `json:"tomorrow"`
	Next     DayRangesResponse `json:"next"`
}

// FieldAvailabilityResponse HTTP response model
type FieldAvailabilityResponse struct {
	Days  DaysResponse `json:"days"`
	Slots []string     `json:"slots"` // ["Dziś 15:45", ...]
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getFieldAvailability.Response) *FieldAvailabilityResponse {
	result := &FieldAvailabilityResponse{Slots: resp.Slots}
	if result.Slots == nil {
		result.Slots = []string{}
	}

	for _, day := range resp.Days {
		item := DayRangesResponse{
			Label:  day.Label,
			Date:   day.Date.Format(domain.DateFormat),
			Ranges: day.Ranges,
		}
		if item.Ranges == nil {
			item.Ranges = []string{}
		}

		switch day.Key {
		case getFieldAvailability.DayToday:
			result.Days.Today = item
		case getFieldAvailability.DayTomorrow:
			result.Days.Tomorrow = item
		case getFieldAvailability.DayNext:
			result.Days.Next = item
		}
	}

	return result
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(limitStr string) (*getFieldAvailability.Request, error) {
	if limitStr == "" {
		return &getFieldAvailability.Request{}, nil
	}

	limit, err := strconv.Atoi(limitStr)
	if err != nil {
		return nil, err
	}

	return &getFieldAvailability.Request{Limit: limit}, nil
}
