package get_day_bookings

import (
	"fmt"
	"strconv"

	"github.com/m04kA/SMC-TireSlotService/internal/domain"
	"github.com/m04kA/SMC-TireSlotService/internal/service/bookings/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(dateStr, includeInactiveStr string) (*models.ListByDateRequest, error) {
	date, err := domain.ParseDate(dateStr)
	if err != nil {
		return nil, err
	}

	req := &models.ListByDateRequest{
		Date:            date,
		IncludeInactive: false, // По умолчанию только активные
	}

	if includeInactiveStr != "" {
		includeInactive, err := strconv.ParseBool(includeInactiveStr)
		if err != nil {
			return nil, fmt.Errorf("invalid includeInactive value: %w", err)
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}
