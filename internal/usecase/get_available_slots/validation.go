package get_available_slots

import (
	"fmt"

	"github.com/m04kA/SMC-TireSlotService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Duration < 0 || req.Duration > domain.MaxServiceDurationMinutes {
		return fmt.Errorf("%w: duration must be between 1 and %d", ErrInvalidInput, domain.MaxServiceDurationMinutes)
	}

	if req.Duration == 0 && req.Service == "" {
		return fmt.Errorf("%w: duration or service is required", ErrInvalidInput)
	}

	return nil
}
