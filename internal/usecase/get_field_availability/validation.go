package get_field_availability

import (
	"fmt"

	"github.com/m04kA/SMC-TireSlotService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Limit < 0 || req.Limit > domain.MaxSlotsLimit {
		return fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidInput, domain.MaxSlotsLimit)
	}
	return nil
}
