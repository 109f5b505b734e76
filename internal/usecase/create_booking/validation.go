package create_booking

import (
	"fmt"

	"github.com/m04kA/SMC-TireSlotService/pkg/validation"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if err := validation.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if !req.StartTime.Valid() {
		return fmt.Errorf("%w: invalid startTime", ErrInvalidInput)
	}

	if req.Duration == 0 && req.Service == "" {
		return fmt.Errorf("%w: duration or service is required", ErrInvalidInput)
	}

	return nil
}
