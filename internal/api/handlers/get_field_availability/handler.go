package get_field_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TireSlotService/internal/api/handlers"
	getFieldAvailability "github.com/m04kA/SMC-TireSlotService/internal/usecase/get_field_availability"
)

const msgInvalidLimit = "некорректный limit, ожидается число от 1 до 100"

type Handler struct {
	useCase GetFieldAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetFieldAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/field-service/availability
// Query params: limit (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	useCaseReq, err := ToUseCaseRequest(r.URL.Query().Get("limit"))
	if err != nil {
		h.logger.Warn("GET /field-service/availability - Invalid limit: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLimit)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getFieldAvailability.ErrInvalidInput):
			h.logger.Warn("GET /field-service/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidLimit)

		default:
			h.logger.Error("GET /field-service/availability - Failed to get availability: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /field-service/availability - Availability retrieved successfully: slots_count=%d",
		len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
