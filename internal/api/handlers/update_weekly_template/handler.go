package update_weekly_template

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TireSlotService/internal/api/handlers"
	"github.com/m04kA/SMC-TireSlotService/internal/service/template"
	"github.com/m04kA/SMC-TireSlotService/internal/service/template/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные данные шаблона: нужны все дни недели, время HH:MM, начало раньше конца, timeGap 0-240"
)

type Handler struct {
	service TemplateService
	logger  Logger
}

func NewHandler(service TemplateService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/schedule/template
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateTemplateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /schedule/template - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, template.ErrInvalidInput):
			h.logger.Warn("PUT /schedule/template - Invalid data: error=%v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PUT /schedule/template - Failed to update template: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /schedule/template - Template updated successfully: time_gap=%d", result.TimeGap)
	handlers.RespondJSON(w, http.StatusOK, result)
}
