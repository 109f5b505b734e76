package get_weekly_template

import (
	"net/http"

	"github.com/m04kA/SMC-TireSlotService/internal/api/handlers"
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

// Handle GET /api/v1/schedule/template
// Если шаблон не сохранен, сервис возвращает шаблон по умолчанию
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Get(r.Context())
	if err != nil {
		h.logger.Error("GET /schedule/template - Failed to get template: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /schedule/template - Template retrieved successfully: time_gap=%d", result.TimeGap)
	handlers.RespondJSON(w, http.StatusOK, result)
}
