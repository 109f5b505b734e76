package update_weekly_template

import (
	"context"

	"github.com/m04kA/SMC-TireSlotService/internal/service/template/models"
)

type TemplateService interface {
	Update(ctx context.Context, req *models.UpdateTemplateRequest) (*models.TemplateResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
