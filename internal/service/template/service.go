package template

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TireSlotService/internal/domain"
	templateRepo "github.com/m04kA/SMC-TireSlotService/internal/infra/storage/template"
	"github.com/m04kA/SMC-TireSlotService/internal/service/template/models"
	"github.com/m04kA/SMC-TireSlotService/pkg/types"
	"github.com/m04kA/SMC-TireSlotService/pkg/validation"
)

// Service сервис недельного шаблона расписания
type Service struct {
	reader      TemplateReader
	writer      TemplateWriter
	invalidator CacheInvalidator // nil, если кеш выключен
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса шаблона
func NewService(
	reader TemplateReader,
	writer TemplateWriter,
	invalidator CacheInvalidator,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		reader:      reader,
		writer:      writer,
		invalidator: invalidator,
		txManager:   txManager,
		logger:      logger,
	}
}

// GetTemplate возвращает текущий шаблон; если он не сохранялся, шаблон по умолчанию.
// Один вызов - один согласованный снимок для расчета слотов.
func (s *Service) GetTemplate(ctx context.Context) (domain.WeeklyTemplate, error) {
	tmpl, err := s.reader.Get(ctx)
	if err != nil {
		if errors.Is(err, templateRepo.ErrTemplateNotFound) {
			s.logger.Info("GetTemplate: template not stored, using default")
			return domain.DefaultWeeklyTemplate(), nil
		}
		s.logger.Error("GetTemplate: repository error: %v", err)
		return domain.WeeklyTemplate{}, fmt.Errorf("%w: GetTemplate - repository error: %v", ErrInternal, err)
	}

	return *tmpl, nil
}

// Get возвращает шаблон для API
func (s *Service) Get(ctx context.Context) (*models.TemplateResponse, error) {
	tmpl, err := s.GetTemplate(ctx)
	if err != nil {
		return nil, err
	}
	return models.FromDomainTemplate(tmpl), nil
}

// Update заменяет шаблон целиком и сбрасывает кеш
func (s *Service) Update(ctx context.Context, req *models.UpdateTemplateRequest) (*models.TemplateResponse, error) {
	s.logger.Info("Update: updating weekly template, timeGap=%d", req.TimeGap)

	if err := validateUpdateRequest(req); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	tmpl := req.ToDomainTemplate()

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.writer.Save(ctx, tmpl)
	})
	if err != nil {
		s.logger.Error("Update: failed to save template: %v", err)
		return nil, fmt.Errorf("%w: Update - save template: %v", ErrInternal, err)
	}

	if s.invalidator != nil {
		if err := s.invalidator.Invalidate(ctx); err != nil {
			// Запись в БД уже прошла, кеш догонит по TTL
			s.logger.Warn("Update: failed to invalidate template cache: %v", err)
		}
	}

	s.logger.Info("Update: weekly template saved")
	return models.FromDomainTemplate(tmpl), nil
}

// validateUpdateRequest проверяет теги и порядок времени рабочих дней
func validateUpdateRequest(req *models.UpdateTemplateRequest) error {
	if req == nil {
		return fmt.Errorf("%w: empty request", ErrInvalidInput)
	}

	if err := validation.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	for i, day := range req.Days() {
		if !day.IsAvailable {
			continue
		}
		start, _ := types.ParseMinute(day.StartTime)
		end, _ := types.ParseMinute(day.EndTime)
		if start >= end {
			return fmt.Errorf("%w: %s: startTime must be before endTime", ErrInvalidInput, domain.Weekday(i))
		}
	}

	return nil
}
