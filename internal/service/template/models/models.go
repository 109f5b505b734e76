package models

import (
	"github.com/m04kA/SMC-TireSlotService/internal/domain"
)

// DaySpec расписание одного дня недели
type DaySpec struct {
	IsAvailable bool   `json:"isAvailable"`
	StartTime   string `json:"startTime" validate:"omitempty,hhmm"`
	EndTime     string `json:"endTime" validate:"omitempty,hhmm"`
}

// UpdateTemplateRequest запрос на полную замену недельного шаблона
// Все дни обязательны: шаблон обновляется целиком
type UpdateTemplateRequest struct {
	Monday    *DaySpec `json:"monday" validate:"required"`
	Tuesday   *DaySpec `json:"tuesday" validate:"required"`
	Wednesday *DaySpec `json:"wednesday" validate:"required"`
	Thursday  *DaySpec `json:"thursday" validate:"required"`
	Friday    *DaySpec `json:"friday" validate:"required"`
	Saturday  *DaySpec `json:"saturday" validate:"required"`
	Sunday    *DaySpec `json:"sunday" validate:"required"`
	TimeGap   int      `json:"timeGap" validate:"gte=0,lte=240"`
}

// TemplateResponse недельный шаблон {monday: {...}, ..., sunday: {...}, timeGap: n}
type TemplateResponse struct {
	Monday    DaySpec `json:"monday"`
	Tuesday   DaySpec `json:"tuesday"`
	Wednesday DaySpec `json:"wednesday"`
	Thursday  DaySpec `json:"thursday"`
	Friday    DaySpec `json:"friday"`
	Saturday  DaySpec `json:"saturday"`
	Sunday    DaySpec `json:"sunday"`
	TimeGap   int     `json:"timeGap"`
}

// Days возвращает дни запроса по порядку с понедельника
func (r *UpdateTemplateRequest) Days() [domain.DaysInWeek]*DaySpec {
	return [domain.DaysInWeek]*DaySpec{
		r.Monday, r.Tuesday, r.Wednesday, r.Thursday, r.Friday, r.Saturday, r.Sunday,
	}
}

// ToDomainTemplate конвертирует запрос в domain модель
// Для выходных дней без времени подставляется 09:00-17:00
func (r *UpdateTemplateRequest) ToDomainTemplate() domain.WeeklyTemplate {
	var tmpl domain.WeeklyTemplate
	for i, day := range r.Days() {
		spec := domain.DaySpec{StartTime: domain.DefaultDayStart, EndTime: domain.DefaultDayEnd}
		if day != nil {
			spec.IsAvailable = day.IsAvailable
			if day.StartTime != "" {
				spec.StartTime = day.StartTime
			}
			if day.EndTime != "" {
				spec.EndTime = day.EndTime
			}
		}
		tmpl.Days[i] = spec
	}
	tmpl.TimeGap = r.TimeGap
	return tmpl
}

// FromDomainTemplate конвертирует domain модель в DTO
func FromDomainTemplate(t domain.WeeklyTemplate) *TemplateResponse {
	day := func(d domain.Weekday) DaySpec {
		spec := t.Day(d)
		return DaySpec{IsAvailable: spec.IsAvailable, StartTime: spec.StartTime, EndTime: spec.EndTime}
	}

	return &TemplateResponse{
		Monday:    day(domain.Monday),
		Tuesday:   day(domain.Tuesday),
		Wednesday: day(domain.Wednesday),
		Thursday:  day(domain.Thursday),
		Friday:    day(domain.Friday),
		Saturday:  day(domain.Saturday),
		Sunday:    day(domain.Sunday),
		TimeGap:   t.TimeGap,
	}
}
