package template

import "errors"

var (
	// ErrTemplateNotFound возвращается, когда шаблон расписания еще не сохранялся
	ErrTemplateNotFound = errors.New("template.repository: template not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("template.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("template.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("template.repository: failed to scan row")

	// ErrInvalidTime возвращается, если время дня не в формате HH:MM
	ErrInvalidTime = errors.New("template.repository: invalid day time")
)
