package crm

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("crm client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от CRM
	ErrInvalidResponse = errors.New("crm client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Каталог недоступен, длительности визитов берутся по умолчанию
	ErrServiceDegraded = errors.New("crm unavailable: graceful degradation applied")
)
