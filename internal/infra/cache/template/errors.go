package template

import "errors"

var (
	// ErrCacheMiss возвращается, когда ключа нет в кеше
	ErrCacheMiss = errors.New("template.cache: cache miss")

	// ErrStore возвращается при ошибках обращения к Redis
	ErrStore = errors.New("template.cache: store error")
)
