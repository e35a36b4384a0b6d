package models

import (
	"errors"
	"fmt"
)

// ValidationError - ошибка валидации входных данных.
// Отклоняется до изменения состояния и отдаётся клиенту как 4xx.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
}

// ErrUpstreamUnavailable - внешний коллаборатор (погода, vision) недоступен
// или не ответил в таймаут. Восстанавливается локально через fallback,
// никогда не становится ошибкой всего запроса.
var ErrUpstreamUnavailable = errors.New("upstream unavailable")

// ErrMalformedPayload - коллаборатор вернул ответ неожиданной формы.
// Восстанавливается best-effort разбором, логируется, не фатально.
var ErrMalformedPayload = errors.New("malformed upstream payload")
