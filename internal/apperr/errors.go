// Package apperr описывает ошибки приложения и их отображение на HTTP-коды.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrAuthRequired : у пользователя нет сессии Strava или её не удалось обновить
var ErrAuthRequired = errors.New("пользователь не авторизован в Strava")

// ValidationError : в запросе отсутствует или неверно обязательное поле
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func Validation(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ExternalAuthError : OAuth-провайдер отклонил запрос (exchange, refresh, revoke)
type ExternalAuthError struct {
	Op         string
	StatusCode int
	Body       string
	Err        error
}

func (e *ExternalAuthError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("oauth %s: статус %d: %s", e.Op, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("oauth %s: %v", e.Op, e.Err)
}

func (e *ExternalAuthError) Unwrap() error {
	return e.Err
}

// Rejected : провайдер ответил 4xx, а не сетевая ошибка или 5xx
func (e *ExternalAuthError) Rejected() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}

// UpstreamFetchError : запрос к API Strava вернул не 2xx или не выполнился
type UpstreamFetchError struct {
	Path       string
	StatusCode int
	Body       string
	Err        error
}

func (e *UpstreamFetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("strava api %s: статус %d: %s", e.Path, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("strava api %s: %v", e.Path, e.Err)
}

func (e *UpstreamFetchError) Unwrap() error {
	return e.Err
}

// GenerationParseError : ответ генеративной модели пуст или не соответствует схеме
type GenerationParseError struct {
	Reason string
	Err    error
}

func (e *GenerationParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("не удалось разобрать план тренировок: %s: %v", e.Reason, e.Err)
	}
	return "не удалось разобрать план тренировок: " + e.Reason
}

func (e *GenerationParseError) Unwrap() error {
	return e.Err
}

// StatusCode : HTTP-статус для ошибки сервиса, по умолчанию 500
func StatusCode(err error) int {
	var validationErr *ValidationError
	var externalAuthErr *ExternalAuthError
	var upstreamErr *UpstreamFetchError
	var generationErr *GenerationParseError

	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &upstreamErr):
		return http.StatusBadGateway
	case errors.Is(err, ErrAuthRequired), errors.As(err, &externalAuthErr):
		return http.StatusUnauthorized
	case errors.As(err, &generationErr):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
