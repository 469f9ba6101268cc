package util

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
)

// SetupLogger : текстовый вывод в development, JSON в остальных окружениях
func SetupLogger(env string) *slog.Logger {
	var handler slog.Handler
	if env == "development" {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	} else {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// LogError : логирует ошибку и возвращает её обёрнутой в message
func LogError(message string, err error) error {
	slog.Error(message, "err", err)
	return fmt.Errorf("%s: %w", message, err)
}

func WriteJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("ошибка кодирования ответа", "err", err)
	}
}

// HandleError : ответ для маршрутов вне API (404, 405)
func HandleError(w http.ResponseWriter, message string, statusCode int) {
	errorResponse := struct {
		Error   string `json:"error"`
		Message string `json:"message"`
		Code    int    `json:"code"`
	}{
		Error:   http.StatusText(statusCode),
		Message: message,
		Code:    statusCode,
	}

	WriteJSON(w, statusCode, errorResponse)
}
