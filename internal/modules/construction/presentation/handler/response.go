package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"construction-cost-app/internal/modules/construction/domain"
	"construction-cost-app/internal/modules/shared/logging"
)

// maxBodyBytes リクエストボディの上限（1MB）
const maxBodyBytes = 1 << 20

// APIResponse APIレスポンス
type APIResponse struct {
	Success bool                 `json:"success"`
	Data    any                  `json:"data,omitempty"`
	Error   string               `json:"error,omitempty"`
	Details []FieldErrorResponse `json:"details,omitempty"`
}

// FieldErrorResponse フィールド単位の検証エラー
type FieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func sendJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(APIResponse{Success: true, Data: data})
}

func sendError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(APIResponse{Success: false, Error: message})
}

// handleError ドメインエラーをHTTPステータスに変換して返す
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	logger := logging.FromContext(r.Context())

	var notFound *domain.NotFoundError
	var validation *domain.ValidationError
	switch {
	case errors.As(err, &notFound):
		sendError(w, notFound.Error(), http.StatusNotFound)
	case errors.As(err, &validation):
		details := make([]FieldErrorResponse, len(validation.Fields))
		for i, f := range validation.Fields {
			details[i] = FieldErrorResponse{Field: f.Field, Message: f.Message}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(APIResponse{
			Success: false,
			Error:   validation.Error(),
			Details: details,
		})
	case domain.IsInfrastructure(err),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		logger.Error("Storage unavailable", "error", err)
		sendError(w, "Service temporarily unavailable, please retry", http.StatusServiceUnavailable)
	default:
		logger.Error("Unexpected error", "error", err)
		sendError(w, "Internal server error", http.StatusInternalServerError)
	}
}

// pathID パスパラメータ{id}を正の整数として取得
func pathID(r *http.Request) (int64, error) {
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id: %q", raw)
	}
	return id, nil
}

// decodeJSON リクエストボディをdstにデコード
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// parseAsOfDate RFC 3339またはYYYY-MM-DD（UTCの0時）を解釈。空ならnil
func parseAsOfDate(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.ParseInLocation(time.DateOnly, raw, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("invalid as_of_date: %q", raw)
	}
	return &t, nil
}
