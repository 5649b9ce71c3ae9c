package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"construction-cost-app/internal/modules/shared/logging"
)

// pingTimeout ストア疎通確認のタイムアウト
const pingTimeout = 2 * time.Second

// Pinger 疎通確認できるストア
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler ヘルスチェックのハンドラー
type HealthHandler struct {
	store   Pinger
	version string
	now     func() time.Time
}

// NewHealthHandler 新しいHealthHandlerを作成
func NewHealthHandler(store Pinger, version string) *HealthHandler {
	return &HealthHandler{
		store:   store,
		version: version,
		now:     time.Now,
	}
}

// HealthResponse ヘルスチェックのレスポンス
type HealthResponse struct {
	Status    string    `json:"status"`
	Version   string    `json:"version"`
	Timestamp time.Time `json:"timestamp"`
}

// ServeHTTP ヘルスチェックを処理
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := HealthResponse{
		Status:    "ok",
		Version:   h.version,
		Timestamp: h.now().UTC(),
	}
	status := http.StatusOK

	if h.store != nil {
		ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
		defer cancel()
		if err := h.store.Ping(ctx); err != nil {
			logging.FromContext(r.Context()).Warn("Store ping failed", "error", err)
			response.Status = "unavailable"
			status = http.StatusServiceUnavailable
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(response)
}
