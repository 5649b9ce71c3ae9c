package router

import (
	"net/http"

	"construction-cost-app/internal/presentation/di"
	"construction-cost-app/internal/presentation/http/middleware"
)

// NewRouter 新しいルーターを作成
func NewRouter(container *di.Container) http.Handler {
	mux := http.NewServeMux()

	// Health check
	mux.Handle("GET /health", container.HealthHandler())

	// プロジェクト
	projectHandler := container.ProjectHandler()
	mux.HandleFunc("POST /api/v1/projects", projectHandler.HandleCreate)
	mux.HandleFunc("GET /api/v1/projects", projectHandler.HandleList)
	mux.HandleFunc("GET /api/v1/projects/{id}", projectHandler.HandleGet)
	mux.HandleFunc("PATCH /api/v1/projects/{id}", projectHandler.HandleUpdate)
	mux.HandleFunc("GET /api/v1/projects/{id}/progress", projectHandler.HandleProgress)

	// タスク
	taskHandler := container.TaskHandler()
	mux.HandleFunc("POST /api/v1/projects/{id}/tasks", taskHandler.HandleCreate)
	mux.HandleFunc("GET /api/v1/projects/{id}/tasks", taskHandler.HandleList)
	mux.HandleFunc("PATCH /api/v1/tasks/{id}", taskHandler.HandleUpdate)

	// 資材・作業員・その他経費
	lineItemHandler := container.LineItemHandler()
	mux.HandleFunc("POST /api/v1/projects/{id}/materials", lineItemHandler.HandleCreateMaterial)
	mux.HandleFunc("GET /api/v1/projects/{id}/materials", lineItemHandler.HandleListMaterials)
	mux.HandleFunc("PATCH /api/v1/materials/{id}", lineItemHandler.HandleUpdateMaterial)
	mux.HandleFunc("POST /api/v1/projects/{id}/workers", lineItemHandler.HandleCreateWorker)
	mux.HandleFunc("GET /api/v1/projects/{id}/workers", lineItemHandler.HandleListWorkers)
	mux.HandleFunc("PATCH /api/v1/workers/{id}", lineItemHandler.HandleUpdateWorker)
	mux.HandleFunc("POST /api/v1/projects/{id}/other-expenses", lineItemHandler.HandleCreateOtherExpense)
	mux.HandleFunc("GET /api/v1/projects/{id}/other-expenses", lineItemHandler.HandleListOtherExpenses)
	mux.HandleFunc("PATCH /api/v1/other-expenses/{id}", lineItemHandler.HandleUpdateOtherExpense)

	// 写真メタデータ
	photoHandler := container.PhotoHandler()
	mux.HandleFunc("POST /api/v1/projects/{id}/photos", photoHandler.HandleCreate)
	mux.HandleFunc("GET /api/v1/projects/{id}/photos", photoHandler.HandleList)

	// 原価集計・明細書
	costHandler := container.CostHandler()
	mux.HandleFunc("GET /api/v1/projects/{id}/cost-summary", costHandler.HandleCostSummary)
	mux.HandleFunc("GET /api/v1/projects/{id}/receipt", costHandler.HandleReceipt)

	// ミドルウェアの適用
	var h http.Handler = mux
	if limiter := container.RateLimiter(); limiter != nil {
		h = middleware.RateLimit(limiter, container.Config().RateLimit.TrustedProxies)(h)
	}
	h = middleware.Recovery(h)
	h = middleware.LoggerWithHealthCheck(h)
	h = middleware.RequestID(h)
	h = middleware.CORS(container.Config().Server.AllowedOrigins)(h)

	return h
}
