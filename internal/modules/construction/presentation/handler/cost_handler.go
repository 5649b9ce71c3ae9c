package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"construction-cost-app/internal/modules/shared/logging"
)

// CostHandler 原価集計・明細書APIのハンドラー
type CostHandler struct {
	costSummaryUseCase CostSummaryUseCaseInterface
	receiptUseCase     ReceiptUseCaseInterface
}

// NewCostHandler 新しいCostHandlerを作成
func NewCostHandler(costSummaryUseCase CostSummaryUseCaseInterface, receiptUseCase ReceiptUseCaseInterface) *CostHandler {
	return &CostHandler{
		costSummaryUseCase: costSummaryUseCase,
		receiptUseCase:     receiptUseCase,
	}
}

// HandleCostSummary 原価集計（?as_of_date=で基準日指定）
func (h *CostHandler) HandleCostSummary(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathID(r)
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	asOf, err := parseAsOfDate(r.URL.Query().Get("as_of_date"))
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	summary, err := h.costSummaryUseCase.ComputeCostSummary(r.Context(), projectID, asOf)
	if err != nil {
		handleError(w, r, err)
		return
	}
	sendJSON(w, http.StatusOK, summary)
}

// HandleReceipt 工事明細書を生成（?format=csvでCSV出力）
func (h *CostHandler) HandleReceipt(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathID(r)
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	format := r.URL.Query().Get("format")
	if format != "" && format != "json" && format != "csv" {
		sendError(w, fmt.Sprintf("unsupported format: %q", format), http.StatusBadRequest)
		return
	}

	receipt, err := h.receiptUseCase.GenerateReceipt(r.Context(), projectID)
	if err != nil {
		handleError(w, r, err)
		return
	}

	if format != "csv" {
		sendJSON(w, http.StatusOK, receipt)
		return
	}

	// 書き出しに失敗したら部分的なCSVは送らない
	var buf bytes.Buffer
	if err := WriteReceiptCSV(&buf, receipt); err != nil {
		logging.FromContext(r.Context()).Error("Failed to render receipt CSV", "error", err)
		sendError(w, "Failed to render receipt", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="receipt-project-%d.csv"`, projectID))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
