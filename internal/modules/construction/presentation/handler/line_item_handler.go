package handler

import (
	"context"
	"net/http"
)

// LineItemHandler 資材・作業員・その他経費APIのハンドラー
type LineItemHandler struct {
	lineItemUseCase LineItemUseCaseInterface
}

// NewLineItemHandler 新しいLineItemHandlerを作成
func NewLineItemHandler(lineItemUseCase LineItemUseCaseInterface) *LineItemHandler {
	return &LineItemHandler{lineItemUseCase: lineItemUseCase}
}

// HandleCreateMaterial 資材を登録
func (h *LineItemHandler) HandleCreateMaterial(w http.ResponseWriter, r *http.Request) {
	handleCreate(w, r, h.lineItemUseCase.CreateMaterial)
}

// HandleListMaterials プロジェクトの資材一覧
func (h *LineItemHandler) HandleListMaterials(w http.ResponseWriter, r *http.Request) {
	handleList(w, r, h.lineItemUseCase.ListMaterials)
}

// HandleUpdateMaterial 資材を部分更新
func (h *LineItemHandler) HandleUpdateMaterial(w http.ResponseWriter, r *http.Request) {
	handleUpdate(w, r, h.lineItemUseCase.UpdateMaterial)
}

// HandleCreateWorker 作業員を登録
func (h *LineItemHandler) HandleCreateWorker(w http.ResponseWriter, r *http.Request) {
	handleCreate(w, r, h.lineItemUseCase.CreateWorker)
}

// HandleListWorkers プロジェクトの作業員一覧
func (h *LineItemHandler) HandleListWorkers(w http.ResponseWriter, r *http.Request) {
	handleList(w, r, h.lineItemUseCase.ListWorkers)
}

// HandleUpdateWorker 作業員を部分更新
func (h *LineItemHandler) HandleUpdateWorker(w http.ResponseWriter, r *http.Request) {
	handleUpdate(w, r, h.lineItemUseCase.UpdateWorker)
}

// HandleCreateOtherExpense その他経費を登録
func (h *LineItemHandler) HandleCreateOtherExpense(w http.ResponseWriter, r *http.Request) {
	handleCreate(w, r, h.lineItemUseCase.CreateOtherExpense)
}

// HandleListOtherExpenses プロジェクトのその他経費一覧
func (h *LineItemHandler) HandleListOtherExpenses(w http.ResponseWriter, r *http.Request) {
	handleList(w, r, h.lineItemUseCase.ListOtherExpenses)
}

// HandleUpdateOtherExpense その他経費を部分更新
func (h *LineItemHandler) HandleUpdateOtherExpense(w http.ResponseWriter, r *http.Request) {
	handleUpdate(w, r, h.lineItemUseCase.UpdateOtherExpense)
}

// handleCreate {id}をプロジェクトIDとしてボディの入力から登録
func handleCreate[In, Out any](w http.ResponseWriter, r *http.Request, create func(context.Context, int64, In) (Out, error)) {
	projectID, err := pathID(r)
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	var input In
	if err := decodeJSON(w, r, &input); err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := create(r.Context(), projectID, input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	sendJSON(w, http.StatusCreated, created)
}

func handleList[Out any](w http.ResponseWriter, r *http.Request, list func(context.Context, int64) (Out, error)) {
	projectID, err := pathID(r)
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	items, err := list(r.Context(), projectID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	sendJSON(w, http.StatusOK, items)
}

// handleUpdate {id}を明細IDとしてボディのパッチを適用
func handleUpdate[P, Out any](w http.ResponseWriter, r *http.Request, update func(context.Context, int64, P) (Out, error)) {
	id, err := pathID(r)
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	var patch P
	if err := decodeJSON(w, r, &patch); err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := update(r.Context(), id, patch)
	if err != nil {
		handleError(w, r, err)
		return
	}
	sendJSON(w, http.StatusOK, updated)
}
