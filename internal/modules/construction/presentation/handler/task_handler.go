package handler

import (
	"net/http"

	"construction-cost-app/internal/modules/construction/domain/entity"
	"construction-cost-app/internal/modules/construction/usecase"
)

// TaskHandler タスクAPIのハンドラー
type TaskHandler struct {
	taskUseCase TaskUseCaseInterface
}

// NewTaskHandler 新しいTaskHandlerを作成
func NewTaskHandler(taskUseCase TaskUseCaseInterface) *TaskHandler {
	return &TaskHandler{taskUseCase: taskUseCase}
}

// HandleCreate プロジェクトにタスクを登録
func (h *TaskHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathID(r)
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	var input usecase.CreateTaskInput
	if err := decodeJSON(w, r, &input); err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	task, err := h.taskUseCase.CreateTask(r.Context(), projectID, input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	sendJSON(w, http.StatusCreated, task)
}

// HandleList プロジェクトのタスク一覧
func (h *TaskHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathID(r)
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	tasks, err := h.taskUseCase.ListTasks(r.Context(), projectID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	sendJSON(w, http.StatusOK, tasks)
}

// HandleUpdate タスクを部分更新
func (h *TaskHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	var patch entity.TaskPatch
	if err := decodeJSON(w, r, &patch); err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	task, err := h.taskUseCase.UpdateTask(r.Context(), id, patch)
	if err != nil {
		handleError(w, r, err)
		return
	}
	sendJSON(w, http.StatusOK, task)
}
