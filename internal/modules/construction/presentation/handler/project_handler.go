package handler

import (
	"net/http"

	"construction-cost-app/internal/modules/construction/domain/entity"
	"construction-cost-app/internal/modules/construction/usecase"
)

// ProjectHandler プロジェクトAPIのハンドラー
type ProjectHandler struct {
	projectUseCase ProjectUseCaseInterface
}

// NewProjectHandler 新しいProjectHandlerを作成
func NewProjectHandler(projectUseCase ProjectUseCaseInterface) *ProjectHandler {
	return &ProjectHandler{projectUseCase: projectUseCase}
}

// HandleCreate プロジェクトを登録
func (h *ProjectHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateProjectInput
	if err := decodeJSON(w, r, &input); err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	project, err := h.projectUseCase.CreateProject(r.Context(), input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	sendJSON(w, http.StatusCreated, project)
}

// HandleList プロジェクト一覧（新しい順）
func (h *ProjectHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectUseCase.ListProjects(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	sendJSON(w, http.StatusOK, projects)
}

// HandleGet プロジェクトを1件取得
func (h *ProjectHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	project, err := h.projectUseCase.GetProject(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	sendJSON(w, http.StatusOK, project)
}

// HandleUpdate プロジェクトを部分更新
func (h *ProjectHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	var patch entity.ProjectPatch
	if err := decodeJSON(w, r, &patch); err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	project, err := h.projectUseCase.UpdateProject(r.Context(), id, patch)
	if err != nil {
		handleError(w, r, err)
		return
	}
	sendJSON(w, http.StatusOK, project)
}

// HandleProgress タスク進捗を取得
func (h *ProjectHandler) HandleProgress(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	progress, err := h.projectUseCase.GetProgress(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	sendJSON(w, http.StatusOK, progress)
}
