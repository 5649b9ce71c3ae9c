package handler

import (
	"net/http"

	"construction-cost-app/internal/modules/construction/usecase"
)

// PhotoHandler 写真メタデータAPIのハンドラー
type PhotoHandler struct {
	photoUseCase PhotoUseCaseInterface
}

// NewPhotoHandler 新しいPhotoHandlerを作成
func NewPhotoHandler(photoUseCase PhotoUseCaseInterface) *PhotoHandler {
	return &PhotoHandler{photoUseCase: photoUseCase}
}

// HandleCreate 写真メタデータを登録
func (h *PhotoHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathID(r)
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	var input usecase.CreatePhotoInput
	if err := decodeJSON(w, r, &input); err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	photo, err := h.photoUseCase.CreatePhoto(r.Context(), projectID, input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	sendJSON(w, http.StatusCreated, photo)
}

// HandleList プロジェクトの写真一覧
func (h *PhotoHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathID(r)
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	photos, err := h.photoUseCase.ListPhotos(r.Context(), projectID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	sendJSON(w, http.StatusOK, photos)
}
