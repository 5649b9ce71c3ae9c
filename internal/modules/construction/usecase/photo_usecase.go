package usecase

import (
	"context"
	"fmt"
	"time"

	"construction-cost-app/internal/modules/construction/domain/entity"
	"construction-cost-app/internal/modules/construction/domain/repository"
	"construction-cost-app/internal/modules/construction/domain/service"
)

// CreatePhotoInput 工事写真メタデータ登録の入力
type CreatePhotoInput struct {
	Filename     string           `json:"filename"`
	OriginalName string           `json:"original_name"`
	FilePath     string           `json:"file_path"`
	FileSize     int64            `json:"file_size"`
	MimeType     string           `json:"mime_type"`
	Description  *string          `json:"description"`
	PhotoType    entity.PhotoType `json:"photo_type"`
}

// PhotoUseCase 工事写真のユースケース
type PhotoUseCase struct {
	projectRepo repository.ProjectRepository
	photoRepo   repository.PhotoRepository
	now         func() time.Time
}

// NewPhotoUseCase 新しいPhotoUseCaseを作成
func NewPhotoUseCase(projectRepo repository.ProjectRepository, photoRepo repository.PhotoRepository) *PhotoUseCase {
	return &PhotoUseCase{projectRepo: projectRepo, photoRepo: photoRepo, now: time.Now}
}

// CreatePhoto 写真メタデータを登録
func (uc *PhotoUseCase) CreatePhoto(ctx context.Context, projectID int64, input CreatePhotoInput) (*entity.ProjectPhoto, error) {
	photo := entity.NewProjectPhoto(projectID, input.Filename, input.OriginalName, input.FilePath, input.FileSize, input.MimeType, input.Description, input.PhotoType, uc.now())
	if err := service.ValidateProjectPhoto(photo); err != nil {
		return nil, err
	}
	if _, err := uc.projectRepo.FindByID(ctx, projectID); err != nil {
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	if err := uc.photoRepo.Create(ctx, photo); err != nil {
		return nil, fmt.Errorf("failed to create photo: %w", err)
	}
	return photo, nil
}

// ListPhotos プロジェクトの写真一覧を取得
func (uc *PhotoUseCase) ListPhotos(ctx context.Context, projectID int64) ([]*entity.ProjectPhoto, error) {
	photos, err := uc.photoRepo.FindByProjectID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list photos: %w", err)
	}
	return photos, nil
}
