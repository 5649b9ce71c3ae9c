package entity

import "time"

// PhotoType 写真の種別
type PhotoType string

const (
	PhotoTypeBefore   PhotoType = "before"
	PhotoTypeProgress PhotoType = "progress"
	PhotoTypeAfter    PhotoType = "after"
	PhotoTypeOther    PhotoType = "other"
)

// IsValid 定義済みの種別かチェック
func (t PhotoType) IsValid() bool {
	switch t {
	case PhotoTypeBefore, PhotoTypeProgress, PhotoTypeAfter, PhotoTypeOther:
		return true
	}
	return false
}

// ProjectPhoto 現場写真のメタデータ（ファイル本体は扱わない）
type ProjectPhoto struct {
	ID           int64     `json:"id"`
	ProjectID    int64     `json:"project_id"`
	Filename     string    `json:"filename"`
	OriginalName string    `json:"original_name"`
	FilePath     string    `json:"file_path"`
	FileSize     int64     `json:"file_size"`
	MimeType     string    `json:"mime_type"`
	Description  *string   `json:"description"`
	PhotoType    PhotoType `json:"photo_type"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewProjectPhoto 新しいProjectPhotoを作成（photoTypeが空ならother）
func NewProjectPhoto(projectID int64, filename, originalName, filePath string, fileSize int64, mimeType string, description *string, photoType PhotoType, now time.Time) *ProjectPhoto {
	if photoType == "" {
		photoType = PhotoTypeOther
	}
	return &ProjectPhoto{
		ProjectID:    projectID,
		Filename:     filename,
		OriginalName: originalName,
		FilePath:     filePath,
		FileSize:     fileSize,
		MimeType:     mimeType,
		Description:  description,
		PhotoType:    photoType,
		CreatedAt:    NormalizeTime(now),
	}
}
