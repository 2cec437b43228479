package application

import (
	"context"
	"fmt"

	"github.com/saransh1220/html-drop/internal/modules/files/domain"
)

// FileService provides the two operations exposed over HTTP: fetching a
// stored file's content by name and uploading new content behind a shared
// secret.
type FileService struct {
	folder    domain.Folder
	scriptKey string
}

// NewFileService creates a new file service
func NewFileService(folder domain.Folder, scriptKey string) *FileService {
	return &FileService{
		folder:    folder,
		scriptKey: scriptKey,
	}
}

// Fetch returns the content of the first file in the folder matching name.
// When several files share the name, storage listing order decides which
// one is served. Returns domain.ErrFileNotFound when nothing matches.
func (s *FileService) Fetch(ctx context.Context, name string) (string, error) {
	files, err := s.folder.FilesByName(ctx, name)
	if err != nil {
		return "", fmt.Errorf("list files: %w", err)
	}
	if len(files) == 0 {
		return "", domain.ErrFileNotFound
	}

	content, err := s.folder.ReadFile(ctx, files[0].ID)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	return string(content), nil
}

// Upload validates the caller's script key and stores content as a new
// text/html file named name. Validation fails fast: missing fields are
// reported before the key is compared. Every successful call creates a
// fresh file; existing files with the same name are left alone.
func (s *FileService) Upload(ctx context.Context, scriptKey, name, content string) (domain.File, error) {
	if scriptKey == "" || name == "" || content == "" {
		return domain.File{}, domain.ErrMissingParameters
	}
	if scriptKey != s.scriptKey {
		return domain.File{}, domain.ErrUnauthorized
	}

	file, err := s.folder.CreateFile(ctx, domain.Blob{
		Name:        name,
		ContentType: "text/html",
		Content:     []byte(content),
	})
	if err != nil {
		return domain.File{}, fmt.Errorf("create file: %w", err)
	}
	return file, nil
}
