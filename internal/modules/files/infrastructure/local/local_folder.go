package local

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/saransh1220/html-drop/internal/modules/files/domain"
)

const metaSuffix = ".meta"

// Folder implements domain.Folder on the local filesystem. Files live at
// <basePath>/<folderID>/<escaped name>/<id>, so duplicate names coexist as
// separate entries under one directory. A JSON sidecar per file records
// the MIME type.
type Folder struct {
	root string
}

type fileMeta struct {
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
}

// NewFolder creates a local filesystem folder rooted at basePath/folderID
func NewFolder(basePath, folderID string) (*Folder, error) {
	if folderID == "" {
		return nil, fmt.Errorf("folder id is required")
	}

	root := filepath.Join(basePath, folderID)
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("failed to create folder directory: %w", err)
	}

	return &Folder{root: root}, nil
}

// FilesByName lists the files stored under name, in lexical entry order.
func (f *Folder) FilesByName(ctx context.Context, name string) ([]domain.File, error) {
	dir := f.nameDir(name)
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list directory: %w", err)
	}

	var files []domain.File
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) == metaSuffix {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("failed to stat file: %w", err)
		}

		meta := f.readMeta(filepath.Join(dir, entry.Name()))
		files = append(files, domain.File{
			ID:          path.Join(escapeName(name), entry.Name()),
			Name:        name,
			ContentType: meta.ContentType,
			Size:        info.Size(),
		})
	}
	return files, nil
}

// CreateFile writes blob as a new file with a generated ID.
func (f *Folder) CreateFile(ctx context.Context, blob domain.Blob) (domain.File, error) {
	dir := f.nameDir(blob.Name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return domain.File{}, fmt.Errorf("failed to create directory: %w", err)
	}

	id := uuid.New().String()
	fullPath := filepath.Join(dir, id)
	if err := os.WriteFile(fullPath, blob.Content, 0644); err != nil {
		return domain.File{}, fmt.Errorf("failed to write file: %w", err)
	}

	meta, err := json.Marshal(fileMeta{Name: blob.Name, ContentType: blob.ContentType})
	if err != nil {
		return domain.File{}, fmt.Errorf("failed to encode metadata: %w", err)
	}
	if err := os.WriteFile(fullPath+metaSuffix, meta, 0644); err != nil {
		return domain.File{}, fmt.Errorf("failed to write metadata: %w", err)
	}

	return domain.File{
		ID:          path.Join(escapeName(blob.Name), id),
		Name:        blob.Name,
		ContentType: blob.ContentType,
		Size:        int64(len(blob.Content)),
	}, nil
}

// ReadFile returns the content of the file with the given ID.
func (f *Folder) ReadFile(ctx context.Context, id string) ([]byte, error) {
	content, err := os.ReadFile(filepath.Join(f.root, filepath.FromSlash(id)))
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return content, nil
}

// nameDir maps a file name to its directory under the folder root.
func (f *Folder) nameDir(name string) string {
	return filepath.Join(f.root, escapeName(name))
}

// escapeName turns a file name into a single directory entry. PathEscape
// leaves "." and ".." unchanged, so those get their dots percent-encoded
// too; otherwise a file named ".." would land outside the folder root.
func escapeName(name string) string {
	escaped := url.PathEscape(name)
	if escaped == "." || escaped == ".." {
		escaped = strings.ReplaceAll(escaped, ".", "%2E")
	}
	return escaped
}

// readMeta loads the sidecar for a content file. A missing or corrupt
// sidecar degrades to empty metadata rather than failing the listing.
func (f *Folder) readMeta(contentPath string) fileMeta {
	var meta fileMeta
	raw, err := os.ReadFile(contentPath + metaSuffix)
	if err != nil {
		return meta
	}
	_ = json.Unmarshal(raw, &meta)
	return meta
}
