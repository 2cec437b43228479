package domain

import "context"

// Folder is the external storage collaborator: a container of files
// addressed by a stable identifier.
// This can be implemented by S3, Google Drive, local filesystem, etc.
type Folder interface {
	// FilesByName lists the files whose name equals name, in storage
	// iteration order. Duplicate names are possible; the order between
	// duplicates is whatever the backend returns.
	FilesByName(ctx context.Context, name string) ([]File, error)

	// CreateFile stores blob as a new file and returns its metadata.
	// Existing files with the same name are never touched.
	CreateFile(ctx context.Context, blob Blob) (File, error)

	// ReadFile returns the full content of the file with the given ID.
	ReadFile(ctx context.Context, id string) ([]byte, error)
}
