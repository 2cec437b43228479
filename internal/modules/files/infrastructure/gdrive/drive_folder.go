package gdrive

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/saransh1220/html-drop/internal/modules/files/domain"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// Folder implements domain.Folder on a Google Drive folder. The folder ID
// is a Drive folder; file IDs are the IDs Drive assigns on creation.
type Folder struct {
	svc      *drive.Service
	folderID string
}

// NewFolder creates a Drive-backed folder. credentialsFile is a service
// account JSON path; when empty, application default credentials are used.
func NewFolder(ctx context.Context, folderID, credentialsFile string) (*Folder, error) {
	if folderID == "" {
		return nil, fmt.Errorf("folder id is required")
	}

	opts := []option.ClientOption{option.WithScopes(drive.DriveScope)}
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	svc, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}

	return &Folder{svc: svc, folderID: folderID}, nil
}

// FilesByName lists the files named name inside the folder, in the order
// Drive returns them.
func (f *Folder) FilesByName(ctx context.Context, name string) ([]domain.File, error) {
	query := fmt.Sprintf("name = '%s' and '%s' in parents and trashed = false",
		escapeQuery(name), f.folderID)

	var files []domain.File
	pageToken := ""
	for {
		call := f.svc.Files.List().
			Context(ctx).
			Q(query).
			Fields("nextPageToken, files(id, name, mimeType, size)")
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		res, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list files: %w", err)
		}
		for _, df := range res.Files {
			files = append(files, domain.File{
				ID:          df.Id,
				Name:        df.Name,
				ContentType: df.MimeType,
				Size:        df.Size,
			})
		}

		if res.NextPageToken == "" {
			break
		}
		pageToken = res.NextPageToken
	}
	return files, nil
}

// CreateFile uploads blob as a new file in the folder.
func (f *Folder) CreateFile(ctx context.Context, blob domain.Blob) (domain.File, error) {
	meta := &drive.File{
		Name:     blob.Name,
		MimeType: blob.ContentType,
		Parents:  []string{f.folderID},
	}

	created, err := f.svc.Files.Create(meta).
		Context(ctx).
		Media(bytes.NewReader(blob.Content)).
		Fields("id, name, mimeType").
		Do()
	if err != nil {
		return domain.File{}, fmt.Errorf("failed to create file: %w", err)
	}

	return domain.File{
		ID:          created.Id,
		Name:        created.Name,
		ContentType: created.MimeType,
		Size:        int64(len(blob.Content)),
	}, nil
}

// ReadFile downloads the full content of the file with the given ID.
func (f *Folder) ReadFile(ctx context.Context, id string) ([]byte, error) {
	res, err := f.svc.Files.Get(id).Context(ctx).Download()
	if err != nil {
		return nil, fmt.Errorf("failed to download file: %w", err)
	}
	defer res.Body.Close()

	content, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read file body: %w", err)
	}
	return content, nil
}

// escapeQuery escapes a literal for use inside a Drive query string.
func escapeQuery(s string) string {
	return strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(s)
}
