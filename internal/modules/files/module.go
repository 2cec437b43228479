package files

import (
	"context"
	"fmt"

	"github.com/saransh1220/html-drop/internal/modules/files/application"
	"github.com/saransh1220/html-drop/internal/modules/files/domain"
	"github.com/saransh1220/html-drop/internal/modules/files/infrastructure/gdrive"
	"github.com/saransh1220/html-drop/internal/modules/files/infrastructure/local"
	"github.com/saransh1220/html-drop/internal/modules/files/infrastructure/s3"
	fileshttp "github.com/saransh1220/html-drop/internal/modules/files/interfaces/http"
	"github.com/saransh1220/html-drop/internal/shared/infrastructure/config"
)

// Module represents the Files module
type Module struct {
	service *application.FileService
	handler *fileshttp.FileHandler
	folder  domain.Folder
}

// NewModule creates and initializes the Files module with the storage
// driver named in cfg.
func NewModule(ctx context.Context, cfg config.StorageConfig, scriptKey string) (*Module, error) {
	var folder domain.Folder
	var err error

	switch cfg.Driver {
	case "s3":
		folder, err = s3.NewFolder(ctx, s3.Config{
			BucketName: cfg.S3BucketName,
			FolderID:   cfg.FolderID,
			Region:     cfg.S3Region,
			Endpoint:   cfg.S3Endpoint,
			AccessKey:  cfg.S3AccessKey,
			SecretKey:  cfg.S3SecretKey,
			UseSSL:     cfg.S3UseSSL,
		})
	case "drive":
		folder, err = gdrive.NewFolder(ctx, cfg.FolderID, cfg.GoogleCredentialsFile)
	case "local", "":
		folder, err = local.NewFolder(cfg.LocalPath, cfg.FolderID)
	default:
		return nil, fmt.Errorf("unknown storage driver: %s", cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	service := application.NewFileService(folder, scriptKey)

	return &Module{
		service: service,
		handler: fileshttp.NewFileHandler(service),
		folder:  folder,
	}, nil
}

// Service returns the file service
func (m *Module) Service() *application.FileService {
	return m.service
}

// Handler returns the HTTP handler for the module's routes
func (m *Module) Handler() *fileshttp.FileHandler {
	return m.handler
}
