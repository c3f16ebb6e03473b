package service

import (
	"bytes"
	"context"
	"fmt"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"logo-banner/utils"
)

// DriveUploaderInterface archives exported banners
type DriveUploaderInterface interface {
	UploadBanner(ctx context.Context, name string, png []byte) (string, error)
}

// DriveService handles Google Drive API operations
type DriveService struct {
	client   *drive.Service
	folderID string
}

// NewDriveService creates a new DriveService instance
// credentialsPath should be the path to the Service Account JSON file
func NewDriveService(ctx context.Context, credentialsPath, folderID string) (*DriveService, error) {
	if folderID == "" {
		return nil, fmt.Errorf("drive folder id is required")
	}

	driveService, err := drive.NewService(ctx, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}

	return &DriveService{
		client:   driveService,
		folderID: folderID,
	}, nil
}

// UploadBanner stores a PNG in the configured folder and returns the Drive file id
func (ds *DriveService) UploadBanner(ctx context.Context, name string, png []byte) (string, error) {
	file := &drive.File{
		Name:     name,
		MimeType: "image/png",
		Parents:  []string{ds.folderID},
	}

	created, err := ds.client.Files.Create(file).
		Media(bytes.NewReader(png)).
		Fields("id").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("failed to upload file %s: %w", name, err)
	}

	utils.Log().Infof("💾 Banner uploaded to Drive: %s (id=%s)", name, created.Id)
	return created.Id, nil
}

var _ DriveUploaderInterface = (*DriveService)(nil)
