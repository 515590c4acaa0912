package service

import (
	"alcyxob/fittrack/internal/storage"
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var ErrPhotoNotOwned = errors.New("photo does not belong to the user")

// UploadURLResponse is handed to the client to PUT a meal photo directly to storage.
type UploadURLResponse struct {
	UploadURL string `json:"uploadUrl"`
	ObjectKey string `json:"objectKey"` // pass back as the meal's image
}

type PhotoService interface {
	RequestUploadURL(ctx context.Context, ownerID, contentType string) (*UploadURLResponse, error)
	DownloadURL(ctx context.Context, ownerID, objectKey string) (string, error)
}

type photoService struct {
	fileStorage storage.FileStorage
}

func NewPhotoService(fileStorage storage.FileStorage) PhotoService {
	return &photoService{fileStorage: fileStorage}
}

// RequestUploadURL reserves a new object key under the owner's prefix and presigns a PUT for it.
func (s *photoService) RequestUploadURL(ctx context.Context, ownerID, contentType string) (*UploadURLResponse, error) {
	if ownerID == "" {
		return nil, ErrUnauthenticated
	}
	contentType = strings.ToLower(strings.TrimSpace(contentType))
	parts := strings.Split(contentType, "/")
	if len(parts) != 2 || parts[0] != "image" || parts[1] == "" {
		return nil, fmt.Errorf("%w: content type must be an image type, got %q", ErrValidationFailed, contentType)
	}

	objectKey := path.Join(photoPrefix(ownerID), fmt.Sprintf("%s.%s", uuid.NewString(), parts[1]))
	uploadURL, err := s.fileStorage.GeneratePresignedUploadURL(ctx, objectKey, contentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		log.Errorf("error presigning upload for %s: %s", ownerID, err)
		return nil, fmt.Errorf("request upload url: %w", err)
	}

	return &UploadURLResponse{
		UploadURL: uploadURL,
		ObjectKey: objectKey,
	}, nil
}

// DownloadURL presigns a GET for a photo the owner uploaded earlier.
func (s *photoService) DownloadURL(ctx context.Context, ownerID, objectKey string) (string, error) {
	if ownerID == "" {
		return "", ErrUnauthenticated
	}
	objectKey = path.Clean(strings.TrimSpace(objectKey))
	if !strings.HasPrefix(objectKey, photoPrefix(ownerID)+"/") {
		return "", ErrPhotoNotOwned
	}

	url, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, objectKey, storage.DefaultPresignedURLExpiry)
	if err != nil {
		log.Errorf("error presigning download of %s: %s", objectKey, err)
		return "", fmt.Errorf("photo download url: %w", err)
	}
	return url, nil
}

func photoPrefix(ownerID string) string {
	return path.Join("meals", ownerID)
}
