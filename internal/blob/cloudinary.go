package blob

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/incevents/incevents-api/internal/config"
)

// CloudinaryStore uploads asset buffers to Cloudinary and returns durable
// public URLs. It performs no retries; retry policy belongs to callers.
type CloudinaryStore struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryStore(conf *config.CloudinaryConfig) (*CloudinaryStore, error) {
	cld, err := cloudinary.NewFromParams(conf.CloudName, conf.APIKey, conf.APISecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary.NewFromParams -> %w", err)
	}

	return &CloudinaryStore{
		cld: cld,
	}, nil
}

// Upload sends one buffer to the given logical folder. The resource type
// is picked from the declared MIME type. Video uploads ask for an mp4
// container and automatic quality; the provider may ignore either.
func (s *CloudinaryStore) Upload(ctx context.Context, data []byte, mimeType, folder string) (string, error) {
	params := uploader.UploadParams{
		Folder:       folder,
		ResourceType: "image",
	}
	if strings.HasPrefix(mimeType, "video/") {
		params.ResourceType = "video"
		params.Format = "mp4"
		params.Transformation = "q_auto"
	}

	resp, err := s.cld.Upload.Upload(ctx, bytes.NewReader(data), params)
	if err != nil {
		return "", fmt.Errorf("s.cld.Upload.Upload -> %w", err)
	}
	if resp.Error.Message != "" {
		return "", fmt.Errorf("s.cld.Upload.Upload -> %v", resp.Error.Message)
	}

	return resp.SecureURL, nil
}
