package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/incevents/incevents-api/internal/domain"
)

// Logical blob-store folders, one per slot.
const (
	FolderEventPhotos      = "event_photos"
	FolderEventVideos      = "event_videos"
	FolderEventMediaPhotos = "event_media_photos"
)

// Slot cardinality limits.
const (
	MaxPhotos      = 10
	MaxMediaPhotos = 5
)

var (
	ErrTooManyFiles         = errors.New("too many files for slot")
	ErrUnsupportedMediaType = errors.New("unsupported media type for slot")
	ErrFileTooLarge         = errors.New("file exceeds the size limit")
	ErrVideoUploadFailed    = errors.New("video upload failed")
)

type BlobStore interface {
	Upload(ctx context.Context, data []byte, mimeType, folder string) (string, error)
}

// MediaFile is one decoded multipart file.
type MediaFile struct {
	Name     string
	MIMEType string
	Data     []byte
}

// MediaSubmission carries the files of one request, grouped by slot in
// submission order.
type MediaSubmission struct {
	Photos      []MediaFile
	Video       *MediaFile
	MediaPhotos []MediaFile
}

// MediaService coordinates per-slot uploads for one submission.
//
// Policy, uniform across all three slots: a declared MIME type that does
// not match the slot, or a file over the size ceiling, rejects the whole
// submission before anything is uploaded. Upload failures in the photo
// slots are logged and the file is dropped from the result; a video
// upload failure aborts the whole submission.
type MediaService struct {
	store       BlobStore
	maxFileSize int64
}

func NewMediaService(store BlobStore, maxFileSize int64) *MediaService {
	return &MediaService{
		store:       store,
		maxFileSize: maxFileSize,
	}
}

func (s *MediaService) Ingest(ctx context.Context, sub MediaSubmission) (domain.MediaResult, error) {
	if err := s.validate(sub); err != nil {
		return domain.MediaResult{}, err
	}

	photos := s.uploadImages(ctx, sub.Photos, FolderEventPhotos)

	var video *string
	if sub.Video != nil {
		url, err := s.store.Upload(ctx, sub.Video.Data, sub.Video.MIMEType, FolderEventVideos)
		if err != nil {
			// A named-but-missing primary video would make the
			// submission record invalid.
			return domain.MediaResult{}, fmt.Errorf("%w -> %v", ErrVideoUploadFailed, err)
		}
		video = &url
	}

	mediaPhotos := s.uploadImages(ctx, sub.MediaPhotos, FolderEventMediaPhotos)

	return domain.MediaResult{
		Photos:      photos,
		Video:       video,
		MediaPhotos: mediaPhotos,
	}, nil
}

func (s *MediaService) validate(sub MediaSubmission) error {
	if len(sub.Photos) > MaxPhotos {
		return fmt.Errorf("%w: photos > %v", ErrTooManyFiles, MaxPhotos)
	}
	if len(sub.MediaPhotos) > MaxMediaPhotos {
		return fmt.Errorf("%w: media_photos > %v", ErrTooManyFiles, MaxMediaPhotos)
	}

	for _, f := range sub.Photos {
		if err := s.checkFile(f, "image/", "photos"); err != nil {
			return err
		}
	}
	for _, f := range sub.MediaPhotos {
		if err := s.checkFile(f, "image/", "media_photos"); err != nil {
			return err
		}
	}
	if sub.Video != nil {
		if err := s.checkFile(*sub.Video, "video/", "video"); err != nil {
			return err
		}
	}

	return nil
}

func (s *MediaService) checkFile(f MediaFile, mimePrefix, slot string) error {
	if !strings.HasPrefix(f.MIMEType, mimePrefix) {
		return fmt.Errorf("%w: %v in %v", ErrUnsupportedMediaType, f.MIMEType, slot)
	}
	if int64(len(f.Data)) > s.maxFileSize {
		return fmt.Errorf("%w: %v", ErrFileTooLarge, f.Name)
	}

	return nil
}

// uploadImages uploads one photo slot concurrently. Failed files are
// logged and dropped; the survivors keep their submission order.
func (s *MediaService) uploadImages(ctx context.Context, files []MediaFile, folder string) []string {
	if len(files) == 0 {
		return nil
	}

	urls := make([]string, len(files))
	uploaded := make([]bool, len(files))

	g, gctx := errgroup.WithContext(ctx)
	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			url, err := s.store.Upload(gctx, f.Data, f.MIMEType, folder)
			if err != nil {
				zap.L().Warn("photo upload failed, dropping file",
					zap.String("folder", folder),
					zap.String("file", f.Name),
					zap.Error(err),
				)
				return nil
			}

			urls[i] = url
			uploaded[i] = true

			return nil
		})
	}
	_ = g.Wait()

	result := make([]string, 0, len(files))
	for i := range files {
		if uploaded[i] {
			result = append(result, urls[i])
		}
	}

	return result
}
