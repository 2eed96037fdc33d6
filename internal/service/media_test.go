package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeBlobStore returns a deterministic URL per file and can be told to
// fail specific file contents.
type fakeBlobStore struct {
	mu      sync.Mutex
	uploads []string
	failOn  map[string]bool
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{failOn: make(map[string]bool)}
}

func (s *fakeBlobStore) Upload(_ context.Context, data []byte, _, folder string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failOn[string(data)] {
		return "", errors.New("store unavailable")
	}

	url := fmt.Sprintf("https://cdn.example.com/%s/%s", folder, string(data))
	s.uploads = append(s.uploads, url)

	return url, nil
}

func imageFile(name string) MediaFile {
	return MediaFile{Name: name, MIMEType: "image/jpeg", Data: []byte(name)}
}

func TestMediaServiceIngest(t *testing.T) {
	store := newFakeBlobStore()
	svc := NewMediaService(store, 100<<20)

	video := MediaFile{Name: "clip", MIMEType: "video/mp4", Data: []byte("clip")}
	result, err := svc.Ingest(context.Background(), MediaSubmission{
		Photos:      []MediaFile{imageFile("p1"), imageFile("p2")},
		Video:       &video,
		MediaPhotos: []MediaFile{imageFile("m1")},
	})
	require.NoError(t, err)

	require.Equal(t, []string{
		"https://cdn.example.com/event_photos/p1",
		"https://cdn.example.com/event_photos/p2",
	}, result.Photos)
	require.NotNil(t, result.Video)
	require.Equal(t, "https://cdn.example.com/event_videos/clip", *result.Video)
	require.Equal(t, []string{"https://cdn.example.com/event_media_photos/m1"}, result.MediaPhotos)
}

func TestMediaServiceIngestEmpty(t *testing.T) {
	svc := NewMediaService(newFakeBlobStore(), 100<<20)

	result, err := svc.Ingest(context.Background(), MediaSubmission{})
	require.NoError(t, err)
	require.Empty(t, result.Photos)
	require.Nil(t, result.Video)
	require.Empty(t, result.MediaPhotos)
}

func TestMediaServiceDropsFailedPhotosKeepingOrder(t *testing.T) {
	store := newFakeBlobStore()
	store.failOn["p2"] = true
	svc := NewMediaService(store, 100<<20)

	result, err := svc.Ingest(context.Background(), MediaSubmission{
		Photos: []MediaFile{imageFile("p1"), imageFile("p2"), imageFile("p3")},
	})
	require.NoError(t, err)
	require.Equal(t, []string{
		"https://cdn.example.com/event_photos/p1",
		"https://cdn.example.com/event_photos/p3",
	}, result.Photos)
}

func TestMediaServiceVideoFailureAborts(t *testing.T) {
	store := newFakeBlobStore()
	store.failOn["clip"] = true
	svc := NewMediaService(store, 100<<20)

	video := MediaFile{Name: "clip", MIMEType: "video/mp4", Data: []byte("clip")}
	_, err := svc.Ingest(context.Background(), MediaSubmission{
		Photos: []MediaFile{imageFile("p1")},
		Video:  &video,
	})
	require.ErrorIs(t, err, ErrVideoUploadFailed)
}

func TestMediaServiceRejectsWrongMIMEType(t *testing.T) {
	store := newFakeBlobStore()
	svc := NewMediaService(store, 100<<20)

	_, err := svc.Ingest(context.Background(), MediaSubmission{
		Photos: []MediaFile{
			imageFile("p1"),
			{Name: "doc", MIMEType: "application/pdf", Data: []byte("doc")},
		},
	})
	require.ErrorIs(t, err, ErrUnsupportedMediaType)
	// Rejection happens before anything reaches the store.
	require.Empty(t, store.uploads)
}

func TestMediaServiceRejectsVideoInPhotoSlot(t *testing.T) {
	svc := NewMediaService(newFakeBlobStore(), 100<<20)

	_, err := svc.Ingest(context.Background(), MediaSubmission{
		MediaPhotos: []MediaFile{{Name: "clip", MIMEType: "video/mp4", Data: []byte("clip")}},
	})
	require.ErrorIs(t, err, ErrUnsupportedMediaType)
}

func TestMediaServiceRejectsOversizedFile(t *testing.T) {
	store := newFakeBlobStore()
	svc := NewMediaService(store, 4)

	_, err := svc.Ingest(context.Background(), MediaSubmission{
		Photos: []MediaFile{{Name: "big", MIMEType: "image/png", Data: []byte("too big")}},
	})
	require.ErrorIs(t, err, ErrFileTooLarge)
	require.Empty(t, store.uploads)
}

func TestMediaServiceRejectsTooManyFiles(t *testing.T) {
	svc := NewMediaService(newFakeBlobStore(), 100<<20)

	var photos []MediaFile
	for i := 0; i <= MaxPhotos; i++ {
		photos = append(photos, imageFile(fmt.Sprintf("p%d", i)))
	}
	_, err := svc.Ingest(context.Background(), MediaSubmission{Photos: photos})
	require.ErrorIs(t, err, ErrTooManyFiles)

	var mediaPhotos []MediaFile
	for i := 0; i <= MaxMediaPhotos; i++ {
		mediaPhotos = append(mediaPhotos, imageFile(fmt.Sprintf("m%d", i)))
	}
	_, err = svc.Ingest(context.Background(), MediaSubmission{MediaPhotos: mediaPhotos})
	require.ErrorIs(t, err, ErrTooManyFiles)
}
