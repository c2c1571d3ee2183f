package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Bhavishya0149/Real-Real-Estate/models"
	"github.com/Bhavishya0149/Real-Real-Estate/storage"
)

// Upload is one incoming media file, decoupled from the HTTP transport so
// the lifecycle can be exercised without multipart plumbing.
type Upload struct {
	Filename    string
	ContentType string
	SizeBytes   int64
	Content     io.Reader
}

// CleanupResult reports how a cascading delete went. Records are always
// gone when the error is nil; Orphaned counts external objects whose delete
// failed and which now leak in the store.
type CleanupResult struct {
	ObjectsDeleted int
	Orphaned       int
}

func (r CleanupResult) FullyCleaned() bool {
	return r.Orphaned == 0
}

// MediaService keeps a property's photo/video reference sets consistent
// with the external object store and enforces the per-property quotas.
type MediaService struct {
	Properties PropertyStore
	Photos     PhotoStore
	Videos     VideoStore
	Addresses  AddressStore
	Blobs      storage.BlobStore

	PhotoLimit int
	VideoLimit int
}

// AttachPhotos uploads a batch. A file whose upload fails is skipped with a
// log line and no record; the rest of the batch continues. The reference
// append is a single conditional push, so two concurrent batches cannot
// overshoot the quota.
func (s *MediaService) AttachPhotos(ctx context.Context, property *models.Property, uploads []Upload) ([]models.Photo, error) {
	if len(uploads) == 0 {
		return nil, models.NewAPIError(400, "no photos uploaded")
	}
	if len(property.Photos)+len(uploads) > s.PhotoLimit {
		return nil, models.NewQuotaError("photos", s.PhotoLimit)
	}

	created := make([]models.Photo, 0, len(uploads))
	ids := make([]bson.ObjectID, 0, len(uploads))
	for _, up := range uploads {
		objectName := s.objectName(property, "photos", up.Filename)
		url, err := s.Blobs.Upload(ctx, objectName, up.ContentType, up.Content)
		if err != nil {
			log.Printf("photo upload skipped for property %s: %v", property.ID.Hex(), err)
			continue
		}

		photo := models.Photo{
			ID:         bson.NewObjectID(),
			Property:   property.ID,
			URL:        url,
			ObjectName: objectName,
			UploadedAt: time.Now().UTC(),
		}
		if err := s.Photos.Create(ctx, &photo); err != nil {
			// Record creation failed after the bytes landed; drop the object
			// so it does not leak.
			if delErr := s.Blobs.Delete(ctx, objectName); delErr != nil {
				log.Printf("orphaned object %s: %v", objectName, delErr)
			}
			continue
		}
		created = append(created, photo)
		ids = append(ids, photo.ID)
	}

	if len(ids) == 0 {
		return nil, models.ErrUploadFailed
	}

	if err := s.Properties.PushPhotos(ctx, property.ID, ids, s.PhotoLimit); err != nil {
		// A concurrent batch filled the quota first. Compensate: remove the
		// records and objects this batch created.
		for _, photo := range created {
			if delErr := s.Blobs.Delete(ctx, photo.ObjectName); delErr != nil {
				log.Printf("orphaned object %s: %v", photo.ObjectName, delErr)
			}
			_ = s.Photos.Delete(ctx, photo.ID)
		}
		return nil, err
	}
	return created, nil
}

// AttachVideo uploads a single video. Unlike the photo batch, an upload
// failure here surfaces to the caller; there is no partial state to keep.
func (s *MediaService) AttachVideo(ctx context.Context, property *models.Property, uploadedBy bson.ObjectID, up Upload) (*models.Video, error) {
	if len(property.Videos) >= s.VideoLimit {
		return nil, models.NewQuotaError("videos", s.VideoLimit)
	}

	objectName := s.objectName(property, "videos", up.Filename)
	url, err := s.Blobs.Upload(ctx, objectName, up.ContentType, up.Content)
	if err != nil {
		return nil, models.ErrUploadFailed
	}

	video := models.Video{
		ID:         bson.NewObjectID(),
		Property:   property.ID,
		URL:        url,
		ObjectName: objectName,
		Title:      up.Filename,
		SizeBytes:  up.SizeBytes,
		UploadedBy: uploadedBy,
		CreatedAt:  time.Now().UTC(),
		UpdatedAt:  time.Now().UTC(),
	}
	if err := s.Videos.Create(ctx, &video); err != nil {
		if delErr := s.Blobs.Delete(ctx, objectName); delErr != nil {
			log.Printf("orphaned object %s: %v", objectName, delErr)
		}
		return nil, err
	}

	if err := s.Properties.PushVideo(ctx, property.ID, video.ID, s.VideoLimit); err != nil {
		if delErr := s.Blobs.Delete(ctx, objectName); delErr != nil {
			log.Printf("orphaned object %s: %v", objectName, delErr)
		}
		_ = s.Videos.Delete(ctx, video.ID)
		return nil, err
	}
	return &video, nil
}

// DetachPhoto removes one photo. The external delete is attempted first but
// a failure there does not block record cleanup; the orphaned object is
// logged and accepted.
func (s *MediaService) DetachPhoto(ctx context.Context, photoID bson.ObjectID) error {
	photo, err := s.Photos.FindByID(ctx, photoID)
	if err != nil {
		return err
	}

	if err := s.Blobs.Delete(ctx, photo.ObjectName); err != nil {
		log.Printf("object delete failed for photo %s: %v", photoID.Hex(), err)
	}
	if err := s.Photos.Delete(ctx, photoID); err != nil {
		return err
	}
	return s.Properties.PullPhoto(ctx, photo.Property, photoID)
}

func (s *MediaService) DetachVideo(ctx context.Context, videoID bson.ObjectID) error {
	video, err := s.Videos.FindByID(ctx, videoID)
	if err != nil {
		return err
	}

	if err := s.Blobs.Delete(ctx, video.ObjectName); err != nil {
		log.Printf("object delete failed for video %s: %v", videoID.Hex(), err)
	}
	if err := s.Videos.Delete(ctx, videoID); err != nil {
		return err
	}
	return s.Properties.PullVideo(ctx, video.Property, videoID)
}

// DeleteProperty cascades: every media object gets one external delete
// attempt, then address, photo, video and property records are removed.
// Local deletion never waits on external success; the result says how many
// remote objects were left behind.
func (s *MediaService) DeleteProperty(ctx context.Context, property *models.Property) (CleanupResult, error) {
	var result CleanupResult

	photos, err := s.Photos.FindByProperty(ctx, property.ID)
	if err != nil {
		return result, err
	}
	videos, err := s.Videos.FindByProperty(ctx, property.ID)
	if err != nil {
		return result, err
	}

	for _, photo := range photos {
		if err := s.Blobs.Delete(ctx, photo.ObjectName); err != nil {
			log.Printf("cascade: object delete failed for photo %s: %v", photo.ID.Hex(), err)
			result.Orphaned++
			continue
		}
		result.ObjectsDeleted++
	}
	for _, video := range videos {
		if err := s.Blobs.Delete(ctx, video.ObjectName); err != nil {
			log.Printf("cascade: object delete failed for video %s: %v", video.ID.Hex(), err)
			result.Orphaned++
			continue
		}
		result.ObjectsDeleted++
	}

	if err := s.Addresses.Delete(ctx, property.Address); err != nil {
		return result, err
	}
	if err := s.Photos.DeleteByProperty(ctx, property.ID); err != nil {
		return result, err
	}
	if err := s.Videos.DeleteByProperty(ctx, property.ID); err != nil {
		return result, err
	}
	if err := s.Properties.Delete(ctx, property.ID); err != nil {
		return result, err
	}
	return result, nil
}

func (s *MediaService) objectName(property *models.Property, kind, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		ext = ".bin"
	}
	prefix := property.Slug
	if prefix == "" {
		prefix = property.ID.Hex()
	}
	return fmt.Sprintf("properties/%s/%s/%d-%s%s", prefix, kind, time.Now().UTC().Unix(), uuid.New().String(), ext)
}
