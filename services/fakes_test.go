package services

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Bhavishya0149/Real-Real-Estate/models"
)

// In-memory stores mirroring the repository semantics, including the
// conditional refresh-token swap and the quota-guarded pushes.

type fakeUserStore struct {
	mu    sync.Mutex
	users map[bson.ObjectID]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[bson.ObjectID]*models.User)}
}

func (s *fakeUserStore) add(user *models.User) {
	if user.ID.IsZero() {
		user.ID = bson.NewObjectID()
	}
	s.users[user.ID] = user
}

func (s *fakeUserStore) FindByID(_ context.Context, id bson.ObjectID) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return nil, models.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

func (s *fakeUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, models.ErrUserNotFound
}

func (s *fakeUserStore) FindByEmailVerification(_ context.Context, verification string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.EmailVerificationString == verification {
			clone := *user
			return &clone, nil
		}
	}
	return nil, models.ErrUserNotFound
}

func (s *fakeUserStore) FindByMobileVerification(_ context.Context, verification string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.MobileVerificationString == verification {
			clone := *user
			return &clone, nil
		}
	}
	return nil, models.ErrUserNotFound
}

func (s *fakeUserStore) Create(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == user.Email {
			return models.ErrEmailTaken
		}
	}
	if user.ID.IsZero() {
		user.ID = bson.NewObjectID()
	}
	clone := *user
	s.users[user.ID] = &clone
	return nil
}

func (s *fakeUserStore) Update(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.ID]; !ok {
		return models.ErrUserNotFound
	}
	clone := *user
	s.users[user.ID] = &clone
	return nil
}

func (s *fakeUserStore) SetRefreshToken(_ context.Context, id bson.ObjectID, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return models.ErrUserNotFound
	}
	user.RefreshToken = token
	return nil
}

func (s *fakeUserStore) SwapRefreshToken(_ context.Context, id bson.ObjectID, old, rotated string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok || user.RefreshToken != old {
		return false, nil
	}
	user.RefreshToken = rotated
	return true, nil
}

func (s *fakeUserStore) AddSavedProperty(_ context.Context, id, propertyID bson.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return models.ErrUserNotFound
	}
	for _, existing := range user.SavedProperties {
		if existing == propertyID {
			return nil
		}
	}
	user.SavedProperties = append(user.SavedProperties, propertyID)
	return nil
}

func (s *fakeUserStore) RemoveSavedProperty(_ context.Context, id, propertyID bson.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return models.ErrUserNotFound
	}
	kept := user.SavedProperties[:0]
	for _, existing := range user.SavedProperties {
		if existing != propertyID {
			kept = append(kept, existing)
		}
	}
	user.SavedProperties = kept
	return nil
}

type fakePropertyStore struct {
	mu         sync.Mutex
	properties map[bson.ObjectID]*models.Property
	pushErr    error // injected quota-race failure
}

func newFakePropertyStore() *fakePropertyStore {
	return &fakePropertyStore{properties: make(map[bson.ObjectID]*models.Property)}
}

func (s *fakePropertyStore) add(property *models.Property) {
	if property.ID.IsZero() {
		property.ID = bson.NewObjectID()
	}
	s.properties[property.ID] = property
}

func (s *fakePropertyStore) FindByID(_ context.Context, id bson.ObjectID) (*models.Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	property, ok := s.properties[id]
	if !ok {
		return nil, models.ErrPropertyNotFound
	}
	clone := *property
	return &clone, nil
}

func (s *fakePropertyStore) FindAll(_ context.Context) ([]models.Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Property, 0, len(s.properties))
	for _, property := range s.properties {
		out = append(out, *property)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.Hex() < out[j].ID.Hex() })
	return out, nil
}

func (s *fakePropertyStore) Create(_ context.Context, property *models.Property) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if property.ID.IsZero() {
		property.ID = bson.NewObjectID()
	}
	clone := *property
	s.properties[property.ID] = &clone
	return nil
}

func (s *fakePropertyStore) Update(_ context.Context, property *models.Property) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.properties[property.ID]; !ok {
		return models.ErrPropertyNotFound
	}
	clone := *property
	s.properties[property.ID] = &clone
	return nil
}

func (s *fakePropertyStore) Delete(_ context.Context, id bson.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.properties[id]; !ok {
		return models.ErrPropertyNotFound
	}
	delete(s.properties, id)
	return nil
}

func (s *fakePropertyStore) PushPhotos(_ context.Context, id bson.ObjectID, photoIDs []bson.ObjectID, limit int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pushErr != nil {
		return s.pushErr
	}
	property, ok := s.properties[id]
	if !ok {
		return models.ErrPropertyNotFound
	}
	if len(property.Photos)+len(photoIDs) > limit {
		return models.NewQuotaError("photos", limit)
	}
	property.Photos = append(property.Photos, photoIDs...)
	return nil
}

func (s *fakePropertyStore) PushVideo(_ context.Context, id, videoID bson.ObjectID, limit int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pushErr != nil {
		return s.pushErr
	}
	property, ok := s.properties[id]
	if !ok {
		return models.ErrPropertyNotFound
	}
	if len(property.Videos) >= limit {
		return models.NewQuotaError("videos", limit)
	}
	property.Videos = append(property.Videos, videoID)
	return nil
}

func (s *fakePropertyStore) PullPhoto(_ context.Context, id, photoID bson.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	property, ok := s.properties[id]
	if !ok {
		return models.ErrPropertyNotFound
	}
	kept := property.Photos[:0]
	for _, existing := range property.Photos {
		if existing != photoID {
			kept = append(kept, existing)
		}
	}
	property.Photos = kept
	return nil
}

func (s *fakePropertyStore) PullVideo(_ context.Context, id, videoID bson.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	property, ok := s.properties[id]
	if !ok {
		return models.ErrPropertyNotFound
	}
	kept := property.Videos[:0]
	for _, existing := range property.Videos {
		if existing != videoID {
			kept = append(kept, existing)
		}
	}
	property.Videos = kept
	return nil
}

func (s *fakePropertyStore) IncrementViews(_ context.Context, id bson.ObjectID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	property, ok := s.properties[id]
	if !ok {
		return 0, models.ErrPropertyNotFound
	}
	property.ViewCount++
	return property.ViewCount, nil
}

type fakePhotoStore struct {
	mu     sync.Mutex
	photos map[bson.ObjectID]*models.Photo
}

func newFakePhotoStore() *fakePhotoStore {
	return &fakePhotoStore{photos: make(map[bson.ObjectID]*models.Photo)}
}

func (s *fakePhotoStore) FindByID(_ context.Context, id bson.ObjectID) (*models.Photo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	photo, ok := s.photos[id]
	if !ok {
		return nil, models.ErrPhotoNotFound
	}
	clone := *photo
	return &clone, nil
}

func (s *fakePhotoStore) FindByProperty(_ context.Context, propertyID bson.ObjectID) ([]models.Photo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Photo
	for _, photo := range s.photos {
		if photo.Property == propertyID {
			out = append(out, *photo)
		}
	}
	return out, nil
}

func (s *fakePhotoStore) Create(_ context.Context, photo *models.Photo) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if photo.ID.IsZero() {
		photo.ID = bson.NewObjectID()
	}
	clone := *photo
	s.photos[photo.ID] = &clone
	return nil
}

func (s *fakePhotoStore) Delete(_ context.Context, id bson.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.photos[id]; !ok {
		return models.ErrPhotoNotFound
	}
	delete(s.photos, id)
	return nil
}

func (s *fakePhotoStore) DeleteByProperty(_ context.Context, propertyID bson.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, photo := range s.photos {
		if photo.Property == propertyID {
			delete(s.photos, id)
		}
	}
	return nil
}

type fakeVideoStore struct {
	mu     sync.Mutex
	videos map[bson.ObjectID]*models.Video
}

func newFakeVideoStore() *fakeVideoStore {
	return &fakeVideoStore{videos: make(map[bson.ObjectID]*models.Video)}
}

func (s *fakeVideoStore) FindByID(_ context.Context, id bson.ObjectID) (*models.Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	video, ok := s.videos[id]
	if !ok {
		return nil, models.ErrVideoNotFound
	}
	clone := *video
	return &clone, nil
}

func (s *fakeVideoStore) FindByProperty(_ context.Context, propertyID bson.ObjectID) ([]models.Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Video
	for _, video := range s.videos {
		if video.Property == propertyID {
			out = append(out, *video)
		}
	}
	return out, nil
}

func (s *fakeVideoStore) Create(_ context.Context, video *models.Video) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if video.ID.IsZero() {
		video.ID = bson.NewObjectID()
	}
	clone := *video
	s.videos[video.ID] = &clone
	return nil
}

func (s *fakeVideoStore) Delete(_ context.Context, id bson.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.videos[id]; !ok {
		return models.ErrVideoNotFound
	}
	delete(s.videos, id)
	return nil
}

func (s *fakeVideoStore) DeleteByProperty(_ context.Context, propertyID bson.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, video := range s.videos {
		if video.Property == propertyID {
			delete(s.videos, id)
		}
	}
	return nil
}

type fakeAddressStore struct {
	mu        sync.Mutex
	addresses map[bson.ObjectID]*models.Address
}

func newFakeAddressStore() *fakeAddressStore {
	return &fakeAddressStore{addresses: make(map[bson.ObjectID]*models.Address)}
}

func (s *fakeAddressStore) FindByID(_ context.Context, id bson.ObjectID) (*models.Address, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	address, ok := s.addresses[id]
	if !ok {
		return nil, models.NewAPIError(404, "address not found")
	}
	clone := *address
	return &clone, nil
}

func (s *fakeAddressStore) Create(_ context.Context, address *models.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if address.ID.IsZero() {
		address.ID = bson.NewObjectID()
	}
	clone := *address
	s.addresses[address.ID] = &clone
	return nil
}

func (s *fakeAddressStore) Update(_ context.Context, address *models.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.addresses[address.ID]; !ok {
		return models.NewAPIError(404, "address not found")
	}
	clone := *address
	s.addresses[address.ID] = &clone
	return nil
}

func (s *fakeAddressStore) Delete(_ context.Context, id bson.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.addresses, id)
	return nil
}

type fakeInquiryStore struct {
	mu        sync.Mutex
	inquiries []models.Inquiry
}

func newFakeInquiryStore() *fakeInquiryStore {
	return &fakeInquiryStore{}
}

func (s *fakeInquiryStore) FindByID(_ context.Context, id bson.ObjectID) (*models.Inquiry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.inquiries {
		if s.inquiries[i].ID == id {
			clone := s.inquiries[i]
			return &clone, nil
		}
	}
	return nil, models.ErrInquiryNotFound
}

func (s *fakeInquiryStore) FindLatest(_ context.Context, buyer, property bson.ObjectID) (*models.Inquiry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var latest *models.Inquiry
	for i := range s.inquiries {
		inq := &s.inquiries[i]
		if inq.Buyer != buyer || inq.Property != property {
			continue
		}
		if latest == nil || inq.CreatedAt.After(latest.CreatedAt) {
			latest = inq
		}
	}
	if latest == nil {
		return nil, nil
	}
	clone := *latest
	return &clone, nil
}

func (s *fakeInquiryStore) FindByProperty(_ context.Context, propertyID bson.ObjectID) ([]models.Inquiry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Inquiry
	for _, inq := range s.inquiries {
		if inq.Property == propertyID {
			out = append(out, inq)
		}
	}
	return out, nil
}

func (s *fakeInquiryStore) FindByBuyer(_ context.Context, buyerID bson.ObjectID) ([]models.Inquiry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Inquiry
	for _, inq := range s.inquiries {
		if inq.Buyer == buyerID {
			out = append(out, inq)
		}
	}
	return out, nil
}

func (s *fakeInquiryStore) Create(_ context.Context, inquiry *models.Inquiry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if inquiry.ID.IsZero() {
		inquiry.ID = bson.NewObjectID()
	}
	s.inquiries = append(s.inquiries, *inquiry)
	return nil
}

func (s *fakeInquiryStore) Delete(_ context.Context, id bson.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.inquiries {
		if s.inquiries[i].ID == id {
			s.inquiries = append(s.inquiries[:i], s.inquiries[i+1:]...)
			return nil
		}
	}
	return models.ErrInquiryNotFound
}

// fakeBlobStore tracks uploaded objects and can be told to fail uploads or
// individual deletes.
type fakeBlobStore struct {
	mu        sync.Mutex
	objects   map[string]bool
	uploadErr error
	deleteErr map[string]error
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{
		objects:   make(map[string]bool),
		deleteErr: make(map[string]error),
	}
}

func (s *fakeBlobStore) Upload(_ context.Context, objectName, _ string, _ io.Reader) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.uploadErr != nil {
		return "", s.uploadErr
	}
	s.objects[objectName] = true
	return "https://blobs.test/" + objectName, nil
}

func (s *fakeBlobStore) Delete(_ context.Context, objectName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err, ok := s.deleteErr[objectName]; ok {
		return err
	}
	if !s.objects[objectName] {
		return fmt.Errorf("object %s not found", objectName)
	}
	delete(s.objects, objectName)
	return nil
}

func (s *fakeBlobStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}
