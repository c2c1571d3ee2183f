package services

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Bhavishya0149/Real-Real-Estate/models"
)

// InquiryService creates buyer inquiries with a per-(buyer, property)
// cooldown. The check-then-insert is not serialized; a concurrent
// double-submit inside the window can slip through, which is acceptable for
// spam mitigation.
type InquiryService struct {
	Inquiries InquiryStore
	Cooldown  time.Duration
	Now       func() time.Time

	sanitizer *bluemonday.Policy
}

func NewInquiryService(inquiries InquiryStore, cooldown time.Duration) *InquiryService {
	return &InquiryService{
		Inquiries: inquiries,
		Cooldown:  cooldown,
		Now:       time.Now,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// Create records an inquiry unless the same buyer inquired about the same
// property within the cooldown. The error reports the remaining wait
// rounded up to whole minutes.
func (s *InquiryService) Create(ctx context.Context, buyer bson.ObjectID, property *models.Property, message string) (*models.Inquiry, error) {
	last, err := s.Inquiries.FindLatest(ctx, buyer, property.ID)
	if err != nil {
		return nil, err
	}
	if last != nil {
		elapsed := s.Now().Sub(last.CreatedAt)
		if elapsed < s.Cooldown {
			remaining := s.Cooldown - elapsed
			minutes := int(math.Ceil(remaining.Minutes()))
			return nil, models.NewRateLimitedError(minutes)
		}
	}

	now := s.Now().UTC()
	inquiry := models.Inquiry{
		ID:        bson.NewObjectID(),
		Property:  property.ID,
		Buyer:     buyer,
		Seller:    property.Owner,
		Message:   strings.TrimSpace(s.sanitizer.Sanitize(message)),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Inquiries.Create(ctx, &inquiry); err != nil {
		return nil, err
	}
	return &inquiry, nil
}
