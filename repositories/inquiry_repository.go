package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/skillang/skillang_backend/config"
	"github.com/skillang/skillang_backend/models"
)

// InquirySaver persists validated inquiry submissions to the record sink.
type InquirySaver interface {
	Save(ctx context.Context, doc models.InquiryDocument) error
}

// InquiryRepository writes inquiry documents to the enquiry_form collection.
type InquiryRepository struct {
	collection *mongo.Collection
}

// NewInquiryRepository creates a repository bound to the enquiry_form collection.
func NewInquiryRepository(db *mongo.Client) *InquiryRepository {
	return &InquiryRepository{
		collection: config.GetCollection(db, "enquiry_form"),
	}
}

func (r *InquiryRepository) Save(ctx context.Context, doc models.InquiryDocument) error {
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, doc)
	return err
}
