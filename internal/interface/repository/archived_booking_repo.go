package repository

import (
	"context"
	"errors"

	"github.com/prkservices/booking-service/internal/domain/entity"
	"github.com/prkservices/booking-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoArchivedBookingRepository implements ArchivedBookingRepository
type MongoArchivedBookingRepository struct {
	collection *mongo.Collection
}

// NewMongoArchivedBookingRepository creates a new archived booking repository
func NewMongoArchivedBookingRepository(db *mongo.Database) repository.ArchivedBookingRepository {
	collection := db.Collection("archivedBookings")

	ctx := context.Background()
	originalIDIndex := mongo.IndexModel{
		Keys: bson.M{"originalId": 1},
	}
	collection.Indexes().CreateOne(ctx, originalIDIndex)

	return &MongoArchivedBookingRepository{
		collection: collection,
	}
}

// Create inserts an archive record
func (r *MongoArchivedBookingRepository) Create(ctx context.Context, archived *entity.ArchivedBooking) error {
	if archived.ID == "" {
		archived.ID = primitive.NewObjectID().Hex()
	}

	_, err := r.collection.InsertOne(ctx, archived)
	return err
}

// FindByOriginalID finds an archive record by the id the booking had while active
func (r *MongoArchivedBookingRepository) FindByOriginalID(ctx context.Context, originalID string) (*entity.ArchivedBooking, error) {
	var archived entity.ArchivedBooking
	err := r.collection.FindOne(ctx, bson.M{"originalId": originalID}).Decode(&archived)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &archived, nil
}
