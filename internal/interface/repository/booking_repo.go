package repository

import (
	"context"
	"errors"
	"time"

	"github.com/prkservices/booking-service/internal/domain/entity"
	"github.com/prkservices/booking-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBookingRepository implements the BookingRepository interface
type MongoBookingRepository struct {
	collection *mongo.Collection
}

// NewMongoBookingRepository creates a new MongoDB booking repository
func NewMongoBookingRepository(db *mongo.Database) repository.BookingRepository {
	collection := db.Collection("serviceBookings")

	// Create indexes for better performance
	ctx := context.Background()

	customerEmailIndex := mongo.IndexModel{
		Keys: bson.M{"customerEmail": 1},
	}

	// Index on createdAt for newest-first listings
	createdAtIndex := mongo.IndexModel{
		Keys: bson.M{"createdAt": -1},
	}

	statusIndex := mongo.IndexModel{
		Keys: bson.M{"status": 1},
	}

	collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		customerEmailIndex,
		createdAtIndex,
		statusIndex,
	})

	return &MongoBookingRepository{
		collection: collection,
	}
}

// Create inserts a new booking, assigning its id and creation time
func (r *MongoBookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	if booking.ID == "" {
		booking.ID = primitive.NewObjectID().Hex()
	}
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now().UTC()
	}

	_, err := r.collection.InsertOne(ctx, booking)
	return err
}

// FindByID finds a booking by id
func (r *MongoBookingRepository) FindByID(ctx context.Context, id string) (*entity.Booking, error) {
	var booking entity.Booking
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &booking, nil
}

// FindByCustomerEmail returns a customer's bookings, newest first
func (r *MongoBookingRepository) FindByCustomerEmail(ctx context.Context, email string) ([]*entity.Booking, error) {
	return r.find(ctx, bson.M{"customerEmail": email})
}

// FindAll returns every active booking, newest first
func (r *MongoBookingRepository) FindAll(ctx context.Context) ([]*entity.Booking, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoBookingRepository) find(ctx context.Context, filter bson.M) ([]*entity.Booking, error) {
	cursor, err := r.collection.Find(ctx, filter, options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	bookings := []*entity.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// UpdateStatus overwrites the booking status
func (r *MongoBookingRepository) UpdateStatus(ctx context.Context, id, status string) error {
	return r.setField(ctx, id, "status", status)
}

// UpdatePaymentStatus overwrites the payment status
func (r *MongoBookingRepository) UpdatePaymentStatus(ctx context.Context, id, paymentStatus string) error {
	return r.setField(ctx, id, "paymentStatus", paymentStatus)
}

// UpdateReply overwrites the admin reply, last write wins
func (r *MongoBookingRepository) UpdateReply(ctx context.Context, id, reply string) error {
	return r.setField(ctx, id, "adminReply", reply)
}

func (r *MongoBookingRepository) setField(ctx context.Context, id, field string, value interface{}) error {
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{field: value},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes a booking from the active store
func (r *MongoBookingRepository) Delete(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
