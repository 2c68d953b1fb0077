package repository

import (
	"context"
	"errors"

	"github.com/prkservices/booking-service/internal/domain/entity"
	"github.com/prkservices/booking-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoOTPRepository implements the OTPRepository interface
type MongoOTPRepository struct {
	collection *mongo.Collection
}

// NewMongoOTPRepository creates a new MongoDB OTP repository
func NewMongoOTPRepository(db *mongo.Database) repository.OTPRepository {
	collection := db.Collection("otps")

	ctx := context.Background()
	emailIndex := mongo.IndexModel{
		Keys:    bson.M{"email": 1},
		Options: options.Index().SetUnique(true),
	}
	collection.Indexes().CreateOne(ctx, emailIndex)

	return &MongoOTPRepository{
		collection: collection,
	}
}

// Upsert writes the pending code for an email, replacing any earlier one
func (r *MongoOTPRepository) Upsert(ctx context.Context, otp *entity.OTP) error {
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"email": otp.Email},
		bson.M{"$set": bson.M{"otp": otp.Code, "expiresAt": otp.ExpiresAt}},
		options.Update().SetUpsert(true),
	)
	return err
}

// FindByEmail finds the pending code for an email
func (r *MongoOTPRepository) FindByEmail(ctx context.Context, email string) (*entity.OTP, error) {
	var otp entity.OTP
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&otp)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &otp, nil
}

// Delete removes a consumed code
func (r *MongoOTPRepository) Delete(ctx context.Context, email string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"email": email})
	return err
}
