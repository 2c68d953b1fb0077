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

// MongoNotificationRepository implements the NotificationRepository interface
type MongoNotificationRepository struct {
	collection *mongo.Collection
}

// NewMongoNotificationRepository creates a new MongoDB notification repository
func NewMongoNotificationRepository(db *mongo.Database) repository.NotificationRepository {
	collection := db.Collection("notifications")

	ctx := context.Background()
	createdAtIndex := mongo.IndexModel{
		Keys: bson.M{"createdAt": -1},
	}
	collection.Indexes().CreateOne(ctx, createdAtIndex)

	return &MongoNotificationRepository{
		collection: collection,
	}
}

// Create inserts a new notification
func (r *MongoNotificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	if notification.ID == "" {
		notification.ID = primitive.NewObjectID().Hex()
	}
	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = time.Now().UTC()
	}
	if notification.Status == "" {
		notification.Status = entity.NotificationPending
	}

	_, err := r.collection.InsertOne(ctx, notification)
	return err
}

// FindLatest returns the most recent notifications, newest first
func (r *MongoNotificationRepository) FindLatest(ctx context.Context, limit int) ([]*entity.Notification, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit)))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	notifications := []*entity.Notification{}
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkRead flags a notification as read and returns the updated record
func (r *MongoNotificationRepository) MarkRead(ctx context.Context, id string) (*entity.Notification, error) {
	after := options.After
	var notification entity.Notification
	err := r.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"isRead": true}},
		&options.FindOneAndUpdateOptions{ReturnDocument: &after},
	).Decode(&notification)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &notification, nil
}
