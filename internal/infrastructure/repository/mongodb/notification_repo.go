package mongodb

import (
	"context"

	"github.com/kartavyango/sahaaya/internal/domain/apperror"
	"github.com/kartavyango/sahaaya/internal/domain/contract"
	"github.com/kartavyango/sahaaya/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoNotificationRepository struct {
	collection *mongo.Collection
}

var _ contract.INotificationRepository = (*MongoNotificationRepository)(nil)

func NewMongoNotificationRepository(collection *mongo.Collection) *MongoNotificationRepository {
	return &MongoNotificationRepository{collection: collection}
}

func (r *MongoNotificationRepository) CreateNotification(ctx context.Context, n *entity.Notification) error {
	_, err := r.collection.InsertOne(ctx, n)
	return err
}

// GetByUserID retrieves one page of a user's notifications, newest first,
// plus the user's total notification count.
func (r *MongoNotificationRepository) GetByUserID(ctx context.Context, userID string, page, limit int64) ([]*entity.Notification, int64, error) {
	filter := bson.M{"user_id": userID}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip((page - 1) * limit).
		SetLimit(limit)
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var notifications []*entity.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, 0, err
	}
	return notifications, total, nil
}

// MarkAsRead flips the read flag of one notification owned by userID. The
// filter carries both ids, so a foreign notification reads as not found.
func (r *MongoNotificationRepository) MarkAsRead(ctx context.Context, id, userID string) error {
	filter := bson.M{"_id": id, "user_id": userID}
	update := bson.M{"$set": bson.M{"read": true}}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperror.NotFoundf("notification %s of user %s", id, userID)
	}
	return nil
}

// MarkAllAsRead flips every unread notification of the user. Matching
// zero documents is a success.
func (r *MongoNotificationRepository) MarkAllAsRead(ctx context.Context, userID string) error {
	filter := bson.M{"user_id": userID, "read": false}
	update := bson.M{"$set": bson.M{"read": true}}
	_, err := r.collection.UpdateMany(ctx, filter, update)
	return err
}

func (r *MongoNotificationRepository) CountUnread(ctx context.Context, userID string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"user_id": userID, "read": false})
}
