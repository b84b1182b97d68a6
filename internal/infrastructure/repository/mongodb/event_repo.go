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

type MongoEventRepository struct {
	collection *mongo.Collection
}

var _ contract.IEventRepository = (*MongoEventRepository)(nil)

func NewMongoEventRepository(collection *mongo.Collection) *MongoEventRepository {
	return &MongoEventRepository{collection: collection}
}

func (r *MongoEventRepository) CreateEvent(ctx context.Context, event *entity.Event) error {
	_, err := r.collection.InsertOne(ctx, event)
	return err
}

func (r *MongoEventRepository) GetEventByID(ctx context.Context, id string) (*entity.Event, error) {
	var event entity.Event
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&event)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperror.NotFoundf("event %s", id)
		}
		return nil, err
	}
	return &event, nil
}

// GetEvents retrieves a page of events, newest first, plus the total count.
func (r *MongoEventRepository) GetEvents(ctx context.Context, page, limit int64) ([]*entity.Event, int64, error) {
	filter := bson.M{}

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

	var events []*entity.Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

func (r *MongoEventRepository) UpdateEvent(ctx context.Context, id string, updates map[string]interface{}) error {
	set := bson.M{}
	for k, v := range updates {
		set[k] = v
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperror.NotFoundf("event %s", id)
	}
	return nil
}

func (r *MongoEventRepository) DeleteEvent(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperror.NotFoundf("event %s", id)
	}
	return nil
}

// AddSharedUsers merges user ids into shared_with without duplicates.
func (r *MongoEventRepository) AddSharedUsers(ctx context.Context, id string, userIDs []string) error {
	update := bson.M{"$addToSet": bson.M{"shared_with": bson.M{"$each": userIDs}}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperror.NotFoundf("event %s", id)
	}
	return nil
}

// RemoveReportFile detaches one report attachment by storage id.
func (r *MongoEventRepository) RemoveReportFile(ctx context.Context, id, storageID string) error {
	update := bson.M{"$pull": bson.M{"reports": bson.M{"storage_id": storageID}}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperror.NotFoundf("event %s", id)
	}
	return nil
}
