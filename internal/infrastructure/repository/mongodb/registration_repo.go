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

type MongoRegistrationRepository struct {
	collection *mongo.Collection
}

var _ contract.IRegistrationRepository = (*MongoRegistrationRepository)(nil)

func NewMongoRegistrationRepository(collection *mongo.Collection) *MongoRegistrationRepository {
	return &MongoRegistrationRepository{collection: collection}
}

func (r *MongoRegistrationRepository) CreateRegistration(ctx context.Context, reg *entity.EventRegistration) error {
	_, err := r.collection.InsertOne(ctx, reg)
	return err
}

func (r *MongoRegistrationRepository) GetRegistrationByID(ctx context.Context, id string) (*entity.EventRegistration, error) {
	var reg entity.EventRegistration
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&reg)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperror.NotFoundf("registration %s", id)
		}
		return nil, err
	}
	return &reg, nil
}

// GetRegistrationsByEventID retrieves all registrations for an event,
// newest first.
func (r *MongoRegistrationRepository) GetRegistrationsByEventID(ctx context.Context, eventID string) ([]*entity.EventRegistration, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"event_id": eventID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var regs []*entity.EventRegistration
	if err := cursor.All(ctx, &regs); err != nil {
		return nil, err
	}
	return regs, nil
}

// AddSharedUsers merges user ids into shared_with without duplicates.
func (r *MongoRegistrationRepository) AddSharedUsers(ctx context.Context, id string, userIDs []string) error {
	update := bson.M{"$addToSet": bson.M{"shared_with": bson.M{"$each": userIDs}}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperror.NotFoundf("registration %s", id)
	}
	return nil
}

func (r *MongoRegistrationRepository) UpdateStatus(ctx context.Context, id string, status entity.RegistrationStatus) error {
	update := bson.M{"$set": bson.M{"status": string(status)}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperror.NotFoundf("registration %s", id)
	}
	return nil
}
