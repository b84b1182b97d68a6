package mongodb

import (
	"context"
	"time"

	"github.com/kartavyango/sahaaya/internal/domain/apperror"
	"github.com/kartavyango/sahaaya/internal/domain/contract"
	"github.com/kartavyango/sahaaya/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoInitiativeRepository struct {
	collection *mongo.Collection
}

var _ contract.IInitiativeRepository = (*MongoInitiativeRepository)(nil)

func NewMongoInitiativeRepository(collection *mongo.Collection) *MongoInitiativeRepository {
	return &MongoInitiativeRepository{collection: collection}
}

func (r *MongoInitiativeRepository) CreateInitiative(ctx context.Context, ini *entity.Initiative) error {
	_, err := r.collection.InsertOne(ctx, ini)
	return err
}

func (r *MongoInitiativeRepository) GetInitiativeByID(ctx context.Context, id string) (*entity.Initiative, error) {
	var ini entity.Initiative
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&ini)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperror.NotFoundf("initiative %s", id)
		}
		return nil, err
	}
	return &ini, nil
}

// GetInitiatives retrieves a page of initiatives, newest first, optionally
// filtered by category, plus the total matching count.
func (r *MongoInitiativeRepository) GetInitiatives(ctx context.Context, opts *contract.InitiativeFilterOptions) ([]*entity.Initiative, int64, error) {
	filter := bson.M{}
	if opts.Category != nil {
		filter["category"] = string(*opts.Category)
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip((opts.Page - 1) * opts.Limit).
		SetLimit(opts.Limit)
	cursor, err := r.collection.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var initiatives []*entity.Initiative
	if err := cursor.All(ctx, &initiatives); err != nil {
		return nil, 0, err
	}
	return initiatives, total, nil
}

// UpdateInitiative applies field updates and refreshes updated_at.
func (r *MongoInitiativeRepository) UpdateInitiative(ctx context.Context, id string, updates map[string]interface{}) error {
	set := bson.M{"updated_at": time.Now()}
	for k, v := range updates {
		set[k] = v
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperror.NotFoundf("initiative %s", id)
	}
	return nil
}

func (r *MongoInitiativeRepository) DeleteInitiative(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperror.NotFoundf("initiative %s", id)
	}
	return nil
}
