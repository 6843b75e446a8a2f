package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/worklane/hr-system/internal/core/domain"
	"github.com/worklane/hr-system/internal/core/ports"
)

const activityCollection = "activities"

// ActivityRepository persists attendance logs in MongoDB.
type ActivityRepository struct {
	coll *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) *ActivityRepository {
	return &ActivityRepository{coll: db.Collection(activityCollection)}
}

type activityDoc struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	domain.Activity `bson:",inline"`
}

func (d activityDoc) toDomain() *domain.Activity {
	a := d.Activity
	a.ID = d.ID.Hex()
	return &a
}

func (r *ActivityRepository) Create(ctx context.Context, activity *domain.Activity) (*domain.Activity, error) {
	res, err := r.coll.InsertOne(ctx, activityDoc{Activity: *activity})
	if err != nil {
		return nil, fmt.Errorf("insert activity: %w", err)
	}
	created := *activity
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *ActivityRepository) FindByID(ctx context.Context, id string) (*domain.Activity, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrActivityNotFound
	}
	var doc activityDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrActivityNotFound
		}
		return nil, fmt.Errorf("find activity: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ActivityRepository) List(ctx context.Context, filter ports.ActivityFilter) ([]domain.Activity, error) {
	query := bson.M{}
	if filter.Name != "" {
		query["name"] = bson.M{"$regex": filter.Name, "$options": "i"}
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.WorkType != "" {
		query["work_types"] = filter.WorkType
	}
	if filter.ClientID != "" {
		query["client_id"] = filter.ClientID
	}
	if filter.UserID != "" {
		query["user_id"] = filter.UserID
	}

	cur, err := r.coll.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer cur.Close(ctx)

	var activities []domain.Activity
	for cur.Next(ctx) {
		var doc activityDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode activity: %w", err)
		}
		activities = append(activities, *doc.toDomain())
	}
	return activities, cur.Err()
}

func (r *ActivityRepository) Update(ctx context.Context, id string, updates map[string]any) (*domain.Activity, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrActivityNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	for k, v := range updates {
		set[k] = v
	}

	after := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc activityDoc
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, after).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrActivityNotFound
		}
		return nil, fmt.Errorf("update activity: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ActivityRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrActivityNotFound
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete activity: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrActivityNotFound
	}
	return nil
}
