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
)

const settingsCollection = "advanced_settings"

// SettingsRepository persists per-tenant advanced settings in MongoDB.
type SettingsRepository struct {
	coll *mongo.Collection
}

func NewSettingsRepository(db *mongo.Database) *SettingsRepository {
	return &SettingsRepository{coll: db.Collection(settingsCollection)}
}

type settingsDoc struct {
	ID                      primitive.ObjectID `bson:"_id,omitempty"`
	domain.AdvancedSettings `bson:",inline"`
}

func (d settingsDoc) toDomain() *domain.AdvancedSettings {
	s := d.AdvancedSettings
	s.ID = d.ID.Hex()
	return &s
}

func (r *SettingsRepository) Create(ctx context.Context, settings *domain.AdvancedSettings) (*domain.AdvancedSettings, error) {
	res, err := r.coll.InsertOne(ctx, settingsDoc{AdvancedSettings: *settings})
	if err != nil {
		return nil, fmt.Errorf("insert settings: %w", err)
	}
	created := *settings
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *SettingsRepository) FindByID(ctx context.Context, id string) (*domain.AdvancedSettings, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrSettingsNotFound
	}
	var doc settingsDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrSettingsNotFound
		}
		return nil, fmt.Errorf("find settings: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *SettingsRepository) List(ctx context.Context) ([]domain.AdvancedSettings, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	defer cur.Close(ctx)

	var all []domain.AdvancedSettings
	for cur.Next(ctx) {
		var doc settingsDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode settings: %w", err)
		}
		all = append(all, *doc.toDomain())
	}
	return all, cur.Err()
}

func (r *SettingsRepository) Update(ctx context.Context, id string, updates map[string]any) (*domain.AdvancedSettings, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrSettingsNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	for k, v := range updates {
		set[k] = v
	}

	after := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc settingsDoc
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, after).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrSettingsNotFound
		}
		return nil, fmt.Errorf("update settings: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *SettingsRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrSettingsNotFound
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete settings: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrSettingsNotFound
	}
	return nil
}
