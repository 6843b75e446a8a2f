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

const absenceCollection = "absences"

// AbsenceRepository persists leave requests in MongoDB.
type AbsenceRepository struct {
	coll *mongo.Collection
}

func NewAbsenceRepository(db *mongo.Database) *AbsenceRepository {
	return &AbsenceRepository{coll: db.Collection(absenceCollection)}
}

type absenceDoc struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	domain.Absence `bson:",inline"`
}

func (d absenceDoc) toDomain() *domain.Absence {
	a := d.Absence
	a.ID = d.ID.Hex()
	return &a
}

func (r *AbsenceRepository) Create(ctx context.Context, absence *domain.Absence) (*domain.Absence, error) {
	res, err := r.coll.InsertOne(ctx, absenceDoc{Absence: *absence})
	if err != nil {
		return nil, fmt.Errorf("insert absence: %w", err)
	}
	created := *absence
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *AbsenceRepository) FindByID(ctx context.Context, id string) (*domain.Absence, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAbsenceNotFound
	}
	var doc absenceDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrAbsenceNotFound
		}
		return nil, fmt.Errorf("find absence: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *AbsenceRepository) List(ctx context.Context, filter ports.AbsenceFilter) ([]domain.Absence, error) {
	query := bson.M{}
	if filter.Name != "" {
		query["name"] = bson.M{"$regex": filter.Name, "$options": "i"}
	}
	if filter.UserName != "" {
		query["user_name"] = bson.M{"$regex": filter.UserName, "$options": "i"}
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.ClientID != "" {
		query["client_id"] = filter.ClientID
	}
	if filter.UserID != "" {
		query["user_id"] = filter.UserID
	}
	if !filter.From.IsZero() && !filter.To.IsZero() {
		query["day_of_absence"] = bson.M{"$gte": filter.From, "$lte": filter.To}
	}

	cur, err := r.coll.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list absences: %w", err)
	}
	defer cur.Close(ctx)

	var absences []domain.Absence
	for cur.Next(ctx) {
		var doc absenceDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode absence: %w", err)
		}
		absences = append(absences, *doc.toDomain())
	}
	return absences, cur.Err()
}

func (r *AbsenceRepository) Update(ctx context.Context, id string, updates map[string]any) (*domain.Absence, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAbsenceNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	for k, v := range updates {
		set[k] = v
	}

	after := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc absenceDoc
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, after).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrAbsenceNotFound
		}
		return nil, fmt.Errorf("update absence: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *AbsenceRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrAbsenceNotFound
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete absence: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrAbsenceNotFound
	}
	return nil
}
