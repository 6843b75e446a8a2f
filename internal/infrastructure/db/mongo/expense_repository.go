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

const expenseCollection = "expenses"

// ExpenseRepository persists reimbursement claims in MongoDB.
type ExpenseRepository struct {
	coll *mongo.Collection
}

func NewExpenseRepository(db *mongo.Database) *ExpenseRepository {
	return &ExpenseRepository{coll: db.Collection(expenseCollection)}
}

type expenseDoc struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	domain.Expense `bson:",inline"`
}

func (d expenseDoc) toDomain() *domain.Expense {
	e := d.Expense
	e.ID = d.ID.Hex()
	return &e
}

func (r *ExpenseRepository) Create(ctx context.Context, expense *domain.Expense) (*domain.Expense, error) {
	res, err := r.coll.InsertOne(ctx, expenseDoc{Expense: *expense})
	if err != nil {
		return nil, fmt.Errorf("insert expense: %w", err)
	}
	created := *expense
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *ExpenseRepository) FindByID(ctx context.Context, id string) (*domain.Expense, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrExpenseNotFound
	}
	var doc expenseDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrExpenseNotFound
		}
		return nil, fmt.Errorf("find expense: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ExpenseRepository) List(ctx context.Context, filter ports.ExpenseFilter) ([]domain.Expense, error) {
	query := bson.M{}
	if filter.ClientID != "" {
		query["client_id"] = filter.ClientID
	}
	if filter.UserID != "" {
		query["user_id"] = filter.UserID
	}
	if filter.UserName != "" {
		query["user_name"] = bson.M{"$regex": filter.UserName, "$options": "i"}
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if !filter.DateOfSubmitted.IsZero() {
		query["date_of_submitted"] = filter.DateOfSubmitted
	}

	cur, err := r.coll.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer cur.Close(ctx)

	var expenses []domain.Expense
	for cur.Next(ctx) {
		var doc expenseDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode expense: %w", err)
		}
		expenses = append(expenses, *doc.toDomain())
	}
	return expenses, cur.Err()
}

func (r *ExpenseRepository) Update(ctx context.Context, id string, updates map[string]any) (*domain.Expense, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrExpenseNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	for k, v := range updates {
		set[k] = v
	}

	after := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc expenseDoc
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, after).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrExpenseNotFound
		}
		return nil, fmt.Errorf("update expense: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ExpenseRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrExpenseNotFound
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrExpenseNotFound
	}
	return nil
}
