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

const userCollection = "users"

// UserRepository persists users in MongoDB.
type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(userCollection)}
}

type userDoc struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	UserName         string             `bson:"user_name"`
	Email            string             `bson:"email"`
	FullName         string             `bson:"full_name"`
	FirstName        string             `bson:"first_name,omitempty"`
	LastName         string             `bson:"last_name,omitempty"`
	PasswordHash     string             `bson:"password"`
	RefreshToken     string             `bson:"refresh_token,omitempty"`
	ResetTokenHash   string             `bson:"reset_token_hash,omitempty"`
	ResetTokenExpiry time.Time          `bson:"reset_token_expiry,omitempty"`
	ClientID         string             `bson:"client_id"`
	Department       string             `bson:"department"`
	Role             string             `bson:"role"`
	Status           string             `bson:"status"`
	PhoneNumber      string             `bson:"phone_number"`
	CreatedAt        time.Time          `bson:"created_at"`
	UpdatedAt        time.Time          `bson:"updated_at"`
}

func (d userDoc) toDomain() *domain.User {
	return &domain.User{
		ID:               d.ID.Hex(),
		UserName:         d.UserName,
		Email:            d.Email,
		FullName:         d.FullName,
		FirstName:        d.FirstName,
		LastName:         d.LastName,
		PasswordHash:     d.PasswordHash,
		RefreshToken:     d.RefreshToken,
		ResetTokenHash:   d.ResetTokenHash,
		ResetTokenExpiry: d.ResetTokenExpiry,
		ClientID:         d.ClientID,
		Department:       d.Department,
		Role:             d.Role,
		Status:           d.Status,
		PhoneNumber:      d.PhoneNumber,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	doc := userDoc{
		UserName:     user.UserName,
		Email:        user.Email,
		FullName:     user.FullName,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		PasswordHash: user.PasswordHash,
		ClientID:     user.ClientID,
		Department:   user.Department,
		Role:         user.Role,
		Status:       user.Status,
		PhoneNumber:  user.PhoneNumber,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	created := *user
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) FindByUserNameOrEmail(ctx context.Context, userName, email string) (*domain.User, error) {
	or := bson.A{}
	if userName != "" {
		or = append(or, bson.M{"user_name": userName})
	}
	if email != "" {
		or = append(or, bson.M{"email": email})
	}
	if len(or) == 0 {
		return nil, domain.ErrUserNotFound
	}
	return r.findOne(ctx, bson.M{"$or": or})
}

func (r *UserRepository) FindByResetTokenHash(ctx context.Context, hash string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"reset_token_hash": hash})
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	var doc userDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *UserRepository) List(ctx context.Context, filter ports.UserFilter) ([]domain.User, error) {
	query := bson.M{}
	if filter.Name != "" {
		query["full_name"] = bson.M{"$regex": filter.Name, "$options": "i"}
	}
	if filter.Department != "" {
		query["department"] = filter.Department
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Role != "" {
		query["role"] = filter.Role
	}
	if filter.ClientID != "" {
		query["client_id"] = filter.ClientID
	}

	cur, err := r.coll.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer cur.Close(ctx)

	var users []domain.User
	for cur.Next(ctx) {
		var doc userDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode user: %w", err)
		}
		users = append(users, *doc.toDomain())
	}
	return users, cur.Err()
}

func (r *UserRepository) Dropdown(ctx context.Context) ([]ports.UserOption, error) {
	proj := options.Find().SetProjection(bson.M{"user_name": 1})
	cur, err := r.coll.Find(ctx, bson.M{}, proj)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer cur.Close(ctx)

	var opts []ports.UserOption
	for cur.Next(ctx) {
		var doc userDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode user: %w", err)
		}
		opts = append(opts, ports.UserOption{ID: doc.ID.Hex(), UserName: doc.UserName})
	}
	return opts, cur.Err()
}

func (r *UserRepository) Update(ctx context.Context, id string, updates map[string]any) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	for k, v := range updates {
		set[k] = v
	}

	after := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc userDoc
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, after).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrUserNotFound
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// SetRefreshToken writes only the refresh token field, bypassing any
// document-level required fields.
func (r *UserRepository) SetRefreshToken(ctx context.Context, id, refreshToken string) error {
	return r.setFields(ctx, id, bson.M{"refresh_token": refreshToken})
}

func (r *UserRepository) SetResetToken(ctx context.Context, id, hash string, expiry time.Time) error {
	return r.setFields(ctx, id, bson.M{"reset_token_hash": hash, "reset_token_expiry": expiry})
}

func (r *UserRepository) ClearResetToken(ctx context.Context, id string) error {
	return r.unsetFields(ctx, id, bson.M{"reset_token_hash": "", "reset_token_expiry": ""})
}

func (r *UserRepository) SetPassword(ctx context.Context, id, passwordHash string) error {
	return r.setFields(ctx, id, bson.M{"password": passwordHash})
}

func (r *UserRepository) setFields(ctx context.Context, id string, fields bson.M) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrUserNotFound
	}
	fields["updated_at"] = time.Now().UTC()
	res, err := r.coll.UpdateByID(ctx, oid, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("update user fields: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) unsetFields(ctx context.Context, id string, fields bson.M) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrUserNotFound
	}
	res, err := r.coll.UpdateByID(ctx, oid, bson.M{
		"$unset": fields,
		"$set":   bson.M{"updated_at": time.Now().UTC()},
	})
	if err != nil {
		return fmt.Errorf("update user fields: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
