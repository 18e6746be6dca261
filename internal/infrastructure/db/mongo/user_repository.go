package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/soufianez0uhair/shopsmart-api/internal/core/domain"
)

const userCollection = "users"

type MongoUserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{coll: db.Collection(userCollection)}
}

type mongoUser struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	FirstName   string             `bson:"first_name"`
	LastName    string             `bson:"last_name"`
	Email       string             `bson:"email"`
	PhoneNumber string             `bson:"phone_number"`
	Password    string             `bson:"password"`
	CreatedAt   int64              `bson:"created_at"`
	Roles       []mongoRole        `bson:"roles,omitempty"`
}

type mongoRole struct {
	ID   string `bson:"id,omitempty"`
	Name string `bson:"name"`
}

// EnsureIndexes creates the unique email index. The index is what enforces
// the uniqueness invariant when two registrations race past the
// service-level duplicate check.
func (r *MongoUserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create email index: %w", err)
	}
	return nil
}

// Create inserts the user, assigning ID and CreatedAt. A duplicate email is
// reported as domain.ErrEmailInUse.
func (r *MongoUserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	now := time.Now().UTC()
	doc := mongoUser{
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		Password:    user.Password,
		CreatedAt:   now.Unix(),
		Roles:       toMongoRoles(user.Roles),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrEmailInUse
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	created := *user
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	created.CreatedAt = now
	return &created, nil
}

func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var mu mongoUser
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&mu); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	return &domain.User{
		ID:          mu.ID.Hex(),
		FirstName:   mu.FirstName,
		LastName:    mu.LastName,
		Email:       mu.Email,
		PhoneNumber: mu.PhoneNumber,
		Password:    mu.Password,
		CreatedAt:   unixToTime(mu.CreatedAt),
		Roles:       toDomainRoles(mu.Roles),
	}, nil
}

func toMongoRoles(roles []domain.Role) []mongoRole {
	out := make([]mongoRole, 0, len(roles))
	for _, r := range roles {
		out = append(out, mongoRole{ID: r.ID, Name: r.Name})
	}
	return out
}

func toDomainRoles(roles []mongoRole) []domain.Role {
	out := make([]domain.Role, 0, len(roles))
	for _, r := range roles {
		out = append(out, domain.Role{ID: r.ID, Name: r.Name})
	}
	return out
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
