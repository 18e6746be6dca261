package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/soufianez0uhair/shopsmart-api/internal/core/domain"
)

const roleCollection = "roles"

type MongoRoleRepository struct {
	coll *mongo.Collection
}

func NewRoleRepository(db *mongo.Database) *MongoRoleRepository {
	return &MongoRoleRepository{coll: db.Collection(roleCollection)}
}

type mongoRoleDoc struct {
	ID   primitive.ObjectID `bson:"_id,omitempty"`
	Name string             `bson:"name"`
}

func (r *MongoRoleRepository) FindByName(ctx context.Context, name string) (*domain.Role, error) {
	var doc mongoRoleDoc
	if err := r.coll.FindOne(ctx, bson.M{"name": name}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrRoleNotFound
		}
		return nil, fmt.Errorf("find role: %w", err)
	}
	return &domain.Role{ID: doc.ID.Hex(), Name: doc.Name}, nil
}

// Seed upserts the built-in roles. Roles are read-only afterwards.
func (r *MongoRoleRepository) Seed(ctx context.Context) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"name": domain.RoleCustomer},
		bson.M{"$setOnInsert": bson.M{"name": domain.RoleCustomer}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("seed role %q: %w", domain.RoleCustomer, err)
	}
	return nil
}
