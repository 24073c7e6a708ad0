package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/userdesk/user-api/internal/core/domain"
)

const collectionRoles = "roles"

// RoleRepository reads role reference data. Roles are seeded out-of-band
// (see deployments or an ops script); this repository never writes them.
type RoleRepository struct {
	col *mongo.Collection
}

func NewRoleRepository(db *mongo.Database) *RoleRepository {
	return &RoleRepository{col: db.Collection(collectionRoles)}
}

type mongoRoleDoc struct {
	ID   int64  `bson:"_id"`
	Name string `bson:"name"`
}

func (r *RoleRepository) FindByID(ctx context.Context, id int64) (*domain.Role, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoRoleDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRoleNotFound
		}
		return nil, fmt.Errorf("find role by id: %w", err)
	}
	return &domain.Role{ID: doc.ID, Name: doc.Name}, nil
}
