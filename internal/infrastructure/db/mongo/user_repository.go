package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/userdesk/user-api/internal/core/domain"
)

const (
	collectionUsers    = "users"
	collectionCounters = "counters"
)

// UserRepository persists user records in MongoDB. Identifiers are numeric
// and store-assigned through a counters collection; username uniqueness is
// enforced by a unique index, making the store the source of truth for
// conflicting concurrent creates.
type UserRepository struct {
	col      *mongo.Collection
	counters *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{
		col:      db.Collection(collectionUsers),
		counters: db.Collection(collectionCounters),
	}
}

type mongoRole struct {
	ID   int64  `bson:"id"`
	Name string `bson:"name"`
}

type mongoUser struct {
	ID           int64       `bson:"_id"`
	Name         string      `bson:"name"`
	Surname      string      `bson:"surname"`
	Age          int         `bson:"age"`
	Email        string      `bson:"email"`
	Username     string      `bson:"username"`
	PasswordHash string      `bson:"password_hash"`
	Roles        []mongoRole `bson:"roles"`
	CreatedAt    int64       `bson:"created_at"`
	UpdatedAt    int64       `bson:"updated_at"`
}

// EnsureIndexes creates the unique username index. Must run at startup before
// the service accepts traffic.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create username index: %w", err)
	}
	return nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoUser
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}

	users := make([]domain.User, 0, len(docs))
	for i := range docs {
		users = append(users, *toDomainUser(&docs[i]))
	}
	return users, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoUser
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return toDomainUser(&doc), nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoUser
	if err := r.col.FindOne(ctx, bson.M{"username": username}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by username: %w", err)
	}
	return toDomainUser(&doc), nil
}

func (r *UserRepository) Insert(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.nextSequence(ctx)
	if err != nil {
		return nil, err
	}

	doc := toMongoUser(user)
	doc.ID = id

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUsernameExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	created := *user
	created.ID = id
	return &created, nil
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := toMongoUser(user)
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": user.ID}, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrUsernameExists
		}
		return fmt.Errorf("update user: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// DeleteByID removes the record. A missing id is not an error.
func (r *UserRepository) DeleteByID(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

// nextSequence atomically increments and returns the users id counter.
func (r *UserRepository) nextSequence(ctx context.Context) (int64, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": collectionUsers},
		bson.M{"$inc": bson.M{"seq": 1}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("next user id: %w", err)
	}
	return counter.Seq, nil
}

func toMongoUser(u *domain.User) *mongoUser {
	roles := make([]mongoRole, 0, len(u.Roles))
	for _, role := range u.Roles {
		roles = append(roles, mongoRole{ID: role.ID, Name: role.Name})
	}
	return &mongoUser{
		ID:           u.ID,
		Name:         u.Name,
		Surname:      u.Surname,
		Age:          u.Age,
		Email:        u.Email,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		Roles:        roles,
		CreatedAt:    u.CreatedAt.Unix(),
		UpdatedAt:    u.UpdatedAt.Unix(),
	}
}

func toDomainUser(doc *mongoUser) *domain.User {
	roles := make([]domain.Role, 0, len(doc.Roles))
	for _, role := range doc.Roles {
		roles = append(roles, domain.Role{ID: role.ID, Name: role.Name})
	}
	return &domain.User{
		ID:           doc.ID,
		Name:         doc.Name,
		Surname:      doc.Surname,
		Age:          doc.Age,
		Email:        doc.Email,
		Username:     doc.Username,
		PasswordHash: doc.PasswordHash,
		Roles:        roles,
		CreatedAt:    unixToTime(doc.CreatedAt),
		UpdatedAt:    unixToTime(doc.UpdatedAt),
	}
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
