package mongostore

import (
	"context"
	"time"

	"github.com/autoconnect/backend/pkg/domain/user"
	repo "github.com/autoconnect/backend/pkg/repository/user"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type userDocument struct {
	ID        string    `bson:"_id"`
	Username  string    `bson:"username"`
	Email     string    `bson:"email"`
	Password  string    `bson:"password"`
	Names     string    `bson:"names"`
	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

type userRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) repo.Repository {
	return &userRepository{coll: db.Collection(usersCollection)}
}

func (r *userRepository) Create(ctx context.Context, u *user.User) error {
	_, err := r.coll.InsertOne(ctx, &userDocument{
		ID:        u.ID.String(),
		Username:  u.Username,
		Email:     u.Email,
		Password:  u.Password,
		Names:     u.Names,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	})
	return mapMongoError(err)
}

func (r *userRepository) Get(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return r.findOne(ctx, byID(id.String()))
}

func (r *userRepository) GetByIdentity(ctx context.Context, identity string) (*user.User, error) {
	return r.findOne(ctx, bson.D{{Key: "$or", Value: bson.A{
		bson.D{{Key: "username", Value: identity}},
		bson.D{{Key: "email", Value: identity}},
	}}})
}

func (r *userRepository) findOne(ctx context.Context, filter bson.D) (*user.User, error) {
	var doc userDocument
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, mapMongoError(err)
	}
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, mapMongoError(err)
	}
	return &user.User{
		ID:        id,
		Username:  doc.Username,
		Email:     doc.Email,
		Password:  doc.Password,
		Names:     doc.Names,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}, nil
}
