package mongostore

import (
	"context"
	"time"

	"github.com/autoconnect/backend/pkg/domain/category"
	repo "github.com/autoconnect/backend/pkg/repository/category"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type categoryDocument struct {
	ID         string    `bson:"_id"`
	CategoryID string    `bson:"categoryid"`
	Name       string    `bson:"name"`
	Type       string    `bson:"type"`
	Color      string    `bson:"color"`
	Icon       string    `bson:"icon"`
	CreatedAt  time.Time `bson:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt"`
}

func (d *categoryDocument) toDomain() (*category.Category, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, err
	}
	return &category.Category{
		ID:         id,
		CategoryID: d.CategoryID,
		Name:       d.Name,
		Type:       category.Type(d.Type),
		Color:      d.Color,
		Icon:       d.Icon,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}, nil
}

type categoryRepository struct {
	coll *mongo.Collection
}

func NewCategoryRepository(db *mongo.Database) repo.Repository {
	return &categoryRepository{coll: db.Collection(categoriesCollection)}
}

func (r *categoryRepository) Create(ctx context.Context, c *category.Category) error {
	if err := c.Validate(); err != nil {
		return err
	}
	_, err := r.coll.InsertOne(ctx, &categoryDocument{
		ID:         c.ID.String(),
		CategoryID: c.CategoryID,
		Name:       c.Name,
		Type:       string(c.Type),
		Color:      c.Color,
		Icon:       c.Icon,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	})
	return mapMongoError(err)
}

func (r *categoryRepository) Get(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	var doc categoryDocument
	if err := r.coll.FindOne(ctx, byID(id.String())).Decode(&doc); err != nil {
		return nil, mapMongoError(err)
	}
	c, err := doc.toDomain()
	return c, mapMongoError(err)
}

func (r *categoryRepository) List(ctx context.Context) ([]*category.Category, error) {
	cur, err := r.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, mapMongoError(err)
	}
	var docs []categoryDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, mapMongoError(err)
	}
	result := make([]*category.Category, 0, len(docs))
	for i := range docs {
		c, err := docs[i].toDomain()
		if err != nil {
			return nil, mapMongoError(err)
		}
		result = append(result, c)
	}
	return result, nil
}

func (r *categoryRepository) Update(ctx context.Context, c *category.Category) error {
	if err := c.Validate(); err != nil {
		return err
	}
	return requireMatched(r.coll.UpdateOne(ctx, byID(c.ID.String()), bson.D{{Key: "$set", Value: bson.D{
		{Key: "name", Value: c.Name},
		{Key: "type", Value: string(c.Type)},
		{Key: "color", Value: c.Color},
		{Key: "icon", Value: c.Icon},
		{Key: "updatedAt", Value: time.Now().UTC()},
	}}}))
}

func (r *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return requireDeleted(r.coll.DeleteOne(ctx, byID(id.String())))
}
