package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/taskboard/taskboard-api/internal/core/domain"
)

const collectionGroups = "groups"

// GroupRepository implements ports.GroupRepository using MongoDB.
type GroupRepository struct {
	coll *mongo.Collection
}

func NewGroupRepository(db *mongo.Database) *GroupRepository {
	return &GroupRepository{coll: db.Collection(collectionGroups)}
}

type mongoGroup struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description,omitempty"`
	CreatedBy   string             `bson:"created_by"`
	Members     []string           `bson:"members"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (m mongoGroup) toDomain() *domain.Group {
	return &domain.Group{
		ID:          m.ID.Hex(),
		Name:        m.Name,
		Description: m.Description,
		CreatedBy:   m.CreatedBy,
		Members:     m.Members,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func (r *GroupRepository) Create(ctx context.Context, group *domain.Group) (*domain.Group, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoGroup{
		Name:        group.Name,
		Description: group.Description,
		CreatedBy:   group.CreatedBy,
		Members:     group.Members,
		CreatedAt:   group.CreatedAt,
		UpdatedAt:   group.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert group: %w", err)
	}

	created := *group
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

// FindByName returns the named group. Name is unique in practice but not at
// the storage level; the earliest created document wins a tie.
func (r *GroupRepository) FindByName(ctx context.Context, name string) (*domain.Group, error) {
	return r.findOne(ctx, bson.M{"name": name})
}

// FindByMember runs an array-contains query on the member set, breaking
// multi-match ties by earliest created_at.
func (r *GroupRepository) FindByMember(ctx context.Context, email string) (*domain.Group, error) {
	return r.findOne(ctx, bson.M{"members": email})
}

func (r *GroupRepository) findOne(ctx context.Context, filter bson.M) (*domain.Group, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: 1}})

	var m mongoGroup
	if err := r.coll.FindOne(ctx, filter, opts).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrGroupNotFound
		}
		return nil, fmt.Errorf("find group: %w", err)
	}
	return m.toDomain(), nil
}

func (r *GroupRepository) ListByCreator(ctx context.Context, email string) ([]*domain.Group, error) {
	return r.list(ctx, bson.M{"created_by": email})
}

func (r *GroupRepository) List(ctx context.Context) ([]*domain.Group, error) {
	return r.list(ctx, bson.M{})
}

func (r *GroupRepository) list(ctx context.Context, filter bson.M) ([]*domain.Group, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoGroup
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode groups: %w", err)
	}

	groups := make([]*domain.Group, 0, len(docs))
	for _, d := range docs {
		groups = append(groups, d.toDomain())
	}
	return groups, nil
}

func (r *GroupRepository) SetMembers(ctx context.Context, id string, members []string) (*domain.Group, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrGroupNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{"members": members, "updated_at": time.Now().UTC()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var m mongoGroup
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrGroupNotFound
		}
		return nil, fmt.Errorf("set group members: %w", err)
	}
	return m.toDomain(), nil
}

// EnsureIndexes creates the indexes backing name and membership lookups.
func (r *GroupRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "name", Value: 1}}},
		{Keys: bson.D{{Key: "members", Value: 1}}},
		{Keys: bson.D{{Key: "created_by", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
