package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/quantumstudy/study-api/internal/core/domain"
)

const collectionUsers = "users"

// UserRepository implements ports.UserRepository using MongoDB.
type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection(collectionUsers)}
}

// SetTag atomically sets the tag field and returns the post-update document.
func (r *UserRepository) SetTag(ctx context.Context, id string, tag string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$set": bson.M{"tag": tag}}

	var doc bson.M
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": userIDFilter(id)}, update, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("set user tag: %w", err)
	}

	return toDomainUser(doc), nil
}

// userIDFilter returns the _id value to match. Ids that parse as an ObjectID
// are matched as one; anything else is matched as a string id.
func userIDFilter(id string) any {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return oid
	}
	return id
}

func toDomainUser(doc bson.M) *domain.User {
	u := &domain.User{Attributes: make(map[string]any, len(doc))}

	for k, v := range doc {
		switch k {
		case "_id":
			u.ID = idString(v)
		case "tag":
			if s, ok := v.(string); ok {
				u.Tag = s
			} else {
				u.Attributes[k] = v
			}
		default:
			u.Attributes[k] = v
		}
	}
	return u
}

func idString(v any) string {
	switch id := v.(type) {
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	default:
		return fmt.Sprint(id)
	}
}
