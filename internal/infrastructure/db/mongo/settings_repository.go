package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/quantumstudy/study-api/internal/core/domain"
)

const (
	collectionSettings = "settings"
	serverInfoID       = "server_info"
)

// SettingsRepository implements ports.SettingsRepository using MongoDB.
// Settings are stored one document per key, keyed by _id.
type SettingsRepository struct {
	col *mongo.Collection
}

func NewSettingsRepository(db *mongo.Database) *SettingsRepository {
	return &SettingsRepository{col: db.Collection(collectionSettings)}
}

func (r *SettingsRepository) FindServerInfo(ctx context.Context) (*domain.ServerInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var info domain.ServerInfo
	err := r.col.FindOne(ctx, bson.M{"_id": serverInfoID}).Decode(&info)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSettingsNotFound
		}
		return nil, fmt.Errorf("find server info: %w", err)
	}
	return &info, nil
}
