// Package repository persists the settings singleton in MongoDB.
package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/PeterNasrGab/orders-tracking-system-sub000/internal/settings/domain"
)

const settingsCollection = "settings"

type repo struct {
	col *mongo.Collection
}

func New(db *mongo.Database) domain.Repository {
	return &repo{col: db.Collection(settingsCollection)}
}

func (r *repo) Load(ctx context.Context) (*domain.Document, error) {
	var doc domain.Document
	err := r.col.FindOne(ctx, bson.M{"_id": domain.DocumentID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotLoaded
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *repo) Save(ctx context.Context, doc *domain.Document) error {
	doc.ID = domain.DocumentID
	_, err := r.col.ReplaceOne(ctx,
		bson.M{"_id": domain.DocumentID},
		doc,
		options.Replace().SetUpsert(true),
	)
	return err
}
