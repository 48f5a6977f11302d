// Package repository implements the merge group store on MongoDB.
package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/PeterNasrGab/orders-tracking-system-sub000/internal/mergegroup/domain"
)

const groupsCollection = "merge_groups"

type repo struct {
	col *mongo.Collection
}

func New(db *mongo.Database) domain.Repository {
	return &repo{col: db.Collection(groupsCollection)}
}

func (r *repo) Insert(ctx context.Context, g *domain.Group) error {
	_, err := r.col.InsertOne(ctx, g)
	return err
}

func (r *repo) FindByID(ctx context.Context, id string) (*domain.Group, error) {
	var g domain.Group
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&g)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *repo) List(ctx context.Context) ([]domain.Group, error) {
	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var groups []domain.Group
	if err := cur.All(ctx, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

func (r *repo) Update(ctx context.Context, g *domain.Group) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": g.ID}, g)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *repo) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
