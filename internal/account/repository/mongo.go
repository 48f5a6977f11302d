// Package repository implements the account store on MongoDB.
package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/PeterNasrGab/orders-tracking-system-sub000/internal/account/domain"
)

const accountsCollection = "accounts"

type repo struct {
	col *mongo.Collection
}

func New(db *mongo.Database) domain.Repository {
	return &repo{col: db.Collection(accountsCollection)}
}

func (r *repo) Insert(ctx context.Context, a *domain.Account) error {
	_, err := r.col.InsertOne(ctx, a)
	return err
}

func (r *repo) FindByID(ctx context.Context, id string) (*domain.Account, error) {
	var a domain.Account
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repo) FindByName(ctx context.Context, name string) (*domain.Account, error) {
	var a domain.Account
	err := r.col.FindOne(ctx, bson.M{"name": name}).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repo) List(ctx context.Context) ([]domain.Account, error) {
	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var accounts []domain.Account
	if err := cur.All(ctx, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (r *repo) Update(ctx context.Context, a *domain.Account) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": a.ID}, a)
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
