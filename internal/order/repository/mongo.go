// Package repository implements the order store on MongoDB.
package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/PeterNasrGab/orders-tracking-system-sub000/internal/order/domain"
	"github.com/PeterNasrGab/orders-tracking-system-sub000/internal/pricing"
)

const (
	ordersCollection   = "orders"
	countersCollection = "counters"
)

type repo struct {
	orders   *mongo.Collection
	counters *mongo.Collection
}

func New(db *mongo.Database) domain.Repository {
	return &repo{
		orders:   db.Collection(ordersCollection),
		counters: db.Collection(countersCollection),
	}
}

// EnsureIndexes creates the unique code index and the lookup indexes the
// dashboards filter on. Safe to call on every startup.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(ordersCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "code", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "customer_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "channel", Value: 1}}},
		{Keys: bson.D{{Key: "delivered_at", Value: 1}}},
	})
	return err
}

func (r *repo) NextSequence(ctx context.Context, channel pricing.Channel) (int64, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": "orders_" + string(channel)},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, err
	}
	return counter.Seq, nil
}

func (r *repo) Insert(ctx context.Context, o *domain.Order) error {
	_, err := r.orders.InsertOne(ctx, o)
	if mongo.IsDuplicateKeyError(err) {
		return domain.ErrDuplicateCode
	}
	return err
}

func (r *repo) FindByCode(ctx context.Context, code string) (*domain.Order, error) {
	var o domain.Order
	err := r.orders.FindOne(ctx, bson.M{"code": code}).Decode(&o)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *repo) List(ctx context.Context, filter domain.ListFilter) ([]domain.Order, error) {
	query := bson.M{}
	if filter.Channel != "" {
		query["channel"] = filter.Channel
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.CustomerID != "" {
		query["customer_id"] = filter.CustomerID
	}
	if filter.AccountName != "" {
		query["account_name"] = filter.AccountName
	}
	if !filter.CreatedAfter.IsZero() || !filter.CreatedUntil.IsZero() {
		created := bson.M{}
		if !filter.CreatedAfter.IsZero() {
			created["$gte"] = filter.CreatedAfter
		}
		if !filter.CreatedUntil.IsZero() {
			created["$lt"] = filter.CreatedUntil
		}
		query["created_at"] = created
	}

	cur, err := r.orders.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var orders []domain.Order
	if err := cur.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *repo) UpdateFields(ctx context.Context, code string, fields map[string]any) (*domain.Order, error) {
	set := bson.M{}
	for k, v := range fields {
		set[k] = v
	}

	var o domain.Order
	err := r.orders.FindOneAndUpdate(ctx,
		bson.M{"code": code},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&o)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *repo) Delete(ctx context.Context, code string) error {
	res, err := r.orders.DeleteOne(ctx, bson.M{"code": code})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *repo) DeleteDeliveredBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.orders.DeleteMany(ctx, bson.M{
		"delivered_at": bson.M{"$lt": cutoff},
	})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
