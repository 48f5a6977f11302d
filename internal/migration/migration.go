// Package migration prepares both backends: relational schema for uploads
// and MongoDB indexes for the document collections.
package migration

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	orderrepo "github.com/PeterNasrGab/orders-tracking-system-sub000/internal/order/repository"
	uploaddomain "github.com/PeterNasrGab/orders-tracking-system-sub000/internal/upload/domain"
)

var Module = fx.Module("migration",
	fx.Invoke(Run),
)

func Run(db *gorm.DB, mongoDB *mongo.Database, log *zap.Logger) error {
	if err := db.AutoMigrate(&uploaddomain.Upload{}); err != nil {
		return err
	}
	if err := orderrepo.EnsureIndexes(context.Background(), mongoDB); err != nil {
		return err
	}
	log.Info("migrations applied")
	return nil
}
