package routes

import (
	"context"
	"fmt"

	"repair_hub/internal/adapter/persistence/repository"
	"repair_hub/internal/config"
	"repair_hub/internal/infrastructure/database"
	"repair_hub/internal/infrastructure/storage"
	"repair_hub/internal/infrastructure/supabase"
	"repair_hub/internal/usecase/interfaces"

	"go.uber.org/zap"
)

type backend struct {
	jobs   interfaces.IRepairJobRepository
	stock  interfaces.IStockItemRepository
	photos interfaces.IPhotoStorage
}

func newBackend(ctx context.Context, cfg *config.Config, log *zap.Logger) (backend, error) {
	switch cfg.Backend {
	case config.BackendSupabase:
		client := supabase.NewClient(cfg.Supabase)
		log.Info("using supabase backend", zap.String("url", cfg.Supabase.URL))
		return backend{
			jobs:   repository.NewRepairJobSupabaseRepository(client, cfg.DynamoDB.RepairsTable),
			stock:  repository.NewStockItemSupabaseRepository(client, cfg.DynamoDB.StockTable),
			photos: storage.NewSupabasePhotoStorage(client, cfg.Photos.Bucket),
		}, nil

	case config.BackendDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return backend{}, err
		}
		awsCfg, err := database.NewAWSConfig(ctx, cfg.DynamoDB)
		if err != nil {
			return backend{}, err
		}
		log.Info("using dynamodb backend",
			zap.String("region", cfg.DynamoDB.Region),
			zap.String("repairs_table", cfg.DynamoDB.RepairsTable),
			zap.String("stock_table", cfg.DynamoDB.StockTable))
		return backend{
			jobs:   repository.NewRepairJobDynamoRepository(ddb, cfg.DynamoDB.RepairsTable),
			stock:  repository.NewStockItemDynamoRepository(ddb, cfg.DynamoDB.StockTable),
			photos: storage.NewS3PhotoStorage(storage.NewS3Client(awsCfg, cfg.Photos.S3Endpoint), cfg.Photos),
		}, nil

	default:
		return backend{}, fmt.Errorf("unsupported backend %q", cfg.Backend)
	}
}
