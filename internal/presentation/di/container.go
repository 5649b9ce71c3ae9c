package di

import (
	"errors"
	"fmt"
	"log/slog"

	"construction-cost-app/internal/config"
	constructionRepo "construction-cost-app/internal/modules/construction/domain/repository"
	constructionHandler "construction-cost-app/internal/modules/construction/presentation/handler"
	constructionUsecase "construction-cost-app/internal/modules/construction/usecase"
	sharedDB "construction-cost-app/internal/modules/shared/infrastructure/database"
	sharedMemory "construction-cost-app/internal/modules/shared/infrastructure/memory"
	sharedRateLimit "construction-cost-app/internal/modules/shared/infrastructure/ratelimit"
	httpHandler "construction-cost-app/internal/presentation/http/handler"
)

// Container DIコンテナ
type Container struct {
	cfg *config.Config

	// Shared Infrastructure
	store   constructionRepo.Store
	limiter *sharedRateLimit.RedisLimiter

	// Construction Module: UseCases
	projectUseCase     *constructionUsecase.ProjectUseCase
	taskUseCase        *constructionUsecase.TaskUseCase
	lineItemUseCase    *constructionUsecase.LineItemUseCase
	photoUseCase       *constructionUsecase.PhotoUseCase
	costSummaryUseCase *constructionUsecase.CostSummaryUseCase
	receiptUseCase     *constructionUsecase.ReceiptUseCase

	// Construction Module: Handlers
	projectHandler  *constructionHandler.ProjectHandler
	taskHandler     *constructionHandler.TaskHandler
	lineItemHandler *constructionHandler.LineItemHandler
	photoHandler    *constructionHandler.PhotoHandler
	costHandler     *constructionHandler.CostHandler

	healthHandler *httpHandler.HealthHandler
}

// NewContainer 新しいContainerを作成
func NewContainer(cfg *config.Config) (*Container, error) {
	container := &Container{cfg: cfg}

	// Shared Infrastructure: Entity Store
	store, err := newStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}
	container.store = store

	// Shared Infrastructure: Rate Limiter（Redisに接続できなければ無効化）
	if cfg.RateLimit.Enabled {
		limiter, err := sharedRateLimit.NewRedisLimiter(&cfg.Redis, &cfg.RateLimit)
		if err != nil {
			slog.Warn("Rate limiting disabled", "error", err)
		} else {
			container.limiter = limiter
		}
	}

	// Construction Module: UseCases
	container.projectUseCase = constructionUsecase.NewProjectUseCase(store.Projects(), store.Tasks())
	container.taskUseCase = constructionUsecase.NewTaskUseCase(store.Projects(), store.Tasks())
	container.lineItemUseCase = constructionUsecase.NewLineItemUseCase(
		store.Projects(), store.Materials(), store.Workers(), store.OtherExpenses(),
	)
	container.photoUseCase = constructionUsecase.NewPhotoUseCase(store.Projects(), store.Photos())
	container.costSummaryUseCase = constructionUsecase.NewCostSummaryUseCase(
		store.Projects(), store.Materials(), store.Workers(), store.OtherExpenses(),
	)
	container.receiptUseCase = constructionUsecase.NewReceiptUseCase(
		store.Projects(), store.Materials(), store.Workers(), store.OtherExpenses(),
	)

	// Construction Module: Handlers
	container.projectHandler = constructionHandler.NewProjectHandler(container.projectUseCase)
	container.taskHandler = constructionHandler.NewTaskHandler(container.taskUseCase)
	container.lineItemHandler = constructionHandler.NewLineItemHandler(container.lineItemUseCase)
	container.photoHandler = constructionHandler.NewPhotoHandler(container.photoUseCase)
	container.costHandler = constructionHandler.NewCostHandler(container.costSummaryUseCase, container.receiptUseCase)

	container.healthHandler = httpHandler.NewHealthHandler(store, config.Version)

	return container, nil
}

func newStore(cfg *config.Config) (constructionRepo.Store, error) {
	if cfg.Database.Driver == config.DriverMemory {
		return sharedMemory.NewStore(), nil
	}
	return sharedDB.NewBunStore(cfg)
}

// Config 設定を取得
func (c *Container) Config() *config.Config {
	return c.cfg
}

// Store エンティティストアを取得
func (c *Container) Store() constructionRepo.Store {
	return c.store
}

// RateLimiter レートリミッターを取得（無効時はnil）
func (c *Container) RateLimiter() *sharedRateLimit.RedisLimiter {
	return c.limiter
}

// CostSummaryUseCase 原価集計ユースケースを取得
func (c *Container) CostSummaryUseCase() *constructionUsecase.CostSummaryUseCase {
	return c.costSummaryUseCase
}

// ReceiptUseCase 明細書生成ユースケースを取得
func (c *Container) ReceiptUseCase() *constructionUsecase.ReceiptUseCase {
	return c.receiptUseCase
}

// ProjectHandler プロジェクトAPIハンドラーを取得
func (c *Container) ProjectHandler() *constructionHandler.ProjectHandler {
	return c.projectHandler
}

// TaskHandler タスクAPIハンドラーを取得
func (c *Container) TaskHandler() *constructionHandler.TaskHandler {
	return c.taskHandler
}

// LineItemHandler 明細APIハンドラーを取得
func (c *Container) LineItemHandler() *constructionHandler.LineItemHandler {
	return c.lineItemHandler
}

// PhotoHandler 写真APIハンドラーを取得
func (c *Container) PhotoHandler() *constructionHandler.PhotoHandler {
	return c.photoHandler
}

// CostHandler 原価集計・明細書APIハンドラーを取得
func (c *Container) CostHandler() *constructionHandler.CostHandler {
	return c.costHandler
}

// HealthHandler ヘルスチェックハンドラーを取得
func (c *Container) HealthHandler() *httpHandler.HealthHandler {
	return c.healthHandler
}

// Close リソースをクローズ
func (c *Container) Close() error {
	var errs []error

	if c.limiter != nil {
		if err := c.limiter.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close rate limiter: %w", err))
		}
		c.limiter = nil
	}

	if c.store != nil {
		if err := c.store.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close store: %w", err))
		}
		c.store = nil
	}

	return errors.Join(errs...)
}
