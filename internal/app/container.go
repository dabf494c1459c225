package app

import (
	"context"
	"strings"
	"time"

	"skill-fit/internal/config"
	"skill-fit/internal/database"
	dbpostgres "skill-fit/internal/database/postgres"
	"skill-fit/internal/infrastructure/cache"
	"skill-fit/internal/infrastructure/mailer"
	"skill-fit/internal/repository"
	"skill-fit/internal/usecase"
	"skill-fit/internal/ws"

	"go.uber.org/zap"
)

type Container struct {
	Config config.Config
	Logger *zap.Logger
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub

	Profiles     repository.SkillProfileRepository
	Positions    repository.PositionRepository
	Requirements repository.RequirementRepository
	Courses      repository.CourseRepository
	Tracks       repository.TrackRepository
	SyncRuns     repository.SyncRunRepository

	EvaluationUC     usecase.EvaluationUsecase
	RecommendationUC usecase.RecommendationUsecase
	CareerUC         usecase.CareerPathUsecase
	CatalogUC        usecase.CatalogSyncUsecase
}

func NewContainer(cfg config.Config, logger *zap.Logger) (*Container, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	redisCache := cache.NewRedis(cfg.Redis, logger)
	hub := ws.NewHub(logger)

	c := &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Cache:  redisCache,
		Hub:    hub,

		Profiles:     repository.NewPostgresSkillProfileRepository(db),
		Positions:    repository.NewPostgresPositionRepository(db),
		Requirements: repository.NewPostgresRequirementRepository(db),
		Courses:      repository.NewPostgresCourseRepository(db),
		Tracks:       repository.NewPostgresTrackRepository(db),
		SyncRuns:     repository.NewPostgresSyncRunRepository(db),
	}

	evaluator := usecase.NewEvaluationUsecase(
		c.Profiles, c.Positions, c.Requirements,
		redisCache, cfg.Batch.Workers, cfg.Redis.TTL,
	)
	c.EvaluationUC = evaluator
	c.RecommendationUC = usecase.NewRecommendationUsecase(evaluator, c.Courses, newNotifier(ctx, cfg, logger), logger)
	c.CareerUC = usecase.NewCareerPathUsecase(c.Profiles, c.Tracks, c.Requirements)
	c.CatalogUC = usecase.NewCatalogSyncUsecase(c.SyncRuns, ws.NewBroadcaster(hub))

	return c, nil
}

// newNotifier returns nil unless the SES notification settings are complete;
// a nil notifier disables interview notifications without failing startup.
func newNotifier(ctx context.Context, cfg config.Config, logger *zap.Logger) usecase.InterviewNotifier {
	n := cfg.Notify
	if strings.TrimSpace(n.SESRegion) == "" ||
		strings.TrimSpace(n.FromEmail) == "" ||
		strings.TrimSpace(n.HREmail) == "" {
		return nil
	}

	notifier, err := mailer.NewSESNotifier(ctx, n.SESRegion, n.FromEmail, n.HREmail)
	if err != nil {
		logger.Warn("ses notifier disabled", zap.Error(err))
		return nil
	}
	return notifier
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
