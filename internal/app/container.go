package app

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"career-match/internal/config"
	"career-match/internal/database"
	"career-match/internal/database/migration"
	dbpostgres "career-match/internal/database/postgres"
	"career-match/internal/database/seeder"
	"career-match/internal/infrastructure/cache"
	"career-match/internal/observability"
	"career-match/internal/pkg/jwt"
	"career-match/internal/repository"
	"career-match/internal/usecase"
	ucauth "career-match/internal/usecase/auth"
	"career-match/internal/ws"
	"career-match/migrations"

	"github.com/google/uuid"
)

// Container owns every long-lived dependency of the service.
type Container struct {
	Config config.Config
	Logger *log.Logger
	DB     database.DB
	Cache  *cache.Redis
	JWT    jwt.Service

	Hub      *ws.Hub
	Notifier *ws.Notifier
	Metrics  *observability.MetricsCollector

	Users        *repository.PostgresUserRepository
	Jobs         *repository.PostgresJobRepository
	Resources    *repository.PostgresResourceRepository
	Applications *repository.PostgresApplicationRepository

	Catalog       *usecase.Catalog
	AuthUC        *usecase.Auth
	UserUC        *usecase.User
	JobListUC     *usecase.JobList
	RecommendUC   *usecase.JobRecommendation
	DashboardUC   *usecase.DashboardService
	ResourceUC    *usecase.Resources
	ApplicationUC *usecase.Applications
}

func NewContainer(cfg config.Config) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	logger := log.Default()
	return NewContainerFromDB(cfg, db, cache.NewRedis(cfg.Redis, logger), logger), nil
}

// NewContainerFromDB wires the container around an open database. A nil
// redis disables caching.
func NewContainerFromDB(cfg config.Config, db database.DB, redis *cache.Redis, logger *log.Logger) *Container {
	c := &Container{Config: cfg, Logger: logger, DB: db, Cache: redis}

	c.JWT = jwt.NewHMACService(
		cfg.App.AppName,
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	c.Hub = ws.NewHub(logger)
	c.Notifier = ws.NewNotifier(c.Hub)
	c.Metrics = observability.NewMetricsCollector(func() float64 { return float64(c.Hub.ClientCount()) })

	c.Users = repository.NewPostgresUserRepository(db)
	c.Jobs = repository.NewPostgresJobRepository(db)
	c.Resources = repository.NewPostgresResourceRepository(db)
	c.Applications = repository.NewPostgresApplicationRepository(db)

	var searchCache usecase.SearchCache
	if redis != nil {
		searchCache = redis
	}

	c.Catalog = usecase.NewCatalog(c.Jobs, c.Resources, searchCache, logger)
	c.AuthUC = usecase.NewAuthUsecase(ucauth.NewService(c.Users), c.Users, c.JWT)
	c.UserUC = usecase.NewUserUsecase(c.Users)
	c.JobListUC = usecase.NewJobListUsecase(c.Jobs, c.Catalog, searchCache, logger)
	c.RecommendUC = usecase.NewJobRecommendationUsecase(c.Users, c.Catalog, c.Metrics, logger)
	c.DashboardUC = usecase.NewDashboardUsecase(c.RecommendUC, c.Applications, c.Resources)
	c.ResourceUC = usecase.NewResourceUsecase(c.Resources, c.Catalog, c.Notifier, logger)
	c.ApplicationUC = usecase.NewApplicationUsecase(c.Applications, c.Jobs)

	return c
}

// Migrate applies pending migrations. A migrations directory on disk wins
// over the copy embedded in the binary.
func (c *Container) Migrate(ctx context.Context) (int, error) {
	if c == nil || c.DB == nil {
		return 0, errors.New("nil db")
	}
	r := migration.Runner{Source: migrations.FS, Logger: c.Logger}
	if dir := c.Config.App.MigrationsDir; dir != "" {
		if st, err := os.Stat(dir); err == nil && st.IsDir() {
			r = migration.Runner{Dir: dir, Logger: c.Logger}
		}
	}
	return r.Run(ctx, c.DB.SQLDB())
}

// Seed upserts the bundled catalogue and drops every cached view of it.
func (c *Container) Seed(ctx context.Context) error {
	if c == nil || c.DB == nil {
		return errors.New("nil db")
	}
	seeders, err := seeder.Defaults()
	if err != nil {
		return err
	}
	if err := (seeder.Runner{Seeders: seeders}).Run(ctx, c.DB); err != nil {
		return err
	}
	c.Catalog.InvalidateJobs(ctx)
	c.Catalog.InvalidateResources(ctx)
	c.Notifier.ResourcesUpdated(uuid.Nil)
	return nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	var errs []error
	if c.Cache != nil {
		errs = append(errs, c.Cache.Close())
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	return errors.Join(errs...)
}
