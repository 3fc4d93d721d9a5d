package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	generatorapp "github.com/muhammadheryan/echobody/application/generator"
	plannerapp "github.com/muhammadheryan/echobody/application/planner"
	userapp "github.com/muhammadheryan/echobody/application/user"
	"github.com/muhammadheryan/echobody/cmd/config"
	mongoclient "github.com/muhammadheryan/echobody/cmd/mongo"
	redisclient "github.com/muhammadheryan/echobody/cmd/redis"
	"github.com/muhammadheryan/echobody/constant"
	_ "github.com/muhammadheryan/echobody/docs"
	"github.com/muhammadheryan/echobody/repository/migrate"
	planRepo "github.com/muhammadheryan/echobody/repository/plan"
	redisRepo "github.com/muhammadheryan/echobody/repository/redis"
	userRepo "github.com/muhammadheryan/echobody/repository/user"
	"github.com/muhammadheryan/echobody/thirdparty/openai"
	"github.com/muhammadheryan/echobody/thirdparty/rabbitmq"
	"github.com/muhammadheryan/echobody/transport"
	"github.com/muhammadheryan/echobody/utils/logger"
	validatorx "github.com/muhammadheryan/echobody/utils/validator"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "echobody",
	Short: "Meal and workout planner API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create tables (mysql) or indexes (mongo) for the configured storage",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigrate(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

// @title ECHOBODY API
// @version 1.0
// @description Meal and workout planner API Documentation
// @host localhost:8000
// @BasePath /
func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// storage holds the repositories of the configured backend
type storage struct {
	users    userRepo.UserRepository
	meals    planRepo.PlanRepository
	workouts planRepo.PlanRepository
	sqlDB    *sqlx.DB
	mongoDB  *mongo.Database
	close    func()
}

func setup() (*config.Config, error) {
	// Load configuration from environment variables
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	validatorx.Init()

	// Initialize global logger
	if err := logger.Init(cfg.Environment, cfg.Service, cfg.LogFile); err != nil {
		return nil, err
	}
	return cfg, nil
}

func openStorage(ctx context.Context, cfg *config.Config) (*storage, error) {
	switch cfg.Storage {
	case config.StorageMySQL:
		db, err := sqlx.Connect("mysql", cfg.GetDSN())
		if err != nil {
			return nil, fmt.Errorf("err connect db: %w", err)
		}

		// Set database connection pool settings
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

		return &storage{
			users:    userRepo.NewSQLRepository(db),
			meals:    planRepo.NewSQLRepository(db, constant.PlanKindMeal),
			workouts: planRepo.NewSQLRepository(db, constant.PlanKindWorkout),
			sqlDB:    db,
			close:    func() { _ = db.Close() },
		}, nil
	default:
		client, err := mongoclient.Connect(ctx, cfg)
		if err != nil {
			return nil, err
		}
		db := client.Database(cfg.Mongo.Database)

		return &storage{
			users:    userRepo.NewMongoRepository(db),
			meals:    planRepo.NewMongoRepository(db, constant.PlanKindMeal),
			workouts: planRepo.NewMongoRepository(db, constant.PlanKindWorkout),
			mongoDB:  db,
			close:    func() { _ = client.Disconnect(context.Background()) },
		}, nil
	}
}

func serve(ctx context.Context) error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment), zap.String("storage", cfg.Storage))

	store, err := openStorage(ctx, cfg)
	if err != nil {
		logger.Fatal("err open storage", zap.Error(err))
	}
	defer store.close()

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	var publisher rabbitmq.PlanPublisher
	if cfg.RabbitMQ.Host != "" {
		p, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
		if err != nil {
			logger.Fatal("err connect rabbitmq", zap.Error(err))
		}
		defer p.Close()
		publisher = p
	}

	// Initialize repositories
	RedisRepo := redisRepo.NewRepository()

	// Initialize application layers
	GeneratorApp := generatorapp.NewGeneratorApp(cfg, openai.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL))
	PlannerApp := plannerapp.NewPlannerApp(store.meals, store.workouts, publisher)
	UserApp := userapp.NewUserApp(cfg, store.users, RedisRepo)

	httpTransport := transport.NewTransport(GeneratorApp, PlannerApp, UserApp, cfg.Metrics.APIKey)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	if err := server.ListenAndServe(); err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
	return nil
}

func runMigrate(ctx context.Context) error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	defer logger.Close()

	store, err := openStorage(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.close()

	if store.sqlDB != nil {
		err = migrate.MySQL(ctx, store.sqlDB)
	} else {
		err = migrate.Mongo(ctx, store.mongoDB)
	}
	if err != nil {
		logger.Error("[Migrate] err migrate", zap.String("storage", cfg.Storage), zap.String("error", err.Error()))
		return err
	}

	logger.Info("Migration complete", zap.String("storage", cfg.Storage))
	return nil
}
