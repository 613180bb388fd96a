package app

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/guestlistapp/guestlist-api/internal/api"
	"github.com/guestlistapp/guestlist-api/internal/config"
	"github.com/guestlistapp/guestlist-api/internal/db"
	"github.com/guestlistapp/guestlist-api/internal/logger"
	"github.com/guestlistapp/guestlist-api/internal/storage"
)

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	if conf.API.JWTSigningKey == config.DefaultJWTSigningKey {
		zap.L().Warn("JWT signing key is unset, using the insecure built-in default")
	}

	dbURL := os.Getenv("DATABASE_URL")
	var postgresDB *gorm.DB
	if dbURL != "" {
		postgresDB, err = db.OpenPostgresWithURL(dbURL)
	} else {
		postgresDB, err = db.OpenPostgres(conf.Postgres)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	bucket, err := storage.NewBucketClient(conf.Storage)
	if err != nil {
		return fmt.Errorf("failed to initialize storage client -> %w", err)
	}

	s := api.NewServer(conf, postgresDB, bucket)

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}
