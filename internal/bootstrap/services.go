package bootstrap

import (
	"context"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/projeto-charter/charter-backend/config"
	"github.com/projeto-charter/charter-backend/internal/charters/events"
	"github.com/projeto-charter/charter-backend/internal/charters/repository"
	"github.com/projeto-charter/charter-backend/internal/charters/service"
)

// Services is everything a binary needs to serve charters.
type Services struct {
	DB       *Database
	Redis    *redis.Client
	Repo     *repository.CharterRepository
	Charters *service.CharterService
}

// NewServices opens the store, migrates it when configured and wires the
// charter service with its event publisher.
func NewServices(ctx context.Context, cfg *config.Config) (*Services, error) {
	db, err := OpenDB(ctx, DBOptionsFromConfig(cfg))
	if err != nil {
		return nil, err
	}

	repo := repository.NewCharterRepository(db.Gorm)
	if cfg.Database.AutoMigrate {
		if err := repo.Migrate(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}

	s := &Services{DB: db, Repo: repo}

	var publisher service.Publisher = events.NoopPublisher{}
	if cfg.Redis.Addr != "" {
		s.Redis = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := s.Redis.Ping(ctx).Err(); err != nil {
			// events are best effort; keep the client so it can reconnect
			log.Printf("[warn] redis ping failed addr=%s error=%v", cfg.Redis.Addr, err)
		}
		publisher = events.NewRedisPublisher(s.Redis, cfg.Redis.Channel)
	}

	s.Charters = service.NewCharterService(repo, publisher)
	return s, nil
}

func (s *Services) Close() {
	if s == nil {
		return
	}
	if s.Redis != nil {
		_ = s.Redis.Close()
	}
	s.DB.Close()
}
