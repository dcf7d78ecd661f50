package health

import (
	"context"
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/storefront-studio/internal/config"
	repository "github.com/aaravmahajanofficial/storefront-studio/internal/repositories"
	"github.com/hellofresh/health-go/v5"
)

const probeKey = "storefront-health-probe"

// NewHealthHandler reports on the blob store and, for the networked backends,
// pings the server behind it over the repositories' own connection.
func NewHealthHandler(cfg *config.Config, repos *repository.Repositories) (*health.Health, error) {
	store := repos.Store

	checks := []health.Config{
		{
			Name:      "blob-store",
			Timeout:   cfg.Storage.Timeout,
			SkipOnErr: false,
			Check: func(ctx context.Context) error {
				if _, _, err := store.Get(ctx, probeKey); err != nil {
					return fmt.Errorf("blob store read failed: %w", err)
				}
				return nil
			},
		},
	}

	if repos.DB != nil {
		checks = append(checks, health.Config{
			Name:      "database",
			Timeout:   3 * time.Second,
			SkipOnErr: false,
			Check: func(ctx context.Context) error {
				if err := repos.DB.PingContext(ctx); err != nil {
					return fmt.Errorf("postgres ping failed: %w", err)
				}
				return nil
			},
		})
	}

	if repos.Redis != nil {
		checks = append(checks, health.Config{
			Name:      "redis",
			Timeout:   2 * time.Second,
			SkipOnErr: false,
			Check: func(ctx context.Context) error {
				if err := repos.Redis.Ping(ctx).Err(); err != nil {
					return fmt.Errorf("redis ping failed: %w", err)
				}
				return nil
			},
		})
	}

	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    cfg.Otel.ServiceName,
			Version: "1.0.0",
		}),
		health.WithSystemInfo(),
		health.WithChecks(checks...),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}
