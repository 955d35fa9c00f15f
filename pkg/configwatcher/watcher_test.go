package configwatcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"recon_backend/internal/config"

	"github.com/stretchr/testify/require"
)

const baseConfig = `
database:
  driver: sqlite
jwt:
  secret: dev
storage:
  type: minio
rate_limit:
  max_requests: %d
`

func TestWatchConfigReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte(fmt.Sprintf(baseConfig, 10)), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan *config.Config, 1)
	done := make(chan error, 1)
	go func() {
		done <- WatchConfig(ctx, file, func(cfg *config.Config) {
			select {
			case reloaded <- cfg:
			default:
			}
		})
	}()

	// 等待 watcher 就绪
	time.Sleep(200 * time.Millisecond)
	require.NoError(t, os.WriteFile(file, []byte(fmt.Sprintf(baseConfig, 42)), 0o644))

	select {
	case cfg := <-reloaded:
		require.Equal(t, 42, cfg.RateLimit.MaxRequests)
	case <-time.After(5 * time.Second):
		t.Fatal("config was not reloaded")
	}

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}
}
