package app

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ghuser/orderdesk/pkg/cache"
	"github.com/ghuser/orderdesk/pkg/config"
	"github.com/ghuser/orderdesk/pkg/logger"
)

func TestItemCache_NilWithoutRedis(t *testing.T) {
	a := &Application{Config: &config.Config{ItemCacheTTL: time.Hour}}
	if a.ItemCache() != nil {
		t.Fatal("expected nil cache without redis")
	}
}

func TestItemCache_WithRedis(t *testing.T) {
	a := &Application{Config: &config.Config{ItemCacheTTL: time.Hour}, Redis: cache.WrapClient(nil)}
	if a.ItemCache() == nil {
		t.Fatal("expected a cache when redis is wired")
	}
}

func TestNumberingPolicy(t *testing.T) {
	var buf bytes.Buffer
	a := &Application{
		Config: &config.Config{NumberingMaxRetries: 4},
		Logger: logger.NewWithWriter(&buf, "info"),
	}

	p := a.NumberingPolicy("order")
	if p.MaxRetries != 4 {
		t.Fatalf("MaxRetries: got %d", p.MaxRetries)
	}
	p.OnRetry(1, errors.New("duplicate key"))

	out := buf.String()
	if !strings.Contains(out, `"sequence":"order"`) || !strings.Contains(out, "duplicate key") {
		t.Fatalf("retry must be logged with sequence and cause, got %s", out)
	}
}
