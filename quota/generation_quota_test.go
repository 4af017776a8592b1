package quota

import (
	"context"
	"testing"
	"time"

	"content-planner/config"
)

func limiterFor(perMinute, perDay int) *GenerationQuotaLimiter {
	cfg := config.AppConfig{}
	cfg.GenerationQuota.RequestsPerMinute = perMinute
	cfg.GenerationQuota.RequestsPerDay = perDay
	return NewGenerationQuotaLimiterFromConfig(cfg)
}

func TestDailyLimitExhaustion(t *testing.T) {
	l := limiterFor(0, 2)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		ok, err := l.WaitAndReserve(ctx)
		if err != nil || !ok {
			t.Fatalf("reservation %d should succeed, got ok=%v err=%v", i, ok, err)
		}
	}

	ok, err := l.WaitAndReserve(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("third reservation should be rejected by the daily limit")
	}
}

func TestZeroLimitsDisableThrottling(t *testing.T) {
	l := limiterFor(0, 0)
	ctx := context.Background()
	for i := 0; i < 50; i++ {
		ok, err := l.WaitAndReserve(ctx)
		if err != nil || !ok {
			t.Fatalf("unlimited limiter rejected reservation %d: ok=%v err=%v", i, ok, err)
		}
	}
}

func TestMinuteIntervalSpacing(t *testing.T) {
	// 600/min means a 100ms interval, short enough to observe in a test.
	l := limiterFor(600, 0)
	ctx := context.Background()

	if ok, err := l.WaitAndReserve(ctx); !ok || err != nil {
		t.Fatalf("first reservation failed: ok=%v err=%v", ok, err)
	}

	begin := time.Now()
	if ok, err := l.WaitAndReserve(ctx); !ok || err != nil {
		t.Fatalf("second reservation failed: ok=%v err=%v", ok, err)
	}
	if elapsed := time.Since(begin); elapsed < 50*time.Millisecond {
		t.Fatalf("second reservation returned after %v, expected interval spacing", elapsed)
	}
}

func TestContextCancelledWhileWaiting(t *testing.T) {
	// 1/min forces a long wait after the first reservation.
	l := limiterFor(1, 0)

	if ok, err := l.WaitAndReserve(context.Background()); !ok || err != nil {
		t.Fatalf("first reservation failed: ok=%v err=%v", ok, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	ok, err := l.WaitAndReserve(ctx)
	if ok {
		t.Fatal("reservation should not succeed while interval has not elapsed")
	}
	if err != context.DeadlineExceeded {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}
