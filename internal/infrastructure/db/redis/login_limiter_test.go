package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func testLimiter(t *testing.T, maxAttempts int, window time.Duration) (*LoginLimiter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewLoginLimiter(client, maxAttempts, window), mr
}

func TestLoginLimiter_FreshIdentifierNotExhausted(t *testing.T) {
	limiter, _ := testLimiter(t, 3, time.Minute)

	blocked, err := limiter.Exhausted(context.Background(), "alice@example.com")
	if err != nil {
		t.Fatalf("Exhausted: %v", err)
	}
	if blocked {
		t.Fatalf("fresh identifier must not be blocked")
	}
}

func TestLoginLimiter_BlocksAfterBudgetSpent(t *testing.T) {
	limiter, _ := testLimiter(t, 3, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := limiter.RecordFailure(ctx, "alice@example.com"); err != nil {
			t.Fatalf("RecordFailure: %v", err)
		}
	}

	blocked, err := limiter.Exhausted(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("Exhausted: %v", err)
	}
	if !blocked {
		t.Fatalf("expected identifier to be blocked after 3 failures")
	}

	// Another account keeps its own budget.
	blocked, err = limiter.Exhausted(ctx, "bob@example.com")
	if err != nil {
		t.Fatalf("Exhausted: %v", err)
	}
	if blocked {
		t.Fatalf("unrelated identifier must not be blocked")
	}
}

func TestLoginLimiter_ResetClearsBudget(t *testing.T) {
	limiter, _ := testLimiter(t, 2, time.Minute)
	ctx := context.Background()

	_ = limiter.RecordFailure(ctx, "alice@example.com")
	_ = limiter.RecordFailure(ctx, "alice@example.com")
	if err := limiter.Reset(ctx, "alice@example.com"); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	blocked, err := limiter.Exhausted(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("Exhausted: %v", err)
	}
	if blocked {
		t.Fatalf("reset identifier must not be blocked")
	}
}

func TestLoginLimiter_WindowExpires(t *testing.T) {
	limiter, mr := testLimiter(t, 1, time.Minute)
	ctx := context.Background()

	if err := limiter.RecordFailure(ctx, "alice@example.com"); err != nil {
		t.Fatalf("RecordFailure: %v", err)
	}
	blocked, _ := limiter.Exhausted(ctx, "alice@example.com")
	if !blocked {
		t.Fatalf("expected block inside window")
	}

	mr.FastForward(2 * time.Minute)

	blocked, err := limiter.Exhausted(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("Exhausted: %v", err)
	}
	if blocked {
		t.Fatalf("budget must recover after the window elapses")
	}
}
