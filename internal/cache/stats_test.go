package cache

import (
	"context"
	"testing"
)

// Sem Redis configurado o cache vira no-op; nada aqui pode entrar em pânico.
func TestStatsCache_NilSafe(t *testing.T) {
	ctx := context.Background()

	var c *StatsCache

	var out []string
	if c.Get(ctx, KeyDailyStats, &out) {
		t.Fatalf("nil cache should never hit")
	}
	c.Set(ctx, KeyDailyStats, []string{"x"})
	c.Invalidate(ctx)

	disabled := NewStatsCache(nil)
	if disabled.Get(ctx, KeyTopClients, &out) {
		t.Fatalf("disabled cache should never hit")
	}
	disabled.Set(ctx, KeyTopClients, "x")
	disabled.Invalidate(ctx)
}
