package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/brinquelab/toystore/internal/logger"
)

const (
	KeyDailyStats = "stats:daily"
	KeyTopClients = "stats:top_clients"

	statsTTL = 30 * time.Second
)

// StatsCache guarda respostas prontas dos endpoints de estatística por um
// TTL curto. Com client nil o cache fica desligado e todas as operações
// viram no-ops: o motor de estatísticas continua respondendo direto do banco.
type StatsCache struct {
	client *redis.Client
}

func NewStatsCache(client *redis.Client) *StatsCache {
	return &StatsCache{client: client}
}

// Get preenche v com a resposta cacheada e reporta se houve hit.
func (c *StatsCache) Get(ctx context.Context, key string, v any) bool {
	if c == nil || c.client == nil {
		return false
	}

	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			lg := logger.Get()
			lg.Warn().Err(err).Str("key", key).Msg("stats cache read failed")
		}
		return false
	}

	if err := json.Unmarshal(raw, v); err != nil {
		lg := logger.Get()
		lg.Warn().Err(err).Str("key", key).Msg("stats cache decode failed")
		return false
	}
	return true
}

func (c *StatsCache) Set(ctx context.Context, key string, v any) {
	if c == nil || c.client == nil {
		return
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, key, raw, statsTTL).Err(); err != nil {
		lg := logger.Get()
		lg.Warn().Err(err).Str("key", key).Msg("stats cache write failed")
	}
}

// Invalidate descarta as respostas cacheadas após uma escrita em vendas ou
// clientes.
func (c *StatsCache) Invalidate(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}

	if err := c.client.Del(ctx, KeyDailyStats, KeyTopClients).Err(); err != nil {
		lg := logger.Get()
		lg.Warn().Err(err).Msg("stats cache invalidation failed")
	}
}
