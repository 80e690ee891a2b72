package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/gridgame/internal/apperror"
	"github.com/rocketscienceinc/gridgame/internal/entity"
)

const (
	statsKeyPrefix = "stats:"

	fieldGames     = "games"
	fieldDraws     = "draws"
	fieldWinPrefix = "wins:"
)

// StatsRepository keeps outcome tallies per variant. Individual games are not stored.
type StatsRepository interface {
	RecordResult(ctx context.Context, result entity.Result) error
	GetStats(ctx context.Context, variant string) (*entity.Stats, error)
}

type dbStats struct {
	client *redis.Client
}

func NewStatsRepository(client *redis.Client) StatsRepository {
	return &dbStats{
		client: client,
	}
}

func (that *dbStats) RecordResult(ctx context.Context, result entity.Result) error {
	statsKey := statsKeyPrefix + result.Variant

	pipe := that.client.TxPipeline()
	pipe.HIncrBy(ctx, statsKey, fieldGames, 1)
	if result.IsDraw() {
		pipe.HIncrBy(ctx, statsKey, fieldDraws, 1)
	} else {
		pipe.HIncrBy(ctx, statsKey, fieldWinPrefix+string(result.Winner), 1)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record result: %w", err)
	}

	return nil
}

func (that *dbStats) GetStats(ctx context.Context, variant string) (*entity.Stats, error) {
	statsKey := statsKeyPrefix + variant

	response, err := that.client.HGetAll(ctx, statsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	if len(response) == 0 {
		return nil, fmt.Errorf("%w: %s", apperror.ErrStatsNotFound, variant)
	}

	stats := &entity.Stats{
		Variant: variant,
		Wins:    make(map[entity.Symbol]int64),
	}

	for field, raw := range response {
		value, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse stats field %s: %w", field, err)
		}

		switch {
		case field == fieldGames:
			stats.Games = value
		case field == fieldDraws:
			stats.Draws = value
		case strings.HasPrefix(field, fieldWinPrefix):
			stats.Wins[entity.Symbol(strings.TrimPrefix(field, fieldWinPrefix))] = value
		}
	}

	return stats, nil
}
