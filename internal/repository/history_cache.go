package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"minichat-backend/internal/models"
)

// HistoryCache keeps the recent turns of hot conversations in redis so the
// chat endpoint can build its history window without a messages-table scan.
// Cache misses fall back to the database; entries expire on their own.
type HistoryCache struct {
	redis *redis.Client
	limit int
	ttl   time.Duration
}

func NewHistoryCache(redisClient *redis.Client, limit int, ttl time.Duration) *HistoryCache {
	return &HistoryCache{redis: redisClient, limit: limit, ttl: ttl}
}

func historyKey(conversationID uuid.UUID) string {
	return "history:" + conversationID.String()
}

// Get returns the cached turns in order, and whether the cache held any.
func (c *HistoryCache) Get(ctx context.Context, conversationID uuid.UUID) ([]models.ChatMessage, bool) {
	entries, err := c.redis.LRange(ctx, historyKey(conversationID), 0, -1).Result()
	if err != nil || len(entries) == 0 {
		return nil, false
	}

	turns := make([]models.ChatMessage, 0, len(entries))
	for _, entry := range entries {
		var turn models.ChatMessage
		if err := json.Unmarshal([]byte(entry), &turn); err != nil {
			// Corrupted entry; drop the whole list and fall back to the DB.
			c.Invalidate(ctx, conversationID)
			return nil, false
		}
		turns = append(turns, turn)
	}
	return turns, true
}

// Prime replaces the cached list with turns loaded from the database.
func (c *HistoryCache) Prime(ctx context.Context, conversationID uuid.UUID, turns []models.ChatMessage) {
	key := historyKey(conversationID)

	pipe := c.redis.TxPipeline()
	pipe.Del(ctx, key)
	for _, turn := range trimTurns(turns, c.limit) {
		data, err := json.Marshal(turn)
		if err != nil {
			return
		}
		pipe.RPush(ctx, key, string(data))
	}
	pipe.Expire(ctx, key, c.ttl)
	pipe.Exec(ctx)
}

// Append adds one turn to the cached list, keeping it bounded.
func (c *HistoryCache) Append(ctx context.Context, conversationID uuid.UUID, turn models.ChatMessage) {
	data, err := json.Marshal(turn)
	if err != nil {
		return
	}

	key := historyKey(conversationID)
	pipe := c.redis.TxPipeline()
	pipe.RPush(ctx, key, string(data))
	pipe.LTrim(ctx, key, int64(-c.limit), -1)
	pipe.Expire(ctx, key, c.ttl)
	pipe.Exec(ctx)
}

func (c *HistoryCache) Invalidate(ctx context.Context, conversationID uuid.UUID) {
	c.redis.Del(ctx, historyKey(conversationID))
}

func trimTurns(turns []models.ChatMessage, limit int) []models.ChatMessage {
	if len(turns) > limit {
		return turns[len(turns)-limit:]
	}
	return turns
}
