package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"group-exercise-api/internal/dto"
)

const groupDetailTTL = 60 * time.Second

// GroupCache is a read-through cache for group detail projections.
// A nil *GroupCache or a cache without a Redis client degrades to a no-op,
// so callers never have to branch on cache availability.
type GroupCache struct {
	client *redis.Client
	logger *zap.Logger
}

// NewGroupCache creates a new GroupCache. client may be nil when Redis is
// disabled.
func NewGroupCache(client *redis.Client, logger *zap.Logger) *GroupCache {
	return &GroupCache{client: client, logger: logger}
}

func (c *GroupCache) key(groupID uint) string {
	return fmt.Sprintf("group:detail:%d", groupID)
}

// GetDetail returns the cached detail projection for a group, if any
func (c *GroupCache) GetDetail(ctx context.Context, groupID uint) (*dto.GroupResponse, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	data, err := c.client.Get(ctx, c.key(groupID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Debug("group cache read failed", zap.Uint("group_id", groupID), zap.Error(err))
		}
		return nil, false
	}
	var resp dto.GroupResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		c.logger.Debug("group cache entry corrupt, dropping", zap.Uint("group_id", groupID), zap.Error(err))
		c.client.Del(ctx, c.key(groupID))
		return nil, false
	}
	return &resp, true
}

// SetDetail stores the detail projection for a group
func (c *GroupCache) SetDetail(ctx context.Context, groupID uint, resp *dto.GroupResponse) {
	if c == nil || c.client == nil {
		return
	}
	data, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, c.key(groupID), data, groupDetailTTL).Err(); err != nil {
		c.logger.Debug("group cache write failed", zap.Uint("group_id", groupID), zap.Error(err))
	}
}

// Invalidate drops the cached projection after any group-affecting mutation
func (c *GroupCache) Invalidate(ctx context.Context, groupID uint) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, c.key(groupID)).Err(); err != nil {
		c.logger.Debug("group cache invalidation failed", zap.Uint("group_id", groupID), zap.Error(err))
	}
}
