// Copyright (c) 2026 Linkhive. All rights reserved.
// Author: dev@linkhive.app

package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/linkhive/api/internal/platform/apperr"
	"github.com/linkhive/api/internal/platform/constants"
	"github.com/linkhive/api/internal/platform/sec"
)

// RedisResetTokenRepository implements ResetTokenRepository on Redis.
// Only a SHA-256 digest of the token ever reaches the store, so a Redis
// dump cannot be replayed against the reset endpoint. Expiry is delegated
// to Redis TTLs.
type RedisResetTokenRepository struct {
	client *redis.Client
}

// NewRedisResetTokenRepository creates a reset-token repository on top of
// an existing Redis client.
func NewRedisResetTokenRepository(client *redis.Client) *RedisResetTokenRepository {
	return &RedisResetTokenRepository{client: client}
}

func resetTokenKey(token string) string {
	return constants.RedisPrefixResetToken + sec.HashToken(token)
}

/*
Set stores a reset token digest mapped to the owning userID.

Parameters:
  - context: context.Context
  - token: string
  - userID: int64
  - ttl: time.Duration

Returns:
  - error: Persistence failures
*/
func (repository *RedisResetTokenRepository) Set(context context.Context, token string, userID int64, ttl time.Duration) error {
	value := strconv.FormatInt(userID, 10)
	if err := repository.client.Set(context, resetTokenKey(token), value, ttl).Err(); err != nil {
		return apperr.Internal(fmt.Errorf("store reset token: %w", err))
	}
	return nil
}

/*
Get resolves a raw reset token to its owning userID.

Parameters:
  - context: context.Context
  - token: string

Returns:
  - int64: UserID
  - error: apperr.NotFound for absent/expired tokens, or retrieval failures
*/
func (repository *RedisResetTokenRepository) Get(context context.Context, token string) (int64, error) {
	value, err := repository.client.Get(context, resetTokenKey(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, apperr.NotFound("Reset token")
		}
		return 0, apperr.Internal(fmt.Errorf("read reset token: %w", err))
	}

	userID, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, apperr.Internal(fmt.Errorf("corrupt reset token payload: %w", err))
	}

	return userID, nil
}

/*
Delete removes a used reset token. Deleting an absent key is a no-op.

Parameters:
  - context: context.Context
  - token: string

Returns:
  - error: Persistence failures
*/
func (repository *RedisResetTokenRepository) Delete(context context.Context, token string) error {
	if err := repository.client.Del(context, resetTokenKey(token)).Err(); err != nil {
		return apperr.Internal(fmt.Errorf("delete reset token: %w", err))
	}
	return nil
}
