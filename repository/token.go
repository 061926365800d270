package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"campus/client"
)

const (
	tokenBlacklistPrefix = "blacklist:token:%s"
	userBlacklistPrefix  = "blacklist:user:%d"
)

// AddTokenToBlacklist revokes a token id until its natural expiry
func AddTokenToBlacklist(ctx context.Context, tokenID string, expiresAt time.Time, metaData map[string]any) error {
	key := fmt.Sprintf(tokenBlacklistPrefix, tokenID)

	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}

	metaDataJSON, err := json.Marshal(metaData)
	if err != nil {
		return fmt.Errorf("failed to marshal metadata to JSON: %v", err)
	}

	if err = client.GetRedisClient().Set(ctx, key, string(metaDataJSON), ttl).Err(); err != nil {
		return fmt.Errorf("failed to blacklist token in Redis: %v", err)
	}

	return nil
}

// AddUserTokensToBlacklist revokes every outstanding token of a user, used
// when an account is deactivated or its password reset
func AddUserTokensToBlacklist(ctx context.Context, userID int, duration time.Duration, metaData map[string]any) error {
	key := fmt.Sprintf(userBlacklistPrefix, userID)

	metaDataJSON, err := json.Marshal(metaData)
	if err != nil {
		return fmt.Errorf("failed to marshal metadata to JSON: %v", err)
	}

	if err := client.GetRedisClient().Set(ctx, key, string(metaDataJSON), duration).Err(); err != nil {
		return fmt.Errorf("failed to blacklist user tokens in Redis: %v", err)
	}

	return nil
}

// IsTokenBlacklisted checks if a token id has been revoked
func IsTokenBlacklisted(ctx context.Context, tokenID string) (bool, error) {
	key := fmt.Sprintf(tokenBlacklistPrefix, tokenID)

	result, err := client.GetRedisClient().Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check token blacklist in Redis: %v", err)
	}

	return result > 0, nil
}

// IsUserBlacklisted checks if all of a user's tokens have been revoked
func IsUserBlacklisted(ctx context.Context, userID int) (bool, error) {
	key := fmt.Sprintf(userBlacklistPrefix, userID)

	result, err := client.GetRedisClient().Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check user blacklist in Redis: %v", err)
	}

	return result > 0, nil
}

// GetBlacklistedTokensCount scans the blacklist for its current size
func GetBlacklistedTokensCount(ctx context.Context) (int64, error) {
	var cursor uint64
	var count int64

	for {
		keys, nextCursor, err := client.GetRedisClient().Scan(ctx, cursor, "blacklist:token:*", 100).Result()
		if err != nil {
			return 0, fmt.Errorf("failed to scan blacklisted tokens: %v", err)
		}

		count += int64(len(keys))
		cursor = nextCursor

		if cursor == 0 {
			break
		}
	}

	return count, nil
}
