package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"campus/client"
	"campus/database"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	configCachePrefix = "config:%s"
	configCacheTTL    = 5 * time.Minute
)

// GetConfigByKey reads a config row through the Redis cache. Cache failures
// fall back to the database so a Redis outage degrades rather than breaks.
func GetConfigByKey(ctx context.Context, db *gorm.DB, key string) (*database.SystemConfig, error) {
	cacheKey := fmt.Sprintf(configCachePrefix, key)

	cached, err := client.GetRedisClient().Get(ctx, cacheKey).Result()
	if err == nil && cached != "" {
		var config database.SystemConfig
		if unmarshalErr := unmarshalConfig(cached, &config); unmarshalErr == nil {
			return &config, nil
		}
	} else if err != nil && err != redis.Nil {
		logrus.Warnf("Config cache read failed for %s: %v", key, err)
	}

	var config database.SystemConfig
	if err := db.Scopes(database.NotDeleted).
		Where("`key` = ?", key).
		First(&config).Error; err != nil {
		return nil, fmt.Errorf("failed to get config '%s': %w", key, err)
	}

	if payload, marshalErr := marshalConfig(&config); marshalErr == nil {
		if cacheErr := client.GetRedisClient().Set(ctx, cacheKey, payload, configCacheTTL).Err(); cacheErr != nil {
			logrus.Warnf("Config cache write failed for %s: %v", key, cacheErr)
		}
	}

	return &config, nil
}

// UpsertConfig writes a config row and invalidates its cache entry
func UpsertConfig(ctx context.Context, db *gorm.DB, config *database.SystemConfig) error {
	var existing database.SystemConfig
	err := db.Where("`key` = ?", config.Key).First(&existing).Error
	switch {
	case err == nil:
		existing.Value = config.Value
		existing.Description = config.Description
		existing.IsPublic = config.IsPublic
		existing.IsDeleted = false
		if err := db.Save(&existing).Error; err != nil {
			return fmt.Errorf("failed to update config '%s': %w", config.Key, err)
		}
		*config = existing
	case err == gorm.ErrRecordNotFound:
		if err := db.Create(config).Error; err != nil {
			return fmt.Errorf("failed to create config '%s': %w", config.Key, err)
		}
	default:
		return fmt.Errorf("failed to upsert config '%s': %w", config.Key, err)
	}

	InvalidateConfigCache(ctx, config.Key)
	return nil
}

// ListConfigs returns all live config rows, optionally public-only
func ListConfigs(db *gorm.DB, publicOnly bool) ([]database.SystemConfig, error) {
	query := db.Scopes(database.NotDeleted)
	if publicOnly {
		query = query.Where("is_public = ?", true)
	}

	var configs []database.SystemConfig
	if err := query.Order("`key`").Find(&configs).Error; err != nil {
		return nil, fmt.Errorf("failed to list configs: %w", err)
	}
	return configs, nil
}

// SoftDeleteConfig marks a config row deleted and drops its cache entry
func SoftDeleteConfig(ctx context.Context, db *gorm.DB, key string) error {
	result := db.Model(&database.SystemConfig{}).
		Scopes(database.NotDeleted).
		Where("`key` = ?", key).
		Update("is_deleted", true)
	if result.Error != nil {
		return fmt.Errorf("failed to delete config '%s': %w", key, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to delete config '%s': %w", key, gorm.ErrRecordNotFound)
	}

	InvalidateConfigCache(ctx, key)
	return nil
}

func marshalConfig(config *database.SystemConfig) (string, error) {
	payload, err := json.Marshal(config)
	if err != nil {
		return "", fmt.Errorf("failed to marshal config: %w", err)
	}
	return string(payload), nil
}

func unmarshalConfig(payload string, config *database.SystemConfig) error {
	if err := json.Unmarshal([]byte(payload), config); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return nil
}

// InvalidateConfigCache drops one key's cache entry. Failures are logged
// only; the TTL bounds staleness.
func InvalidateConfigCache(ctx context.Context, key string) {
	cacheKey := fmt.Sprintf(configCachePrefix, key)
	if err := client.GetRedisClient().Del(ctx, cacheKey).Err(); err != nil {
		logrus.Warnf("Config cache invalidation failed for %s: %v", key, err)
	}
}
