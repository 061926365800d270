package service

import (
	"context"
	"errors"
	"fmt"

	"campus/consts"
	"campus/database"
	"campus/dto"
	"campus/repository"

	"gorm.io/gorm"
)

// GetConfig returns one setting, admin view
func GetConfig(ctx context.Context, key string) (*dto.SystemConfigResp, error) {
	if err := dto.ValidateConfigKey(key); err != nil {
		return nil, fmt.Errorf("%w: %v", consts.ErrValidation, err)
	}

	config, err := repository.GetConfigByKey(ctx, database.DB, key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: config '%s' not found", consts.ErrNotFound, key)
		}
		return nil, err
	}
	return dto.NewSystemConfigResp(config), nil
}

// GetPublicConfig returns one setting if it is marked public. Private keys
// read as not-found so their existence is not disclosed.
func GetPublicConfig(ctx context.Context, key string) (*dto.PublicConfigResp, error) {
	if err := dto.ValidateConfigKey(key); err != nil {
		return nil, fmt.Errorf("%w: %v", consts.ErrValidation, err)
	}

	config, err := repository.GetConfigByKey(ctx, database.DB, key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: config '%s' not found", consts.ErrNotFound, key)
		}
		return nil, err
	}
	if !config.IsPublic {
		return nil, fmt.Errorf("%w: config '%s' not found", consts.ErrNotFound, key)
	}
	return dto.NewPublicConfigResp(config), nil
}

// UpsertConfig creates or updates a setting and refreshes its cache entry
func UpsertConfig(ctx context.Context, key string, req *dto.UpsertConfigReq) (*dto.SystemConfigResp, error) {
	if err := dto.ValidateConfigKey(key); err != nil {
		return nil, fmt.Errorf("%w: %v", consts.ErrValidation, err)
	}

	config := &database.SystemConfig{
		Key:         key,
		Value:       req.Value,
		Description: req.Description,
	}
	if req.IsPublic != nil {
		config.IsPublic = *req.IsPublic
	}

	if err := repository.UpsertConfig(ctx, database.DB, config); err != nil {
		return nil, err
	}
	return dto.NewSystemConfigResp(config), nil
}

// ListConfigs returns every setting, admin view
func ListConfigs() ([]dto.SystemConfigResp, error) {
	configs, err := repository.ListConfigs(database.DB, false)
	if err != nil {
		return nil, err
	}

	items := make([]dto.SystemConfigResp, 0, len(configs))
	for i := range configs {
		items = append(items, *dto.NewSystemConfigResp(&configs[i]))
	}
	return items, nil
}

// ListPublicConfigs returns the public settings for unauthenticated clients
func ListPublicConfigs() ([]dto.PublicConfigResp, error) {
	configs, err := repository.ListConfigs(database.DB, true)
	if err != nil {
		return nil, err
	}

	items := make([]dto.PublicConfigResp, 0, len(configs))
	for i := range configs {
		items = append(items, *dto.NewPublicConfigResp(&configs[i]))
	}
	return items, nil
}

// DeleteConfig soft-deletes a setting
func DeleteConfig(ctx context.Context, key string) error {
	if err := dto.ValidateConfigKey(key); err != nil {
		return fmt.Errorf("%w: %v", consts.ErrValidation, err)
	}

	if err := repository.SoftDeleteConfig(ctx, database.DB, key); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: config '%s' not found", consts.ErrNotFound, key)
		}
		return err
	}
	return nil
}
