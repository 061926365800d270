package dto

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"campus/database"
)

// Config keys are dotted lowercase segments, e.g. "enrollment.max_per_student".
var configKeyPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*(\.[a-z][a-z0-9_]*)*$`)

type UpsertConfigReq struct {
	Value       string `json:"value" binding:"required"`
	Description string `json:"description"`
	IsPublic    *bool  `json:"isPublic,omitempty"`
}

func ValidateConfigKey(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("config key cannot be empty")
	}
	if !configKeyPattern.MatchString(key) {
		return fmt.Errorf("invalid config key: %s", key)
	}
	return nil
}

type SystemConfigResp struct {
	Key         string    `json:"key"`
	Value       string    `json:"value"`
	Description string    `json:"description,omitempty"`
	IsPublic    bool      `json:"isPublic"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func NewSystemConfigResp(c *database.SystemConfig) *SystemConfigResp {
	return &SystemConfigResp{
		Key:         c.Key,
		Value:       c.Value,
		Description: c.Description,
		IsPublic:    c.IsPublic,
		UpdatedAt:   c.UpdatedAt,
	}
}

// PublicConfigResp withholds description and visibility metadata.
type PublicConfigResp struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func NewPublicConfigResp(c *database.SystemConfig) *PublicConfigResp {
	return &PublicConfigResp{Key: c.Key, Value: c.Value}
}
