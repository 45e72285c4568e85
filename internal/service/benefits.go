package service

import "feedrelay/backend/internal/config"

// Benefits are the per-server feature limits. Every server currently gets the
// process-wide values.
type Benefits struct {
	MaxFeeds int  `json:"maxFeeds"`
	Webhooks bool `json:"webhooks"`
}

func BenefitsFromConfig(cfg config.DefaultsConfig) Benefits {
	return Benefits{MaxFeeds: cfg.MaxFeeds, Webhooks: cfg.Webhooks}
}
