package model

import (
	"path/filepath"
)

// ================ Config ================

// AssistantConfig locates the durable stores and optional static content
// files. Required-field sets and the scene graph stay compiled-in; only file
// locations are environment-driven.
type AssistantConfig struct {
	DataDir string `envconfig:"ASSISTANT_DATA_DIR" default:"./data"`

	OrdersFile    string `envconfig:"ASSISTANT_ORDERS_FILE" default:"orders.json"`
	WellnessFile  string `envconfig:"ASSISTANT_WELLNESS_FILE" default:"wellness_log.json"`
	LeadsFile     string `envconfig:"ASSISTANT_LEADS_FILE" default:"leads_log.json"`
	PurchasesFile string `envconfig:"ASSISTANT_PURCHASES_FILE" default:"purchases.json"`

	FAQFile     string `envconfig:"ASSISTANT_FAQ_FILE" default:"faq.json"`
	CatalogFile string `envconfig:"ASSISTANT_CATALOG_FILE" default:"catalog.json"`
	TopicsFile  string `envconfig:"ASSISTANT_TOPICS_FILE" default:"topics.json"`
}

// StorePath resolves a store file name against the data directory.
func (c *AssistantConfig) StorePath(file string) string {
	return filepath.Join(c.DataDir, file)
}

// SessionConfig controls cross-turn session checkpointing.
type SessionConfig struct {
	CheckpointTTL string `envconfig:"SESSION_CHECKPOINT_TTL" default:"15m"`
}
