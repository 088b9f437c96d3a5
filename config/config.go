package config

import (
	"fmt"

	"github.com/kbukum/postclient/logger"
	"github.com/kbukum/postclient/posts"
	"github.com/kbukum/postclient/validation"
)

// AppConfig is the full configuration for the postctl binary.
type AppConfig struct {
	Name        string        `yaml:"name" mapstructure:"name"`
	Environment string        `yaml:"environment" mapstructure:"environment" validate:"omitempty,oneof=development staging production"`
	Logging     logger.Config `yaml:"logging" mapstructure:"logging"`
	Posts       posts.Config  `yaml:"posts" mapstructure:"posts"`
}

// ApplyDefaults applies default values to all sections.
func (c *AppConfig) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "postctl"
	}
	if c.Environment == "" {
		c.Environment = "development"
	}
	c.Logging.ApplyDefaults()
	c.Posts.ApplyDefaults()
}

// Validate validates all sections.
func (c *AppConfig) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}
	return nil
}
