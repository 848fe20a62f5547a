package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateBrowse(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateBrowse() error {
	if c.Browse.DurationMin > c.Browse.DurationMax {
		return fmt.Errorf("browse.duration_min (%d) must not exceed browse.duration_max (%d)",
			c.Browse.DurationMin, c.Browse.DurationMax)
	}
	if c.Browse.RatingMin > c.Browse.RatingMax {
		return fmt.Errorf("browse.rating_min (%g) must not exceed browse.rating_max (%g)",
			c.Browse.RatingMin, c.Browse.RatingMax)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
		return nil
	default:
		return errors.New("logging.format must be \"console\" or \"json\"")
	}
}
