// Package config loads, normalizes, and validates linkboard configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the LINKBOARD_CATALOG
// environment fallback for the catalog location. The Config type holds every
// knob the CLI needs: catalog path, default filter ranges, and log settings.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths and clear validation errors.
package config
