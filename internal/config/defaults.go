package config

const (
	defaultCatalogPath = "~/.local/share/linkboard/links.json"
	defaultDurationMin = 0
	defaultDurationMax = 300
	defaultRatingMin   = 1
	defaultRatingMax   = 10
	defaultLogFormat   = "console"
	defaultLogLevel    = "info"
)

// EnvCatalogPath overrides the configured catalog path when set.
const EnvCatalogPath = "LINKBOARD_CATALOG"

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Catalog: Catalog{
			Path: defaultCatalogPath,
		},
		Browse: Browse{
			DurationMin: defaultDurationMin,
			DurationMax: defaultDurationMax,
			RatingMin:   defaultRatingMin,
			RatingMax:   defaultRatingMax,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
