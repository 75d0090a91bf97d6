package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. The defaults source
// guarantees most fields are non-zero; validation guards against explicit
// empty overrides.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Enrich.FetchTimeout <= 0 || cfg.Enrich.SummaryAPIURL == "" {
		return ErrInvalidEnrichConfigs
	}

	return nil
}
