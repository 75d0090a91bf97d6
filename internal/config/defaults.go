package config

import "time"

// DefaultTokenSignKey is the fixed, insecure signing secret used when no
// APP_TOKEN_SIGN_KEY is configured. It exists so the server starts out of
// the box for local development; production deployments must override it.
const DefaultTokenSignKey = "your_jwt_secret_key"

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:  DefaultTokenSignKey,
			TokenIssuer:   "linkvault",
			TokenDuration: time.Hour,
		},
		Server: Server{
			HTTPAddress:    ":5000",
			RequestTimeout: 30 * time.Second,
		},
		Storage: Storage{
			DB: DB{
				DSN: "./linkvault.sqlite",
			},
		},
		Enrich: Enrich{
			FetchTimeout:  5 * time.Second,
			SummaryAPIURL: "https://r.jina.ai",
		},
	}
}
