package config

import (
	"fmt"
	"os"
	"time"
)

// ProviderConfig carries the immutable outbound settings for one insurer API.
// Built once at start-up and never mutated afterwards.
type ProviderConfig struct {
	Tag       string
	BaseURL   string
	Username  string
	Password  string
	Timeout   time.Duration
	TLSVerify bool
	KeepAlive bool

	// Bajaj product constants; empty for providers that don't need them.
	MasterPolicyNo string
	ProductCode    string
}

// Config bundles everything cmd/api needs to wire the service.
type Config struct {
	Addr        string
	DatabaseURL string
	APIToken    string
	JWTSecret   string
	Ayush       ProviderConfig
	Bajaj       ProviderConfig
}

// Load reads configuration from the environment. DATABASE_URL and API_TOKEN
// are mandatory; provider endpoints default to the sandbox/production URLs the
// insurers publish.
func Load() (Config, error) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return Config{}, fmt.Errorf("config: DATABASE_URL is required")
	}
	apiToken := os.Getenv("API_TOKEN")
	if apiToken == "" {
		return Config{}, fmt.Errorf("config: API_TOKEN is required")
	}

	cfg := Config{
		Addr:        envOr("ADDR", ":8080"),
		DatabaseURL: dbURL,
		APIToken:    apiToken,
		JWTSecret:   envOr("JWT_SECRET", ""),
		Ayush: ProviderConfig{
			Tag:      "ayush",
			BaseURL:  envOr("AYUSH_BASE_URL", "https://sandbox.ayushpay.com"),
			Username: os.Getenv("AYUSH_USERNAME"),
			Password: os.Getenv("AYUSH_PASSWORD"),
			// AyushPay drops sockets on reused connections, so keep-alive
			// stays off. This is a behavioural contract, not tuning.
			Timeout:   30 * time.Second,
			TLSVerify: false,
			KeepAlive: false,
		},
		Bajaj: ProviderConfig{
			Tag:            "bajaj",
			BaseURL:        envOr("BAJAJ_URL", "https://htsoapapi.bagicpp.bajajallianz.com/BjazTravelWebServices/SaveMasterplan"),
			Username:       os.Getenv("BAJAJ_USERID"),
			Password:       os.Getenv("BAJAJ_PASSWORD"),
			MasterPolicyNo: envOr("BAJAJ_MASTER_POLICY_NO", "12-9911-0006640459-00"),
			ProductCode:    envOr("BAJAJ_PRODUCT_CODE", "9911"),
			Timeout:        45 * time.Second,
			TLSVerify:      false,
			KeepAlive:      false,
		},
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
