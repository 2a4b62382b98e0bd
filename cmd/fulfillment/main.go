package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/plantycompare/fulfillment/internal/api"
	"github.com/plantycompare/fulfillment/internal/pricing"
	"github.com/plantycompare/fulfillment/internal/util"
)

func main() {
	// Load environment configuration
	config := loadEnvironmentConfig()

	// Parse command line flags
	flags := parseCommandLineFlags(config)

	// Initialize structured logger
	initializeLogger(*flags.debug)

	// Build module options
	pricingOpts := buildPricingOptions(flags)
	apiOpts := buildAPIOptions(flags)

	// Start the service
	slog.Info("Bootstrapping fulfillment webhook with configured modules")
	slog.Debug("Final configuration", "api_addr", *flags.apiAddr, "pricing_url", *flags.pricingURL, "debug", *flags.debug)
	if err := api.Run(pricingOpts, apiOpts); err != nil {
		slog.Error("Fulfillment webhook failed to run", "error", err)
		os.Exit(1)
	}
	slog.Info("Fulfillment webhook exited successfully")
}

// Config holds environment configuration
type Config struct {
	PricingURL string
	APIAddr    string
	Debug      bool
}

// Flags holds command line flag values
type Flags struct {
	pricingURL *string
	apiAddr    *string
	debug      *bool
}

// initializeLogger sets up structured logging at the configured level
func initializeLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}

// loadEnvironmentConfig loads configuration from environment variables and .env file
func loadEnvironmentConfig() Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("failed to load .env file", "error", err)
	} else {
		slog.Debug("successfully loaded .env file")
	}

	config := Config{
		PricingURL: os.Getenv("PRICING_BASE_URL"),
		APIAddr:    os.Getenv("API_ADDR"),
		Debug:      util.ParseBoolEnv("FULFILLMENT_DEBUG", false),
	}

	slog.Debug("environment variables loaded",
		"PRICING_BASE_URL_SET", config.PricingURL != "",
		"API_ADDR", config.APIAddr,
		"FULFILLMENT_DEBUG", config.Debug)

	return config
}

// parseCommandLineFlags parses command line arguments with environment defaults
func parseCommandLineFlags(config Config) Flags {
	flags := Flags{
		pricingURL: flag.String("pricing-url", config.PricingURL, "income-equivalence service base URL (overrides $PRICING_BASE_URL)"),
		apiAddr:    flag.String("api-addr", config.APIAddr, "API server address (overrides $API_ADDR)"),
		debug:      flag.Bool("debug", config.Debug, "enable debug logging (overrides $FULFILLMENT_DEBUG)"),
	}

	flag.Parse()

	return flags
}

// buildPricingOptions constructs pricing client configuration options
func buildPricingOptions(flags Flags) []pricing.Option {
	// One long-lived client shared across all turns; connection pooling only.
	pricingOpts := []pricing.Option{pricing.WithHTTPClient(&http.Client{})}
	if *flags.pricingURL != "" {
		pricingOpts = append(pricingOpts, pricing.WithBaseURL(*flags.pricingURL))
	}
	return pricingOpts
}

// buildAPIOptions constructs API server configuration options
func buildAPIOptions(flags Flags) []api.Option {
	var apiOpts []api.Option
	if *flags.apiAddr != "" {
		apiOpts = append(apiOpts, api.WithAddr(*flags.apiAddr))
	}
	return apiOpts
}
