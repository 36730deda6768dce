// Package configpkg provides parsing functionality for environment variables.
package configpkg

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Feature names that can be toggled by configuration.
const (
	FeatureAI        = "AI"
	FeatureGames     = "GAMES"
	FeaturePayment   = "PAYMENT"
	FeatureInsurance = "INSURANCE"
	FeatureSearch    = "SEARCH"
)

// Config stores all configuration of the application.
//
// The values are read by viper from a config file or environment variables.
type Config struct {
	ServerAddress          string        `mapstructure:"SERVER_ADDRESS"`
	Environment            string        `mapstructure:"GO_ENV"`
	TokenType              string        `mapstructure:"TOKEN_TYPE"`
	TokenSymmetricKey      string        `mapstructure:"TOKEN_SYMMETRIC_KEY"`
	AccessTokenDuration    time.Duration `mapstructure:"ACCESS_TOKEN_DURATION"`
	PasswordHasher         string        `mapstructure:"PASSWORD_HASHER"`
	BcryptCost             int           `mapstructure:"BCRYPT_COST"`
	AppName                string        `mapstructure:"APP_NAME"`
	AppVersion             string        `mapstructure:"APP_VERSION"`
	AppEngine              string        `mapstructure:"APP_ENGINE"`
	Online                 bool          `mapstructure:"ONLINE"`
	FeatureAI              bool          `mapstructure:"FEATURE_AI"`
	FeatureGames           bool          `mapstructure:"FEATURE_GAMES"`
	FeaturePayment         bool          `mapstructure:"FEATURE_PAYMENT"`
	FeatureInsurance       bool          `mapstructure:"FEATURE_INSURANCE"`
	FeatureSearch          bool          `mapstructure:"FEATURE_SEARCH"`
	InternetGBPrice        string        `mapstructure:"INTERNET_GB_PRICE"`
	SearchIndex            string        `mapstructure:"SEARCH_INDEX"`
	RateLimitRPS           float64       `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst         int           `mapstructure:"RATE_LIMIT_BURST"`
	LimiterCleanupSchedule string        `mapstructure:"LIMITER_CLEANUP_SCHEDULE"`
	ShutdownTimeout        time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
}

// Load reads configuration from file or environment variables.
func Load(path string) (Config, error) {
	var c Config

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.AutomaticEnv()

	err := v.ReadInConfig()
	if err != nil {
		return c, err
	}

	err = v.Unmarshal(&c)
	if err != nil {
		return c, err
	}

	return c, nil
}

// Features returns the feature flags keyed by feature name.
func (c Config) Features() map[string]bool {
	return map[string]bool{
		FeatureAI:        c.FeatureAI,
		FeatureGames:     c.FeatureGames,
		FeaturePayment:   c.FeaturePayment,
		FeatureInsurance: c.FeatureInsurance,
		FeatureSearch:    c.FeatureSearch,
	}
}

// GBPrice returns the price of one gigabyte of internet traffic.
// It falls back to 10 when the configured value is missing or malformed.
func (c Config) GBPrice() decimal.Decimal {
	price, err := decimal.NewFromString(c.InternetGBPrice)
	if err != nil || price.IsNegative() {
		return decimal.NewFromInt(10)
	}

	return price
}

// ParseSearchIndex parses the offline search index.
//
// The format is "query=result1|result2;query2=result3".
func (c Config) ParseSearchIndex() map[string][]string {
	index := make(map[string][]string)

	for _, pair := range strings.Split(c.SearchIndex, ";") {
		query, results, found := strings.Cut(pair, "=")
		query = strings.TrimSpace(query)

		if !found || query == "" {
			continue
		}

		for _, r := range strings.Split(results, "|") {
			if r = strings.TrimSpace(r); r != "" {
				index[query] = append(index[query], r)
			}
		}
	}

	return index
}
