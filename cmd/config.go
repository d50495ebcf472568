package cmd

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"kitchen/internal/core/domain/model/order"
)

const DefaultOrderChangedTopic = "kitchen.orders.changed"

type Config struct {
	HTTPPort               string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	KafkaHost              string
	KafkaOrderChangedTopic string
	RedisAddr              string
	StatusPolicy           string
	AllowDirectCompletion  string
	SeedDemoData           string
	CORSAllowedOrigins     string
	LogLevel               string
}

// TransitionPolicy builds the status policy from STATUS_POLICY and
// ALLOW_DIRECT_COMPLETION.
func (c Config) TransitionPolicy() (order.TransitionPolicy, error) {
	mode, err := order.ParsePolicyMode(c.StatusPolicy)
	if err != nil {
		return order.TransitionPolicy{}, fmt.Errorf("STATUS_POLICY: %w", err)
	}

	directCompletion, err := parseFlag(c.AllowDirectCompletion)
	if err != nil {
		return order.TransitionPolicy{}, fmt.Errorf("ALLOW_DIRECT_COMPLETION: %w", err)
	}

	opts := []order.PolicyOption{order.WithMode(mode)}
	if directCompletion {
		opts = append(opts, order.WithDirectCompletion())
	}
	return order.NewTransitionPolicy(opts...), nil
}

func (c Config) SeedDemoDataEnabled() (bool, error) {
	seed, err := parseFlag(c.SeedDemoData)
	if err != nil {
		return false, fmt.Errorf("SEED_DEMO_DATA: %w", err)
	}
	return seed, nil
}

// AllowedOrigins splits CORS_ALLOWED_ORIGINS on commas.
func (c Config) AllowedOrigins() []string {
	return splitList(c.CORSAllowedOrigins)
}

func (c Config) KafkaBrokers() []string {
	return splitList(c.KafkaHost)
}

func (c Config) OrderChangedTopic() string {
	if c.KafkaOrderChangedTopic == "" {
		return DefaultOrderChangedTopic
	}
	return c.KafkaOrderChangedTopic
}

// SlogLevel maps LOG_LEVEL (debug, info, warn, error) to a slog level.
// Anything else means info.
func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo
	}
	return level
}

func (c Config) HTTPAddress() string {
	port := c.HTTPPort
	if port == "" {
		port = "8080"
	}
	return fmt.Sprintf("0.0.0.0:%s", port)
}

func parseFlag(s string) (bool, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return false, nil
	}
	return strconv.ParseBool(s)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
