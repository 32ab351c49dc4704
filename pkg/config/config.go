package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// MustLoad loads the configuration from environment variables and .env file.
// It panics when a required variable is missing.
func MustLoad[T any](cfg T) {
	_ = godotenv.Load() // Load environment variables from .env file

	env.Must(cfg, env.Parse(cfg))
}

// Load loads the configuration from environment variables and .env file.
// A missing .env file is not an error; the environment alone may be complete.
func Load[T any](cfg T) error {
	_ = godotenv.Load()

	return env.Parse(cfg)
}

// Config holds the configuration for the matching system.
type Config struct {
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`

	OrderTopic `envPrefix:"ORDER_"` // order intake topic
	TradeTopic `envPrefix:"TRADE_"` // executed trade topic
	Redis      `envPrefix:"REDIS_"` // trade broadcast channel
	Engine     `envPrefix:"ENGINE_"`
}

// OrderTopic holds the Kafka configuration for the order intake topic.
type OrderTopic struct {
	Topic   string   `env:"TOPIC" envDefault:"orders"`
	GroupID string   `env:"GROUP_ID" envDefault:"matching-engine"`
	Brokers []string `env:"BROKERS" envDefault:"localhost:9092"`
}

// TradeTopic holds the Kafka configuration for the executed trade topic.
type TradeTopic struct {
	Topic   string   `env:"TOPIC" envDefault:"trades"`
	Brokers []string `env:"BROKERS" envDefault:"localhost:9092"`
}

// Redis holds the configuration for the trade broadcast channel.
type Redis struct {
	Addrs    []string `env:"ADDRS" envDefault:"localhost:6379"`
	Username string   `env:"USERNAME" envDefault:""`
	Password string   `env:"PASSWORD" envDefault:""`
	DB       int      `env:"DB" envDefault:"0"`
	Channel  string   `env:"CHANNEL" envDefault:"exchange.trades"`
}

// Engine holds the matching engine options.
type Engine struct {
	// MarketRemainder controls what happens to the unfilled remainder of a
	// market order once the opposing side is exhausted: "cancel" or "rest".
	MarketRemainder string `env:"MARKET_REMAINDER" envDefault:"cancel"`
}
