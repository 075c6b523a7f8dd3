package config

import (
	"fmt"
	"time"
)

type EventLog struct {
	RabbitMQURL     string
	ShutdownTimeout time.Duration
}

func LoadEventLog() (EventLog, error) {
	cfg := EventLog{
		RabbitMQURL:     getEnv("RABBITMQ_URL", ""),
		ShutdownTimeout: defaultShutdownTimeout,
	}

	if cfg.RabbitMQURL == "" {
		return EventLog{}, fmt.Errorf("RABBITMQ_URL is required")
	}

	return cfg, nil
}
