package config

import (
	"errors"
	"os"

	"github.com/caarlos0/env/v7"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort int `env:"HTTP_PORT" envDefault:"8001"`

	// SMTP
	SMTPServer     string `env:"SMTP_SERVER" envDefault:"smtp.gmail.com"`
	SMTPPort       int    `env:"SMTP_PORT" envDefault:"587"`
	SenderEmail    string `env:"SENDER_EMAIL"`
	SenderName     string `env:"SENDER_NAME" envDefault:"NeuralForge AI"`
	SenderPassword string `env:"SENDER_PASSWORD"`
	ReceiverEmail  string `env:"RECEIVER_EMAIL" envDefault:"hello@neuralforge.ai"`

	// Kafka
	Kafka Kafka
}

type Kafka struct {
	Brokers           []string `env:"KAFKA_BROKERS" envDefault:""`
	ConsultationTopic string   `env:"KAFKA_CONSULTATION_TOPIC" envDefault:"consultation-received"`
}

// Enabled reports whether event publishing is configured. An empty
// KAFKA_BROKERS turns the producer off entirely.
func (k Kafka) Enabled() bool {
	return len(k.Brokers) > 0 && k.Brokers[0] != ""
}

func New(envPath string) (Config, error) {
	var c Config

	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	err = env.Parse(&c, env.Options{RequiredIfNoDef: true})
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
