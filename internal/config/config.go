package config

import (
	"fmt"
	"strings"

	"github.com/ffineis/sam-twilio-sms-to-sqs/pkg/mq"
	"github.com/ffineis/sam-twilio-sms-to-sqs/pkg/secrets"
	"github.com/ffineis/sam-twilio-sms-to-sqs/pkg/twilio"
	"github.com/spf13/viper"
)

type Config struct {
	API         API            `mapstructure:"api"`
	AWS         AWS            `mapstructure:"aws"`
	Queue       mq.Config      `mapstructure:"queue"`
	Credentials secrets.Config `mapstructure:"credentials"`
	Twilio      twilio.Config  `mapstructure:"twilio"`
	Webhook     Webhook        `mapstructure:"webhook"`
	Env         string         `mapstructure:"env"`
}

type API struct {
	Port string `mapstructure:"port"`
}

type AWS struct {
	Region string `mapstructure:"region"`
}

type Webhook struct {
	// BaseURL is the public URL the provider signs against. Set it when
	// the service sits behind a proxy that rewrites scheme or host.
	BaseURL         string `mapstructure:"base_url"`
	SignatureHeader string `mapstructure:"signature_header"`
	AckEnabled      bool   `mapstructure:"ack_enabled"`
	AckText         string `mapstructure:"ack_text"`
}

func Load() (cfg *Config, err error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath("./config")

	viper.SetDefault("api.port", ":8080")
	viper.SetDefault("credentials.secret_name", "twilio-sms-to-sqs")
	viper.SetDefault("twilio.timeout", "10s")
	viper.SetDefault("webhook.ack_text", "Message received.")
	viper.SetDefault("env", "dev")

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	err = viper.ReadInConfig()
	if err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}

	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
