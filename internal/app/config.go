package app

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Gateway struct {
		Kind    string `yaml:"Kind"`
		Address string `yaml:"Address"`
	} `yaml:"Gateway"`
	Storage struct {
		Table    string `yaml:"Table"`
		Region   string `yaml:"Region"`
		Endpoint string `yaml:"Endpoint"`
	} `yaml:"Storage"`
	Notify struct {
		TopicARN string `yaml:"TopicARN"`
		Region   string `yaml:"Region"`
		Endpoint string `yaml:"Endpoint"`
		Subject  string `yaml:"Subject"`
	} `yaml:"Notify"`
}

// LoadConfig reads the optional CONFIG_FILE yaml and overlays environment
// variables on top of it. Environment wins over file, file wins over defaults.
func LoadConfig() (Config, error) {
	var config Config

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(raw, &config); err != nil {
			return Config{}, fmt.Errorf("unmarshal config: %w", err)
		}
	}

	config.Gateway.Kind = getEnv("GATEWAY", orDefault(config.Gateway.Kind, "LAMBDA"))
	config.Gateway.Address = getEnv("LISTEN_ADDRESS", orDefault(config.Gateway.Address, ":8080"))
	config.Storage.Table = getEnv("TABLE_NAME", orDefault(config.Storage.Table, "FileMetadata"))
	config.Storage.Region = getEnv("AWS_REGION", config.Storage.Region)
	config.Storage.Endpoint = getEnv("DYNAMODB_ENDPOINT", config.Storage.Endpoint)
	config.Notify.TopicARN = getEnv("SNS_TOPIC_ARN", config.Notify.TopicARN)
	config.Notify.Region = getEnv("AWS_REGION", config.Notify.Region)
	config.Notify.Endpoint = getEnv("SNS_ENDPOINT", config.Notify.Endpoint)
	config.Notify.Subject = getEnv("NOTIFY_SUBJECT", config.Notify.Subject)

	return config, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func orDefault(v, def string) string {
	if v != "" {
		return v
	}
	return def
}
