package utils

import (
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
	"log"
	"os"
	"strconv"
)

type Config struct {
	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// JWT
	JWTSecret string `yaml:"JWT_SECRET"`

	// Mailing configuration
	AppURL           string `yaml:"APP_URL"`
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`

	// Redis and MQTT (alert delivery)
	RedisAddr      string `yaml:"REDIS_ADDR"`
	RedisPassword  string `yaml:"REDIS_PASSWORD"`
	RedisDB        string `yaml:"REDIS_DB"`
	MQTTBroker     string `yaml:"MQTT_BROKER"`
	MQTTClientID   string `yaml:"MQTT_CLIENT_ID"`
	MQTTUsername   string `yaml:"MQTT_USERNAME"`
	MQTTPassword   string `yaml:"MQTT_PASSWORD"`
	MQTTTopic      string `yaml:"MQTT_TOPIC"`
	AlertStream    string `yaml:"ALERT_STREAM"`
	AlertPublisher string `yaml:"ALERT_PUBLISHER"`

	// Nutrition provider
	NutritionAPIURL         string `yaml:"NUTRITION_API_URL"`
	NutritionTimeoutSeconds string `yaml:"NUTRITION_TIMEOUT_SECONDS"`
	NutritionCacheSize      string `yaml:"NUTRITION_CACHE_SIZE"`

	// Risk engine
	KnowledgeBasePath     string `yaml:"KNOWLEDGE_BASE_PATH"`
	EvalConcurrency       string `yaml:"EVAL_CONCURRENCY"`
	AlternativesLimit     string `yaml:"ALTERNATIVES_LIMIT"`
	NotifyCooldownMinutes string `yaml:"NOTIFY_COOLDOWN_MINUTES"`

	// Service
	LogLevel  string `yaml:"LOG_LEVEL"`
	LogFormat string `yaml:"LOG_FORMAT"`
	Port      string `yaml:"PORT"`
}

var config Config

// LoadConfig reads an optional .env file, then config.yaml (or CONFIG_PATH),
// then lets environment variables override any key.
func LoadConfig() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Error reading .env file: %s\n", err)
	}

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config.yaml"
	}
	file, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
	} else if err := yaml.Unmarshal(file, &config); err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
	}

	for key, field := range configFields() {
		if v, ok := os.LookupEnv(key); ok {
			*field = v
		}
	}

	// Set environment variables for keys that should be accessible via os.Getenv
	os.Setenv("JWT_SECRET", config.JWTSecret)
	os.Setenv("AWS_S3_BUCKET", config.AWSS3Bucket)
	os.Setenv("AWS_S3_REGION", config.AWSS3Region)
	os.Setenv("AWS_ACCESS_KEY", config.AWSAccessKey)
	os.Setenv("AWS_SECRET_KEY", config.AWSSecretKey)
}

func configFields() map[string]*string {
	return map[string]*string{
		"DB_USER":                   &config.DBUser,
		"DB_NAME":                   &config.DBName,
		"DB_PASSWORD":               &config.DBPassword,
		"DB_PORT":                   &config.DBPort,
		"DB_HOST":                   &config.DBHost,
		"JWT_SECRET":                &config.JWTSecret,
		"APP_URL":                   &config.AppURL,
		"SMTP_HOST":                 &config.SMTPHost,
		"SMTP_PORT":                 &config.SMTPPort,
		"SMTP_SENDER_NAME":          &config.SMTPSenderName,
		"SMTP_AUTH_EMAIL":           &config.SMTPAuthEmail,
		"SMTP_AUTH_PASSWORD":        &config.SMTPAuthPassword,
		"AWS_S3_BUCKET":             &config.AWSS3Bucket,
		"AWS_S3_REGION":             &config.AWSS3Region,
		"AWS_ACCESS_KEY":            &config.AWSAccessKey,
		"AWS_SECRET_KEY":            &config.AWSSecretKey,
		"REDIS_ADDR":                &config.RedisAddr,
		"REDIS_PASSWORD":            &config.RedisPassword,
		"REDIS_DB":                  &config.RedisDB,
		"MQTT_BROKER":               &config.MQTTBroker,
		"MQTT_CLIENT_ID":            &config.MQTTClientID,
		"MQTT_USERNAME":             &config.MQTTUsername,
		"MQTT_PASSWORD":             &config.MQTTPassword,
		"MQTT_TOPIC":                &config.MQTTTopic,
		"ALERT_STREAM":              &config.AlertStream,
		"ALERT_PUBLISHER":           &config.AlertPublisher,
		"NUTRITION_API_URL":         &config.NutritionAPIURL,
		"NUTRITION_TIMEOUT_SECONDS": &config.NutritionTimeoutSeconds,
		"NUTRITION_CACHE_SIZE":      &config.NutritionCacheSize,
		"KNOWLEDGE_BASE_PATH":       &config.KnowledgeBasePath,
		"EVAL_CONCURRENCY":          &config.EvalConcurrency,
		"ALTERNATIVES_LIMIT":        &config.AlternativesLimit,
		"NOTIFY_COOLDOWN_MINUTES":   &config.NotifyCooldownMinutes,
		"LOG_LEVEL":                 &config.LogLevel,
		"LOG_FORMAT":                &config.LogFormat,
		"PORT":                      &config.Port,
	}
}

func GetConfig(key string) string {
	if field, ok := configFields()[key]; ok {
		return *field
	}
	return ""
}

// GetConfigInt parses a numeric key, returning def when it is unset or invalid.
func GetConfigInt(key string, def int) int {
	v := GetConfig(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Invalid integer for %s: %q, using %d\n", key, v, def)
		return def
	}
	return n
}

// GetConfigOr returns def when key is unset.
func GetConfigOr(key, def string) string {
	if v := GetConfig(key); v != "" {
		return v
	}
	return def
}
