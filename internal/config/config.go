package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

type AppConf struct {
	Env                 string `mapstructure:"env"`
	Port                int    `mapstructure:"port"`
	ReadTimeoutSeconds  int    `mapstructure:"read_timeout_seconds"`
	WriteTimeoutSeconds int    `mapstructure:"write_timeout_seconds"`
	ShutdownSeconds     int    `mapstructure:"shutdown_seconds"`
}

type MongoConf struct {
	URI      string `mapstructure:"uri"`
	Database string `mapstructure:"database"`
}

type RedisConf struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type KafkaConf struct {
	Brokers           []string `mapstructure:"brokers"`
	ThumbnailTopic    string   `mapstructure:"thumbnail_topic"`
	WelcomeTopic      string   `mapstructure:"welcome_topic"`
	GroupID           string   `mapstructure:"group_id"`
	JobTimeoutSeconds int      `mapstructure:"job_timeout_seconds"`
}

type StorageConf struct {
	Root string `mapstructure:"root"`
}

type SessionConf struct {
	TTLHours int `mapstructure:"ttl_hours"`
}

type BrevoConf struct {
	APIKey      string `mapstructure:"api_key"`
	SenderEmail string `mapstructure:"sender_email"`
	SenderName  string `mapstructure:"sender_name"`
}

type Config struct {
	App     AppConf     `mapstructure:"app"`
	Mongo   MongoConf   `mapstructure:"mongodb"`
	Redis   RedisConf   `mapstructure:"redis"`
	Kafka   KafkaConf   `mapstructure:"kafka"`
	Storage StorageConf `mapstructure:"storage"`
	Session SessionConf `mapstructure:"session"`
	Brevo   BrevoConf   `mapstructure:"brevo"`

	// derived
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	SessionTTL      time.Duration
	JobTimeout      time.Duration
}

// Load reads the yaml config at path, applies env overrides, and fills in
// defaults for anything unset.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.App.Port == 0 {
		cfg.App.Port = 5000
	}
	if cfg.App.ReadTimeoutSeconds == 0 {
		cfg.App.ReadTimeoutSeconds = 30
	}
	if cfg.App.WriteTimeoutSeconds == 0 {
		cfg.App.WriteTimeoutSeconds = 30
	}
	if cfg.App.ShutdownSeconds == 0 {
		cfg.App.ShutdownSeconds = 15
	}
	if cfg.Mongo.URI == "" {
		cfg.Mongo.URI = "mongodb://127.0.0.1:27017"
	}
	if cfg.Mongo.Database == "" {
		cfg.Mongo.Database = "files_manager"
	}
	if cfg.Redis.Addr == "" {
		cfg.Redis.Addr = "127.0.0.1:6379"
	}
	if len(cfg.Kafka.Brokers) == 0 {
		cfg.Kafka.Brokers = []string{"127.0.0.1:9092"}
	}
	if cfg.Kafka.ThumbnailTopic == "" {
		cfg.Kafka.ThumbnailTopic = "files.thumbnail"
	}
	if cfg.Kafka.WelcomeTopic == "" {
		cfg.Kafka.WelcomeTopic = "users.welcome"
	}
	if cfg.Kafka.GroupID == "" {
		cfg.Kafka.GroupID = "files-manager-worker"
	}
	if cfg.Kafka.JobTimeoutSeconds == 0 {
		cfg.Kafka.JobTimeoutSeconds = 60
	}
	if cfg.Storage.Root == "" {
		cfg.Storage.Root = filepath.Join(os.TempDir(), "files_manager")
	}
	if cfg.Session.TTLHours == 0 {
		cfg.Session.TTLHours = 24
	}

	cfg.ReadTimeout = time.Duration(cfg.App.ReadTimeoutSeconds) * time.Second
	cfg.WriteTimeout = time.Duration(cfg.App.WriteTimeoutSeconds) * time.Second
	cfg.ShutdownTimeout = time.Duration(cfg.App.ShutdownSeconds) * time.Second
	cfg.SessionTTL = time.Duration(cfg.Session.TTLHours) * time.Hour
	cfg.JobTimeout = time.Duration(cfg.Kafka.JobTimeoutSeconds) * time.Second
	return &cfg, nil
}
