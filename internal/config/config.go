package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type HTTPServer struct {
	Addr string `yaml:"address" env:"HTTP_ADDRESS" env-default:":8080"`
}

type Storage struct {
	Backend   string        `yaml:"BACKEND" env:"STORAGE_BACKEND" env-default:"memory"`
	KeyPrefix string        `yaml:"KEY_PREFIX" env:"STORAGE_KEY_PREFIX" env-default:""`
	Timeout   time.Duration `yaml:"TIMEOUT" env:"STORAGE_TIMEOUT" env-default:"5s"`
}

type Database struct {
	Host            string        `yaml:"PG_HOST" env:"PG_HOST" env-default:"localhost"`
	Port            string        `yaml:"PG_PORT" env:"PG_PORT" env-default:"5432"`
	User            string        `yaml:"PG_USER" env:"PG_USER"`
	Password        string        `yaml:"PG_PASSWORD" env:"PG_PASSWORD"`
	Name            string        `yaml:"PG_DBNAME" env:"PG_DBNAME"`
	SSLMode         string        `yaml:"PG_SSLMODE" env:"PG_SSLMODE" env-default:"require"`
	MaxOpenConns    int           `yaml:"MAX_OPEN_CONNS" env:"PG_MAX_OPEN_CONNS" env-default:"10"`
	MaxIdleConns    int           `yaml:"MAX_IDLE_CONNS" env:"PG_MAX_IDLE_CONNS" env-default:"5"`
	ConnMaxLifetime time.Duration `yaml:"CONN_MAX_LIFETIME" env:"PG_CONN_MAX_LIFETIME" env-default:"30m"`
	ConnMaxIdleTime time.Duration `yaml:"CONN_MAX_IDLE_TIME" env:"PG_CONN_MAX_IDLE_TIME" env-default:"5m"`
}

type RedisConnect struct {
	Host     string        `yaml:"REDIS_HOST" env:"REDIS_HOST" env-default:"localhost"`
	Port     string        `yaml:"REDIS_PORT" env:"REDIS_PORT" env-default:"6379"`
	Username string        `yaml:"REDIS_USER" env:"REDIS_USER"`
	Password string        `yaml:"REDIS_PASSWORD" env:"REDIS_PASSWORD"`
	DB       int           `yaml:"REDIS_DB" env:"REDIS_DB" env-default:"0"`
	TTL      time.Duration `yaml:"REDIS_TTL" env:"REDIS_TTL" env-default:"0s"`
}

type Security struct {
	JWTKey          string `yaml:"JWT_KEY" env:"JWT_KEY" env-required:"true"`
	JWTExpiryHours  int    `yaml:"JWT_EXPIRY_HOURS" env:"JWT_EXPIRY_HOURS" env-default:"24"`
	AdminInviteCode string `yaml:"ADMIN_INVITE_CODE" env:"ADMIN_INVITE_CODE" env-default:"ADMIN-ACCESS-2024"`
}

type Seed struct {
	AdminName     string `yaml:"ADMIN_NAME" env:"SEED_ADMIN_NAME" env-default:"Demo Admin"`
	AdminEmail    string `yaml:"ADMIN_EMAIL" env:"SEED_ADMIN_EMAIL" env-default:"admin@demo.com"`
	AdminPassword string `yaml:"ADMIN_PASSWORD" env:"SEED_ADMIN_PASSWORD" env-default:"admin123"`
}

type Checkout struct {
	ShippingFee           float64       `yaml:"SHIPPING_FEE" env:"CHECKOUT_SHIPPING_FEE" env-default:"8"`
	FreeShippingThreshold float64       `yaml:"FREE_SHIPPING_THRESHOLD" env:"CHECKOUT_FREE_SHIPPING_THRESHOLD" env-default:"150"`
	SubmitDelay           time.Duration `yaml:"SUBMIT_DELAY" env:"CHECKOUT_SUBMIT_DELAY" env-default:"600ms"`
}

type Otel struct {
	ServiceName      string  `yaml:"SERVICE_NAME" env:"OTEL_SERVICE_NAME" env-default:"storefront-studio"`
	ExporterEndpoint string  `yaml:"EXPORTER_ENDPOINT" env:"OTEL_EXPORTER_ENDPOINT" env-default:""`
	SamplerRatio     float64 `yaml:"SAMPLER_RATIO" env:"OTEL_SAMPLER_RATIO" env-default:"1"`
}

type Config struct {
	Env          string `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer   `yaml:"http_server"`
	Storage      Storage      `yaml:"storage"`
	Database     Database     `yaml:"database"`
	RedisConnect RedisConnect `yaml:"redis"`
	Security     Security     `yaml:"security"`
	Seed         Seed         `yaml:"seed"`
	Checkout     Checkout     `yaml:"checkout"`
	Otel         Otel         `yaml:"otel"`
}

const (
	StorageMemory   = "memory"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
)

func MustLoad() *Config {

	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {

		flags := flag.String("config", "", "path to the YAML config file")

		flag.Parse()

		configPath = *flags

		if configPath == "" {
			configPath = "./config/local.yaml"
		}

	}

	cfg, err := LoadConfigFromPath(configPath)
	if err != nil {
		log.Fatalf("can not read config: %s", err.Error())
	}

	return cfg
}

func LoadConfigFromPath(configPath string) (*Config, error) {

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("can not read config file: %w", err)
	}

	switch cfg.Storage.Backend {
	case StorageMemory, StorageRedis, StoragePostgres:
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}

	return &cfg, nil
}

func (d *Database) GetDSN() string {
	return fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

func (r *RedisConnect) GetDSN() string {
	return fmt.Sprintf("redis://%s:%s@%s:%s/%d", r.Username, r.Password, r.Host, r.Port, r.DB)
}
