package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultConfigPath = "./config/local.yaml"

type Config struct {
	Env        string `yaml:"env" env:"ENV" env-default:"prod"`
	HTTPServer `yaml:"http_server"`
	DB         `yaml:"db"`
	Log        `yaml:"log"`

	AllowedOrigins []string `yaml:"allowed_origins" env:"ALLOWED_ORIGINS" env-separator:"," env-default:"http://localhost:5173"`
	FrontendDir    string   `yaml:"frontend_dir" env:"FRONTEND_DIR"`

	AdminLogin string `yaml:"admin_login" env:"ADMIN_LOGIN" env-required:"true"`
	AdminPass  string `yaml:"admin_pass" env:"ADMIN_PASS" env-required:"true"`
}

type HTTPServer struct {
	Address        string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:4001"`
	Timeout        time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout    time.Duration `yaml:"idle_timeout" env-default:"60s"`
	// RequestTimeout ограничивает обращение обработчика к сервисам и базе
	RequestTimeout time.Duration `yaml:"request_timeout" env:"HTTP_REQUEST_TIMEOUT" env-default:"5s"`
}

type DB struct {
	User      string `yaml:"user" env:"DB_USER" env-required:"true"`
	Password  string `yaml:"password" env:"DB_PASSWORD"`
	Host      string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port      int    `yaml:"port" env:"DB_PORT" env-default:"3306"`
	Name      string `yaml:"name" env:"DB_NAME" env-required:"true"`
	ParseTime bool   `yaml:"parse_time" env-default:"true"`
}

type Log struct {
	ErrorFile  string `yaml:"error_file" env:"ERROR_LOG" env-default:"errors.log"`
	MaxSizeMB  int    `yaml:"max_size_mb" env-default:"10"`
	MaxBackups int    `yaml:"max_backups" env-default:"3"`
	MaxAgeDays int    `yaml:"max_age_days" env-default:"28"`
}

// MustConfig читает YAML по пути из CONFIG_PATH (или ./config/local.yaml),
// переменные окружения имеют приоритет.
func MustConfig() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return &cfg
}
