package config

import (
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"log"
	"log/slog"
	"time"
)

type Config struct {
	HTTPServer HTTPServer
	Fetcher    Fetcher
	Redis      Redis
	Logger     Logger
}

type HTTPServer struct {
	Port        string        `env:"HTTP_PORT" env-default:"8082"`
	Timeout     time.Duration `env:"HTTP_TIMEOUT" env-default:"3m"`
	IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
	CacheTTL    time.Duration `env:"HTTP_CACHE_TTL" env-default:"5m"`
}

type Fetcher struct {
	URL         string        `env:"FETCHER_URL" env-default:"https://www.wsj.com/market-data/quotes/fx"`
	Cookie      string        `env:"WSJ_COOKIE"`
	UserAgent   string        `env:"FETCHER_USER_AGENT" env-default:"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"`
	Rows        int           `env:"FETCHER_ROWS" env-default:"50"`
	Concurrency int           `env:"FETCHER_CONCURRENCY" env-default:"6"`
	Timeout     time.Duration `env:"FETCHER_TIMEOUT" env-default:"20s"`
}

// Redis is optional, an empty Host disables batch announcements.
type Redis struct {
	Host     string `env:"REDIS_HOST"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" env-default:"0"`
	Channel  string `env:"REDIS_CHANNEL" env-default:"fx_closes_fetched"`
}

type Logger struct {
	Level string `env:"LOG_LEVEL" env-default:"info"`
}

func NewConfig() *Config {
	cfg := &Config{}

	_ = godotenv.Load(".env")

	err := cleanenv.ReadEnv(cfg)
	if err != nil {
		log.Fatal("Error reading env")
	}

	return cfg
}

// LogValue keeps secrets out of the startup log line.
func (c Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("http_port", c.HTTPServer.Port),
		slog.Duration("cache_ttl", c.HTTPServer.CacheTTL),
		slog.String("fetcher_url", c.Fetcher.URL),
		slog.Bool("cookie_set", c.Fetcher.Cookie != ""),
		slog.Int("fetcher_rows", c.Fetcher.Rows),
		slog.Int("fetcher_concurrency", c.Fetcher.Concurrency),
		slog.Duration("fetcher_timeout", c.Fetcher.Timeout),
		slog.String("redis_host", c.Redis.Host),
		slog.String("log_level", c.Logger.Level),
	)
}
