// config предоставляет структуру конфигурации hustle-service
// и функции загрузки из YAML/ENV с предсказуемым приоритетом.
package config

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config — корневая конфигурация сервиса.
// Приоритет источников:
//  1. явный путь, переданный в MustLoad/Load;
//  2. переменная окружения CONFIG_PATH;
//  3. файл ./local.yaml из рабочей директории;
//  4. переменные окружения.
type Config struct {
	Env      string        `yaml:"env"     env:"ENV" env-default:"local"`
	HTTP     HTTPConfig    `yaml:"http"`
	DB       DBConfig      `yaml:"db"`
	Redis    RedisConfig   `yaml:"redis"`
	Appcast  AppcastConfig `yaml:"appcast"`
	Timeouts TimeoutConfig `yaml:"timeouts"`
}

// HTTPConfig — сетевые настройки HTTP-сервера.
type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"50090"`
}

// Addr возвращает адрес в формате host:port.
func (h HTTPConfig) Addr() string {
	return net.JoinHostPort(h.Host, h.Port)
}

// DBConfig — настройки подключения к базе данных.
type DBConfig struct {
	URL string `yaml:"url" env:"DATABASE_URL" env-required:"true"`
}

// RedisConfig — параметры кеша. Пустой URL выключает кеширование.
type RedisConfig struct {
	URL string `yaml:"url" env:"REDIS_URL"`
	// SearchTTL — время жизни закешированных ответов внешнего поиска.
	SearchTTL time.Duration `yaml:"search_ttl" env:"CACHE_SEARCH_TTL" env-default:"2m"`
	// CatalogTTL — время жизни кеша категорий и джоб-паков.
	CatalogTTL time.Duration `yaml:"catalog_ttl" env:"CACHE_CATALOG_TTL" env-default:"15m"`
}

// AppcastConfig — настройки клиента внешнего провайдера.
type AppcastConfig struct {
	BaseURL string        `yaml:"base_url" env:"APPCAST_BASE_URL" env-default:"https://api.appcast.io"`
	APIKey  string        `yaml:"api_key"  env:"APPCAST_API_KEY" env-required:"true"`
	Timeout time.Duration `yaml:"timeout"  env:"APPCAST_TIMEOUT" env-default:"5s"`

	Defaults AppcastDefaults `yaml:"defaults"`
}

// AppcastDefaults — провайдерские значения по умолчанию, которые транслятор
// подставляет для незаданных критериев. Передаются в транслятор явно,
// чтобы тесты могли подменять фикстурой.
type AppcastDefaults struct {
	// Function — значение поля "function", когда категория не запрошена.
	Function string `yaml:"function" env:"APPCAST_DEFAULT_FUNCTION" env-default:"gig"`
	// SortBy — колонка сортировки по умолчанию; пустая -> "_score".
	SortBy string `yaml:"sort_by" env:"APPCAST_DEFAULT_SORT_BY"`
	// PageSize — размер страницы выдачи провайдера.
	PageSize int `yaml:"page_size" env:"APPCAST_PAGE_SIZE" env-default:"20"`
}

// TimeoutConfig — таймауты сервиса.
type TimeoutConfig struct {
	Service time.Duration `yaml:"service" env:"SERVICE_TIMEOUT" env-default:"10s"`
}

// MustLoad — обёртка над Load с panic при ошибке.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load загружает конфигурацию по приоритету:
// 1) явный путь; 2) CONFIG_PATH; 3) ./local.yaml; 4) ENV.
func Load(path string) (*Config, error) {
	var cfg Config

	tryRead := func(p string) (*Config, error) {
		if p == "" {
			return nil, fmt.Errorf("empty config path")
		}
		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file does not exist: %s", p)
		}
		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		return &cfg, nil
	}

	// 1) Явный путь.
	if path != "" {
		c, err := tryRead(path)
		if err != nil {
			return nil, err
		}
		if err := c.validate(); err != nil {
			return nil, err
		}
		return c, nil
	}

	// 2) CONFIG_PATH.
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		c, err := tryRead(envPath)
		if err != nil {
			return nil, err
		}
		if err := c.validate(); err != nil {
			return nil, err
		}
		return c, nil
	}

	// 3) ./local.yaml.
	if _, err := os.Stat("local.yaml"); err == nil {
		if err := cleanenv.ReadConfig("local.yaml", &cfg); err != nil {
			return nil, fmt.Errorf("failed to read local.yaml: %w", err)
		}
		if err := cfg.validate(); err != nil {
			return nil, err
		}
		return &cfg, nil
	}

	// 4) Только ENV.
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate — базовая валидация значений.
func (c *Config) validate() error {
	if c.DB.URL == "" {
		return fmt.Errorf("db.url is required")
	}
	if c.Appcast.APIKey == "" {
		return fmt.Errorf("appcast.api_key is required")
	}
	if c.Appcast.Timeout <= 0 {
		return fmt.Errorf("appcast.timeout must be > 0")
	}
	if c.Appcast.Defaults.PageSize <= 0 {
		return fmt.Errorf("appcast.defaults.page_size must be > 0")
	}
	if c.Redis.URL != "" {
		if c.Redis.SearchTTL <= 0 {
			return fmt.Errorf("redis.search_ttl must be > 0")
		}
		if c.Redis.CatalogTTL <= 0 {
			return fmt.Errorf("redis.catalog_ttl must be > 0")
		}
	}
	return nil
}
