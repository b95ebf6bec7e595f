package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type HTTP struct {
	Addr              string        `default:":8080" envconfig:"ADDR"`
	GinMode           string        `default:"debug" envconfig:"GIN_MODE"`
	ReadTimeout       time.Duration `default:"10s" envconfig:"READ_TIMEOUT"`
	WriteTimeout      time.Duration `default:"10s" envconfig:"WRITE_TIMEOUT"`
	ReadHeaderTimeout time.Duration `default:"5s" envconfig:"READ_HEADER_TIMEOUT"`
	IdleTimeout       time.Duration `default:"60s" envconfig:"IDLE_TIMEOUT"`
	HandlerTimeout    time.Duration `default:"30s" envconfig:"HANDLER_TIMEOUT"`
	GracefulTimeout   time.Duration `default:"5s" envconfig:"GRACEFUL_TIMEOUT"`
}

// Gateway — расположение и учётные данные сервиса Aspect4.
// Username/Password обязательны, но проверяются при сборке клиента,
// чтобы конфигурация грузилась в тестах без окружения.
type Gateway struct {
	Endpoint string        `default:"https://aspect4.example.com/services/EA7602RA" envconfig:"ENDPOINT"`
	Username string        `envconfig:"USERNAME"`
	Password string        `envconfig:"PASSWORD"`
	Timeout  time.Duration `default:"30s" envconfig:"TIMEOUT"`
}

type Logger struct {
	IsProd bool `default:"false" envconfig:"IS_PROD"`
}

type Tracing struct {
	Enabled     bool    `default:"false" envconfig:"ENABLED"`
	ServiceName string  `default:"aspect4-orders" envconfig:"SERVICE_NAME"`
	Endpoint    string  `default:"localhost:4318" envconfig:"ENDPOINT"`
	SampleRatio float64 `default:"1.0" envconfig:"SAMPLE_RATIO"`
}

type Config struct {
	HTTP    HTTP
	Gateway Gateway
	Logger  Logger
	Tracing Tracing
}

// Load — конфигурация из окружения с префиксом ASPECT4
// (ASPECT4_HTTP_ADDR, ASPECT4_GATEWAY_USERNAME и т.д.).
func Load() (Config, error) {
	return LoadWithPrefix("ASPECT4")
}

// LoadWithPrefix — то же с произвольным префиксом (изоляция в тестах).
func LoadWithPrefix(prefix string) (Config, error) {
	var c Config
	if err := envconfig.Process(prefix, &c); err != nil {
		return Config{}, err
	}
	return c, nil
}
