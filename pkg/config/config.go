package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = ""

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App      AppConfig
	Redis    RedisConfig
	Orders   OrdersConfig
	Window   WindowConfig
	Sheets   SheetsConfig
	WhatsApp WhatsAppConfig
	Admin    AdminConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Orders.validate(); err != nil {
		return nil, err
	}
	if err := cfg.Window.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"BIRYANI_APP_ENV" required:"true"`
	Port         string `envconfig:"BIRYANI_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"BIRYANI_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"BIRYANI_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type RedisConfig struct {
	URL          string        `envconfig:"BIRYANI_REDIS_URL"`
	Address      string        `envconfig:"BIRYANI_REDIS_ADDR"`
	Password     string        `envconfig:"BIRYANI_REDIS_PASSWORD"`
	DB           int           `envconfig:"BIRYANI_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"BIRYANI_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"BIRYANI_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"BIRYANI_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"BIRYANI_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"BIRYANI_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// OrderIDSource selects which strategy hands out order identifiers.
type OrderIDSource string

const (
	OrderIDSourceRemote OrderIDSource = "remote"
	OrderIDSourceLocal  OrderIDSource = "local"
)

type OrdersConfig struct {
	IDSource string `envconfig:"BIRYANI_ORDER_ID_SOURCE" default:"remote"`
}

func (o OrdersConfig) Source() OrderIDSource {
	return OrderIDSource(strings.ToLower(strings.TrimSpace(o.IDSource)))
}

func (o OrdersConfig) validate() error {
	switch o.Source() {
	case OrderIDSourceRemote, OrderIDSourceLocal:
		return nil
	}
	return fmt.Errorf("BIRYANI_ORDER_ID_SOURCE must be %q or %q", OrderIDSourceRemote, OrderIDSourceLocal)
}

// WindowPolicy names the supported order-window admission policies.
type WindowPolicy string

const (
	WindowPolicyNone      WindowPolicy = "none"
	WindowPolicySameDay   WindowPolicy = "same-day"
	WindowPolicyOvernight WindowPolicy = "overnight"
)

type WindowConfig struct {
	PolicyName  string `envconfig:"BIRYANI_ORDER_WINDOW_POLICY" default:"none"`
	StartMinute int    `envconfig:"BIRYANI_ORDER_WINDOW_START" default:"0"`
	EndMinute   int    `envconfig:"BIRYANI_ORDER_WINDOW_END" default:"0"`
}

func (w WindowConfig) Policy() WindowPolicy {
	return WindowPolicy(strings.ToLower(strings.TrimSpace(w.PolicyName)))
}

func (w WindowConfig) validate() error {
	switch w.Policy() {
	case WindowPolicyNone:
		return nil
	case WindowPolicySameDay, WindowPolicyOvernight:
	default:
		return fmt.Errorf("BIRYANI_ORDER_WINDOW_POLICY must be one of %q, %q, %q",
			WindowPolicyNone, WindowPolicySameDay, WindowPolicyOvernight)
	}
	if w.StartMinute < 0 || w.StartMinute > 1439 || w.EndMinute < 0 || w.EndMinute > 1439 {
		return fmt.Errorf("order window minutes must be within 0..1439")
	}
	return nil
}

type SheetsConfig struct {
	WebAppURL string        `envconfig:"BIRYANI_SHEETS_WEBAPP_URL" required:"true"`
	Timeout   time.Duration `envconfig:"BIRYANI_SHEETS_TIMEOUT" default:"15s"`
}

type WhatsAppConfig struct {
	Recipient   string `envconfig:"BIRYANI_WHATSAPP_RECIPIENT" required:"true"`
	ShippingFee int    `envconfig:"BIRYANI_SHIPPING_FEE" default:"40"`
}

type AdminConfig struct {
	Username string        `envconfig:"BIRYANI_ADMIN_USERNAME" required:"true"`
	Password string        `envconfig:"BIRYANI_ADMIN_PASSWORD" required:"true"`
	TokenTTL time.Duration `envconfig:"BIRYANI_ADMIN_TOKEN_TTL" default:"12h"`
}
