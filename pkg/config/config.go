package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Drivers de persistencia del snapshot.
const (
	StoreDriverFile     = "file"
	StoreDriverSQLite   = "sqlite"
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	Store   StoreConfig
	DB      DBConfig
	HTTP    HTTPConfig
	Billing BillingConfig
	Search  SearchConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, production
	Name     string
	LogLevel string
}

// StoreConfig ranura donde vive el snapshot del inventario.
type StoreConfig struct {
	Driver     string // file, sqlite, postgres, memory
	Dir        string // directorio del driver file
	Key        string // nombre de la ranura (inventory_data)
	SQLitePath string
}

// DBConfig configuración de PostgreSQL (solo driver postgres).
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// HTTPConfig configuración del servidor HTTP local.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// BillingConfig parámetros de cotizaciones y facturas.
type BillingConfig struct {
	Resolution     string // leyenda de resolución impresa en cada factura
	QuoteValidDays int
	CompanyName    string
	CompanyNIT     string
}

// SearchConfig parámetros del buscador.
type SearchConfig struct {
	CacheSize int // entradas del caché LRU; 0 desactiva
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, STORE_DRIVER, HTTP_PORT, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := fromViper(v)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "inventario-local"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		Store: StoreConfig{
			Driver:     strings.ToLower(getString(v, "STORE_DRIVER", StoreDriverFile)),
			Dir:        getString(v, "STORE_DIR", "./data"),
			Key:        getString(v, "STORE_KEY", "inventory_data"),
			SQLitePath: getString(v, "SQLITE_PATH", "./data/inventario.db"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "inventario"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "127.0.0.1"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Billing: BillingConfig{
			Resolution:     getString(v, "BILLING_RESOLUTION", "Resolución DIAN No. 18764000000000 - Rango FAC-000001 a FAC-999999"),
			QuoteValidDays: getInt(v, "QUOTE_VALID_DAYS", 15),
			CompanyName:    getString(v, "COMPANY_NAME", "Mi Negocio"),
			CompanyNIT:     getString(v, "COMPANY_NIT", ""),
		},
		Search: SearchConfig{
			CacheSize: getInt(v, "SEARCH_CACHE_SIZE", 256),
		},
	}
}

// Validate revisa combinaciones inválidas.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case StoreDriverFile, StoreDriverSQLite, StoreDriverPostgres, StoreDriverMemory:
	default:
		return fmt.Errorf("config: STORE_DRIVER desconocido %q", c.Store.Driver)
	}
	if c.Store.Key == "" {
		return fmt.Errorf("config: STORE_KEY vacío")
	}
	if c.Billing.QuoteValidDays <= 0 || c.Billing.QuoteValidDays > 3650 {
		return fmt.Errorf("config: QUOTE_VALID_DAYS debe estar entre 1 y 3650")
	}
	if c.Search.CacheSize < 0 {
		return fmt.Errorf("config: SEARCH_CACHE_SIZE no puede ser negativo")
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
