package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App    AppConfig
	HTTP   HTTPConfig
	Log    LogConfig
	Sample SampleConfig
	Cache  CacheConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LogConfig nivel de log estructurado.
type LogConfig struct {
	Level string
}

// SampleConfig parámetros del generador de datos de ejemplo.
// Con la misma semilla el generador produce exactamente los mismos datasets.
type SampleConfig struct {
	Seed      int64
	Products  int // productos en el catálogo sintético
	Days      int // días de historial de ventas/compras
	Stores    int
	Suppliers int
}

// CacheConfig tamaño máximo de la memoización del pipeline (0 = deshabilitada).
type CacheConfig struct {
	Size int
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, SAMPLE_SEED, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "vision360"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
		Sample: SampleConfig{
			Seed:      int64(getInt(v, "SAMPLE_SEED", 42)),
			Products:  getInt(v, "SAMPLE_PRODUCTS", 80),
			Days:      getInt(v, "SAMPLE_DAYS", 365),
			Stores:    getInt(v, "SAMPLE_STORES", 5),
			Suppliers: getInt(v, "SAMPLE_SUPPLIERS", 5),
		},
		Cache: CacheConfig{
			Size: getInt(v, "CACHE_SIZE", 64),
		},
	}

	return cfg, nil
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
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
