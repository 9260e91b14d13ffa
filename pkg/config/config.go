package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	JWT     JWTConfig
	Backend BackendConfig
	Session SessionConfig
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

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// SessionConfig almacenamiento duradero de la sesión actual.
type SessionConfig struct {
	Dir string // directorio donde se persiste el registro currentUser
}

// BackendConfig credenciales del backend remoto (Postgres gestionado de Supabase).
// Si el par endpoint/credencial no pasa Configured(), la aplicación opera en
// modo local contra colecciones en memoria sembradas.
type BackendConfig struct {
	DatabaseURL string // postgresql://...supabase.co:5432/postgres (o pooler)
	ServiceKey  string
}

const minServiceKeyLen = 20

// sentinelas de plantilla que invalidan la credencial tal cual vienen en los
// .env de ejemplo
var placeholderMarkers = []string{"placeholder", "your-supabase", "your_anon_key"}

// Configured indica si el backend remoto está realmente configurado: endpoint
// presente, sintácticamente válido, de la familia de hosts esperada y sin
// sentinela; credencial presente, con longitud mínima y sin sentinela.
// Se evalúa una sola vez, en la composición del arranque.
func (c BackendConfig) Configured() bool {
	return validBackendURL(c.DatabaseURL) && validServiceKey(c.ServiceKey)
}

func validBackendURL(raw string) bool {
	if raw == "" {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return false
	}
	if u.Scheme != "postgres" && u.Scheme != "postgresql" {
		return false
	}
	if !strings.Contains(u.Host, "supabase.co") {
		return false
	}
	return !containsPlaceholder(raw)
}

func validServiceKey(key string) bool {
	if len(key) <= minServiceKeyLen {
		return false
	}
	return !containsPlaceholder(key)
}

func containsPlaceholder(s string) bool {
	for _, m := range placeholderMarkers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, SUPABASE_DB_URL, JWT_SECRET, etc.
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

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "workforce-api"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 480),
			Issuer:     getString(v, "JWT_ISSUER", "workforce-api"),
		},
		Backend: BackendConfig{
			DatabaseURL: getString(v, "SUPABASE_DB_URL", ""),
			ServiceKey:  getString(v, "SUPABASE_SERVICE_KEY", ""),
		},
		Session: SessionConfig{
			Dir: getString(v, "SESSION_DIR", "."),
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
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
