package config

import "fmt"

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// EstimatorConfig configures the auxiliary estimation service. It shares the
// token secret with the main server but is otherwise independent.
type EstimatorConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (e *EstimatorConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", e.Host, e.Port)
}

type DatabaseConfig struct {
	Path            string `mapstructure:"path"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
	Mode       string `mapstructure:"mode"`
}

type PasswordConfig struct {
	ScryptN      int `mapstructure:"scrypt_n"`
	ScryptR      int `mapstructure:"scrypt_r"`
	ScryptP      int `mapstructure:"scrypt_p"`
	ScryptKeyLen int `mapstructure:"scrypt_key_len"`
}

type TokenConfig struct {
	Secret           string  `mapstructure:"secret"`
	ExpirySeconds    int     `mapstructure:"expiry_seconds"`
	RefreshLeadRatio float64 `mapstructure:"refresh_lead_ratio"`
}

type SessionConfig struct {
	ExpiryHours int `mapstructure:"expiry_hours"`
}

type CookieConfig struct {
	Name     string `mapstructure:"name"`
	Domain   string `mapstructure:"domain"`
	Path     string `mapstructure:"path"`
	Secure   bool   `mapstructure:"secure"`
	SameSite string `mapstructure:"same_site"`
}

type AuthConfig struct {
	Password PasswordConfig `mapstructure:"password"`
	Token    TokenConfig    `mapstructure:"token"`
	Session  SessionConfig  `mapstructure:"session"`
	Cookie   CookieConfig   `mapstructure:"cookie"`
}
