package config

import "fmt"

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	BaseURL        string   `mapstructure:"base_url"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type EmailConfig struct {
	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUser     string `mapstructure:"smtp_user"`
	SMTPPassword string `mapstructure:"smtp_password"`
	FromAddress  string `mapstructure:"from_address"`
	FromName     string `mapstructure:"from_name"`
	AdminAddress string `mapstructure:"admin_address"`
	SendTimeout  int    `mapstructure:"send_timeout_seconds"`
}

type CertificateConfig struct {
	TemplateDir   string `mapstructure:"template_dir"`
	ArtifactDir   string `mapstructure:"artifact_dir"`
	ConverterURL  string `mapstructure:"converter_url"`
	RenderTimeout int    `mapstructure:"render_timeout_seconds"`
}

type RateLimitConfig struct {
	SubmitMaxAttempts int `mapstructure:"submit_max_attempts"`
	SubmitWindowMins  int `mapstructure:"submit_window_minutes"`
	VerifyMaxAttempts int `mapstructure:"verify_max_attempts"`
	VerifyWindowMins  int `mapstructure:"verify_window_minutes"`
	OTPMaxAttempts    int `mapstructure:"otp_max_attempts"`
	OTPWindowMins     int `mapstructure:"otp_window_minutes"`
}

type BiztimeConfig struct {
	Timezone string `mapstructure:"timezone"`
}
