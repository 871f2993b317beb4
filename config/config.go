package config

import (
	"os"
	"path/filepath"

	"github.com/labstack/gommon/random"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v2"
)

type SysConfig struct {
	Appid    string `yaml:"appid" json:"appid"`
	Location string `yaml:"location" json:"location"`
	Workdir  string `yaml:"workdir" json:"workdir"`
	Debug    bool   `yaml:"debug" json:"debug"`
}

type WebConfig struct {
	Host      string `yaml:"host" json:"host"`
	Port      int    `yaml:"port" json:"port"`
	Secret    string `yaml:"secret" json:"secret"`
	JwtExpire int    `yaml:"jwt_expire" json:"jwt_expire"` // hours
}

type AdminConfig struct {
	Username string `yaml:"username" json:"username"`
	Password string `yaml:"password" json:"password"`
}

type CloudinaryConfig struct {
	CloudName  string `yaml:"cloud_name" json:"cloud_name"`
	ApiKey     string `yaml:"api_key" json:"api_key"`
	ApiSecret  string `yaml:"api_secret" json:"api_secret"`
	BaseFolder string `yaml:"base_folder" json:"base_folder"`
}

type SmtpConfig struct {
	Host       string `yaml:"host" json:"host"`
	Port       int    `yaml:"port" json:"port"`
	Username   string `yaml:"username" json:"username"`
	Password   string `yaml:"password" json:"password"`
	From       string `yaml:"from" json:"from"`
	AdminEmail string `yaml:"admin_email" json:"admin_email"`
}

type LoggerConfig struct {
	Mode       string `yaml:"mode" json:"mode"`
	FileEnable bool   `yaml:"file_enable" json:"file_enable"`
	Filename   string `yaml:"filename" json:"filename"`
}

type AppConfig struct {
	System     SysConfig        `yaml:"system" json:"system"`
	Web        WebConfig        `yaml:"web" json:"web"`
	Admin      AdminConfig      `yaml:"admin" json:"admin"`
	Cloudinary CloudinaryConfig `yaml:"cloudinary" json:"cloudinary"`
	Smtp       SmtpConfig       `yaml:"smtp" json:"smtp"`
	Logger     LoggerConfig     `yaml:"logger" json:"logger"`
}

func (c *AppConfig) GetLogDir() string {
	return filepath.Join(c.System.Workdir, "logs")
}

func (c *AppConfig) GetBackupDir() string {
	return filepath.Join(c.System.Workdir, "backup")
}

func (c *AppConfig) GetCatalogPath() string {
	return filepath.Join(c.System.Workdir, "catalog.db")
}

var DefaultAppConfig = &AppConfig{
	System: SysConfig{
		Appid:    "NextgenEV",
		Location: "Asia/Kolkata",
		Workdir:  "/var/nextgenev",
		Debug:    true,
	},
	Web: WebConfig{
		Host:      "0.0.0.0",
		Port:      1820,
		Secret:    "",
		JwtExpire: 24,
	},
	Admin: AdminConfig{
		Username: "NEXTGEN",
		Password: "Nextgen@2025",
	},
	Cloudinary: CloudinaryConfig{
		BaseFolder: "nextgen-ev",
	},
	Smtp: SmtpConfig{
		Host: "smtp.gmail.com",
		Port: 587,
	},
	Logger: LoggerConfig{
		Mode:       "development",
		FileEnable: true,
		Filename:   "/var/nextgenev/logs/nextgenev.log",
	},
}

func setEnvValue(name string, f func(v string)) {
	var evalue = os.Getenv(name)
	if evalue != "" {
		f(evalue)
	}
}

func setEnvBoolValue(name string, f func(v bool)) {
	var evalue = os.Getenv(name)
	if evalue != "" {
		f(evalue == "true" || evalue == "1" || evalue == "on")
	}
}

func setEnvIntValue(name string, f func(v int)) {
	var evalue = os.Getenv(name)
	if evalue != "" {
		f(cast.ToInt(evalue))
	}
}

// LoadConfig reads the YAML configuration file and applies NEXTGENEV_*
// environment overrides. A missing file yields the defaults.
func LoadConfig(cfile string) *AppConfig {
	cfg := new(AppConfig)
	*cfg = *DefaultAppConfig
	if cfile != "" {
		if data, err := os.ReadFile(cfile); err == nil {
			_ = yaml.Unmarshal(data, cfg)
		}
	}

	setEnvValue("NEXTGENEV_SYSTEM_WORKDIR", func(v string) { cfg.System.Workdir = v })
	setEnvBoolValue("NEXTGENEV_SYSTEM_DEBUG", func(v bool) { cfg.System.Debug = v })
	setEnvValue("NEXTGENEV_WEB_HOST", func(v string) { cfg.Web.Host = v })
	setEnvIntValue("NEXTGENEV_WEB_PORT", func(v int) { cfg.Web.Port = v })
	setEnvValue("NEXTGENEV_WEB_SECRET", func(v string) { cfg.Web.Secret = v })
	setEnvValue("NEXTGENEV_ADMIN_USERNAME", func(v string) { cfg.Admin.Username = v })
	setEnvValue("NEXTGENEV_ADMIN_PASSWORD", func(v string) { cfg.Admin.Password = v })
	setEnvValue("NEXTGENEV_CLOUDINARY_CLOUD_NAME", func(v string) { cfg.Cloudinary.CloudName = v })
	setEnvValue("NEXTGENEV_CLOUDINARY_API_KEY", func(v string) { cfg.Cloudinary.ApiKey = v })
	setEnvValue("NEXTGENEV_CLOUDINARY_API_SECRET", func(v string) { cfg.Cloudinary.ApiSecret = v })
	setEnvValue("NEXTGENEV_SMTP_HOST", func(v string) { cfg.Smtp.Host = v })
	setEnvIntValue("NEXTGENEV_SMTP_PORT", func(v int) { cfg.Smtp.Port = v })
	setEnvValue("NEXTGENEV_SMTP_USERNAME", func(v string) { cfg.Smtp.Username = v })
	setEnvValue("NEXTGENEV_SMTP_PASSWORD", func(v string) { cfg.Smtp.Password = v })
	setEnvValue("NEXTGENEV_SMTP_ADMIN_EMAIL", func(v string) { cfg.Smtp.AdminEmail = v })

	if cfg.Web.Secret == "" {
		// per-process secret; admin tokens do not survive a restart
		cfg.Web.Secret = random.String(32)
	}
	if cfg.Smtp.From == "" {
		cfg.Smtp.From = cfg.Smtp.Username
	}
	if cfg.Smtp.AdminEmail == "" {
		cfg.Smtp.AdminEmail = cfg.Smtp.Username
	}
	return cfg
}
