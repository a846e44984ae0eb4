package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Collaborators
	Supabase   SupabaseConfig
	LocalStore LocalStoreConfig

	// Domain rules
	Rules    RulesConfig
	Projects []string

	// Presentation-side state machines
	Pomodoro PomodoroConfig

	// Protection
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// SupabaseConfig points at the primary persistence and identity collaborator.
type SupabaseConfig struct {
	URL     string
	AnonKey string
	Timeout time.Duration
}

// LocalStoreConfig configures the keyed-by-date fallback snapshot store.
type LocalStoreConfig struct {
	Dir       string
	CacheSize int
	CacheTTL  time.Duration
}

// RulesConfig selects the swappable rule tables and lifecycle policies. The
// source revisions disagree on these, so they are configuration, not code.
type RulesConfig struct {
	ClassifierVersion   string // "classic" or "revised"
	AssignProjectPolicy string // "reclassify" or "fork"
	DurationCapture     string // "primary_only" or "all"
}

type PomodoroConfig struct {
	WorkMinutes             int
	ShortBreakMinutes       int
	LongBreakMinutes        int
	SessionsBeforeLongBreak int
}

type RateLimitConfig struct {
	PerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Supabase
	cfg.Supabase.URL = viper.GetString("supabase.url")
	cfg.Supabase.AnonKey = viper.GetString("supabase.anon_key")
	cfg.Supabase.Timeout = viper.GetDuration("supabase.timeout")
	if supabaseURL := viper.GetString("supabase_url"); supabaseURL != "" {
		cfg.Supabase.URL = supabaseURL
	}
	if anonKey := viper.GetString("supabase_anon_key"); anonKey != "" {
		cfg.Supabase.AnonKey = anonKey
	}

	// Local fallback store
	cfg.LocalStore.Dir = viper.GetString("localstore.dir")
	cfg.LocalStore.CacheSize = viper.GetInt("localstore.cache_size")
	cfg.LocalStore.CacheTTL = viper.GetDuration("localstore.cache_ttl")

	// Rule tables and lifecycle policies
	cfg.Rules.ClassifierVersion = viper.GetString("rules.classifier_version")
	cfg.Rules.AssignProjectPolicy = viper.GetString("rules.assign_project_policy")
	cfg.Rules.DurationCapture = viper.GetString("rules.duration_capture")
	if err := cfg.Rules.validate(); err != nil {
		return nil, err
	}

	// Seed projects
	cfg.Projects = viper.GetStringSlice("projects")

	// Pomodoro
	cfg.Pomodoro.WorkMinutes = viper.GetInt("pomodoro.work_minutes")
	cfg.Pomodoro.ShortBreakMinutes = viper.GetInt("pomodoro.short_break_minutes")
	cfg.Pomodoro.LongBreakMinutes = viper.GetInt("pomodoro.long_break_minutes")
	cfg.Pomodoro.SessionsBeforeLongBreak = viper.GetInt("pomodoro.sessions_before_long_break")

	// Rate limiting
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	return cfg, nil
}

func (r RulesConfig) validate() error {
	switch r.ClassifierVersion {
	case "classic", "revised":
	default:
		return fmt.Errorf("rules.classifier_version must be classic or revised, got %q", r.ClassifierVersion)
	}
	switch r.AssignProjectPolicy {
	case "reclassify", "fork":
	default:
		return fmt.Errorf("rules.assign_project_policy must be reclassify or fork, got %q", r.AssignProjectPolicy)
	}
	switch r.DurationCapture {
	case "primary_only", "all":
	default:
		return fmt.Errorf("rules.duration_capture must be primary_only or all, got %q", r.DurationCapture)
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("supabase.timeout", "10s")

	viper.SetDefault("localstore.dir", "./data/days")
	viper.SetDefault("localstore.cache_size", 64)
	viper.SetDefault("localstore.cache_ttl", "30m")

	// Classic stays the default; the revised table is opt-in.
	viper.SetDefault("rules.classifier_version", "classic")
	viper.SetDefault("rules.assign_project_policy", "reclassify")
	viper.SetDefault("rules.duration_capture", "primary_only")

	// Projects are immutable reference data, so a deployment without a
	// config file still needs a seed list.
	viper.SetDefault("projects", []string{
		"Project Manager Antares",
		"Bautec Deposito",
		"CMP Sige",
		"Musica",
		"Relación",
		"Familia",
		"Amigos",
	})

	viper.SetDefault("pomodoro.work_minutes", 25)
	viper.SetDefault("pomodoro.short_break_minutes", 5)
	viper.SetDefault("pomodoro.long_break_minutes", 15)
	viper.SetDefault("pomodoro.sessions_before_long_break", 4)

	viper.SetDefault("rate_limit.per_min", 120)
}
