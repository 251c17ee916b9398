package config

// Config holds runtime configuration for the collector and server.
type Config struct {
	Port      string
	DataDir   string
	PublicDir string
	Provider  string
	Auth      AuthConfig
	League    LeagueConfig
	Refresh   RefreshConfig
	Metrics   MetricsConfig
}

// AuthConfig locates the externally managed OAuth credential file.
type AuthConfig struct {
	CredentialsFile string
}

// RefreshConfig controls the optional in-server scheduled collection run.
// Collection is normally triggered manually via the collect CLI; the
// schedule exists for unattended weekly updates during the season.
type RefreshConfig struct {
	Enabled  bool
	Schedule string // cron spec, e.g. "0 6 * * 1"
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:      envOrDefault(envPort, defaultPort),
		DataDir:   envOrDefault(envDataDir, defaultDataDir),
		PublicDir: envOrDefault(envPublicDir, defaultPublicDir),
		Provider:  envOrDefault(envProvider, defaultProvider),
		Auth: AuthConfig{
			CredentialsFile: envOrDefault(envOAuthFile, defaultOAuthFile),
		},
		League:  loadLeague(),
		Refresh: loadRefresh(),
		Metrics: loadMetrics(),
	}
}

func loadRefresh() RefreshConfig {
	return RefreshConfig{
		Enabled:  boolEnvOrDefault(envRefreshEnabled, defaultRefreshEnabled),
		Schedule: envOrDefault(envRefreshSchedule, defaultRefreshSchedule),
	}
}
