package config

const (
	envPort            = "PORT"
	envDataDir         = "DATA_DIR"
	envPublicDir       = "PUBLIC_DIR"
	envProvider        = "PROVIDER"
	envOAuthFile       = "OAUTH_CREDENTIALS"
	envCurrentSeason   = "CURRENT_SEASON"
	envHistorical      = "HISTORICAL_SEASONS"
	envLeagueOverrides = "LEAGUE_ID_OVERRIDES"
	envMaxWeeks        = "MAX_WEEKS"
	envPlayoffTeams    = "PLAYOFF_TEAMS"
	envRankPolicy      = "RANK_POLICY"
	envRefreshEnabled  = "REFRESH_ENABLED"
	envRefreshSchedule = "REFRESH_SCHEDULE"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort      = "5000"
	defaultDataDir   = "data"
	defaultPublicDir = "public"
	defaultProvider  = "yahoo"
	defaultOAuthFile = "oauth2.json"

	defaultCurrentSeason = 2025
	// Regular-season weeks; current-season pulls probe a couple extra in case
	// the league schedule ran long.
	defaultMaxWeeks     = 26
	defaultPlayoffTeams = 6
	defaultRankPolicy   = "points"
	defaultLeagueName   = "Fantasy Baseball Civil War"
	defaultTotalTeams   = 12

	defaultRefreshEnabled = false
	// Monday 06:00, after Yahoo finalizes the week's matchups.
	defaultRefreshSchedule = "0 6 * * 1"
	defaultMetricsPort     = "9090"
)

var defaultHistoricalSeasons = []int{2019, 2020, 2021, 2022, 2023, 2024}

// The league moved under a different Yahoo game key in 2020.
var defaultLeagueIDOverrides = map[int]string{
	2020: "398.l.17906",
}
