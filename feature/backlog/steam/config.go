package steam

// Config holds configuration for the Steam Web API client.
type Config struct {
	// APIKey is the Steam Web API credential. The sync pass fails with a
	// config error when it is empty.
	APIKey string `mapstructure:"api_key" default:""`
	// BaseURL is the Steam Web API endpoint.
	BaseURL string `mapstructure:"base_url" default:"https://api.steampowered.com"`
	// TimeoutSeconds is the per-request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"15"`
}
