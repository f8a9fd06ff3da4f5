package config

import (
	"auction-coordinator/internal/models"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. AUCTION_SERVER_PORT
const EnvPrefix = "AUCTION"

// Config represents the complete coordinator configuration
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Auction   AuctionConfig   `mapstructure:"auction"`
	Badges    BadgeConfig     `mapstructure:"badges"`
	Broadcast BroadcastConfig `mapstructure:"broadcast"`
	Store     StoreConfig     `mapstructure:"store"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Teams     []TeamConfig    `mapstructure:"teams"`
}

// ServerConfig controls the HTTP listener
type ServerConfig struct {
	Port int `mapstructure:"port"`
	// CORSOrigin is echoed in Access-Control-Allow-Origin. Empty disables CORS headers.
	CORSOrigin      string        `mapstructure:"cors_origin"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// AuctionConfig describes the lot and the bidding limits
type AuctionConfig struct {
	ItemName        string `mapstructure:"item_name"`
	ItemDescription string `mapstructure:"item_description"`
	StartingBid     int64  `mapstructure:"starting_bid"`
	MinIncrement    int64  `mapstructure:"min_increment"`
	// Duration is how long an auction runs after each reset (0 = no end time)
	Duration time.Duration `mapstructure:"duration"`
	// MaxTeams bounds the roster size (0 = unbounded)
	MaxTeams int `mapstructure:"max_teams"`
	// MaxBidsPerTeam caps accepted bids per team per auction (0 = unlimited)
	MaxBidsPerTeam int `mapstructure:"max_bids_per_team"`
}

// BadgeConfig holds the thresholds of the built-in badge rules
type BadgeConfig struct {
	ActiveBidderThreshold int   `mapstructure:"active_bidder_threshold"`
	BigSpenderThreshold   int64 `mapstructure:"big_spender_threshold"`
}

// BroadcastConfig sizes the fan-out buffers
type BroadcastConfig struct {
	QueueSize        int `mapstructure:"queue_size"`
	SubscriberBuffer int `mapstructure:"subscriber_buffer"`
}

// StoreConfig selects where auction state is persisted
type StoreConfig struct {
	// Path of the YAML snapshot file. Empty keeps state in memory only.
	Path string `mapstructure:"path"`
}

// LoggingConfig controls log output
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// TeamConfig is one roster entry. Badges listed here are starter badges that
// survive every reset.
type TeamConfig struct {
	ID      int      `mapstructure:"id"`
	Name    string   `mapstructure:"name"`
	Logo    string   `mapstructure:"logo"`
	Color   string   `mapstructure:"color"`
	Members []string `mapstructure:"members"`
	Badges  []string `mapstructure:"badges"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            5000,
			CORSOrigin:      "http://localhost:3000",
			ShutdownTimeout: 10 * time.Second,
		},
		Auction: AuctionConfig{
			ItemName:        "Rare Vintage Watch Collection",
			ItemDescription: "Exclusive collection of vintage timepieces from the 1950s",
			StartingBid:     1000,
			MinIncrement:    50,
			Duration:        2 * time.Hour,
			MaxTeams:        10,
			MaxBidsPerTeam:  50,
		},
		Badges: BadgeConfig{
			ActiveBidderThreshold: 5,
			BigSpenderThreshold:   5000,
		},
		Broadcast: BroadcastConfig{
			QueueSize:        256,
			SubscriberBuffer: 32,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Teams: []TeamConfig{
			{ID: 1, Name: "Team Alpha", Logo: "🏆", Color: "#3B82F6", Members: []string{"John Doe", "Jane Smith"}, Badges: []string{"Fast Bidder"}},
			{ID: 2, Name: "Team Beta", Logo: "⚡", Color: "#10B981", Members: []string{"Mike Johnson", "Sarah Wilson"}, Badges: []string{"Big Spender"}},
			{ID: 3, Name: "Team Gamma", Logo: "🎯", Color: "#F59E0B", Members: []string{"Alex Brown", "Emma Davis"}, Badges: []string{"Strategic"}},
			{ID: 4, Name: "Team Delta", Logo: "🚀", Color: "#EF4444", Members: []string{"Chris Lee", "Lisa Chen"}, Badges: []string{"Newcomer"}},
		},
	}
}

// SetDefaults registers every default value on v
func SetDefaults(v *viper.Viper) {
	defaults := Default()

	// Server defaults
	v.SetDefault("server.port", defaults.Server.Port)
	v.SetDefault("server.cors_origin", defaults.Server.CORSOrigin)
	v.SetDefault("server.shutdown_timeout", defaults.Server.ShutdownTimeout)

	// Auction defaults
	v.SetDefault("auction.item_name", defaults.Auction.ItemName)
	v.SetDefault("auction.item_description", defaults.Auction.ItemDescription)
	v.SetDefault("auction.starting_bid", defaults.Auction.StartingBid)
	v.SetDefault("auction.min_increment", defaults.Auction.MinIncrement)
	v.SetDefault("auction.duration", defaults.Auction.Duration)
	v.SetDefault("auction.max_teams", defaults.Auction.MaxTeams)
	v.SetDefault("auction.max_bids_per_team", defaults.Auction.MaxBidsPerTeam)

	// Badge defaults
	v.SetDefault("badges.active_bidder_threshold", defaults.Badges.ActiveBidderThreshold)
	v.SetDefault("badges.big_spender_threshold", defaults.Badges.BigSpenderThreshold)

	// Broadcast defaults
	v.SetDefault("broadcast.queue_size", defaults.Broadcast.QueueSize)
	v.SetDefault("broadcast.subscriber_buffer", defaults.Broadcast.SubscriberBuffer)

	v.SetDefault("store.path", defaults.Store.Path)

	// Logging defaults
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.format", defaults.Logging.Format)

	teams := make([]map[string]any, 0, len(defaults.Teams))
	for _, t := range defaults.Teams {
		teams = append(teams, map[string]any{
			"id":      t.ID,
			"name":    t.Name,
			"logo":    t.Logo,
			"color":   t.Color,
			"members": t.Members,
			"badges":  t.Badges,
		})
	}
	v.SetDefault("teams", teams)
}

// BindEnv makes AUCTION_* environment variables override file values
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	// e.g., AUCTION_AUCTION_MIN_INCREMENT for auction.min_increment
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load reads the configuration from v into a Config struct and validates it
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Roster converts the configured teams into models
func (c *Config) Roster() []models.Team {
	roster := make([]models.Team, 0, len(c.Teams))
	for _, t := range c.Teams {
		roster = append(roster, models.Team{
			ID:      t.ID,
			Name:    t.Name,
			Logo:    t.Logo,
			Color:   t.Color,
			Members: append([]string{}, t.Members...),
			Badges:  append([]string{}, t.Badges...),
		})
	}
	return roster
}
