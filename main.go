package main

import (
	auction "auction-coordinator/internal/auctionService"
	"auction-coordinator/internal/broadcast"
	"auction-coordinator/internal/config"
	"auction-coordinator/internal/repository"
	"auction-coordinator/internal/server"
	"auction-coordinator/utils"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"code.cloudfoundry.org/clock"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
)

var rootCmd = &cobra.Command{
	Use:   "auction-coordinator",
	Short: "Live team auction coordinator",
	Long: `auction-coordinator runs a single live auction: teams submit bids over
HTTP and every connected viewer receives state changes as server-sent events.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return run(cmd.Context())
	},
}

func init() {
	flags := rootCmd.Flags()
	flags.StringP("config", "c", "", "config file (default is ./auction.yaml)")
	flags.IntP("port", "p", 0, "HTTP port (overrides server.port)")
	flags.String("store-path", "", "YAML file used to persist auction state (overrides store.path)")
	flags.String("log-level", "", "log level (overrides logging.level)")

	_ = viper.BindPFlag("config", flags.Lookup("config"))
	_ = viper.BindPFlag("server.port", flags.Lookup("port"))
	_ = viper.BindPFlag("store.path", flags.Lookup("store-path"))
	_ = viper.BindPFlag("logging.level", flags.Lookup("log-level"))
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		utils.Fatal("auction-coordinator exited", map[string]any{"error": err.Error()})
	}
}

// loadConfig layers defaults, the optional config file, env and flags
func loadConfig(v *viper.Viper) (*config.Config, error) {
	config.SetDefaults(v)
	config.BindEnv(v)

	if cfgFile := v.GetString("config"); cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("auction")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return config.Load(v)
}

func run(ctx context.Context) error {
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}
	if err := utils.ConfigureLogger(cfg.Logging.Level, cfg.Logging.Format); err != nil {
		return err
	}

	teams, err := repository.NewTeamRegistry(cfg.Roster(), cfg.Auction.MaxTeams)
	if err != nil {
		return err
	}

	var store repository.StateStore = repository.NewMemoryStore()
	if cfg.Store.Path != "" {
		store = repository.NewFileStore(cfg.Store.Path)
	}

	hub := broadcast.NewHub(cfg.Broadcast.QueueSize, cfg.Broadcast.SubscriberBuffer)

	coordinator := auction.NewCoordinator(auction.Settings{
		Lot: auction.Lot{
			ItemName:        cfg.Auction.ItemName,
			ItemDescription: cfg.Auction.ItemDescription,
			StartingBid:     cfg.Auction.StartingBid,
			MinIncrement:    cfg.Auction.MinIncrement,
		},
		Duration:       cfg.Auction.Duration,
		MaxBidsPerTeam: cfg.Auction.MaxBidsPerTeam,
		Badges:         auction.DefaultBadgePolicy(cfg.Badges.ActiveBidderThreshold, cfg.Badges.BigSpenderThreshold),
	}, teams, hub, store, clock.NewClock())

	if err := coordinator.Restore(); err != nil {
		return err
	}

	router := server.SetupRouter(coordinator, hub, cfg.Server.CORSOrigin)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return hub.Run(gctx)
	})

	g.Go(func() error {
		utils.Info("starting auction server", map[string]any{
			"addr":  srv.Addr,
			"teams": teams.Len(),
			"store": cfg.Store.Path,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		utils.Info("shutting down auction server", map[string]any{"timeout": cfg.Server.ShutdownTimeout.String()})
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
