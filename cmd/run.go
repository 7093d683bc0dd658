package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"walletbot/bot"
	"walletbot/config"
	"walletbot/db"
	"walletbot/dialog"
	"walletbot/exception"
	"walletbot/keystore"
	"walletbot/logx"
	"walletbot/monitoring"
	"walletbot/wallet"

	"github.com/spf13/cobra"
)

type RunConfig struct {
	ConfigPath string
	TuningPath string
}

var runConfig RunConfig

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the wallet bot",
	Long: `Starts the wallet bot with the console transport: each input line is
treated as a chat message from the configured owner. Configuration comes
from a YAML file plus an optional tuning .ini; both fall back to
defaults when missing.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runBot(runConfig); err != nil {
			logx.Error("RUN CLI", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.PersistentFlags().StringVarP(&runConfig.ConfigPath, "config", "c", config.DefaultConfigPath, "path to config.yml")
	runCmd.PersistentFlags().StringVarP(&runConfig.TuningPath, "tuning", "t", config.DefaultTuningPath, "path to tuning.ini")
}

func runBot(rc RunConfig) error {
	cfg, err := config.LoadAppConfig(rc.ConfigPath)
	if err != nil {
		if !os.IsNotExist(err) {
			return err
		}
		logx.Warn("RUN CLI", "No config file at ", rc.ConfigPath, ", using defaults")
		cfg = config.DefaultAppConfig()
	}

	monitoring.InitMetrics()

	store, err := openKeyStore(&cfg.Keystore)
	if err != nil {
		return err
	}
	defer store.MustClose()

	dispatcher := wallet.NewDispatcher(store)
	dialogs, err := dialog.NewManager(dispatcher, dialog.Options{
		Recreate:      dialog.RecreatePolicy(cfg.Wallet.Recreate),
		Midflow:       dialog.MidflowPolicy(cfg.Dialog.Midflow),
		DefaultScheme: cfg.Wallet.DefaultScheme,
	})
	if err != nil {
		return err
	}

	queueDepth := 0
	if tuning, err := config.LoadQueueConfig(rc.TuningPath); err == nil {
		queueDepth = tuning.OwnerDepth
	}
	if metrics, err := config.LoadMetricsConfig(rc.TuningPath); err == nil && metrics.Addr != "" {
		serveMetrics(metrics.Addr)
	}

	username := cfg.Bot.Username
	if username == "" {
		username = os.Getenv("USER")
	}
	transport := bot.NewConsoleTransport(cfg.Bot.Owner, username, os.Stdin, os.Stdout)
	service := bot.NewService(transport, dialogs, dispatcher.Schemes(), queueDepth)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logx.Info("RUN CLI", "Wallet bot started for owner ", cfg.Bot.Owner)
	if err := service.Run(ctx); err != nil && err != context.Canceled {
		return err
	}
	return nil
}

// openKeyStore builds the configured keystore backend. Private keys are
// sealed whenever a master key is present in the environment.
func openKeyStore(kc *config.KeystoreConfig) (keystore.Store, error) {
	var sealer *keystore.Sealer
	if mk := config.MasterKey(); mk != "" {
		var err error
		sealer, err = keystore.NewSealer(mk)
		if err != nil {
			return nil, err
		}
	} else {
		logx.Warn("RUN CLI", "No master key set, private keys are stored unsealed")
	}

	if kc.Backend == "postgres" {
		if kc.PostgresDSN == "" {
			return nil, fmt.Errorf("postgres backend needs a postgres_dsn")
		}
		pool, err := sql.Open("postgres", kc.PostgresDSN)
		if err != nil {
			return nil, err
		}
		if err := pool.Ping(); err != nil {
			return nil, err
		}
		return keystore.NewPgKeyStore(pool, sealer), nil
	}

	provider, err := db.NewProvider(db.BackendConfig{
		Type: db.BackendType(kc.Backend),
		Path: kc.Path,
	})
	if err != nil {
		return nil, err
	}
	ks, err := keystore.NewGenericKeyStore(provider, sealer)
	if err != nil {
		return nil, err
	}
	return ks, nil
}

func serveMetrics(addr string) {
	mux := http.NewServeMux()
	monitoring.RegisterMetrics(mux)
	exception.SafeGo("metrics-server", func() {
		if err := http.ListenAndServe(addr, mux); err != nil {
			logx.Error("RUN CLI", "Metrics server stopped: ", err)
		}
	})
}
