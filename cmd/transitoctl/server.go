package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/transitohq/transito-in-go/pkg/audit"
	"github.com/transitohq/transito-in-go/pkg/config"
	"github.com/transitohq/transito-in-go/pkg/db"
	"github.com/transitohq/transito-in-go/pkg/metrics"
	"github.com/transitohq/transito-in-go/pkg/server"
	"github.com/transitohq/transito-in-go/pkg/server/endpoints"
)

const (
	connectAttempts = 10
	connectDelay    = 3 * time.Second
)

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the consulta API server",
	Long: `Run the consulta API server.

Connection settings come from the environment (DB_HOST, DB_PORT, DB_USER,
DB_PASSWORD, DB_NAME) or from an optional transito.yml config file.

The schema is owned by the registry and is not migrated on startup; use
"transitoctl db migrate" to create it, or pass --migrate.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}

		if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
			logrus.SetLevel(level)
		}

		if migrateFirst, _ := cmd.Flags().GetBool("migrate"); migrateFirst {
			logrus.Info("Running database migrations...")
			if err := runMigrations(); err != nil {
				fmt.Fprintf(os.Stderr, "Migration failed: %v\n", err)
				os.Exit(1)
			}
		}

		dbCfg := db.Config{
			Host:     cfg.Database.Host,
			Port:     cfg.Database.Port,
			User:     cfg.Database.User,
			Password: cfg.Database.Password,
			Database: cfg.Database.Name,
			Charset:  cfg.Database.Charset,
			LogSQL:   cfg.LogLevel == "debug",
		}

		// The pool is established once, here. If MySQL never comes up the
		// server still starts and every data access fails fast; only the
		// startup path retries.
		gormDB, err := db.ConnectWithRetry(dbCfg, connectAttempts, connectDelay)
		if err != nil {
			logrus.Errorf("starting without a database pool: %v", err)
			gormDB = nil
		}

		host, _ := cmd.Flags().GetString("bind-address")
		if host == "" {
			host = cfg.BindAddress
		}
		port, _ := cmd.Flags().GetString("port")
		if port == "" {
			port = strconv.Itoa(cfg.Port)
		}

		s := server.NewServer(gormDB, metrics.New(), host, port)
		if cfg.AuditEnabled {
			trail := audit.NewLogger()
			if cfg.AuditPersist && gormDB != nil {
				trail.SetStore(audit.NewStore(gormDB))
			}
			s.Audit = trail
		}
		endpoints.RegisterAll(s)

		logrus.Infof("Running server at http://%s:%s...", host, port)
		logrus.Fatal(s.Start())
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)

	serverCmd.Flags().StringP("port", "p", "", "server listen port (default from config)")
	serverCmd.Flags().StringP("bind-address", "b", "", "server bind address (default from config)")
	serverCmd.Flags().Bool("migrate", false, "run database migrations before starting")
}
