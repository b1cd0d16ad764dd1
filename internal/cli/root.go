// filepath: internal/cli/root.go
package cli

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"animehub/internal/config"
	"animehub/internal/logging"
)

var (
	// Version info
	Version   = "1.0.0"
	StartTime time.Time

	// Global config object populated by flags/env/file
	cfg *config.Config

	// Flags
	cfgFile      string
	host         string
	port         int
	dbPath       string
	logLevel     string
	initConfig   string
	auditEnabled bool
)

// RootCmd represents the base command when called without any subcommands.
// It starts the HTTP server.
var RootCmd = &cobra.Command{
	Use:   "animehub",
	Short: "AnimeHub catalog API",
	Long:  `A REST backend for the AnimeHub frontend: media catalog, broadcast schedules, user accounts and visitor counters.`,
	// PersistentPreRunE loads the configuration before any command runs.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	StartTime = time.Now()

	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config_path", "config.toml", "Path to the base configuration file. (Env: ANIMEHUB_CONFIG_PATH)")
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Logging level (debug, info, warn, error). (Env: ANIMEHUB_LOG_LEVEL)")
	RootCmd.PersistentFlags().StringVar(&dbPath, "db-path", "", "Path to the SQLite database file. (Env: ANIMEHUB_DATABASE_PATH)")

	// Server-specific flags
	RootCmd.Flags().StringVar(&host, "host", "", "Address for the HTTP server to bind. (Env: ANIMEHUB_HOST)")
	RootCmd.Flags().IntVar(&port, "port", 0, "Port for the HTTP server. (Env: ANIMEHUB_PORT)")
	RootCmd.Flags().StringVar(&initConfig, "init_config", "", "Path to a TOML file for one-time initialization of users. (Env: ANIMEHUB_INIT_CONFIG)")
	RootCmd.Flags().BoolVar(&auditEnabled, "audit-enabled", false, "Enable detailed audit logging. (Env: ANIMEHUB_AUDIT_ENABLED=true)")
}

// initializeConfig loads and overrides configuration values.
func initializeConfig(cmd *cobra.Command) error {
	// 1. Check environment variable for config path first
	if envPath := os.Getenv("ANIMEHUB_CONFIG_PATH"); envPath != "" && cfgFile == "config.toml" {
		cfgFile = envPath
	}

	var err error
	cfg, err = config.LoadConfig(cfgFile)
	if err != nil {
		if os.IsNotExist(err) {
			// Create empty config if not found, rely on defaults/flags
			cfg = &config.Config{}
		} else {
			return fmt.Errorf("failed to load configuration from %s: %w", cfgFile, err)
		}
	}

	// 2. Apply Overrides (Env Vars and CLI Flags)
	applyOverrides(cfg, cmd)

	// 3. Validate
	if err := cfg.ParseAndValidate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// 4. Initialize Logging
	logging.Init(cfg.Logging.Level)

	return nil
}

func applyOverrides(c *config.Config, cmd *cobra.Command) {
	// --- 1. Environment Variables ---
	if v := os.Getenv("ANIMEHUB_HOST"); v != "" {
		c.Server.Host = v
	}
	if v := os.Getenv("ANIMEHUB_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Server.Port = p
		}
	}
	if v := os.Getenv("ANIMEHUB_DATABASE_PATH"); v != "" {
		c.Database.Path = v
	}
	if v := os.Getenv("ANIMEHUB_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("ANIMEHUB_AUDIT_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Logging.AuditEnabled = b
		}
	}
	if v := os.Getenv("ANIMEHUB_ADMIN_USER"); v != "" {
		c.Admin.User = v
	}
	if v := os.Getenv("ANIMEHUB_ADMIN_PASSWORD"); v != "" {
		c.Admin.Password = v
	}
	if v := os.Getenv("ANIMEHUB_ADMIN_ROLE"); v != "" {
		c.Admin.Role = v
	}

	// --- 2. CLI Flags (Take precedence) ---
	if host != "" {
		c.Server.Host = host
	}
	if port != 0 {
		c.Server.Port = port
	}
	if dbPath != "" {
		c.Database.Path = dbPath
	}
	if logLevel != "" {
		c.Logging.Level = logLevel
	}
	// Check if flag was explicitly set
	if cmd.Flags().Changed("audit-enabled") {
		c.Logging.AuditEnabled = auditEnabled
	}
	if initConfig == "" {
		if v := os.Getenv("ANIMEHUB_INIT_CONFIG"); v != "" {
			initConfig = v
		}
	}

	// --- 3. Defaults ---
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 5000
	}
	if c.Database.Path == "" {
		c.Database.Path = "animehub.db"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Admin.Role == "" {
		c.Admin.Role = "admin"
	}
}
