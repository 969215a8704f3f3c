package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/greenscreenhq/greenscreen/internal/adapters/file"
	"github.com/greenscreenhq/greenscreen/internal/adapters/redis"
	"github.com/greenscreenhq/greenscreen/internal/adapters/x3270"
	"github.com/greenscreenhq/greenscreen/internal/logging"
	"github.com/greenscreenhq/greenscreen/pkg/ports"
)

var rootCmd = &cobra.Command{
	Use:   "greenscreen",
	Short: "Greenscreen automates data entry on block-mode host terminals",
	Long: `Greenscreen drives legacy TN3270/TN5250 hosts through scripted
navigation flows: it validates field values, walks menu steps, fills
forms with the tab choreography the host expects, and reports whether
the host accepted the submission.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Values in a local .env file become defaults; real env wins.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().String("screens-dir", envOr("GREENSCREEN_SCREENS_DIR", "screens"), "Directory holding YAML screen definitions")
	rootCmd.PersistentFlags().String("redis", os.Getenv("GREENSCREEN_REDIS_ADDR"), "Redis address for screen storage (overrides --screens-dir)")
	rootCmd.PersistentFlags().String("log-level", envOr("GREENSCREEN_LOG_LEVEL", "info"), "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", envOr("GREENSCREEN_LOG_FORMAT", "text"), "Log format (text, json)")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func newLogger(cmd *cobra.Command) *slog.Logger {
	name, _ := cmd.Flags().GetString("log-level")
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		level = slog.LevelInfo
	}
	if format, _ := cmd.Flags().GetString("log-format"); format == "json" {
		return logging.NewJSON(level)
	}
	return logging.New(level)
}

// openStore picks the screen store from flags: Redis when an address is
// given, the YAML directory otherwise.
func openStore(cmd *cobra.Command) ports.ConfigStore {
	if addr, _ := cmd.Flags().GetString("redis"); addr != "" {
		db := 0
		if v := os.Getenv("GREENSCREEN_REDIS_DB"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				db = n
			}
		}
		return redis.New(addr, os.Getenv("GREENSCREEN_REDIS_PASSWORD"), db)
	}
	dir, _ := cmd.Flags().GetString("screens-dir")
	return file.New(dir)
}

// connectHost opens a live terminal session from the host flags.
func connectHost(cmd *cobra.Command, logger *slog.Logger) (*x3270.Client, error) {
	host, _ := cmd.Flags().GetString("host")
	port, _ := cmd.Flags().GetInt("terminal-port")
	ssl, _ := cmd.Flags().GetBool("ssl")

	if host == "" {
		return nil, fmt.Errorf("no host given (use --host or GREENSCREEN_HOST)")
	}
	if _, err := x3270.CheckInstalled(""); err != nil {
		return nil, err
	}
	if err := x3270.Probe(host, port, 5*time.Second); err != nil {
		return nil, fmt.Errorf("host unreachable: %w", err)
	}
	return x3270.Connect(host, port,
		x3270.WithSSL(ssl),
		x3270.WithLogger(logger),
	)
}

// addHostFlags registers terminal connection flags. The host port is named
// --terminal-port so serve can keep --port for its HTTP listener.
func addHostFlags(cmd *cobra.Command) {
	cmd.Flags().String("host", os.Getenv("GREENSCREEN_HOST"), "Terminal host to connect to")
	cmd.Flags().Int("terminal-port", envInt("GREENSCREEN_PORT", 23), "Terminal port")
	cmd.Flags().Bool("ssl", os.Getenv("GREENSCREEN_SSL") == "true", "Use a TLS tunnel to the host")
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
