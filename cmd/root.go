package cmd

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/zhubert/launchpad/internal/app"
	"github.com/zhubert/launchpad/internal/catalog"
	"github.com/zhubert/launchpad/internal/config"
	"github.com/zhubert/launchpad/internal/logger"
)

var (
	debugMode             bool
	quietMode             bool
	logFile               string
	configPath            string
	catalogPath           string
	themeName             string
	rows, cols            int
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "launchpad",
	Short: "Paginated icon grid launcher for the terminal",
	Long: `Launchpad shows a catalog of programs as a paginated grid of icons.
Move with the arrow keys or hjkl, page with [ and ], and launch with enter
or by clicking the selected icon a second time.

The catalog is a JSON manifest or a directory of executables.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", true, "Enable debug logging (on by default)")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file (default "+logger.DefaultLogPath+")")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.launchpad/config.json)")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Catalog manifest or directory (overrides catalog_path)")
	rootCmd.PersistentFlags().IntVar(&rows, "rows", 0, "Grid rows (overrides config)")
	rootCmd.PersistentFlags().IntVar(&cols, "cols", 0, "Grid columns (overrides config)")
	rootCmd.Flags().StringVar(&themeName, "theme", "", "Color theme (overrides config)")
}

func initConfig() {
	if logFile != "" {
		if err := logger.Init(logFile); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	// Set version dynamically
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("launchpad %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("launchpad %s\n", version)
}

// loadConfig reads the config file and applies the command line overrides.
func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFrom(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}

	cfg.SetGrid(rows, cols)
	if themeName != "" {
		cfg.SetTheme(themeName)
	}
	if catalogPath != "" {
		cfg.SetCatalogPath(catalogPath)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadCatalog loads the catalog named by the config. A missing default
// catalog yields an empty grid; a catalog the user named must exist.
func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	path := cfg.GetCatalogPath()
	if path != "" {
		cat, err := catalog.Load(path)
		if err != nil {
			return nil, fmt.Errorf("error loading catalog: %w", err)
		}
		return cat, nil
	}

	path, err := config.DefaultCatalogPath()
	if err != nil {
		return nil, fmt.Errorf("error locating catalog: %w", err)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		logger.WithComponent("cmd").Warn("no catalog found", "path", path)
		return catalog.New()
	}
	cat, err := catalog.Load(path)
	if err != nil {
		return nil, fmt.Errorf("error loading catalog: %w", err)
	}
	return cat, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	// Ensure logger is closed on exit
	defer logger.Close()

	// Create and run the app
	m, err := app.New(cfg, cat, version)
	if err != nil {
		return fmt.Errorf("error creating app: %w", err)
	}
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
