package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/akgoel-in/nivesh/internal/clients/nse"
	"github.com/akgoel-in/nivesh/internal/clients/yahoo"
	"github.com/akgoel-in/nivesh/internal/common"
	"github.com/akgoel-in/nivesh/internal/interfaces"
	"github.com/akgoel-in/nivesh/internal/services/average"
	"github.com/akgoel-in/nivesh/internal/services/batch"
	"github.com/akgoel-in/nivesh/internal/services/charts"
	"github.com/akgoel-in/nivesh/internal/services/directory"
	"github.com/akgoel-in/nivesh/internal/services/ticker"
)

// App holds all initialized clients and services. It is the shared core
// behind cmd/nivesh-server.
type App struct {
	Config           *common.Config
	Logger           *common.Logger
	MarketClient     interfaces.MarketDataClient
	DirectoryClient  interfaces.DirectoryClient
	TickerService    interfaces.TickerService
	AverageService   interfaces.AverageService
	BatchService     interfaces.BatchService
	DirectoryService interfaces.DirectoryService
	ChartService     interfaces.ChartService
	StartupTime      time.Time

	scheduler *cron.Cron
}

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// NewApp initializes clients and services from configuration.
// configPath may be empty, in which case the default resolution logic is used.
func NewApp(configPath string) (*App, error) {
	startupStart := time.Now()

	// Load version from .version file (fallback if ldflags not set)
	common.LoadVersionFromFile()

	binDir := getBinaryDir()

	// Load configuration - check provided path, NIVESH_CONFIG, then binary dir, then fallback
	if configPath == "" {
		configPath = os.Getenv("NIVESH_CONFIG")
	}
	if configPath == "" {
		configPath = filepath.Join(binDir, "nivesh.toml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			configPath = "config/nivesh.toml" // fallback for development
		}
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := common.NewLogger(config.Logging.Level)

	yahooClient := yahoo.NewClient(
		yahoo.WithBaseURL(config.Clients.Yahoo.BaseURL),
		yahoo.WithUserAgent(config.Clients.Yahoo.UserAgent),
		yahoo.WithRateLimit(config.Clients.Yahoo.RateLimit),
		yahoo.WithTimeout(config.Clients.Yahoo.GetTimeout()),
		yahoo.WithLogger(logger),
	)

	nseClient := nse.NewClient(
		nse.WithDirectoryURL(config.Clients.NSE.DirectoryURL),
		nse.WithTimeout(config.Clients.NSE.GetTimeout()),
		nse.WithLogger(logger),
	)

	tickerService := ticker.NewService(yahooClient, logger)
	averageService := average.NewService(yahooClient, tickerService, nil, logger)
	batchService := batch.NewService(yahooClient, averageService, config.Batch.Concurrency, logger)
	directoryService := directory.NewService(nseClient, logger)
	chartService := charts.NewService(averageService, logger)

	a := &App{
		Config:           config,
		Logger:           logger,
		MarketClient:     yahooClient,
		DirectoryClient:  nseClient,
		TickerService:    tickerService,
		AverageService:   averageService,
		BatchService:     batchService,
		DirectoryService: directoryService,
		ChartService:     chartService,
		StartupTime:      startupStart,
	}

	logger.Info().Dur("startup", time.Since(startupStart)).Msg("App initialized")

	return a, nil
}

// Close releases background resources held by the App.
func (a *App) Close() {
	a.StopScheduler()
}
