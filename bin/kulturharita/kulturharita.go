package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/AnkaWorks/kulturharita/boundaries"
	"github.com/AnkaWorks/kulturharita/catalog"
	"github.com/AnkaWorks/kulturharita/httpserver"
	"github.com/AnkaWorks/kulturharita/provinces"
	"github.com/AnkaWorks/kulturharita/pyroscope"
	"github.com/AnkaWorks/kulturharita/stats_collector"
	"github.com/AnkaWorks/kulturharita/version"
)

const (
	LOGFILE_NAME            = "logs/kulturharita.log"
	DEFAULT_CONFIG_FILENAME = "configs/kulturharita.toml"
)

func usage(flagSet *flag.FlagSet, output io.Writer) {
	fmt.Fprintf(output, "** Türkiye 81 İl Kültür Haritası. Version %s **\n", version.APP_VERSION)
	fmt.Fprintf(output, "Usage: %s [-debug] [-help] [-f <config-filename>]\n", os.Args[0])
	fmt.Fprint(output, "\n")
	fmt.Fprint(output, "Options:\n")
	flagSet.SetOutput(output)
	flagSet.PrintDefaults()
	fmt.Fprint(output, "\n")
}

func main() {
	flagSet := flag.NewFlagSet(os.Args[0], flag.ExitOnError)

	helpFlag := flagSet.Bool("help", false, "help!")
	debugFlag := flagSet.Bool("debug", false, "override config and turn on debug logging")
	flagSet.BoolVar(helpFlag, "h", false, "help!")
	configFileFlag := flagSet.String("f", DEFAULT_CONFIG_FILENAME, "config file to use")

	err := flagSet.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s", err)
		usage(flagSet, os.Stderr)
		os.Exit(2)
	}

	if *helpFlag {
		usage(flagSet, os.Stdout)
		os.Exit(0)
	}

	if len(flagSet.Args()) != 0 {
		usage(flagSet, os.Stderr)
		os.Exit(1)
	}

	defaultConfig := GetDefaultConfig()
	configFilename := *configFileFlag
	cfg, err := LoadConfig(configFilename, defaultConfig)
	if err != nil {
		log.Fatal(err)
	}
	cfg.Logging.Filename = LOGFILE_NAME

	if *debugFlag {
		cfg.Logging.Debug = true
	}

	logger := cfg.CreateLogger(true)
	logger.Infof("STARTUP: Version %s. Config loaded.", version.APP_VERSION)

	statsCollector := stats_collector.GetStatsCollector(cfg)
	logger.Infof("STARTUP: using %s stats collector", statsCollector.Name())

	if cfg.Pyroscope.Enabled() {
		if err := pyroscope.Run(cfg.Pyroscope); err != nil {
			logger.Errorf("STARTUP: Failed to initialize pyroscope: %v", err)
		} else {
			logger.Info("STARTUP: Initialized pyroscope")
		}
	}

	var wg sync.WaitGroup
	defer wg.Wait()

	ctx, cancelFn := context.WithCancel(context.Background())
	defer cancelFn()

	wg.Add(1)
	go func() {
		defer wg.Done()
		defer cancelFn()

		sig_ch := make(chan os.Signal, 1)
		signal.Notify(sig_ch, syscall.SIGINT, syscall.SIGTERM)
		select {
		case <-ctx.Done():
			// something else told us to exit
		case sig := <-sig_ch:
			logger.Infof("received signal '%s'", sig.String())
		}
	}()

	logger.Debugf("STARTUP: signal handler installed.")

	provincesLoader, err := provinces.NewLoader(logger, cfg.Provinces)
	if err != nil {
		logger.Fatalf("failed to create provinces loader: %v", err)
	}

	boundariesLoader, err := boundaries.NewLoader(logger, cfg.Boundaries)
	if err != nil {
		logger.Fatalf("failed to create boundaries loader: %v", err)
	}

	logger.Debugf("STARTUP: dataset loaders inited.")

	catalogManagerConfig := catalog.ManagerConfig{
		Logger:           logger,
		ProvincesLoader:  provincesLoader,
		BoundariesLoader: boundariesLoader,
		StatsCollector:   statsCollector,
	}

	catalogManager, err := catalog.NewManager(catalogManagerConfig)
	if err != nil {
		logger.Fatalf("failed to create catalog manager: %v", err)
	}

	if err := catalogManager.LoadCatalog(ctx, cfg.Catalog); err != nil {
		var fetchErr *boundaries.FetchError
		if errors.As(err, &fetchErr) {
			logger.Error(boundaries.UserFacingFetchErrorTR)
		}
		logger.Fatalf("failed to load catalog: %v", err)
	}

	logger.Debugf("STARTUP: catalog initialized.")

	reloadFn := func() error {
		cfg, err := LoadConfig(configFilename, defaultConfig)
		if err != nil {
			return fmt.Errorf("failed to reload config file: %w", err)
		}
		err = catalogManager.LoadCatalog(ctx, cfg.Catalog)
		if err != nil {
			return fmt.Errorf("failed to reload catalog: %w", err)
		}
		return nil
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		defer cancelFn()

		sig_ch := make(chan os.Signal, 1)
		signal.Notify(sig_ch, syscall.SIGHUP)
		for {
			select {
			case <-ctx.Done():
				// something else told us to exit
				return
			case sig := <-sig_ch:
				logger.Infof("received signal '%s' -- Reloading config.", sig.String())
				err := reloadFn()
				if err == nil {
					logger.Infof("catalog config reloaded")
				} else {
					logger.Error(err)
				}
			}
		}
	}()
	logger.Debugf("STARTUP: installed reload (SIGHUP) handler")

	httpServer, err := httpserver.NewHTTPServer(logger, catalogManager, statsCollector, reloadFn)
	if err != nil {
		logger.Fatalf("failed to create http server: %v", err)
	}

	logger.Infof("STARTUP: starting http server (final step)")
	err = httpServer.Run(ctx, cfg.HTTP.Addr, time.Second*5)
	if err != nil {
		logger.Fatalf("failed to run http server: %v", err)
	}

	// http server could have shut down early or not started. The defers
	// above will cancel and wait for things to shutdown cleanly.
}
