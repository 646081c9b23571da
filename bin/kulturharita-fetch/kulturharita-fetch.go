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

	"github.com/AnkaWorks/kulturharita/boundaries"
	"github.com/AnkaWorks/kulturharita/catalog"
	"github.com/AnkaWorks/kulturharita/provinces"
	"github.com/AnkaWorks/kulturharita/version"
)

const (
	LOGFILE_NAME            = "logs/kulturharita-fetch.log"
	DEFAULT_CONFIG_FILENAME = "./configs/kulturharita.toml"
)

func usage(flagSet *flag.FlagSet, output io.Writer) {
	fmt.Fprintf(output, "** Türkiye 81 İl Kültür Haritası. Version %s **\n", version.APP_VERSION)
	fmt.Fprintf(output, "Usage: %s [-help] [-debug] [-refresh] [-f configfile]\n", os.Args[0])
	fmt.Fprint(output, "\n")
	fmt.Fprintf(output, "%s seeds the boundary geojson cache and checks the datasets against ", os.Args[0])
	fmt.Fprint(output, "each other, so the first server start never has to wait on the mirrors.\n")
	fmt.Fprint(output, "It reports every content record that matches no boundary feature.\n")
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
	refreshFlag := flagSet.Bool("refresh", false, "remove the cached boundary geojson first and download fresh from the mirrors")

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

	cfg, err := LoadConfig(*configFileFlag)
	if err != nil {
		log.Fatal(err)
	}
	cfg.Logging.Filename = LOGFILE_NAME

	if *debugFlag {
		cfg.Logging.Debug = true
	}

	logger := cfg.CreateLogger(true)
	logger.Infof("STARTUP: Version %s. Config loaded.", version.APP_VERSION)

	provincesLoader, err := provinces.NewLoader(logger, cfg.Provinces)
	if err != nil {
		logger.Errorf("failed to create provinces loader: %v", err)
		os.Exit(1)
	}

	boundariesLoader, err := boundaries.NewLoader(logger, cfg.Boundaries)
	if err != nil {
		logger.Errorf("failed to create boundaries loader: %v", err)
		os.Exit(1)
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

	if *refreshFlag && cfg.Boundaries.Filename == "" {
		cachePath := boundariesLoader.FullCachePath()
		if err := os.Remove(cachePath); err == nil {
			logger.Infof("removed cached boundary geojson '%s'", cachePath)
		} else if !os.IsNotExist(err) {
			logger.Errorf("failed to remove cached boundary geojson '%s': %v", cachePath, err)
			os.Exit(1)
		}
	}

	fc, origin, err := boundariesLoader.Load(ctx)
	if err != nil {
		var fetchErr *boundaries.FetchError
		if errors.As(err, &fetchErr) {
			logger.Error(boundaries.UserFacingFetchErrorTR)
		}
		logger.Errorf("failed to load boundaries: %v", err)
		os.Exit(1)
	}
	logger.Infof("%d boundary feature(s) loaded (origin: %s)", len(fc.Features), origin)

	records, err := provincesLoader.Load(ctx)
	if err != nil {
		logger.Errorf("failed to load province records: %v", err)
		os.Exit(1)
	}
	logger.Infof("%d province record(s) loaded", len(records))

	ctl, err := catalog.New(logger, records, fc, cfg.Catalog)
	if err != nil {
		logger.Errorf("failed to build catalog: %v", err)
		os.Exit(1)
	}

	unmatched := 0
	for _, row := range ctl.Rows() {
		if !row.Matched {
			logger.Warnf("record '%s' matches no boundary feature", row.Name)
			unmatched++
		}
	}

	if unmatched > 0 {
		logger.Errorf("%d of %d record(s) have no boundary feature.", unmatched, ctl.Len())
		os.Exit(1)
	}

	logger.Infof("All %d record(s) matched a boundary feature. Done.", ctl.Len())
}
