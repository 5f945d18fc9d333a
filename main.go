package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/platemap/internal/app"
	"github.com/llehouerou/platemap/internal/catalog"
	"github.com/llehouerou/platemap/internal/config"
	"github.com/llehouerou/platemap/internal/errmsg"
	"github.com/llehouerou/platemap/internal/logging"
)

func openCatalog(cfg *config.Config, log *slog.Logger) (*catalog.Store, error) {
	var (
		store *catalog.Store
		err   error
	)
	if cfg.HasCatalogPath() {
		store, err = catalog.OpenPath(cfg.Catalog.Path)
	} else {
		store, err = catalog.Open()
	}
	if err != nil {
		return nil, errors.New(errmsg.Format(errmsg.OpCatalogOpen, err))
	}

	// First run: fill an empty catalog with the bundled places
	n, err := store.Seed(catalog.Demo)
	if err != nil {
		store.Close()
		return nil, errors.New(errmsg.Format(errmsg.OpCatalogSeed, err))
	}
	if n > 0 {
		log.Info("catalog seeded", "places", n)
	}
	return store, nil
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}

	logCfg, err := cfg.GetLogConfig()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpLogSetup, err))
	}
	log, closeLog, err := logging.Setup(logging.Options{
		Level:    logCfg.Level,
		File:     logCfg.File,
		Disabled: logCfg.Disabled,
	})
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpLogSetup, err))
	}
	defer closeLog()

	store, err := openCatalog(cfg, log)
	if err != nil {
		log.Error("startup failed", "err", err)
		return err
	}
	defer store.Close()

	m, err := app.New(app.Options{
		Catalog:        store,
		Sheet:          cfg.GetSheetConfig(),
		Detail:         cfg.GetDetailConfig(),
		VelocityWindow: cfg.VelocityWindow(),
		PointsPerRow:   cfg.PointsPerRow(),
		Logger:         log,
	})
	if err != nil {
		log.Error("startup failed", "err", err)
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}

	log.Info("starting")
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		log.Error("program exited with error", "err", err)
		return fmt.Errorf("run program: %w", err)
	}
	log.Info("exiting")
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
