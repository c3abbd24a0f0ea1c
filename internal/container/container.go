// Package container provides dependency injection for the bank-reco application.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"fmt"
	"sync"

	"fjacquet/bank-reco/internal/config"
	"fjacquet/bank-reco/internal/dataset"
	"fjacquet/bank-reco/internal/logging"
	"fjacquet/bank-reco/internal/models"
	"fjacquet/bank-reco/internal/recommend"
	"fjacquet/bank-reco/internal/report"
	"fjacquet/bank-reco/internal/store"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation apart from the lazily loaded
// product table, which is read at most once.
type Container struct {
	logger      logging.Logger
	config      *config.Config
	store       *store.GoalStore
	loader      *dataset.Loader
	recommender *recommend.Recommender
	generator   *report.Generator

	loadOnce sync.Once
	products models.Dataset
	loadErr  error
}

// NewContainer creates and wires all application dependencies.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	return NewContainerWithLogger(cfg, logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format))
}

// NewContainerWithLogger wires the dependencies around an existing logger.
func NewContainerWithLogger(cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}

	goalStore := store.NewGoalStore(cfg.Recommend.GoalsFile, logger)
	rules, err := goalStore.LoadRules()
	if err != nil {
		return nil, fmt.Errorf("failed to load goal keywords: %w", err)
	}

	loader := dataset.NewLoader(logger, dataset.Options{
		Delimiter: cfg.Delimiter(),
		Sheet:     cfg.Data.Sheet,
	})

	recommender := recommend.NewRecommender(logger, rules, recommend.Options{
		HighYieldThreshold: cfg.Recommend.HighYieldThreshold,
		MaxCompare:         cfg.Recommend.MaxCompare,
	})

	generator := report.NewGenerator(logger, cfg.Delimiter())

	logger.Debug("Container initialized successfully",
		logging.F(logging.FieldFile, cfg.Data.File),
		logging.F("max_compare", recommender.MaxCompare()))

	return &Container{
		logger:      logger,
		config:      cfg,
		store:       goalStore,
		loader:      loader,
		recommender: recommender,
		generator:   generator,
	}, nil
}

// LoadDataset reads the configured product table on first use and returns
// the same Dataset on every later call.
func (c *Container) LoadDataset() (models.Dataset, error) {
	c.loadOnce.Do(func() {
		c.products, c.loadErr = c.loader.Load(c.config.Data.File)
	})
	return c.products, c.loadErr
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetStore returns the goal keyword store.
func (c *Container) GetStore() *store.GoalStore {
	return c.store
}

// GetLoader returns the product table loader.
func (c *Container) GetLoader() *dataset.Loader {
	return c.loader
}

// GetRecommender returns the recommender.
func (c *Container) GetRecommender() *recommend.Recommender {
	return c.recommender
}

// GetGenerator returns the report generator.
func (c *Container) GetGenerator() *report.Generator {
	return c.generator
}

// Close performs cleanup of container resources.
func (c *Container) Close() error {
	c.logger.Debug("Container closed")
	return nil
}
