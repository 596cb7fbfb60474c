// Package container provides dependency injection for the charge-calc application.
// It centralizes the creation and wiring of the logger, the record parser and
// the exporter so commands receive them fully configured.
package container

import (
	"fmt"

	"fjacquet/charge-calc/internal/config"
	"fjacquet/charge-calc/internal/export"
	"fjacquet/charge-calc/internal/fileutils"
	"fjacquet/charge-calc/internal/logging"
	"fjacquet/charge-calc/internal/parser"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation; dependencies are only reachable through
// getter methods.
type Container struct {
	logger   logging.Logger
	config   *config.Config
	parser   *parser.Parser
	exporter *export.Exporter
}

// NewContainer creates and wires all application dependencies, using a logrus
// logger configured from cfg.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	return NewContainerWithLogger(cfg, config.NewLogger(cfg))
}

// NewContainerWithLogger wires the dependencies around an existing logger.
func NewContainerWithLogger(cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	fileutils.SetLogger(logger)

	p := parser.New(logger, parser.WithContentSniffing(cfg.Parser.SniffContent))

	exp := export.New(logger, export.Options{
		Delimiter:      cfg.CSV.Comma(),
		IncludeHeaders: cfg.CSV.IncludeHeaders,
		Precision:      cfg.Output.Precision,
		SheetName:      cfg.Output.SheetName,
	})

	logger.Debug("Container initialized successfully",
		logging.F("sniff_content", cfg.Parser.SniffContent),
		logging.F("merge_duplicate_cycles", cfg.Parser.MergeDuplicateCycles),
		logging.F(logging.FieldDelimiter, cfg.CSV.Delimiter))

	return &Container{
		logger:   logger,
		config:   cfg,
		parser:   p,
		exporter: exp,
	}, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetParser returns the record parser.
func (c *Container) GetParser() *parser.Parser {
	return c.parser
}

// GetExporter returns the summary exporter.
func (c *Container) GetExporter() *export.Exporter {
	return c.exporter
}

// Close performs cleanup of container resources.
func (c *Container) Close() error {
	c.logger.Debug("Container closed")
	return nil
}
