// Package container provides dependency injection for the application.
package container

import (
	"log/slog"

	"github.com/simkit-dev/modelcheck/internal/application/ports"
	"github.com/simkit-dev/modelcheck/internal/application/services"
	"github.com/simkit-dev/modelcheck/internal/domain/entities"
	domainservices "github.com/simkit-dev/modelcheck/internal/domain/services"
	"github.com/simkit-dev/modelcheck/internal/infrastructure/config"
	"github.com/simkit-dev/modelcheck/internal/infrastructure/formula"
	"github.com/simkit-dev/modelcheck/internal/infrastructure/output"
	"github.com/simkit-dev/modelcheck/internal/infrastructure/system"
)

// Container holds all application dependencies.
type Container struct {
	configLoader     *config.ConfigurationLoader
	parser           entities.ExpressionParser
	validator        ports.ConfigurationValidator
	formatterFactory ports.OutputFormatterFactory
	validateUseCase  *services.ValidateConfigurationUseCase
	originUseCase    *services.OriginReportUseCase
	systemCfg        *system.Config
	logger           *slog.Logger
}

// Options configure the container.
type Options struct {
	Logger *slog.Logger

	// SystemConfig is the decoded tool configuration; nil means defaults
	SystemConfig *system.Config
}

// New creates a new dependency injection container.
func New(opts Options) (*Container, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	systemCfg := opts.SystemConfig
	if systemCfg == nil {
		systemCfg = system.DefaultConfig()
	}
	if err := systemCfg.Validate(); err != nil {
		return nil, err
	}

	// Parser selection follows the configured dialect
	parser, err := formula.NewParser(systemCfg.ParserOptions())
	if err != nil {
		return nil, err
	}
	opts.Logger.Debug("formula parser ready",
		"dialect", systemCfg.Formula.Dialect,
		"max_length", systemCfg.Formula.MaxLength,
		"max_nodes", systemCfg.Formula.MaxNodes)

	configLoader := config.NewConfigurationLoader()
	validator := domainservices.NewBuildConfigurationValidator(parser)

	return &Container{
		configLoader:     configLoader,
		parser:           parser,
		validator:        validator,
		formatterFactory: output.NewFormatterFactory(),
		validateUseCase:  services.NewValidateConfigurationUseCase(configLoader, validator, opts.Logger),
		originUseCase:    services.NewOriginReportUseCase(configLoader, opts.Logger),
		systemCfg:        systemCfg,
		logger:           opts.Logger,
	}, nil
}

// ValidateConfigurationUseCase returns the validate configuration use case.
func (c *Container) ValidateConfigurationUseCase() *services.ValidateConfigurationUseCase {
	return c.validateUseCase
}

// OriginReportUseCase returns the value origin report use case.
func (c *Container) OriginReportUseCase() *services.OriginReportUseCase {
	return c.originUseCase
}

// ConfigurationLoader returns the configuration loader.
func (c *Container) ConfigurationLoader() *config.ConfigurationLoader {
	return c.configLoader
}

// Parser returns the configured expression parser.
func (c *Container) Parser() entities.ExpressionParser {
	return c.parser
}

// Validator returns the configuration validator port.
func (c *Container) Validator() ports.ConfigurationValidator {
	return c.validator
}

// FormatterFactory returns the output formatter factory.
func (c *Container) FormatterFactory() ports.OutputFormatterFactory {
	return c.formatterFactory
}

// SystemConfig returns the tool configuration.
func (c *Container) SystemConfig() *system.Config {
	return c.systemCfg
}

// Logger returns the configured logger.
func (c *Container) Logger() *slog.Logger {
	return c.logger
}
