// Package services contains application use cases.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/simkit-dev/modelcheck/internal/application/dto"
	apperrors "github.com/simkit-dev/modelcheck/internal/application/errors"
	"github.com/simkit-dev/modelcheck/internal/application/ports"
	"github.com/simkit-dev/modelcheck/internal/domain/values"
	"golang.org/x/sync/errgroup"
)

// ValidateConfigurationUseCase loads and validates configuration files.
// This is a pure application layer component that depends only on ports.
type ValidateConfigurationUseCase struct {
	loader    ports.ConfigurationLoader
	validator ports.ConfigurationValidator
	logger    *slog.Logger
}

// NewValidateConfigurationUseCase creates a new validate configuration use case.
func NewValidateConfigurationUseCase(
	loader ports.ConfigurationLoader,
	validator ports.ConfigurationValidator,
	logger *slog.Logger,
) *ValidateConfigurationUseCase {
	if logger == nil {
		logger = slog.Default()
	}

	return &ValidateConfigurationUseCase{
		loader:    loader,
		validator: validator,
		logger:    logger,
	}
}

// Execute validates every requested file. Files are processed concurrently
// but reports keep request order. A file that fails to load yields an
// invalid report rather than aborting the run.
func (uc *ValidateConfigurationUseCase) Execute(ctx context.Context, req dto.ValidateRequest) (*dto.ValidateResponse, error) {
	startTime := time.Now()

	if len(req.Paths) == 0 {
		return nil, apperrors.NewValidationError("paths", "at least one configuration file is required")
	}
	if req.Options.MaxConcurrency < 0 {
		return nil, apperrors.NewValidationError("max_concurrency", fmt.Sprintf("must not be negative, got %d", req.Options.MaxConcurrency))
	}

	runID := values.NewRunID()
	logger := uc.logger.With("run_id", runID.String())
	logger.Info("validating configurations", "files", len(req.Paths), "max_concurrency", req.Options.MaxConcurrency)

	reports := make([]dto.ConfigurationReport, len(req.Paths))

	g, gctx := errgroup.WithContext(ctx)
	if req.Options.MaxConcurrency > 0 {
		g.SetLimit(req.Options.MaxConcurrency)
	}

	for i, path := range req.Paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			// Each goroutine writes only its own slot.
			reports[i] = uc.validateFile(logger, path)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("validation cancelled: %w", err)
	}

	summary := dto.Summarize(reports)
	logger.Info("validation complete",
		"valid", summary.Valid,
		"warnings", summary.ValidWithWarnings,
		"invalid", summary.Invalid,
		"duration", time.Since(startTime))

	return &dto.ValidateResponse{
		RunID:   runID,
		Reports: reports,
		Summary: summary,
		Metadata: dto.ResponseMetadata{
			RequestID:   req.Metadata.RequestID,
			ProcessedAt: time.Now(),
			Duration:    time.Since(startTime),
		},
	}, nil
}

func (uc *ValidateConfigurationUseCase) validateFile(logger *slog.Logger, path string) dto.ConfigurationReport {
	start := time.Now()
	report := dto.ConfigurationReport{Path: path}

	logger.Debug("loading configuration", "path", path)

	cfg, err := uc.loader.Load(path)
	if err != nil {
		logger.Warn("failed to load configuration", "path", path, "error", err)
		report.LoadError = apperrors.WrapValidationError(path, "failed to load configuration", err)
		report.Duration = time.Since(start)
		return report
	}

	report.Name = cfg.Metadata.Name
	report.Version = cfg.Metadata.Version
	report.FormulaCount = cfg.FormulaCount()
	report.Result = uc.validator.Validate(cfg)
	report.Duration = time.Since(start)

	logger.Debug("configuration validated",
		"path", path,
		"name", report.Name,
		"formulas", report.FormulaCount,
		"messages", report.Result.Len(),
		"state", report.State())

	return report
}
