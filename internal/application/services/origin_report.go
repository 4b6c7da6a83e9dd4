package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/simkit-dev/modelcheck/internal/application/dto"
	apperrors "github.com/simkit-dev/modelcheck/internal/application/errors"
	"github.com/simkit-dev/modelcheck/internal/application/ports"
	"github.com/simkit-dev/modelcheck/internal/domain/services"
)

// OriginReportUseCase lists the distinct value origins of a configuration.
type OriginReportUseCase struct {
	loader ports.ConfigurationLoader
	logger *slog.Logger
}

// NewOriginReportUseCase creates a new origin report use case.
func NewOriginReportUseCase(loader ports.ConfigurationLoader, logger *slog.Logger) *OriginReportUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &OriginReportUseCase{loader: loader, logger: logger}
}

// Execute loads the configuration and indexes its value origins.
func (uc *OriginReportUseCase) Execute(ctx context.Context, req dto.OriginReportRequest) (*dto.OriginReportResponse, error) {
	startTime := time.Now()

	if req.Path == "" {
		return nil, apperrors.NewValidationError("path", "a configuration file is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	uc.logger.Info("loading configuration", "path", req.Path)

	cfg, err := uc.loader.Load(req.Path)
	if err != nil {
		return nil, apperrors.WrapValidationError(req.Path, "failed to load configuration", err)
	}

	index := services.BuildValueOriginIndex(cfg)
	uc.logger.Info("value origins indexed", "distinct", index.Len(), "undefined", index.UndefinedCount())

	return &dto.OriginReportResponse{
		Path:           req.Path,
		Name:           cfg.Metadata.Name,
		Version:        cfg.Metadata.Version,
		Entries:        index.Entries(),
		UndefinedCount: index.UndefinedCount(),
		Metadata: dto.ResponseMetadata{
			RequestID:   req.Metadata.RequestID,
			ProcessedAt: time.Now(),
			Duration:    time.Since(startTime),
		},
	}, nil
}
