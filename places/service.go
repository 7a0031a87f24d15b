package places

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"
)

// Service is the request orchestration engine: it classifies a unified
// request, builds the matching upstream call and normalizes whatever comes
// back. It holds no per-request state and is safe for concurrent use.
type Service struct {
	config   *Config
	executor *Executor
	logger   zerolog.Logger
}

// NewService wires the engine. A nil httpClient gets a default client; tests
// pass their own to point at a mock upstream.
func NewService(cfg *Config, httpClient *http.Client, logger zerolog.Logger) *Service {
	return &Service{
		config:   cfg,
		executor: NewExecutor(cfg, httpClient),
		logger:   logger,
	}
}

// Find runs one orchestration: classify, build field mask and call spec,
// execute, normalize. The only blocking point is the upstream call; a
// cancelled context aborts it and no partial result is returned.
func (s *Service) Find(ctx context.Context, req *UnifiedPlaceRequest) (*UnifiedPlaceResult, error) {
	kind, err := Classify(req)
	if err != nil {
		return nil, err
	}

	mask, err := BuildFieldMask(DetailTier(req.DetailTier), kind)
	if err != nil {
		return nil, err
	}

	spec, err := BuildCallSpec(s.config, req, kind, mask)
	if err != nil {
		return nil, err
	}

	// Log the call without its headers; the credential lives there.
	s.logger.Debug().
		Str("operation", string(kind)).
		Str("method", spec.Method).
		Str("url", spec.URL).
		Int("mask_fields", len(mask)).
		Msg("Calling places upstream")

	raw, err := s.executor.Execute(ctx, spec)
	if err != nil {
		s.logger.Warn().Err(err).Str("operation", string(kind)).Msg("Places upstream call failed")
		return nil, err
	}

	result, err := Normalize(kind, raw)
	if err != nil {
		s.logger.Warn().Err(err).Str("operation", string(kind)).Msg("Places upstream response rejected")
		return nil, err
	}

	s.logger.Info().
		Str("operation", string(kind)).
		Int("results", len(result.Places)).
		Msg("Place search completed")

	return result, nil
}
