package senado

import (
	"log/slog"

	"bills_fetcher/internal/domain"
)

const SourceID = "senado"

// Site turns Senate listing and detail pages into records.
type Site struct {
	cfg    Config
	logger *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Site {
	cfg.setDefaults()
	return &Site{
		cfg:    cfg,
		logger: logger.With("source", SourceID, "kind", cfg.Kind),
	}
}

func (s *Site) Kind() domain.Kind {
	return s.cfg.Kind
}

func (s *Site) ListURL(l domain.Legislatura) string {
	return s.cfg.ListURL(l)
}

func (s *Site) committee(raw string) string {
	committee := collapseSpaces(raw)
	if committee == "" || committee == "-" {
		return s.cfg.UnassignedCommittee
	}
	return committee
}
