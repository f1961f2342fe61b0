package history

import (
	"go.uber.org/zap"

	"nexus/internal/domain"
)

// Source adapts the store to the query engine's read-only view. The engine
// is a total function with no error path, so read failures degrade to an
// empty history with a logged warning.
type Source struct {
	store  *Store
	limit  int
	logger *zap.Logger
}

// NewSource caps reads at limit records (<= 0 for all).
func NewSource(store *Store, limit int, logger *zap.Logger) *Source {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Source{store: store, limit: limit, logger: logger.Named("history")}
}

func (s *Source) Recent() []domain.HistoryRecord {
	records, err := s.store.Recent(s.limit)
	if err != nil {
		s.logger.Warn("history read failed", zap.Error(err))
		return nil
	}
	return records
}
