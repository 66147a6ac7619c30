package application

import (
	"fmt"
	"time"

	"github.com/abdidvp/growthcheck/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EvaluateService orchestrates one evaluation:
// load config → load growth reference → evaluate → record history.
type EvaluateService struct {
	configLoader domain.ConfigLoader
	references   domain.ReferenceLoader
	history      domain.EvaluationHistory
	logger       *zap.Logger
	now          func() time.Time
}

func NewEvaluateService(
	configLoader domain.ConfigLoader,
	references domain.ReferenceLoader,
	history domain.EvaluationHistory,
	logger *zap.Logger,
) *EvaluateService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EvaluateService{
		configLoader: configLoader,
		references:   references,
		history:      history,
		logger:       logger,
		now:          time.Now,
	}
}

// Evaluate runs an evaluation against the configuration of dataDir. A
// successful result is appended to the history; failing to store it is
// logged and does not fail the evaluation.
func (s *EvaluateService) Evaluate(dataDir string, in domain.EvaluationInput) (*domain.Evaluation, error) {
	cfg, err := s.configLoader.Load(dataDir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	table, err := s.references.Load(dataDir, cfg.Reference)
	if err != nil {
		return nil, fmt.Errorf("loading growth reference: %w", err)
	}

	ev, err := domain.Evaluate(in, table, cfg.Calories)
	if err != nil {
		s.logger.Debug("evaluation rejected",
			zap.String("kind", domain.ErrorKind(err)),
			zap.Error(err))
		return nil, err
	}

	entry := domain.HistoryEntry{
		ID:         uuid.NewString(),
		Timestamp:  s.now().UTC(),
		Evaluation: *ev,
	}
	if err := s.history.Append(dataDir, entry, cfg.History.Limit); err != nil {
		s.logger.Warn("could not record evaluation history",
			zap.String("data_dir", dataDir),
			zap.Error(err))
	} else {
		s.logger.Debug("evaluation recorded",
			zap.String("id", entry.ID),
			zap.String("branch", string(ev.Branch)),
			zap.String("category", string(ev.Category)))
	}
	return ev, nil
}

// History returns stored evaluations, newest first.
func (s *EvaluateService) History(dataDir string) ([]domain.HistoryEntry, error) {
	entries, err := s.history.Load(dataDir)
	if err != nil {
		return nil, fmt.Errorf("loading history: %w", err)
	}
	return entries, nil
}

// ClearHistory removes every stored evaluation.
func (s *EvaluateService) ClearHistory(dataDir string) error {
	if err := s.history.Clear(dataDir); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}
	s.logger.Info("history cleared", zap.String("data_dir", dataDir))
	return nil
}
