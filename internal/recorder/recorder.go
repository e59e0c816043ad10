package recorder

import "MortgageLab/internal/model"

// Recorder persists batch results for later analysis.
type Recorder interface {
	RecordBatch(title string, results []*model.ScenarioResult) error
	Close() error
}
