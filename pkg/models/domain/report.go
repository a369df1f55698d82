package domain

type OutcomeStatus string

const (
	OutcomeSuccess OutcomeStatus = "success"
	OutcomeError   OutcomeStatus = "error"
)

// OutcomeDetail records what happened to a single WorkItem during a batch.
type OutcomeDetail struct {
	TopicID  int64
	Topic    string
	Subtopic string
	Status   OutcomeStatus
	Message  string
}

// BatchReport represents the result of one full pass over the syllabus.
// Processed + Errors always equals len(Details).
type BatchReport struct {
	RunID     string
	Total     int
	Processed int
	Errors    int
	Details   []OutcomeDetail
}

func NewBatchReport(runID string, total int) *BatchReport {
	return &BatchReport{
		RunID:   runID,
		Total:   total,
		Details: make([]OutcomeDetail, 0, total),
	}
}

// Record appends the outcome for item and updates the counters.
func (r *BatchReport) Record(item WorkItem, status OutcomeStatus, message string) {
	if status == OutcomeSuccess {
		r.Processed++
	} else {
		r.Errors++
	}
	r.Details = append(r.Details, OutcomeDetail{
		TopicID:  item.ID,
		Topic:    item.Topic,
		Subtopic: item.Subtopic,
		Status:   status,
		Message:  message,
	})
}
