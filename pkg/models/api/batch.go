package api

type OutcomeDetail struct {
	TopicID  int64  `json:"topicId"`
	Topic    string `json:"topic"`
	Subtopic string `json:"subtopic"`
	Status   string `json:"status"`
	Message  string `json:"message"`
}

type BatchReport struct {
	Total     int             `json:"total"`
	Processed int             `json:"processed"`
	Errors    int             `json:"errors"`
	Details   []OutcomeDetail `json:"details"`
}
