package api

type CurateRequest struct {
	TopicID  int64  `json:"topicId"`
	Topic    string `json:"topic"`
	Subtopic string `json:"subtopic"`
}

type CurateResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// WorkerResponse is what a curate call may answer with: message on success, error on failure.
type WorkerResponse struct {
	Message string `json:"message,omitempty"`
	Count   int    `json:"count,omitempty"`
	Error   string `json:"error,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
