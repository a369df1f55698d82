package domain

import "time"

// WorkItem is a single topic/subtopic pairing read from the syllabus.
type WorkItem struct {
	ID       int64
	Topic    string
	Subtopic string
}

// Video is a search hit tagged with the syllabus entry it was found for.
type Video struct {
	VideoID      string
	ChannelName  string
	Title        string
	Description  string
	ThumbnailURL string
	PublishedAt  time.Time
	Topic        string
	Subtopic     string
	TopicID      int64
}

// WorkerResult is the non-exceptional outcome of curating one WorkItem.
type WorkerResult struct {
	OK      bool
	Message string
	Count   int
}
