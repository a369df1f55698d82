package store

import "time"

// CuratedVideo is a row of the curated_videos table, keyed by VideoID.
type CuratedVideo struct {
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

// SyllabusEntry is a row of the syllabus table.
type SyllabusEntry struct {
	ID       int64
	Topic    string
	Subtopic string
}
