package adapters

import (
	"github.com/de-tools/video-curator/pkg/models/domain"
	"github.com/de-tools/video-curator/pkg/models/store"
)

func MapDomainVideoToStore(v domain.Video) store.CuratedVideo {
	return store.CuratedVideo{
		VideoID:      v.VideoID,
		ChannelName:  v.ChannelName,
		Title:        v.Title,
		Description:  v.Description,
		ThumbnailURL: v.ThumbnailURL,
		PublishedAt:  v.PublishedAt,
		Topic:        v.Topic,
		Subtopic:     v.Subtopic,
		TopicID:      v.TopicID,
	}
}

// MapDomainVideosToStore converts videos to rows, keeping only the last
// occurrence of each video id while preserving first-seen order.
func MapDomainVideosToStore(videos []domain.Video) []store.CuratedVideo {
	index := make(map[string]int, len(videos))
	rows := make([]store.CuratedVideo, 0, len(videos))
	for _, v := range videos {
		row := MapDomainVideoToStore(v)
		if i, ok := index[v.VideoID]; ok {
			rows[i] = row
			continue
		}
		index[v.VideoID] = len(rows)
		rows = append(rows, row)
	}
	return rows
}

func MapStoreSyllabusEntryToDomain(e store.SyllabusEntry) domain.WorkItem {
	return domain.WorkItem{
		ID:       e.ID,
		Topic:    e.Topic,
		Subtopic: e.Subtopic,
	}
}
