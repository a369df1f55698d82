package youtube

// Data API v3 search.list response, trimmed to the fields we persist.

type searchResponse struct {
	Items []searchItem `json:"items"`
}

type searchItem struct {
	ID      searchItemID `json:"id"`
	Snippet *snippet     `json:"snippet"`
}

type searchItemID struct {
	VideoID string `json:"videoId"`
}

type snippet struct {
	PublishedAt  string      `json:"publishedAt"`
	ChannelTitle string      `json:"channelTitle"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	Thumbnails   *thumbnails `json:"thumbnails"`
}

type thumbnails struct {
	Default *thumbnail `json:"default"`
}

type thumbnail struct {
	URL string `json:"url"`
}
