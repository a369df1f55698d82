package curator

import "github.com/prometheus/client_golang/prometheus"

var videosSaved = prometheus.NewCounter(
	prometheus.CounterOpts{
		Namespace: "curator",
		Name:      "videos_saved_total",
		Help:      "Total number of videos upserted into curated_videos",
	},
)

func init() {
	prometheus.MustRegister(videosSaved)
}
