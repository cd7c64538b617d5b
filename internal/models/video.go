package models

// Video is the display record of one search result.
type Video struct {
	VideoID      string `json:"videoId"`
	ThumbnailURL string `json:"thumbnailUrl"`
	Title        string `json:"title"`
	ChannelTitle string `json:"channelTitle"`
}

// WatchURL is the public page of the video.
func (v Video) WatchURL() string {
	return "https://www.youtube.com/watch?v=" + v.VideoID
}

// Stats are the collection counters shown on the home page.
type Stats struct {
	Flashcards   int `json:"flashcards"`
	Posts        int `json:"posts"`
	ChatMessages int `json:"chatMessages"`
}
