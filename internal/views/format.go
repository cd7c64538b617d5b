package views

import (
	"fmt"
	"time"
)

// TimeAgo renders t relative to now the way the feed shows it.
func TimeAgo(t, now time.Time) string {
	seconds := int64(now.Sub(t) / time.Second)
	switch {
	case seconds < 60:
		return "Just now"
	case seconds < 3600:
		return fmt.Sprintf("%dm ago", seconds/60)
	case seconds < 86400:
		return fmt.Sprintf("%dh ago", seconds/3600)
	case seconds < 30*86400:
		return fmt.Sprintf("%dd ago", seconds/86400)
	}
	return t.Format("Jan 2, 2006")
}

func FileSize(bytes int64) string {
	switch {
	case bytes < 1024:
		return fmt.Sprintf("%d B", bytes)
	case bytes < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(bytes)/1024)
	}
	return fmt.Sprintf("%.1f MB", float64(bytes)/(1024*1024))
}
