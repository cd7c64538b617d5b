// Package video searches instructional videos through the YouTube Data API v3.
package video
