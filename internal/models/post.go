package models

import "time"

// DefaultAuthor is the placeholder author of every post.
const DefaultAuthor = "Student"

// Comment is reserved for comment authoring; posts always carry none.
type Comment struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// Post is a community feed entry.
type Post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	Author    string    `json:"author"`
	Likes     int       `json:"likes"`
	Liked     bool      `json:"liked"`
	Comments  []Comment `json:"comments"`
	CreatedAt time.Time `json:"createdAt"`
}

// PostInput carries the form fields of a new post.
type PostInput struct {
	Title    string
	Content  string
	Category string
}
