package models

import "time"

// Flashcard is a single question/answer card.
type Flashcard struct {
	ID        string    `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Category  string    `json:"category"`
	Topic     string    `json:"topic,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FlashcardInput carries user-supplied fields for create and update.
// Nil pointers in an update leave the stored value untouched.
type FlashcardInput struct {
	Question *string
	Answer   *string
	Category *string
	Topic    *string
}

// Pair is one question/answer block extracted from AI output.
type Pair struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
