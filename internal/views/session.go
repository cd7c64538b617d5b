package views

import (
	"errors"
	"fmt"
	"slices"

	"github.com/dmitrijs2005/studyhub/internal/models"
)

var ErrEmptySession = errors.New("no flashcards to study")

// Session walks a snapshot of flashcards one card at a time. Later changes to
// the collection do not affect a running session.
type Session struct {
	cards    []models.Flashcard
	index    int
	flipped  bool
	complete bool
}

func NewSession(cards []models.Flashcard) (*Session, error) {
	if len(cards) == 0 {
		return nil, ErrEmptySession
	}
	return &Session{cards: slices.Clone(cards)}, nil
}

func (s *Session) Current() models.Flashcard { return s.cards[s.index] }

// Flipped reports whether the answer side is showing.
func (s *Session) Flipped() bool { return s.flipped }

// Complete reports whether Next was called on the last card.
func (s *Session) Complete() bool { return s.complete }

func (s *Session) Len() int { return len(s.cards) }

// Side returns the label and text of the visible side.
func (s *Session) Side() (label, text string) {
	c := s.Current()
	if s.flipped {
		return "ANSWER", c.Answer
	}
	return "QUESTION", c.Question
}

func (s *Session) Flip() { s.flipped = !s.flipped }

// Next advances the cursor. On the last card it marks the session complete
// and returns false; there is no wraparound.
func (s *Session) Next() bool {
	if s.complete {
		return false
	}
	if s.index < len(s.cards)-1 {
		s.index++
		s.flipped = false
		return true
	}
	s.complete = true
	return false
}

// Previous moves back one card, staying on the first card.
func (s *Session) Previous() {
	if s.complete {
		return
	}
	if s.index > 0 {
		s.index--
		s.flipped = false
	}
}

// Progress is the 1-based position, e.g. "3 / 8".
func (s *Session) Progress() string {
	return fmt.Sprintf("%d / %d", s.index+1, len(s.cards))
}
