package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/studyhub/internal/ai"
	"github.com/dmitrijs2005/studyhub/internal/config"
	"github.com/dmitrijs2005/studyhub/internal/logging"
	"github.com/dmitrijs2005/studyhub/internal/models"
	"github.com/dmitrijs2005/studyhub/internal/store"
)

func openStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(context.Background(), config.DriverSQLite, ":memory:", logging.NopLogger{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func strp(s string) *string { return &s }

type staticKeys map[string]string

func (k staticKeys) APIKey(_ context.Context, provider string) (string, error) {
	return k[provider], nil
}

type fakeCompleter struct {
	reply string
	err   error
	reqs  []ai.Request
}

func (f *fakeCompleter) Complete(_ context.Context, req ai.Request) (string, error) {
	f.reqs = append(f.reqs, req)
	return f.reply, f.err
}

var errDiskFull = errors.New("disk full")

// brokenFlashcards reads fine but fails every write.
type brokenFlashcards struct {
	cards []models.Flashcard
}

func (b *brokenFlashcards) Flashcards(context.Context) ([]models.Flashcard, error) {
	return append([]models.Flashcard(nil), b.cards...), nil
}

func (b *brokenFlashcards) SetFlashcards(context.Context, []models.Flashcard) error {
	return errDiskFull
}
