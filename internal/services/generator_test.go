package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/studyhub/internal/common"
	"github.com/dmitrijs2005/studyhub/internal/models"
)

const twoCards = "QUESTION: What is 2+2?\nANSWER: 4\n\nQUESTION: What is the capital of France?\nANSWER: Paris\n\n"

func newGenerator(t *testing.T, ai *fakeCompleter) (*Generator, FlashcardService) {
	t.Helper()
	cards := NewFlashcardService(openStore(t), nil)
	return NewGenerator(ai, cards, nil), cards
}

func TestGenerator_FromTopic(t *testing.T) {
	ai := &fakeCompleter{reply: twoCards}
	g, cards := newGenerator(t, ai)
	ctx := context.Background()

	_, err := cards.Create(ctx, models.FlashcardInput{Question: strp("old"), Answer: strp("x")})
	require.NoError(t, err)

	batch, err := g.FromTopic(ctx, "Python decorators")
	require.NoError(t, err)
	require.Len(t, batch, 2)
	assert.Equal(t, models.CategoryComputerScience, batch[0].Category)
	assert.Equal(t, "Python decorators", batch[0].Topic)

	all, err := cards.List(ctx, models.CategoryAll)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "What is 2+2?", all[0].Question)
	assert.Equal(t, "old", all[2].Question)

	req := ai.reqs[0]
	assert.Equal(t, "Generate 8 comprehensive flashcards about: Python decorators", req.User)
	assert.InDelta(t, 0.8, req.Temperature, 1e-9)
	assert.EqualValues(t, 1500, req.MaxTokens)
}

func TestGenerator_FromDocumentTruncates(t *testing.T) {
	ai := &fakeCompleter{reply: twoCards}
	g, _ := newGenerator(t, ai)

	text := strings.Repeat("é", DocumentCharLimit+500)
	batch, err := g.FromDocument(context.Background(), text)
	require.NoError(t, err)
	assert.Equal(t, models.CategoryOther, batch[0].Category)
	assert.Equal(t, DocumentTopic, batch[0].Topic)

	req := ai.reqs[0]
	body := strings.TrimPrefix(req.User, "Read this document and create 10 flashcards covering the main topics and key concepts:\n\n")
	assert.Equal(t, DocumentCharLimit, len([]rune(body)))
	assert.InDelta(t, 0.7, req.Temperature, 1e-9)
	assert.EqualValues(t, 2000, req.MaxTokens)
}

func TestGenerator_QuickAppends(t *testing.T) {
	ai := &fakeCompleter{reply: twoCards}
	g, cards := newGenerator(t, ai)
	ctx := context.Background()

	_, err := cards.Create(ctx, models.FlashcardInput{Question: strp("old"), Answer: strp("x")})
	require.NoError(t, err)

	_, err = g.Quick(ctx, "Geography")
	require.NoError(t, err)

	all, err := cards.List(ctx, models.CategoryAll)
	require.NoError(t, err)
	assert.Equal(t, "old", all[0].Question)
	assert.Equal(t, models.CategoryOther, all[1].Category)
	assert.Empty(t, all[1].Topic)
	assert.EqualValues(t, 1000, ai.reqs[0].MaxTokens)
}

func TestGenerator_Errors(t *testing.T) {
	ctx := context.Background()

	g, cards := newGenerator(t, &fakeCompleter{reply: "I do not know."})
	_, err := g.FromTopic(ctx, "Biology")
	require.ErrorIs(t, err, common.ErrParse)

	all, err := cards.List(ctx, models.CategoryAll)
	require.NoError(t, err)
	assert.Empty(t, all, "nothing stored on parse failure")

	g, _ = newGenerator(t, &fakeCompleter{err: &common.MissingCredentialError{Provider: common.ProviderDeepSeek}})
	_, err = g.Quick(ctx, "Biology")
	require.ErrorIs(t, err, common.ErrMissingCredential)

	_, err = g.FromTopic(ctx, "  ")
	require.ErrorIs(t, err, common.ErrValidation)
	_, err = g.FromDocument(ctx, "")
	require.ErrorIs(t, err, common.ErrValidation)
}
