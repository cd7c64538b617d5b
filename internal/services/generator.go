package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/studyhub/internal/ai"
	"github.com/dmitrijs2005/studyhub/internal/logging"
	"github.com/dmitrijs2005/studyhub/internal/models"
)

// DocumentCharLimit is how much document text is sent to the model.
const DocumentCharLimit = 8000

// DocumentTopic is the topic of cards generated from a document.
const DocumentTopic = "Document Upload"

const (
	topicSystemPrompt = "You are a helpful study assistant. Generate 8 educational flashcard questions and answers about the given topic. Format EXACTLY as: QUESTION: [question text]\nANSWER: [answer text]\n\n (with double line break between each card)"
	topicUserPrompt   = "Generate 8 comprehensive flashcards about: %s"

	documentSystemPrompt = "You are a helpful study assistant. Read the provided document/text and generate 10 comprehensive flashcard questions and answers covering the key concepts. Format EXACTLY as: QUESTION: [question text]\nANSWER: [answer text]\n\n (with double line break between each card)"
	documentUserPrompt   = "Read this document and create 10 flashcards covering the main topics and key concepts:\n\n%s"

	quickSystemPrompt = "You are a helpful study assistant. Generate 5 flashcard questions and answers about the given topic. Format each as QUESTION: ... ANSWER: ... separated by blank lines."
	quickUserPrompt   = "Generate 5 educational flashcards about: %s"
)

// Generator turns AI replies into stored flashcards.
type Generator struct {
	ai    Completer
	cards FlashcardService
	log   logging.Logger
}

func NewGenerator(completer Completer, cards FlashcardService, log logging.Logger) *Generator {
	if log == nil {
		log = logging.NopLogger{}
	}
	return &Generator{ai: completer, cards: cards, log: log}
}

type generation struct {
	req      ai.Request
	category string
	topic    string
	prepend  bool
}

func (g *Generator) run(ctx context.Context, gen generation) ([]models.Flashcard, error) {
	reply, err := g.ai.Complete(ctx, gen.req)
	if err != nil {
		return nil, err
	}

	pairs, err := ai.ParsePairs(reply)
	if err != nil {
		g.log.Warn(ctx, "unusable AI reply", "error", err)
		return nil, err
	}

	return g.cards.CreateBatch(ctx, pairs, gen.category, gen.topic, gen.prepend)
}

// FromTopic generates about eight cards for topic and puts them in front of
// the collection.
func (g *Generator) FromTopic(ctx context.Context, topic string) ([]models.Flashcard, error) {
	topic, err := required("topic", topic)
	if err != nil {
		return nil, err
	}
	return g.run(ctx, generation{
		req: ai.Request{
			System:      topicSystemPrompt,
			User:        fmt.Sprintf(topicUserPrompt, topic),
			Temperature: 0.8,
			MaxTokens:   1500,
		},
		category: models.CategorizeTopic(topic),
		topic:    topic,
		prepend:  true,
	})
}

// FromDocument generates about ten cards from the first DocumentCharLimit
// characters of text.
func (g *Generator) FromDocument(ctx context.Context, text string) ([]models.Flashcard, error) {
	if _, err := required("document", text); err != nil {
		return nil, err
	}
	if r := []rune(text); len(r) > DocumentCharLimit {
		text = string(r[:DocumentCharLimit])
	}
	return g.run(ctx, generation{
		req: ai.Request{
			System:      documentSystemPrompt,
			User:        fmt.Sprintf(documentUserPrompt, text),
			Temperature: 0.7,
			MaxTokens:   2000,
		},
		category: models.CategoryOther,
		topic:    DocumentTopic,
		prepend:  true,
	})
}

// Quick is the short five-card path. Cards are appended with category Other
// and no topic.
func (g *Generator) Quick(ctx context.Context, topic string) ([]models.Flashcard, error) {
	topic, err := required("topic", topic)
	if err != nil {
		return nil, err
	}
	return g.run(ctx, generation{
		req: ai.Request{
			System:      quickSystemPrompt,
			User:        fmt.Sprintf(quickUserPrompt, topic),
			Temperature: 0.8,
			MaxTokens:   1000,
		},
		category: models.CategoryOther,
	})
}
