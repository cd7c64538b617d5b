package services

import (
	"context"
	"slices"

	"github.com/dmitrijs2005/studyhub/internal/common"
	"github.com/dmitrijs2005/studyhub/internal/logging"
	"github.com/dmitrijs2005/studyhub/internal/models"
	"github.com/dmitrijs2005/studyhub/internal/views"
)

type FlashcardStore interface {
	Flashcards(ctx context.Context) ([]models.Flashcard, error)
	SetFlashcards(ctx context.Context, cards []models.Flashcard) error
}

type FlashcardService interface {
	Create(ctx context.Context, in models.FlashcardInput) (models.Flashcard, error)
	// CreateBatch stores generated pairs with one category and topic. With
	// prepend the batch goes to the front in generated order, otherwise it is
	// appended.
	CreateBatch(ctx context.Context, pairs []models.Pair, category, topic string, prepend bool) ([]models.Flashcard, error)
	Update(ctx context.Context, id string, in models.FlashcardInput) (models.Flashcard, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (models.Flashcard, error)
	List(ctx context.Context, category string) ([]models.Flashcard, error)
}

type flashcardService struct {
	store FlashcardStore
	log   logging.Logger
}

func NewFlashcardService(store FlashcardStore, log logging.Logger) FlashcardService {
	if log == nil {
		log = logging.NopLogger{}
	}
	return &flashcardService{store: store, log: log}
}

func (s *flashcardService) Create(ctx context.Context, in models.FlashcardInput) (models.Flashcard, error) {
	q, err := required("question", deref(in.Question))
	if err != nil {
		return models.Flashcard{}, err
	}
	a, err := required("answer", deref(in.Answer))
	if err != nil {
		return models.Flashcard{}, err
	}

	cards, err := s.store.Flashcards(ctx)
	if err != nil {
		return models.Flashcard{}, err
	}

	t := now()
	card := models.Flashcard{
		ID:        newID(),
		Question:  q,
		Answer:    a,
		Category:  models.NormalizeCategory(deref(in.Category), models.CategoryComputerScience),
		Topic:     deref(in.Topic),
		CreatedAt: t,
		UpdatedAt: t,
	}

	if err := s.store.SetFlashcards(ctx, append(cards, card)); err != nil {
		return models.Flashcard{}, err
	}
	s.log.Debug(ctx, "flashcard created", "id", card.ID)
	return card, nil
}

func (s *flashcardService) CreateBatch(ctx context.Context, pairs []models.Pair, category, topic string, prepend bool) ([]models.Flashcard, error) {
	t := now()
	category = models.NormalizeCategory(category, models.CategoryOther)

	batch := make([]models.Flashcard, 0, len(pairs))
	for _, p := range pairs {
		if p.Question == "" || p.Answer == "" {
			continue
		}
		batch = append(batch, models.Flashcard{
			ID:        newID(),
			Question:  p.Question,
			Answer:    p.Answer,
			Category:  category,
			Topic:     topic,
			CreatedAt: t,
			UpdatedAt: t,
		})
	}
	if len(batch) == 0 {
		return batch, nil
	}

	cards, err := s.store.Flashcards(ctx)
	if err != nil {
		return nil, err
	}

	var next []models.Flashcard
	if prepend {
		next = append(slices.Clone(batch), cards...)
	} else {
		next = append(cards, batch...)
	}

	if err := s.store.SetFlashcards(ctx, next); err != nil {
		return nil, err
	}
	s.log.Info(ctx, "flashcards generated", "count", len(batch), "category", category)
	return batch, nil
}

func (s *flashcardService) Update(ctx context.Context, id string, in models.FlashcardInput) (models.Flashcard, error) {
	cards, err := s.store.Flashcards(ctx)
	if err != nil {
		return models.Flashcard{}, err
	}

	i := slices.IndexFunc(cards, func(c models.Flashcard) bool { return c.ID == id })
	if i < 0 {
		return models.Flashcard{}, &common.NotFoundError{Kind: "flashcard", ID: id}
	}

	card := cards[i]
	if in.Question != nil {
		if card.Question, err = required("question", *in.Question); err != nil {
			return models.Flashcard{}, err
		}
	}
	if in.Answer != nil {
		if card.Answer, err = required("answer", *in.Answer); err != nil {
			return models.Flashcard{}, err
		}
	}
	if in.Category != nil {
		card.Category = models.NormalizeCategory(*in.Category, card.Category)
	}
	if in.Topic != nil {
		card.Topic = *in.Topic
	}

	card.UpdatedAt = now()
	if card.UpdatedAt.Before(card.CreatedAt) {
		card.UpdatedAt = card.CreatedAt
	}

	cards[i] = card
	if err := s.store.SetFlashcards(ctx, cards); err != nil {
		return models.Flashcard{}, err
	}
	return card, nil
}

func (s *flashcardService) Delete(ctx context.Context, id string) error {
	cards, err := s.store.Flashcards(ctx)
	if err != nil {
		return err
	}

	kept := slices.DeleteFunc(cards, func(c models.Flashcard) bool { return c.ID == id })
	return s.store.SetFlashcards(ctx, kept)
}

func (s *flashcardService) Get(ctx context.Context, id string) (models.Flashcard, error) {
	cards, err := s.store.Flashcards(ctx)
	if err != nil {
		return models.Flashcard{}, err
	}
	for _, c := range cards {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Flashcard{}, &common.NotFoundError{Kind: "flashcard", ID: id}
}

func (s *flashcardService) List(ctx context.Context, category string) ([]models.Flashcard, error) {
	cards, err := s.store.Flashcards(ctx)
	if err != nil {
		return nil, err
	}
	return views.FilterFlashcards(cards, category), nil
}
