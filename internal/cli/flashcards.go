package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/studyhub/internal/common"
	"github.com/dmitrijs2005/studyhub/internal/models"
	"github.com/dmitrijs2005/studyhub/internal/views"
)

func (a *App) printCards(cards []models.Flashcard) {
	if len(cards) == 0 {
		a.printf("No flashcards yet\n")
		return
	}
	for _, c := range cards {
		a.printf("[%s] %s (%s)\n  Q: %s\n  A: %s\n", c.ID, c.Category, views.TimeAgo(c.UpdatedAt, now()), c.Question, c.Answer)
	}
}

// Cards lists flashcards, optionally of one category.
func (a *App) Cards(ctx context.Context, args []string) error {
	cards, err := a.core.Flashcards.List(ctx, categoryArg(args))
	if err != nil {
		return a.fail(err)
	}
	a.printCards(cards)
	return nil
}

func (a *App) readCardInput(current *models.Flashcard) (models.FlashcardInput, error) {
	var in models.FlashcardInput

	hint := func(field, v string) string {
		if current == nil {
			return "Enter " + field
		}
		return "Enter " + field + " (empty keeps \"" + v + "\")"
	}

	var cur models.Flashcard
	if current != nil {
		cur = *current
	}

	fields := []struct {
		name string
		val  string
		dst  **string
	}{
		{"question", cur.Question, &in.Question},
		{"answer", cur.Answer, &in.Answer},
		{"category", cur.Category, &in.Category},
	}
	for _, f := range fields {
		v, err := GetSimpleText(a.reader, hint(f.name, f.val), a.out)
		if err != nil {
			return in, err
		}
		if current != nil && v == "" {
			continue
		}
		*f.dst = &v
	}
	return in, nil
}

func (a *App) AddCard(ctx context.Context, _ []string) error {
	in, err := a.readCardInput(nil)
	if err != nil {
		return a.fail(err)
	}
	c, err := a.core.Flashcards.Create(ctx, in)
	if err != nil {
		return a.fail(err)
	}
	a.printf("Flashcard created successfully! (%s)\n", c.ID)
	return nil
}

func argID(args []string) (string, error) {
	if len(args) == 0 {
		return "", common.NewValidationError("id", "")
	}
	return args[0], nil
}

func (a *App) EditCard(ctx context.Context, args []string) error {
	id, err := argID(args)
	if err != nil {
		return a.fail(err)
	}
	current, err := a.core.Flashcards.Get(ctx, id)
	if err != nil {
		return a.fail(err)
	}
	in, err := a.readCardInput(&current)
	if err != nil {
		return a.fail(err)
	}
	if _, err := a.core.Flashcards.Update(ctx, id, in); err != nil {
		return a.fail(err)
	}
	a.printf("Flashcard updated successfully!\n")
	return nil
}

func (a *App) DeleteCard(ctx context.Context, args []string) error {
	id, err := argID(args)
	if err != nil {
		return a.fail(err)
	}
	if err := a.core.Flashcards.Delete(ctx, id); err != nil {
		return a.fail(err)
	}
	a.printf("Flashcard deleted\n")
	return nil
}

func (a *App) topic(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	return GetSimpleText(a.reader, "Enter a topic to generate flashcards about", a.out)
}

func (a *App) Generate(ctx context.Context, args []string) error {
	t, err := a.topic(args)
	if err != nil {
		return a.fail(err)
	}
	a.printf("Generating flashcards...\n")
	cards, err := a.core.Generator.FromTopic(ctx, t)
	if err != nil {
		return a.fail(err)
	}
	a.printf("Generated %d flashcards!\n", len(cards))
	return nil
}

func (a *App) Quick(ctx context.Context, args []string) error {
	t, err := a.topic(args)
	if err != nil {
		return a.fail(err)
	}
	cards, err := a.core.Generator.Quick(ctx, t)
	if err != nil {
		return a.fail(err)
	}
	a.printf("Generated %d flashcards!\n", len(cards))
	return nil
}

// Upload generates flashcards from a document path or s3:// URI.
func (a *App) Upload(ctx context.Context, args []string) error {
	source := strings.Join(args, " ")
	if source == "" {
		var err error
		if source, err = GetSimpleText(a.reader, "Enter a .txt or .md path (or s3://bucket/key)", a.out); err != nil {
			return a.fail(err)
		}
	}

	doc, err := a.core.Documents.Load(ctx, source)
	if err != nil {
		return a.fail(err)
	}
	a.printf("Analyzing %s (%s)...\n", doc.Name, views.FileSize(doc.Size))

	cards, err := a.core.Generator.FromDocument(ctx, doc.Text)
	if err != nil {
		return a.fail(err)
	}
	a.printf("Generated %d flashcards from your document!\n", len(cards))
	return nil
}

// Study runs a card-by-card session: Enter or n for next, p for previous,
// f to flip, q to stop.
func (a *App) Study(ctx context.Context, _ []string) error {
	cards, err := a.core.Flashcards.List(ctx, models.CategoryAll)
	if err != nil {
		return a.fail(err)
	}
	s, err := views.NewSession(cards)
	if err != nil {
		a.printf("No flashcards to study!\n")
		return err
	}

	for {
		label, text := s.Side()
		cmd, err := GetSimpleText(a.reader, s.Progress()+"  "+label+": "+text+"\n[n]ext [p]rev [f]lip [q]uit", a.out)
		if err != nil {
			return nil
		}
		switch strings.ToLower(cmd) {
		case "", "n":
			if !s.Next() {
				a.printf("Study session completed!\n")
				return nil
			}
		case "p":
			s.Previous()
		case "f":
			s.Flip()
		case "q":
			return nil
		}
	}
}
