package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/studyhub/internal/models"
)

func mask(key string) string {
	if key == "" {
		return "not set"
	}
	if len(key) <= 4 {
		return "****"
	}
	return "****" + key[len(key)-4:]
}

func (a *App) Keys(ctx context.Context, _ []string) error {
	for _, p := range models.Providers {
		k, err := a.core.Credentials.Get(ctx, p)
		if err != nil {
			return a.fail(err)
		}
		info, _ := a.core.Credentials.Describe(p)
		a.printf("%-9s %-20s %s\n", p, info.Title, mask(k))
	}
	return nil
}

// SetKey stores the key of a provider, read without echo.
func (a *App) SetKey(ctx context.Context, args []string) error {
	provider, err := argID(args)
	if err != nil {
		return a.fail(err)
	}
	provider = strings.ToLower(provider)

	info, err := a.core.Credentials.Describe(provider)
	if err != nil {
		return a.fail(err)
	}
	a.printf("%s\n%s\n%s\n", info.Title, info.Description, info.Link)

	key, err := GetSecret("Enter API key", a.out)
	if err != nil {
		return a.fail(err)
	}
	if err := a.core.Credentials.Set(ctx, provider, key); err != nil {
		return a.fail(err)
	}
	a.printf("API key saved successfully!\n")
	return nil
}

func (a *App) Stats(ctx context.Context, _ []string) error {
	st, err := a.core.Store.Stats(ctx)
	if err != nil {
		return a.fail(err)
	}
	a.printf("Flashcards: %d\nPosts: %d\nChat messages: %d\n", st.Flashcards, st.Posts, st.ChatMessages)
	return nil
}

// Reset deletes all local data after confirmation.
func (a *App) Reset(ctx context.Context, _ []string) error {
	answer, err := GetSimpleText(a.reader, "Delete all flashcards, posts, chat history and API keys? (yes/no)", a.out)
	if err != nil {
		return a.fail(err)
	}
	if strings.ToLower(answer) != "yes" {
		a.printf("Cancelled\n")
		return nil
	}
	if err := a.core.Store.Reset(ctx); err != nil {
		return a.fail(err)
	}
	a.printf("All data deleted\n")
	return nil
}
