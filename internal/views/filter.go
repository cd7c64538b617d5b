package views

import "github.com/dmitrijs2005/studyhub/internal/models"

func matchAll(category string) bool {
	return category == "" || category == models.CategoryAll
}

// FilterFlashcards returns the cards of the given category in collection
// order. "all" or an empty category returns every card.
func FilterFlashcards(cards []models.Flashcard, category string) []models.Flashcard {
	return filter(cards, category, func(c models.Flashcard) string { return c.Category })
}

// FilterPosts is FilterFlashcards for posts.
func FilterPosts(posts []models.Post, category string) []models.Post {
	return filter(posts, category, func(p models.Post) string { return p.Category })
}

func filter[T any](items []T, category string, categoryOf func(T) string) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if matchAll(category) || categoryOf(it) == category {
			out = append(out, it)
		}
	}
	return out
}
