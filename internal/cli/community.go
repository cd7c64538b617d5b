package cli

import (
	"context"
	"strings"
	"time"

	"github.com/dmitrijs2005/studyhub/internal/models"
	"github.com/dmitrijs2005/studyhub/internal/views"
)

var now = time.Now

// categoryArg joins filter arguments into a category name; nothing or "all"
// means every category. Other names must match a stored category exactly.
func categoryArg(args []string) string {
	s := strings.TrimSpace(strings.Join(args, " "))
	if s == "" || s == models.CategoryAll {
		return models.CategoryAll
	}
	return s
}

// Posts lists the feed. Arguments are an optional category and sort order in
// any order, e.g. "posts History popular".
func (a *App) Posts(ctx context.Context, args []string) error {
	var sort string
	var rest []string
	for _, arg := range args {
		if _, err := views.ParseSort(arg); err == nil {
			sort = arg
			continue
		}
		rest = append(rest, arg)
	}
	category := categoryArg(rest)

	strategy, err := views.ParseSort(sort)
	if err != nil {
		return a.fail(err)
	}

	posts, err := a.core.Posts.List(ctx, category, strategy)
	if err != nil {
		return a.fail(err)
	}
	if len(posts) == 0 {
		a.printf("No posts yet\n")
		return nil
	}

	for _, p := range posts {
		heart := " "
		if p.Liked {
			heart = "*"
		}
		a.printf("[%s] %s  %s · %s · %s\n  %s\n  %s%d Likes  %d Comments\n",
			p.ID, p.Title, p.Author, p.Category, views.TimeAgo(p.CreatedAt, now()), p.Content, heart, p.Likes, len(p.Comments))
	}
	return nil
}

func (a *App) AddPost(ctx context.Context, _ []string) error {
	title, err := GetSimpleText(a.reader, "Enter title", a.out)
	if err != nil {
		return a.fail(err)
	}
	content, err := GetMultiline(a.reader, "Enter post content", a.out)
	if err != nil {
		return a.fail(err)
	}
	category, err := GetSimpleText(a.reader, "Enter category (default Computer Science)", a.out)
	if err != nil {
		return a.fail(err)
	}

	if _, err := a.core.Posts.Create(ctx, models.PostInput{Title: title, Content: content, Category: category}); err != nil {
		return a.fail(err)
	}
	a.printf("Post published!\n")
	return nil
}

func (a *App) DeletePost(ctx context.Context, args []string) error {
	id, err := argID(args)
	if err != nil {
		return a.fail(err)
	}
	if err := a.core.Posts.Delete(ctx, id); err != nil {
		return a.fail(err)
	}
	a.printf("Post deleted\n")
	return nil
}

func (a *App) Like(ctx context.Context, args []string) error {
	id, err := argID(args)
	if err != nil {
		return a.fail(err)
	}
	p, err := a.core.Posts.Like(ctx, id)
	if err != nil {
		return a.fail(err)
	}
	a.printf("%d Likes\n", p.Likes)
	return nil
}
