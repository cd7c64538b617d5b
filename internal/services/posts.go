package services

import (
	"context"
	"slices"

	"github.com/dmitrijs2005/studyhub/internal/common"
	"github.com/dmitrijs2005/studyhub/internal/logging"
	"github.com/dmitrijs2005/studyhub/internal/models"
	"github.com/dmitrijs2005/studyhub/internal/views"
)

type PostStore interface {
	Posts(ctx context.Context) ([]models.Post, error)
	SetPosts(ctx context.Context, posts []models.Post) error
}

type PostService interface {
	Create(ctx context.Context, in models.PostInput) (models.Post, error)
	Delete(ctx context.Context, id string) error
	// Like toggles the caller's like and adjusts the counter by one.
	Like(ctx context.Context, id string) (models.Post, error)
	Get(ctx context.Context, id string) (models.Post, error)
	// List filters by category and orders by strategy. The stored order is
	// never changed.
	List(ctx context.Context, category string, strategy views.SortStrategy) ([]models.Post, error)
}

type postService struct {
	store  PostStore
	sorter views.Sorter
	log    logging.Logger
}

func NewPostService(store PostStore, sorter views.Sorter, log logging.Logger) PostService {
	if log == nil {
		log = logging.NopLogger{}
	}
	return &postService{store: store, sorter: sorter, log: log}
}

func (s *postService) Create(ctx context.Context, in models.PostInput) (models.Post, error) {
	title, err := required("title", in.Title)
	if err != nil {
		return models.Post{}, err
	}
	content, err := required("content", in.Content)
	if err != nil {
		return models.Post{}, err
	}

	posts, err := s.store.Posts(ctx)
	if err != nil {
		return models.Post{}, err
	}

	post := models.Post{
		ID:        newID(),
		Title:     title,
		Content:   content,
		Category:  models.NormalizeCategory(in.Category, models.CategoryComputerScience),
		Author:    models.DefaultAuthor,
		Comments:  []models.Comment{},
		CreatedAt: now(),
	}

	if err := s.store.SetPosts(ctx, append([]models.Post{post}, posts...)); err != nil {
		return models.Post{}, err
	}
	s.log.Debug(ctx, "post created", "id", post.ID)
	return post, nil
}

func (s *postService) Delete(ctx context.Context, id string) error {
	posts, err := s.store.Posts(ctx)
	if err != nil {
		return err
	}
	return s.store.SetPosts(ctx, slices.DeleteFunc(posts, func(p models.Post) bool { return p.ID == id }))
}

func (s *postService) Like(ctx context.Context, id string) (models.Post, error) {
	posts, err := s.store.Posts(ctx)
	if err != nil {
		return models.Post{}, err
	}

	i := slices.IndexFunc(posts, func(p models.Post) bool { return p.ID == id })
	if i < 0 {
		return models.Post{}, &common.NotFoundError{Kind: "post", ID: id}
	}

	p := &posts[i]
	if p.Liked {
		p.Liked = false
		p.Likes = max(p.Likes-1, 0)
	} else {
		p.Liked = true
		p.Likes++
	}

	if err := s.store.SetPosts(ctx, posts); err != nil {
		return models.Post{}, err
	}
	return *p, nil
}

func (s *postService) Get(ctx context.Context, id string) (models.Post, error) {
	posts, err := s.store.Posts(ctx)
	if err != nil {
		return models.Post{}, err
	}
	for _, p := range posts {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Post{}, &common.NotFoundError{Kind: "post", ID: id}
}

func (s *postService) List(ctx context.Context, category string, strategy views.SortStrategy) ([]models.Post, error) {
	posts, err := s.store.Posts(ctx)
	if err != nil {
		return nil, err
	}
	return s.sorter.Sort(views.FilterPosts(posts, category), strategy)
}
