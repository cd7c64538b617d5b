// Package app assembles the StudyHub store, services and API clients from a
// Config. Both the REPL and the HTTP API are built on top of it.
package app

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/studyhub/internal/ai"
	"github.com/dmitrijs2005/studyhub/internal/config"
	"github.com/dmitrijs2005/studyhub/internal/documents"
	"github.com/dmitrijs2005/studyhub/internal/logging"
	"github.com/dmitrijs2005/studyhub/internal/services"
	"github.com/dmitrijs2005/studyhub/internal/store"
	"github.com/dmitrijs2005/studyhub/internal/video"
	"github.com/dmitrijs2005/studyhub/internal/views"
)

// App holds one instance of every StudyHub component.
type App struct {
	Config      *config.Config
	Logger      logging.Logger
	Store       *store.Store
	Flashcards  services.FlashcardService
	Posts       services.PostService
	Chat        services.ChatService
	Credentials *services.CredentialService
	Generator   *services.Generator
	AI          *ai.Client
	Videos      *video.Client
	Documents   *documents.Loader
}

// New opens the configured store and wires the services around it. prompter
// may be nil.
func New(ctx context.Context, cfg *config.Config, logger logging.Logger, prompter services.CredentialPrompter) (*App, error) {
	st, err := store.Open(ctx, cfg.StoreDriver, cfg.StoreDSN, logger.With("module", "store"))
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	return Wire(cfg, st, logger, prompter), nil
}

// Wire builds an App around an already opened store.
func Wire(cfg *config.Config, st *store.Store, logger logging.Logger, prompter services.CredentialPrompter) *App {
	creds := services.NewCredentialService(st, prompter, logger.With("module", "credentials"))

	aiOpts := []ai.Option{
		ai.WithModel(cfg.AIModel),
		ai.WithTimeout(cfg.RequestTimeout),
		ai.WithLogger(logger.With("module", "ai")),
	}
	if cfg.AIBaseURL != "" {
		aiOpts = append(aiOpts, ai.WithBaseURL(cfg.AIBaseURL))
	}
	aiClient := ai.NewClient(creds, aiOpts...)

	videoOpts := []video.Option{
		video.WithTimeout(cfg.RequestTimeout),
		video.WithLogger(logger.With("module", "video")),
	}
	if cfg.VideoEndpoint != "" {
		videoOpts = append(videoOpts, video.WithEndpoint(cfg.VideoEndpoint))
	}

	cards := services.NewFlashcardService(st, logger.With("module", "flashcards"))

	return &App{
		Config:      cfg,
		Logger:      logger,
		Store:       st,
		Flashcards:  cards,
		Posts:       services.NewPostService(st, views.Sorter{}, logger.With("module", "posts")),
		Chat:        services.NewChatService(st, creds, aiClient, logger.With("module", "chat")),
		Credentials: creds,
		Generator:   services.NewGenerator(aiClient, cards, logger.With("module", "generator")),
		AI:          aiClient,
		Videos:      video.NewClient(creds, videoOpts...),
		Documents: documents.NewLoader(documents.S3Config{
			Region:       cfg.S3Region,
			BaseEndpoint: cfg.S3BaseEndpoint,
			AccessKey:    cfg.S3AccessKey,
			SecretKey:    cfg.S3SecretKey,
		}, logger.With("module", "documents")),
	}
}

func (a *App) Close() error {
	return a.Store.Close()
}
