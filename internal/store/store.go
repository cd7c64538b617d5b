package store

import (
	"context"
	"encoding/json"
	"io"

	"github.com/dmitrijs2005/studyhub/internal/common"
	"github.com/dmitrijs2005/studyhub/internal/dbx"
	"github.com/dmitrijs2005/studyhub/internal/logging"
	"github.com/dmitrijs2005/studyhub/internal/models"
	"github.com/dmitrijs2005/studyhub/internal/repositories/kv"
)

// DB is what the store needs from a database handle. *sql.DB implements it.
type DB interface {
	dbx.DBTX
	dbx.TxRunner
}

// Store gives typed access to the StudyHub collections.
type Store struct {
	db     DB
	repo   kv.Repository
	bind   kv.Factory
	log    logging.Logger
	closer io.Closer
}

// New builds a Store over db. bind selects the SQL dialect of the kv table.
func New(db DB, bind kv.Factory, log logging.Logger) *Store {
	if log == nil {
		log = logging.NopLogger{}
	}
	return &Store{db: db, repo: bind(db), bind: bind, log: log}
}

// Close releases the connection opened by Open. It is a no-op for stores
// built with New.
func (s *Store) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

func load[T any](ctx context.Context, s *Store, key string, def T) (T, error) {
	raw, err := s.repo.Get(ctx, key)
	if err != nil {
		s.log.Error(ctx, "store read failed", "key", key, "error", err)
		return def, &common.StorageError{Op: "read", Key: key, Err: err}
	}
	if raw == nil {
		return def, nil
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		s.log.Warn(ctx, "corrupt value, using default", "key", key, "error", err)
		return def, nil
	}
	return v, nil
}

func save(ctx context.Context, s *Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return &common.StorageError{Op: "encode", Key: key, Err: err}
	}
	if err := s.repo.Set(ctx, key, raw); err != nil {
		s.log.Error(ctx, "store write failed", "key", key, "error", err)
		return &common.StorageError{Op: "write", Key: key, Err: err}
	}
	return nil
}

// Flashcards returns the stored flashcard sequence, empty when unset.
func (s *Store) Flashcards(ctx context.Context) ([]models.Flashcard, error) {
	cards, err := load(ctx, s, common.KeyFlashcards, []models.Flashcard{})
	if cards == nil {
		cards = []models.Flashcard{}
	}
	return cards, err
}

func (s *Store) SetFlashcards(ctx context.Context, cards []models.Flashcard) error {
	if cards == nil {
		cards = []models.Flashcard{}
	}
	return save(ctx, s, common.KeyFlashcards, cards)
}

// Posts returns the stored posts, empty when unset. Comments are never nil.
func (s *Store) Posts(ctx context.Context) ([]models.Post, error) {
	posts, err := load(ctx, s, common.KeyPosts, []models.Post{})
	if posts == nil {
		posts = []models.Post{}
	}
	for i := range posts {
		if posts[i].Comments == nil {
			posts[i].Comments = []models.Comment{}
		}
	}
	return posts, err
}

func (s *Store) SetPosts(ctx context.Context, posts []models.Post) error {
	if posts == nil {
		posts = []models.Post{}
	}
	return save(ctx, s, common.KeyPosts, posts)
}

// ChatHistory returns every stored chat turn in order.
func (s *Store) ChatHistory(ctx context.Context) ([]models.ChatMessage, error) {
	msgs, err := load(ctx, s, common.KeyChatHistory, []models.ChatMessage{})
	if msgs == nil {
		msgs = []models.ChatMessage{}
	}
	return msgs, err
}

func (s *Store) SetChatHistory(ctx context.Context, msgs []models.ChatMessage) error {
	if msgs == nil {
		msgs = []models.ChatMessage{}
	}
	return save(ctx, s, common.KeyChatHistory, msgs)
}

// APIKeys returns the credential mapping. Every known provider is present.
func (s *Store) APIKeys(ctx context.Context) (models.APIKeys, error) {
	stored, err := load(ctx, s, common.KeyAPIKeys, models.APIKeys(nil))
	keys := models.DefaultAPIKeys()
	for p, v := range stored {
		keys[p] = v
	}
	return keys, err
}

func (s *Store) SetAPIKeys(ctx context.Context, keys models.APIKeys) error {
	merged := models.DefaultAPIKeys()
	for p, v := range keys {
		merged[p] = v
	}
	return save(ctx, s, common.KeyAPIKeys, merged)
}

// Reset clears the key-value table in one transaction. The table only holds
// StudyHub collections.
func (s *Store) Reset(ctx context.Context) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.bind(tx).Clear(ctx)
	})
	if err != nil {
		s.log.Error(ctx, "store reset failed", "error", err)
		return &common.StorageError{Op: "reset", Key: "*", Err: err}
	}
	s.log.Info(ctx, "store reset")
	return nil
}

// Stats counts the entities of each collection.
func (s *Store) Stats(ctx context.Context) (models.Stats, error) {
	cards, err := s.Flashcards(ctx)
	if err != nil {
		return models.Stats{}, err
	}
	posts, err := s.Posts(ctx)
	if err != nil {
		return models.Stats{}, err
	}
	msgs, err := s.ChatHistory(ctx)
	if err != nil {
		return models.Stats{}, err
	}
	return models.Stats{Flashcards: len(cards), Posts: len(posts), ChatMessages: len(msgs)}, nil
}
