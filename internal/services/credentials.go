package services

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/studyhub/internal/common"
	"github.com/dmitrijs2005/studyhub/internal/logging"
	"github.com/dmitrijs2005/studyhub/internal/models"
)

type CredentialStore interface {
	APIKeys(ctx context.Context) (models.APIKeys, error)
	SetAPIKeys(ctx context.Context, keys models.APIKeys) error
}

// ProviderInfo describes where a user gets a provider key.
type ProviderInfo struct {
	Provider    string `json:"provider"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

var providerInfo = map[string]ProviderInfo{
	common.ProviderYouTube: {
		Provider:    common.ProviderYouTube,
		Title:       "YouTube Data API v3",
		Description: "Get your free API key from Google Cloud Console",
		Link:        "https://console.cloud.google.com/apis/credentials",
	},
	common.ProviderDeepSeek: {
		Provider:    common.ProviderDeepSeek,
		Title:       "DeepSeek AI API",
		Description: "Get your API key from DeepSeek platform",
		Link:        "https://platform.deepseek.com/api_keys",
	},
}

// CredentialPrompter asks the user for a missing key. Returning an empty key
// cancels the flow.
type CredentialPrompter interface {
	PromptAPIKey(ctx context.Context, info ProviderInfo) (string, error)
}

type CredentialService struct {
	store    CredentialStore
	prompter CredentialPrompter
	log      logging.Logger
}

// NewCredentialService builds the service. prompter may be nil, in which case
// a missing key is reported straight away.
func NewCredentialService(store CredentialStore, prompter CredentialPrompter, log logging.Logger) *CredentialService {
	if log == nil {
		log = logging.NopLogger{}
	}
	return &CredentialService{store: store, prompter: prompter, log: log}
}

func checkProvider(provider string) error {
	if !models.IsProvider(provider) {
		return common.NewValidationError("provider", "unknown provider "+provider)
	}
	return nil
}

// Get returns the stored key, empty when unset.
func (s *CredentialService) Get(ctx context.Context, provider string) (string, error) {
	if err := checkProvider(provider); err != nil {
		return "", err
	}
	keys, err := s.store.APIKeys(ctx)
	if err != nil {
		return "", err
	}
	return keys[provider], nil
}

func (s *CredentialService) Set(ctx context.Context, provider, key string) error {
	if err := checkProvider(provider); err != nil {
		return err
	}
	key, err := required("key", key)
	if err != nil {
		return err
	}

	keys, err := s.store.APIKeys(ctx)
	if err != nil {
		return err
	}
	keys[provider] = key

	if err := s.store.SetAPIKeys(ctx, keys); err != nil {
		return err
	}
	s.log.Info(ctx, "api key saved", "provider", provider)
	return nil
}

// Configured lists the providers that have a key, in provider order.
func (s *CredentialService) Configured(ctx context.Context) ([]string, error) {
	keys, err := s.store.APIKeys(ctx)
	if err != nil {
		return nil, err
	}
	out := []string{}
	for _, p := range models.Providers {
		if strings.TrimSpace(keys[p]) != "" {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *CredentialService) Describe(provider string) (ProviderInfo, error) {
	if err := checkProvider(provider); err != nil {
		return ProviderInfo{}, err
	}
	return providerInfo[provider], nil
}

// APIKey returns the key of provider. When none is stored the prompter, if
// any, is asked and a non-empty answer is saved. Otherwise the result is a
// *common.MissingCredentialError.
func (s *CredentialService) APIKey(ctx context.Context, provider string) (string, error) {
	key, err := s.Get(ctx, provider)
	if err != nil || key != "" {
		return key, err
	}

	missing := &common.MissingCredentialError{Provider: provider}
	if s.prompter == nil {
		return "", missing
	}

	key, err = s.prompter.PromptAPIKey(ctx, providerInfo[provider])
	if err != nil {
		s.log.Warn(ctx, "api key prompt failed", "provider", provider, "error", err)
		return "", missing
	}
	if strings.TrimSpace(key) == "" {
		return "", missing
	}

	if err := s.Set(ctx, provider, key); err != nil {
		return "", err
	}
	return strings.TrimSpace(key), nil
}
