package ai

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"

	"github.com/dmitrijs2005/studyhub/internal/common"
	"github.com/dmitrijs2005/studyhub/internal/logging"
	"github.com/dmitrijs2005/studyhub/internal/models"
)

const (
	DefaultBaseURL = "https://api.deepseek.com/v1"
	DefaultModel   = "deepseek-chat"
)

// KeySource resolves the API key of a provider. Implementations return a
// *common.MissingCredentialError (or an empty key) when none is configured.
type KeySource interface {
	APIKey(ctx context.Context, provider string) (string, error)
}

// Request is one chat-completion call. History is sent between the system
// instruction and the user content, oldest first.
type Request struct {
	System      string
	History     []models.ChatMessage
	User        string
	Temperature float64
	MaxTokens   int64
}

// Client is the DeepSeek chat-completion client.
type Client struct {
	keys       KeySource
	baseURL    string
	model      string
	timeout    time.Duration
	httpClient *http.Client
	log        logging.Logger
}

type Option func(*Client)

func WithBaseURL(u string) Option { return func(c *Client) { c.baseURL = u } }

func WithModel(m string) Option { return func(c *Client) { c.model = m } }

// WithTimeout bounds each call. Zero disables the bound.
func WithTimeout(d time.Duration) Option { return func(c *Client) { c.timeout = d } }

func WithHTTPClient(hc *http.Client) Option { return func(c *Client) { c.httpClient = hc } }

func WithLogger(l logging.Logger) Option { return func(c *Client) { c.log = l } }

func NewClient(keys KeySource, opts ...Option) *Client {
	c := &Client{
		keys:    keys,
		baseURL: DefaultBaseURL,
		model:   DefaultModel,
		log:     logging.NopLogger{},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Complete sends req and returns the content of the first choice.
//
// No request is made when the DeepSeek key is missing. Transport failures and
// non-2xx answers are reported as *common.RemoteError; nothing is retried.
func (c *Client) Complete(ctx context.Context, req Request) (string, error) {
	key, err := c.keys.APIKey(ctx, common.ProviderDeepSeek)
	if err != nil {
		return "", err
	}
	if key == "" {
		return "", &common.MissingCredentialError{Provider: common.ProviderDeepSeek}
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	opts := []option.RequestOption{
		option.WithAPIKey(key),
		option.WithBaseURL(c.baseURL),
		option.WithMaxRetries(0),
	}
	if c.httpClient != nil {
		opts = append(opts, option.WithHTTPClient(c.httpClient))
	}
	client := openai.NewClient(opts...)

	params := openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(c.model),
		Messages:    buildMessages(req),
		Temperature: openai.Float(req.Temperature),
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(req.MaxTokens)
	}

	c.log.Debug(ctx, "chat completion request", "model", c.model, "messages", len(params.Messages))

	resp, err := client.Chat.Completions.New(ctx, params)
	if err != nil {
		remote := &common.RemoteError{Provider: common.ProviderDeepSeek, Err: err}
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			remote.StatusCode = apiErr.StatusCode
		}
		c.log.Error(ctx, "chat completion failed", "status", remote.StatusCode, "error", err)
		return "", remote
	}

	if len(resp.Choices) == 0 {
		return "", &common.RemoteError{Provider: common.ProviderDeepSeek, Err: errors.New("response has no choices")}
	}

	return resp.Choices[0].Message.Content, nil
}

func buildMessages(req Request) []openai.ChatCompletionMessageParamUnion {
	msgs := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.History)+2)
	if req.System != "" {
		msgs = append(msgs, openai.SystemMessage(req.System))
	}
	for _, m := range req.History {
		switch m.Role {
		case models.RoleAssistant:
			msgs = append(msgs, openai.AssistantMessage(m.Content))
		case models.RoleSystem:
			msgs = append(msgs, openai.SystemMessage(m.Content))
		default:
			msgs = append(msgs, openai.UserMessage(m.Content))
		}
	}
	return append(msgs, openai.UserMessage(req.User))
}

