package llm

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

const (
	defaultMaxTokens   = 3000
	defaultTemperature = 0.5
)

// ErrEmptyReply is returned when the provider answers without any choices.
var ErrEmptyReply = errors.New("empty llm reply")

type ChatOptions struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// OpenAIClient talks to any OpenAI-compatible chat completions endpoint.
type OpenAIClient struct {
	http  *resty.Client
	model string
}

func NewOpenAIClient(opts ChatOptions) (*OpenAIClient, error) {
	if opts.BaseURL == "" {
		return nil, errors.New("missing llm base url")
	}
	if opts.APIKey == "" {
		return nil, errors.New("missing llm api key")
	}
	if opts.Model == "" {
		return nil, errors.New("missing llm model")
	}

	c := resty.New().
		SetBaseURL(opts.BaseURL).
		SetAuthToken(opts.APIKey).
		SetHeader("Content-Type", "application/json")
	if opts.Timeout > 0 {
		c.SetTimeout(opts.Timeout)
	}

	return &OpenAIClient{http: c, model: opts.Model}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (o *OpenAIClient) Complete(ctx context.Context, prompt string) (string, error) {
	var out chatResponse

	resp, err := o.http.R().
		SetContext(ctx).
		SetBody(chatRequest{
			Model:       o.model,
			Messages:    []chatMessage{{Role: "user", Content: prompt}},
			MaxTokens:   defaultMaxTokens,
			Temperature: defaultTemperature,
		}).
		ForceContentType("application/json").
		SetResult(&out).
		Post("/chat/completions")
	if err != nil {
		return "", errors.Wrap(err, "llm request")
	}
	if resp.IsError() {
		return "", errors.Errorf("llm api error: status %d", resp.StatusCode())
	}

	if len(out.Choices) == 0 || out.Choices[0].Message.Content == "" {
		return "", ErrEmptyReply
	}
	return out.Choices[0].Message.Content, nil
}
