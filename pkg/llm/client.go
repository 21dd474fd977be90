package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/carlmjohnson/requests"
	"github.com/duke-git/lancet/v2/strutil"
	"github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
)

var (
	// ErrMissingAPIKey is returned by NewClient when no API key is configured.
	ErrMissingAPIKey = errors.New("API key is not set, export OPENAI_API_KEY or set api_key in the config file")
	// ErrNoFunctionCall is returned when the model answered without calling
	// a function.
	ErrNoFunctionCall = errors.New("model response does not contain a function call")
)

type Options struct {
	ApiKey   string
	BaseURL  string
	Model    string
	Language string

	// HTTPClient overrides the default client, mostly for tests.
	HTTPClient *http.Client
}

// Client sends a single completion request to an OpenAI compatible
// endpoint.
type Client struct {
	options Options
}

func NewClient(opts Options) (*Client, error) {
	if strutil.IsBlank(opts.ApiKey) {
		return nil, ErrMissingAPIKey
	}

	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Model == "" {
		opts.Model = DefaultModel
	}
	if opts.Language == "" {
		opts.Language = DefaultLanguage
	}

	return &Client{
		options: opts,
	}, nil
}

func (c *Client) String() string {
	return fmt.Sprintf("OpenAI (%s)", c.options.Model)
}

func (c *Client) endpoint() string {
	return strings.TrimRight(c.options.BaseURL, "/") + "/chat/completions"
}

// RequestCommit sends the diff and returns the raw arguments of the commit
// function call. Nothing is retried.
func (c *Client) RequestCommit(ctx context.Context, diff string, schema *jsonschema.Definition) (string, error) {
	payload := BuildRequest(c.options.Model, c.options.Language, diff, schema)

	var (
		respContent openai.ChatCompletionResponse
		respError   openai.ErrorResponse
	)

	rb := requests.
		URL(c.endpoint()).
		Post().
		Headers(map[string][]string{
			"Authorization": {fmt.Sprintf("Bearer %s", c.options.ApiKey)},
		}).
		BodyJSON(payload).
		ToJSON(&respContent).
		ErrorJSON(&respError)

	if c.options.HTTPClient != nil {
		rb = rb.Client(c.options.HTTPClient)
	}

	if err := rb.Fetch(ctx); err != nil {
		if respError.Error != nil && respError.Error.Message != "" {
			return "", fmt.Errorf("completion API error: %s", respError.Error.Message)
		}
		return "", fmt.Errorf("completion request failed: %w", err)
	}

	if len(respContent.Choices) == 0 {
		return "", errors.New("no completion choice available")
	}

	call := respContent.Choices[0].Message.FunctionCall
	if call == nil {
		return "", ErrNoFunctionCall
	}
	if call.Name != CommitFunction {
		return "", fmt.Errorf("model called unexpected function %q", call.Name)
	}

	return call.Arguments, nil
}
