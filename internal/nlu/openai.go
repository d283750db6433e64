package nlu

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/packages/param"

	"github.com/vmunix/chatarr/internal/media"
	"github.com/vmunix/chatarr/internal/selection"
)

const defaultModel = "gpt-4o-mini"

// OpenAIService implements Service with OpenAI chat completions. Each call
// asks for a strict JSON object and parses it; anything that doesn't parse
// is an error for the caller to absorb with its documented default.
type OpenAIService struct {
	client openai.Client
	model  string
}

// OpenAIOption configures an OpenAIService.
type OpenAIOption func(*OpenAIService)

// WithModel overrides the completion model.
func WithModel(model string) OpenAIOption {
	return func(s *OpenAIService) {
		s.model = model
	}
}

// NewOpenAIService creates the OpenAI-backed language-model service.
// baseURL may be empty for the default endpoint.
func NewOpenAIService(apiKey, baseURL string, opts ...OpenAIOption) *OpenAIService {
	reqOpts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(baseURL))
	}
	s := &OpenAIService{
		client: openai.NewClient(reqOpts...),
		model:  defaultModel,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ClassifyIntent classifies a fresh message.
func (s *OpenAIService) ClassifyIntent(ctx context.Context, message string) (*Intent, error) {
	const system = `Classify the user's media request. Respond with only a JSON object:
{"kind": "movie"|"series"|"either", "intent": "library"|"external"|"both"|"delete", "terms": "<search terms or empty>"}
"library" = asking about media they already have, "external" = asking for new media,
"both" = unclear which, "delete" = asking to remove media.`

	var out Intent
	if err := s.completeJSON(ctx, system, message, &out); err != nil {
		return nil, fmt.Errorf("classify intent: %w", err)
	}
	switch out.Kind {
	case media.KindMovie, media.KindSeries, media.KindEither:
	default:
		return nil, fmt.Errorf("classify intent: bad kind %q", out.Kind)
	}
	switch out.Intent {
	case IntentLibrary, IntentExternal, IntentBoth, IntentDelete:
	default:
		return nil, fmt.Errorf("classify intent: bad intent %q", out.Intent)
	}
	return &out, nil
}

// ClassifyMediaKind disambiguates movie vs series.
func (s *OpenAIService) ClassifyMediaKind(ctx context.Context, message string) (media.Kind, error) {
	const system = `Is the user talking about a movie or a TV series?
Respond with only a JSON object: {"kind": "movie"|"series"}`

	var out struct {
		Kind media.Kind `json:"kind"`
	}
	if err := s.completeJSON(ctx, system, message, &out); err != nil {
		return "", fmt.Errorf("classify media kind: %w", err)
	}
	if out.Kind != media.KindMovie && out.Kind != media.KindSeries {
		return "", fmt.Errorf("classify media kind: bad kind %q", out.Kind)
	}
	return out.Kind, nil
}

// DetectTopicContinuity decides whether a message continues the pending
// operation.
func (s *OpenAIService) DetectTopicContinuity(ctx context.Context, message string, history []Message) (Continuity, error) {
	const system = `The user has a pending media request (picking an item from a list or
choosing seasons). Does this new message continue that request, or is it a new topic?
Respond with only a JSON object: {"verdict": "continue"|"switch"}`

	var out struct {
		Verdict string `json:"verdict"`
	}
	user := message
	if len(history) > 0 {
		user = historyPreamble(history) + "\n\nNew message: " + message
	}
	if err := s.completeJSON(ctx, system, user, &out); err != nil {
		return "", fmt.Errorf("detect continuity: %w", err)
	}
	switch strings.ToLower(out.Verdict) {
	case string(ContinuityContinue):
		return ContinuityContinue, nil
	case string(ContinuitySwitch):
		return ContinuitySwitch, nil
	}
	return "", fmt.Errorf("detect continuity: bad verdict %q", out.Verdict)
}

// ExtractSearchQuery pulls the title out of a message.
func (s *OpenAIService) ExtractSearchQuery(ctx context.Context, message string) (string, error) {
	const system = `Extract the movie or series title the user is asking about.
Respond with only a JSON object: {"query": "<title, or empty string if none>"}`

	var out struct {
		Query string `json:"query"`
	}
	if err := s.completeJSON(ctx, system, message, &out); err != nil {
		return "", fmt.Errorf("extract query: %w", err)
	}
	return strings.TrimSpace(out.Query), nil
}

// ParseSelectionReference parses an ordinal or year selection.
func (s *OpenAIService) ParseSelectionReference(ctx context.Context, message string) (*selection.Reference, error) {
	const system = `The user may be picking an item from a numbered list, either by position
("the second one") or by release year ("the 2008 one"). Respond with only a JSON object:
{"kind": "ordinal"|"year"|"none", "n": <1-indexed position>, "year": <year>}`

	var out struct {
		Kind string `json:"kind"`
		N    int    `json:"n"`
		Year int    `json:"year"`
	}
	if err := s.completeJSON(ctx, system, message, &out); err != nil {
		return nil, fmt.Errorf("parse selection: %w", err)
	}
	switch out.Kind {
	case string(selection.RefOrdinal):
		if out.N < 1 {
			return nil, nil
		}
		return selection.Ordinal(out.N), nil
	case string(selection.RefYear):
		if out.Year == 0 {
			return nil, nil
		}
		return selection.Year(out.Year), nil
	}
	return nil, nil
}

// ParseParts parses a seasons/episodes scope.
func (s *OpenAIService) ParseParts(ctx context.Context, message string) (*selection.PartsSpec, error) {
	const system = `The user may be specifying which parts of a TV series to act on.
Respond with only a JSON object:
{"mentioned": <true if any scope was stated>, "entire": <true for the whole series>,
"selectors": [{"season": <n>, "episodes": [<n>, ...]}]}
"season 1" -> {"mentioned":true,"entire":false,"selectors":[{"season":1}]}
"the whole show" -> {"mentioned":true,"entire":true,"selectors":[]}
no scope mentioned -> {"mentioned":false}`

	var out struct {
		Mentioned bool `json:"mentioned"`
		Entire    bool `json:"entire"`
		Selectors []struct {
			Season   int   `json:"season"`
			Episodes []int `json:"episodes"`
		} `json:"selectors"`
	}
	if err := s.completeJSON(ctx, system, message, &out); err != nil {
		return nil, fmt.Errorf("parse parts: %w", err)
	}
	if !out.Mentioned {
		return nil, nil
	}
	if out.Entire || len(out.Selectors) == 0 {
		return selection.EntireSeries(), nil
	}
	selectors := make([]media.SeasonSelector, 0, len(out.Selectors))
	for _, sel := range out.Selectors {
		selectors = append(selectors, media.SeasonSelector{
			Season:   sel.Season,
			Episodes: sel.Episodes,
		})
	}
	return selection.Partial(selectors...), nil
}

// Summarize produces a conversational reply grounded in instructions.
func (s *OpenAIService) Summarize(ctx context.Context, instructions string, history []Message) (string, error) {
	msgs := make([]openai.ChatCompletionMessageParamUnion, 0, len(history)+1)
	msgs = append(msgs, openai.SystemMessage(instructions))
	for _, m := range history {
		switch m.Role {
		case "assistant":
			msgs = append(msgs, openai.AssistantMessage(m.Content))
		default:
			msgs = append(msgs, openai.UserMessage(m.Content))
		}
	}

	completion, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: msgs,
		Model:    openai.ChatModel(s.model),
	})
	if err != nil {
		return "", fmt.Errorf("summarize: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("summarize: no choices returned")
	}
	return completion.Choices[0].Message.Content, nil
}

// completeJSON runs a single-turn completion and decodes the JSON object in
// the reply into out.
func (s *OpenAIService) completeJSON(ctx context.Context, system, user string, out any) error {
	completion, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
		Model:       openai.ChatModel(s.model),
		Temperature: param.NewOpt(0.0),
	})
	if err != nil {
		return err
	}
	if len(completion.Choices) == 0 {
		return fmt.Errorf("no choices returned")
	}
	raw := extractJSON(completion.Choices[0].Message.Content)
	if raw == "" {
		return fmt.Errorf("no JSON object in response")
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// extractJSON returns the outermost {...} in a completion, tolerating
// models that wrap the object in prose or code fences.
func extractJSON(content string) string {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end <= start {
		return ""
	}
	return content[start : end+1]
}

func historyPreamble(history []Message) string {
	var b strings.Builder
	b.WriteString("Recent conversation:")
	for _, m := range history {
		b.WriteString("\n")
		b.WriteString(m.Role)
		b.WriteString(": ")
		b.WriteString(m.Content)
	}
	return b.String()
}
