// Package parser talks to the Gemini generateContent API to turn free text and photos into structured food data.
package parser

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cenkalti/backoff/v4"

	"github.com/limbo/fast800/pkg/entity"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"
	DefaultModel   = "gemini-2.0-flash"
)

var (
	ErrNoCandidates  = errors.New("no candidates in response")
	ErrEmptyResponse = errors.New("empty model response")
)

type GeminiRequest struct {
	Contents         []Content         `json:"contents"`
	GenerationConfig *GenerationConfig `json:"generationConfig,omitempty"`
}

type GenerationConfig struct {
	ResponseMimeType string  `json:"responseMimeType,omitempty"`
	Temperature      float64 `json:"temperature"`
}

type Content struct {
	Parts []Part `json:"parts"`
}

type Part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *InlineData `json:"inline_data,omitempty"`
}

type InlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type GeminiResponse struct {
	Candidates []Candidate `json:"candidates"`
}

type Candidate struct {
	Content Content `json:"content"`
}

// Config of the client. RetryInterval is the first retry delay, zero keeps the backoff default.
type Config struct {
	APIKey        string
	Model         string
	BaseURL       string
	MaxRetries    uint64
	Timeout       time.Duration
	RetryInterval time.Duration
}

// GeminiClient implements recipe, food log and ingredient parsing on top of Gemini.
type GeminiClient struct {
	apiKey     string
	url        string
	client     *http.Client
	maxRetries uint64
	interval   time.Duration
}

func NewGeminiClient(cfg Config) *GeminiClient {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	return &GeminiClient{
		apiKey:     cfg.APIKey,
		url:        strings.TrimRight(cfg.BaseURL, "/") + "/" + cfg.Model + ":generateContent",
		client:     &http.Client{Timeout: cfg.Timeout},
		maxRetries: cfg.MaxRetries,
		interval:   cfg.RetryInterval,
	}
}

func (gc *GeminiClient) ParseRecipeText(ctx context.Context, text string) (*entity.RecipeDraft, error) {
	out, err := gc.prompt(ctx, Part{Text: recipeTextPrompt(text)})
	if err != nil {
		return nil, err
	}
	var draft entity.RecipeDraft
	if err = sonic.ConfigDefault.UnmarshalFromString(cleanLLMResponse(out), &draft); err != nil {
		return nil, errors.New("unmarshalling recipe draft error: " + err.Error())
	}
	return &draft, nil
}

func (gc *GeminiClient) ParseRecipeImage(ctx context.Context, data []byte, mimeType string) (*entity.RecipeDraft, error) {
	out, err := gc.prompt(ctx,
		Part{Text: recipeImagePrompt},
		Part{InlineData: &InlineData{MimeType: mimeType, Data: base64.StdEncoding.EncodeToString(data)}},
	)
	if err != nil {
		return nil, err
	}
	var draft entity.RecipeDraft
	if err = sonic.ConfigDefault.UnmarshalFromString(cleanLLMResponse(out), &draft); err != nil {
		return nil, errors.New("unmarshalling recipe draft error: " + err.Error())
	}
	return &draft, nil
}

func (gc *GeminiClient) AnalyzeFoodLog(ctx context.Context, text string) ([]entity.FoodEstimate, error) {
	out, err := gc.prompt(ctx, Part{Text: foodLogPrompt(text)})
	if err != nil {
		return nil, err
	}
	var res struct {
		Foods []entity.FoodEstimate `json:"foods"`
	}
	if err = sonic.ConfigDefault.UnmarshalFromString(cleanLLMResponse(out), &res); err != nil {
		return nil, errors.New("unmarshalling food estimates error: " + err.Error())
	}
	if res.Foods == nil {
		res.Foods = []entity.FoodEstimate{}
	}
	return res.Foods, nil
}

// ParseIngredients returns one entry per line in input order. A count mismatch is left
// for the caller to handle.
func (gc *GeminiClient) ParseIngredients(ctx context.Context, lines []string) ([]entity.ParsedIngredient, error) {
	if len(lines) == 0 {
		return []entity.ParsedIngredient{}, nil
	}
	out, err := gc.prompt(ctx, Part{Text: ingredientsPrompt(lines)})
	if err != nil {
		return nil, err
	}
	var res struct {
		Ingredients []entity.ParsedIngredient `json:"ingredients"`
	}
	if err = sonic.ConfigDefault.UnmarshalFromString(cleanLLMResponse(out), &res); err != nil {
		return nil, errors.New("unmarshalling ingredients error: " + err.Error())
	}
	for i := range res.Ingredients {
		if i < len(lines) && res.Ingredients[i].OriginalText == "" {
			res.Ingredients[i].OriginalText = lines[i]
		}
	}
	return res.Ingredients, nil
}

// prompt sends parts as a single user turn and returns the first candidate's text.
// Transport failures, 429 and 5xx are retried with exponential backoff.
func (gc *GeminiClient) prompt(ctx context.Context, parts ...Part) (string, error) {
	body, err := sonic.ConfigDefault.Marshal(GeminiRequest{
		Contents:         []Content{{Parts: parts}},
		GenerationConfig: &GenerationConfig{ResponseMimeType: "application/json", Temperature: 0.2},
	})
	if err != nil {
		return "", errors.New("marshalling request error: " + err.Error())
	}

	var text string
	op := func() error {
		text, err = gc.do(ctx, body)
		return err
	}
	eb := backoff.NewExponentialBackOff()
	if gc.interval > 0 {
		eb.InitialInterval = gc.interval
	}
	b := backoff.WithContext(backoff.WithMaxRetries(eb, gc.maxRetries), ctx)
	if err = backoff.Retry(op, b); err != nil {
		return "", err
	}
	return text, nil
}

func (gc *GeminiClient) do(ctx context.Context, body []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, gc.url, bytes.NewReader(body))
	if err != nil {
		return "", backoff.Permanent(errors.New("creating request error: " + err.Error()))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", gc.apiKey)

	resp, err := gc.client.Do(req)
	if err != nil {
		return "", errors.New("making request error: " + err.Error())
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.New("reading response error: " + err.Error())
	}
	if resp.StatusCode != http.StatusOK {
		statusErr := fmt.Errorf("api request failed with status %d: %s", resp.StatusCode, string(raw))
		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
			return "", statusErr
		}
		return "", backoff.Permanent(statusErr)
	}

	var gr GeminiResponse
	if err = sonic.ConfigDefault.Unmarshal(raw, &gr); err != nil {
		return "", backoff.Permanent(errors.New("unmarshalling response error: " + err.Error()))
	}
	if len(gr.Candidates) == 0 {
		return "", backoff.Permanent(ErrNoCandidates)
	}
	var sb strings.Builder
	for _, p := range gr.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	if strings.TrimSpace(sb.String()) == "" {
		return "", backoff.Permanent(ErrEmptyResponse)
	}
	return sb.String(), nil
}

// cleanLLMResponse strips markdown fences and any prose around the outermost JSON object.
func cleanLLMResponse(response string) string {
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```", "")
	response = strings.TrimSpace(response)

	start := strings.Index(response, "{")
	end := strings.LastIndex(response, "}")
	if start != -1 && end > start {
		return response[start : end+1]
	}
	return response
}
