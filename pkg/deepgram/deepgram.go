package deepgram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	contractx "github.com/harz05/onestBack/agent/contract"
)

// Client calls the Deepgram prerecorded transcription API. The real-time
// capture loop belongs to the hosted voice runtime; this is the batch surface
// it hands finished utterances to.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	language   string
	httpClient *http.Client
}

var _ contractx.Transcriber = (*Client)(nil)

type Config struct {
	APIKey   string        `split_words:"true" required:"true"`
	BaseURL  string        `split_words:"true" default:"https://api.deepgram.com"`
	Model    string        `split_words:"true" default:"nova-2"`
	Language string        `split_words:"true" default:"en-IN"`
	Timeout  time.Duration `split_words:"true" default:"15s"`
}

func NewClient(cfg Config) (*Client, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, errors.New("deepgram api key is required")
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, errors.New("deepgram base url is required")
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, err
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &Client{
		baseURL:  baseURL,
		apiKey:   apiKey,
		model:    strings.TrimSpace(cfg.Model),
		language: strings.TrimSpace(cfg.Language),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

func MustNew(cfg Config) *Client {
	client, err := NewClient(cfg)
	if err != nil {
		panic(err)
	}
	return client
}

type listenResponse struct {
	Results struct {
		Channels []struct {
			Alternatives []struct {
				Transcript string `json:"transcript"`
			} `json:"alternatives"`
		} `json:"channels"`
	} `json:"results"`
}

// Transcribe sends one finished utterance and returns its transcript.
func (c *Client) Transcribe(ctx context.Context, audio []byte, cfg contractx.AudioConfig) (string, error) {
	if len(audio) == 0 {
		return "", errors.New("audio payload is empty")
	}

	query := url.Values{}
	if c.model != "" {
		query.Set("model", c.model)
	}
	language := strings.TrimSpace(cfg.Language)
	if language == "" {
		language = c.language
	}
	if language != "" {
		query.Set("language", language)
	}

	endpoint := c.baseURL + "/v1/listen"
	if encoded := query.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(audio))
	if err != nil {
		return "", fmt.Errorf("build transcription request: %w", err)
	}
	req.Header.Set("Authorization", "Token "+c.apiKey)
	contentType := strings.TrimSpace(cfg.ContentType)
	if contentType == "" {
		contentType = "audio/wav"
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute transcription request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read transcription response: %w", err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("deepgram http status=%d body=%s", resp.StatusCode, string(raw))
	}

	var parsed listenResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("decode transcription response: %w", err)
	}
	if len(parsed.Results.Channels) == 0 || len(parsed.Results.Channels[0].Alternatives) == 0 {
		return "", errors.New("transcription response has no alternatives")
	}
	return parsed.Results.Channels[0].Alternatives[0].Transcript, nil
}
