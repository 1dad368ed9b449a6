package cartesia

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

// Client calls the Cartesia bytes TTS endpoint to synthesize coach replies.
type Client struct {
	baseURL    string
	apiKey     string
	version    string
	model      string
	voiceID    string
	language   string
	httpClient *http.Client
}

var _ contractx.Synthesizer = (*Client)(nil)

type Config struct {
	APIKey   string        `split_words:"true" required:"true"`
	BaseURL  string        `split_words:"true" default:"https://api.cartesia.ai"`
	Version  string        `split_words:"true" default:"2024-11-13"`
	Model    string        `split_words:"true" default:"sonic-2"`
	VoiceID  string        `split_words:"true" default:"95d51f79-c397-46f9-b49a-23763d3eaa2d"`
	Language string        `split_words:"true" default:"en"`
	Timeout  time.Duration `split_words:"true" default:"15s"`
}

func NewClient(cfg Config) (*Client, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, errors.New("cartesia api key is required")
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, errors.New("cartesia base url is required")
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
		version:  strings.TrimSpace(cfg.Version),
		model:    strings.TrimSpace(cfg.Model),
		voiceID:  strings.TrimSpace(cfg.VoiceID),
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

type ttsRequest struct {
	ModelID      string       `json:"model_id"`
	Transcript   string       `json:"transcript"`
	Voice        ttsVoice     `json:"voice"`
	OutputFormat outputFormat `json:"output_format"`
	Language     string       `json:"language,omitempty"`
}

type ttsVoice struct {
	Mode string `json:"mode"`
	ID   string `json:"id"`
}

type outputFormat struct {
	Container  string `json:"container"`
	Encoding   string `json:"encoding"`
	SampleRate int    `json:"sample_rate"`
}

// Synthesize renders reply text as WAV audio.
func (c *Client) Synthesize(ctx context.Context, text string, cfg contractx.VoiceConfig) ([]byte, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.New("text is empty")
	}

	voiceID := strings.TrimSpace(cfg.VoiceID)
	if voiceID == "" {
		voiceID = c.voiceID
	}
	language := strings.TrimSpace(cfg.Language)
	if language == "" {
		language = c.language
	}

	payload := ttsRequest{
		ModelID:    c.model,
		Transcript: text,
		Voice:      ttsVoice{Mode: "id", ID: voiceID},
		OutputFormat: outputFormat{
			Container:  "wav",
			Encoding:   "pcm_s16le",
			SampleRate: 44100,
		},
		Language: language,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal tts request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/tts/bytes", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build tts request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Cartesia-Version", c.version)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute tts request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read tts response: %w", err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("cartesia http status=%d body=%s", resp.StatusCode, string(raw))
	}
	return raw, nil
}
