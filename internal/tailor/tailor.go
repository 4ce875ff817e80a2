package tailor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ErrNoCredential is a configuration error, never silently degraded: the
// caller shows the user how to set the key instead of pretending to tailor.
var ErrNoCredential = errors.New("no tailoring API key configured; set the groq_api_key secret or GROQ_API_KEY")

type Config struct {
	APIBase     string // defaults to Groq's OpenAI-compatible base
	Model       string
	Temperature float64
	MaxTokens   int
	TopP        float64
}

// Credential resolves the API key per call so keychain updates apply
// without a restart.
type Credential func() (string, error)

type Gateway struct {
	cfg    Config
	cred   Credential
	client *http.Client
}

type Request struct {
	MasterResume   string `json:"masterResume"`
	JobDescription string `json:"jobDescription"`
	JobTitle       string `json:"jobTitle"`
	Company        string `json:"company"`
}

type Result struct {
	TailoredResume string   `json:"tailoredResume"`
	Changes        []string `json:"changes"`
}

func New(cfg Config, cred Credential, client *http.Client) *Gateway {
	if strings.TrimSpace(cfg.APIBase) == "" {
		cfg.APIBase = "https://api.groq.com/openai/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "llama-3.1-70b-versatile"
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = 0.3
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = 4000
	}
	if cfg.TopP == 0 {
		cfg.TopP = 0.9
	}
	if client == nil {
		client = &http.Client{Timeout: 60 * time.Second}
	}
	return &Gateway{cfg: cfg, cred: cred, client: client}
}

// Tailor sends one chat-completion request and returns the rewritten resume
// plus a best-effort change summary. No retries; recovery is user-initiated.
func (g *Gateway) Tailor(ctx context.Context, req Request) (Result, error) {
	key, err := g.cred()
	if err != nil || strings.TrimSpace(key) == "" {
		return Result{}, ErrNoCredential
	}

	payload := chatRequest{
		Model: g.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt(req)},
		},
		Temperature: g.cfg.Temperature,
		MaxTokens:   g.cfg.MaxTokens,
		TopP:        g.cfg.TopP,
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return Result{}, fmt.Errorf("marshal payload: %w", err)
	}

	url := strings.TrimRight(g.cfg.APIBase, "/") + "/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return Result{}, fmt.Errorf("new request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+key)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return Result{}, fmt.Errorf("tailoring request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		// Propagate the remote message verbatim when the error body has one.
		var eb errorBody
		if json.NewDecoder(resp.Body).Decode(&eb) == nil && eb.Error.Message != "" {
			return Result{}, errors.New(eb.Error.Message)
		}
		return Result{}, fmt.Errorf("tailoring API error: %s", resp.Status)
	}

	var body chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Result{}, fmt.Errorf("decode response: %w", err)
	}
	if len(body.Choices) == 0 || strings.TrimSpace(body.Choices[0].Message.Content) == "" {
		return Result{}, errors.New("no response from model")
	}

	tailored := strings.TrimSpace(body.Choices[0].Message.Content)
	return Result{
		TailoredResume: tailored,
		Changes:        changeSummary(req.MasterResume, tailored),
	}, nil
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
	TopP        float64       `json:"top_p"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type errorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}
