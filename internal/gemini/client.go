package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sandevgo/gemcp/internal/config"
	"google.golang.org/genai"
)

// Deadline multipliers per capability class. Plain text runs on the base
// timeout; slower classes scale it up.
const (
	searchTimeoutFactor   = 2
	thinkingTimeoutFactor = 3
	execTimeoutFactor     = 3
	urlTimeoutFactor      = 3
	imageTimeoutFactor    = 4
	fileTimeoutFactor     = 5
)

const (
	defaultTimeout = 30 * time.Second

	// Upload poll loop: check every pollInterval, give up after maxPollWait.
	pollInterval = 2 * time.Second
	maxPollWait  = 60 * time.Second
)

// generativeAPI is the slice of the genai SDK the adapter touches. Kept
// small so normalization and the poll loop are testable with fakes.
type generativeAPI interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
	GenerateImages(ctx context.Context, model, prompt string, cfg *genai.GenerateImagesConfig) (*genai.GenerateImagesResponse, error)
	UploadFile(ctx context.Context, path string, cfg *genai.UploadFileConfig) (*genai.File, error)
	GetFile(ctx context.Context, name string) (*genai.File, error)
}

type sdkAPI struct {
	client *genai.Client
}

func (s *sdkAPI) GenerateContent(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	return s.client.Models.GenerateContent(ctx, model, contents, cfg)
}

func (s *sdkAPI) GenerateImages(ctx context.Context, model, prompt string, cfg *genai.GenerateImagesConfig) (*genai.GenerateImagesResponse, error) {
	return s.client.Models.GenerateImages(ctx, model, prompt, cfg)
}

func (s *sdkAPI) UploadFile(ctx context.Context, path string, cfg *genai.UploadFileConfig) (*genai.File, error) {
	return s.client.Files.UploadFromPath(ctx, path, cfg)
}

func (s *sdkAPI) GetFile(ctx context.Context, name string) (*genai.File, error) {
	return s.client.Files.Get(ctx, name, nil)
}

// Client is the capability adapter around the Gemini API. It holds no
// call-scoped state, so one instance is safe for sequential and concurrent
// invocations alike.
type Client struct {
	api         generativeAPI
	cfg         *config.GeminiConfig
	baseTimeout time.Duration

	// sleep is swapped out by tests to simulate poll intervals.
	sleep func(ctx context.Context, d time.Duration) error
}

func New(ctx context.Context, cfg *config.GeminiConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		api:         &sdkAPI{client: gc},
		cfg:         cfg,
		baseTimeout: timeout,
		sleep:       sleepCtx,
	}, nil
}

func (c *Client) deadline(factor int) time.Duration {
	return c.baseTimeout * time.Duration(factor)
}

// model falls back to the configured default for the capability class when
// the caller left the model unset.
func (c *Client) model(requested, fallback string) string {
	if requested != "" {
		return requested
	}
	return fallback
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Model family routing. The thinking control and the image call shape both
// hinge on the model identifier, never on caller intent.
func usesThinkingLevel(model string) bool {
	return strings.HasPrefix(model, "gemini-3")
}

func isImagenModel(model string) bool {
	return strings.HasPrefix(model, "imagen-")
}

// Only the top-tier image model accepts search grounding; on anything else
// the grounding directive is silently dropped.
const searchGroundedImageModel = "gemini-3-pro-image-preview"
