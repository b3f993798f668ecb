package gemini

import (
	"context"
	"time"

	"github.com/sandevgo/gemcp/internal/config"
	"google.golang.org/genai"
)

// fakeAPI stands in for the genai SDK so tests can drive responses, error
// signals and file lifecycle sequences without the network.
type fakeAPI struct {
	generateResp *genai.GenerateContentResponse
	generateErr  error
	generateFn   func(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)

	generateCalls int
	lastModel     string
	lastContents  []*genai.Content
	lastCfg       *genai.GenerateContentConfig

	imagesResp  *genai.GenerateImagesResponse
	imagesErr   error
	imagesCalls int
	lastImgCfg  *genai.GenerateImagesConfig

	uploadFile  *genai.File
	uploadErr   error
	uploadCalls int

	// fileStates is consumed one entry per GetFile call; the last entry
	// repeats once exhausted.
	fileStates []genai.FileState
	getCalls   int
}

func (f *fakeAPI) GenerateContent(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.generateCalls++
	f.lastModel = model
	f.lastContents = contents
	f.lastCfg = cfg
	if f.generateFn != nil {
		return f.generateFn(ctx, model, contents, cfg)
	}
	return f.generateResp, f.generateErr
}

func (f *fakeAPI) GenerateImages(ctx context.Context, model, prompt string, cfg *genai.GenerateImagesConfig) (*genai.GenerateImagesResponse, error) {
	f.imagesCalls++
	f.lastModel = model
	f.lastImgCfg = cfg
	return f.imagesResp, f.imagesErr
}

func (f *fakeAPI) UploadFile(ctx context.Context, path string, cfg *genai.UploadFileConfig) (*genai.File, error) {
	f.uploadCalls++
	return f.uploadFile, f.uploadErr
}

func (f *fakeAPI) GetFile(ctx context.Context, name string) (*genai.File, error) {
	idx := f.getCalls
	if idx >= len(f.fileStates) {
		idx = len(f.fileStates) - 1
	}
	f.getCalls++
	return &genai.File{
		Name:     name,
		URI:      "files/uri/" + name,
		MIMEType: "text/plain",
		State:    f.fileStates[idx],
	}, nil
}

// newTestClient wires a Client to the fake with an instant sleep that counts
// simulated poll intervals.
func newTestClient(api *fakeAPI) (*Client, *int) {
	sleeps := 0
	c := &Client{
		api: api,
		cfg: &config.GeminiConfig{
			TextModel:     "gemini-2.5-flash",
			ThinkingModel: "gemini-2.5-pro",
			ImageModel:    "gemini-2.5-flash-image",
		},
		baseTimeout: 5 * time.Second,
		sleep: func(ctx context.Context, d time.Duration) error {
			sleeps++
			return nil
		},
	}
	return c, &sleeps
}
