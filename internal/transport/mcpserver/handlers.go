package mcpserver

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sandevgo/gemcp/internal/gemini"
)

// Adapter failures become tool error results carrying the canned category
// message, never protocol-level errors: the agent host should always get a
// well-formed tool response.
func errorResult(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func (s *Server) handleGenerate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	prompt, err := req.RequireString("prompt")
	if err != nil {
		return errorResult(err)
	}

	text, err := s.adapter.GenerateText(ctx, gemini.GenerateTextParams{
		Model:        req.GetString("model", ""),
		Prompt:       prompt,
		SystemPrompt: req.GetString("system_prompt", ""),
	})
	if err != nil {
		return errorResult(err)
	}
	return mcp.NewToolResultText(text), nil
}

func (s *Server) handleSearch(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return errorResult(err)
	}

	res, err := s.adapter.SearchWeb(ctx, gemini.SearchWebParams{
		Model:          req.GetString("model", ""),
		Query:          query,
		SystemPrompt:   req.GetString("system_prompt", ""),
		ExcludeDomains: req.GetStringSlice("exclude_domains", nil),
	})
	if err != nil {
		return errorResult(err)
	}

	var b strings.Builder
	b.WriteString(res.Text)
	if len(res.Citations) > 0 {
		b.WriteString("\n\nSources:\n")
		for _, c := range res.Citations {
			fmt.Fprintf(&b, "- %s (%s)\n", c.Title, c.URI)
		}
	}
	if len(res.Queries) > 0 {
		fmt.Fprintf(&b, "\nSearch queries: %s\n", strings.Join(res.Queries, ", "))
	}
	return mcp.NewToolResultText(b.String()), nil
}

func (s *Server) handleThink(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	prompt, err := req.RequireString("prompt")
	if err != nil {
		return errorResult(err)
	}

	res, err := s.adapter.GenerateWithThinking(ctx, gemini.ThinkingParams{
		Model:        req.GetString("model", ""),
		Prompt:       prompt,
		SystemPrompt: req.GetString("system_prompt", ""),
		Level:        req.GetString("level", ""),
		Budget:       int32(req.GetInt("budget", 0)),
	})
	if err != nil {
		return errorResult(err)
	}

	var b strings.Builder
	if res.Thoughts != "" {
		fmt.Fprintf(&b, "Reasoning:\n%s\n\n", res.Thoughts)
	}
	b.WriteString(res.Text)
	if res.ThoughtTokens > 0 {
		fmt.Fprintf(&b, "\n\n(%d thinking tokens)", res.ThoughtTokens)
	}
	return mcp.NewToolResultText(b.String()), nil
}

func (s *Server) handleExecuteCode(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	prompt, err := req.RequireString("prompt")
	if err != nil {
		return errorResult(err)
	}

	res, err := s.adapter.ExecuteCode(ctx, gemini.ExecuteCodeParams{
		Model:        req.GetString("model", ""),
		Prompt:       prompt,
		SystemPrompt: req.GetString("system_prompt", ""),
	})
	if err != nil {
		return errorResult(err)
	}

	var b strings.Builder
	b.WriteString(res.Text)
	if res.Code != "" {
		fmt.Fprintf(&b, "\n\nCode:\n```python\n%s\n```", res.Code)
	}
	if res.Output != "" {
		fmt.Fprintf(&b, "\n\nOutput:\n```\n%s\n```", res.Output)
	}
	return mcp.NewToolResultText(b.String()), nil
}

func (s *Server) handleFetchURLs(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	prompt, err := req.RequireString("prompt")
	if err != nil {
		return errorResult(err)
	}

	res, err := s.adapter.FetchURLContext(ctx, gemini.FetchURLParams{
		Model:        req.GetString("model", ""),
		Prompt:       prompt,
		URLs:         req.GetStringSlice("urls", nil),
		SystemPrompt: req.GetString("system_prompt", ""),
	})
	if err != nil {
		return errorResult(err)
	}

	var b strings.Builder
	b.WriteString(res.Text)
	if len(res.URLs) > 0 {
		b.WriteString("\n\nRetrieved URLs:\n")
		for _, u := range res.URLs {
			fmt.Fprintf(&b, "- %s [%s]\n", u.URL, u.Status)
		}
	}
	return mcp.NewToolResultText(b.String()), nil
}

func (s *Server) handleGenerateImage(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	prompt, err := req.RequireString("prompt")
	if err != nil {
		return errorResult(err)
	}

	refs, err := loadMediaItems(req.GetStringSlice("reference_image_paths", nil))
	if err != nil {
		return errorResult(err)
	}

	res, err := s.adapter.GenerateImage(ctx, gemini.GenerateImageParams{
		Model:           req.GetString("model", ""),
		Prompt:          prompt,
		AspectRatio:     req.GetString("aspect_ratio", ""),
		Resolution:      req.GetString("resolution", ""),
		SystemPrompt:    req.GetString("system_prompt", ""),
		WithSearch:      req.GetBool("with_search", false),
		ReferenceImages: refs,
	})
	if err != nil {
		return errorResult(err)
	}
	return imageResult(res), nil
}

func (s *Server) handleEditImage(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instruction, err := req.RequireString("instruction")
	if err != nil {
		return errorResult(err)
	}
	path, err := req.RequireString("image_path")
	if err != nil {
		return errorResult(err)
	}
	source, err := loadMediaItem(path)
	if err != nil {
		return errorResult(err)
	}

	res, err := s.adapter.EditImage(ctx, gemini.EditImageParams{
		Model:        req.GetString("model", ""),
		Instruction:  instruction,
		Source:       source,
		AspectRatio:  req.GetString("aspect_ratio", ""),
		Resolution:   req.GetString("resolution", ""),
		SystemPrompt: req.GetString("system_prompt", ""),
	})
	if err != nil {
		return errorResult(err)
	}
	return imageResult(res), nil
}

func (s *Server) handleAnalyzeImage(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	prompt, err := req.RequireString("prompt")
	if err != nil {
		return errorResult(err)
	}
	path, err := req.RequireString("image_path")
	if err != nil {
		return errorResult(err)
	}
	source, err := loadMediaItem(path)
	if err != nil {
		return errorResult(err)
	}

	text, err := s.adapter.AnalyzeImage(ctx, gemini.AnalyzeImageParams{
		Model:  req.GetString("model", ""),
		Prompt: prompt,
		Source: source,
	})
	if err != nil {
		return errorResult(err)
	}
	return mcp.NewToolResultText(text), nil
}

func (s *Server) handleQueryFile(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("file_path")
	if err != nil {
		return errorResult(err)
	}

	res, err := s.adapter.UploadFileAndQuery(ctx, gemini.FileQueryParams{
		Model: req.GetString("model", ""),
		Path:  path,
		Query: req.GetString("query", ""),
	})
	if err != nil {
		return errorResult(err)
	}

	return mcp.NewToolResultText(fmt.Sprintf("%s\n\n(uploaded as %s)", res.Text, res.FileName)), nil
}

func (s *Server) handleSearchMaps(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return errorResult(err)
	}

	params := gemini.SearchMapsParams{
		Model:        req.GetString("model", ""),
		Query:        query,
		SystemPrompt: req.GetString("system_prompt", ""),
	}
	// Presence matters here, not value: only set coordinates the caller sent.
	args := req.GetArguments()
	if v, ok := args["latitude"].(float64); ok {
		params.Latitude = &v
	}
	if v, ok := args["longitude"].(float64); ok {
		params.Longitude = &v
	}

	res, err := s.adapter.SearchMaps(ctx, params)
	if err != nil {
		return errorResult(err)
	}

	var b strings.Builder
	b.WriteString(res.Text)
	if len(res.Places) > 0 {
		b.WriteString("\n\nPlaces:\n")
		for _, p := range res.Places {
			fmt.Fprintf(&b, "- %s (%s)", p.Title, p.URI)
			if p.Text != "" {
				fmt.Fprintf(&b, " — %s", p.Text)
			}
			b.WriteString("\n")
		}
	}
	if len(res.Queries) > 0 {
		fmt.Fprintf(&b, "\nSearch queries: %s\n", strings.Join(res.Queries, ", "))
	}
	return mcp.NewToolResultText(b.String()), nil
}

func imageResult(res *gemini.ImageResult) *mcp.CallToolResult {
	var content []mcp.Content
	if res.Thoughts != "" {
		content = append(content, mcp.NewTextContent("Reasoning:\n"+res.Thoughts))
	}
	if res.Text != "" {
		content = append(content, mcp.NewTextContent(res.Text))
	}
	for _, img := range res.Images {
		content = append(content, mcp.NewImageContent(
			base64.StdEncoding.EncodeToString(img.Data), img.MIMEType))
	}
	if len(content) == 0 {
		content = append(content, mcp.NewTextContent("the model returned no content"))
	}
	return &mcp.CallToolResult{Content: content}
}

func loadMediaItem(path string) (gemini.MediaItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return gemini.MediaItem{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return gemini.MediaItem{Data: data, MIMEType: gemini.MIMEForPath(path)}, nil
}

func loadMediaItems(paths []string) ([]gemini.MediaItem, error) {
	if len(paths) == 0 {
		return nil, nil
	}
	items := make([]gemini.MediaItem, 0, len(paths))
	for _, p := range paths {
		item, err := loadMediaItem(p)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
