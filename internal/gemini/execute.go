package gemini

import (
	"context"
	"strings"

	"google.golang.org/genai"
)

// ExecuteCode lets the model write and run code in the upstream sandbox.
// Generated code blocks and execution output are newline-joined in emission
// order; a single part is never both.
func (c *Client) ExecuteCode(ctx context.Context, p ExecuteCodeParams) (*CodeExecResult, error) {
	if err := requireText("prompt", p.Prompt); err != nil {
		return nil, err
	}

	model := c.model(p.Model, c.cfg.TextModel)
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: systemInstruction(p.SystemPrompt),
		Tools: []*genai.Tool{
			{CodeExecution: &genai.ToolCodeExecution{}},
		},
	}

	resp, err := callWithDeadline(ctx, c.deadline(execTimeoutFactor), func(ctx context.Context) (*genai.GenerateContentResponse, error) {
		return c.api.GenerateContent(ctx, model, userContents(textPart(p.Prompt)), cfg)
	})
	if err != nil {
		return nil, err
	}

	f := splitParts(candidateParts(resp))
	return &CodeExecResult{
		Text:   f.answerText(),
		Code:   f.codeText(),
		Output: f.outputText(),
	}, nil
}

// FetchURLContext embeds the target URLs into one composite prompt and asks
// upstream to read them with its URL retrieval facility.
func (c *Client) FetchURLContext(ctx context.Context, p FetchURLParams) (*URLContextResult, error) {
	if err := requireText("prompt", p.Prompt); err != nil {
		return nil, err
	}
	if len(p.URLs) == 0 || len(p.URLs) > maxContextURLs {
		return nil, invalidInput("between 1 and %d URLs are required, got %d", maxContextURLs, len(p.URLs))
	}

	var b strings.Builder
	b.WriteString(p.Prompt)
	b.WriteString("\n\nUse the following URLs as context:\n")
	for _, u := range p.URLs {
		b.WriteString("- ")
		b.WriteString(u)
		b.WriteString("\n")
	}

	model := c.model(p.Model, c.cfg.TextModel)
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: systemInstruction(p.SystemPrompt),
		Tools: []*genai.Tool{
			{URLContext: &genai.URLContext{}},
		},
	}

	resp, err := callWithDeadline(ctx, c.deadline(urlTimeoutFactor), func(ctx context.Context) (*genai.GenerateContentResponse, error) {
		return c.api.GenerateContent(ctx, model, userContents(textPart(b.String())), cfg)
	})
	if err != nil {
		return nil, err
	}

	return &URLContextResult{
		Text: splitParts(candidateParts(resp)).answerText(),
		URLs: urlStatuses(resp),
	}, nil
}
