package gemini

import (
	"context"

	"google.golang.org/genai"
)

const defaultThinkingBudget = 8192

func userContents(parts ...*genai.Part) []*genai.Content {
	return []*genai.Content{{Role: genai.RoleUser, Parts: parts}}
}

func textPart(text string) *genai.Part {
	return &genai.Part{Text: text}
}

func systemInstruction(text string) *genai.Content {
	if text == "" {
		return nil
	}
	return &genai.Content{Parts: []*genai.Part{{Text: text}}}
}

// GenerateText runs plain generation: answer text only, no tools, no media.
// An empty upstream response yields an empty string, not a failure.
func (c *Client) GenerateText(ctx context.Context, p GenerateTextParams) (string, error) {
	if err := requireText("prompt", p.Prompt); err != nil {
		return "", err
	}

	model := c.model(p.Model, c.cfg.TextModel)
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: systemInstruction(p.SystemPrompt),
	}

	resp, err := callWithDeadline(ctx, c.baseTimeout, func(ctx context.Context) (*genai.GenerateContentResponse, error) {
		return c.api.GenerateContent(ctx, model, userContents(textPart(p.Prompt)), cfg)
	})
	if err != nil {
		return "", err
	}

	return splitParts(candidateParts(resp)).answerText(), nil
}

// GenerateWithThinking asks for an explicit reasoning trace. The thinking
// control is chosen by model family: gemini-3 models take a level, earlier
// families take a token budget.
func (c *Client) GenerateWithThinking(ctx context.Context, p ThinkingParams) (*ThinkingResult, error) {
	if err := requireText("prompt", p.Prompt); err != nil {
		return nil, err
	}
	if p.Level != "" && !validThinkingLevels[p.Level] {
		return nil, invalidInput("invalid thinking level %q, expected low, medium or high", p.Level)
	}
	if p.Budget < 0 {
		return nil, invalidInput("thinking budget must not be negative")
	}

	model := c.model(p.Model, c.cfg.ThinkingModel)

	thinking := &genai.ThinkingConfig{IncludeThoughts: true}
	if usesThinkingLevel(model) {
		thinking.ThinkingLevel = thinkingLevel(p.Level)
	} else {
		budget := p.Budget
		if budget == 0 {
			budget = defaultThinkingBudget
		}
		thinking.ThinkingBudget = genai.Ptr(budget)
	}

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: systemInstruction(p.SystemPrompt),
		ThinkingConfig:    thinking,
	}

	resp, err := callWithDeadline(ctx, c.deadline(thinkingTimeoutFactor), func(ctx context.Context) (*genai.GenerateContentResponse, error) {
		return c.api.GenerateContent(ctx, model, userContents(textPart(p.Prompt)), cfg)
	})
	if err != nil {
		return nil, err
	}

	f := splitParts(candidateParts(resp))
	return &ThinkingResult{
		Text:          f.answerText(),
		Thoughts:      f.thoughtText(),
		ThoughtTokens: thoughtTokens(resp),
	}, nil
}

func thinkingLevel(level string) genai.ThinkingLevel {
	switch level {
	case "low":
		return genai.ThinkingLevelLow
	case "medium":
		return genai.ThinkingLevelMedium
	case "high":
		return genai.ThinkingLevelHigh
	default:
		return genai.ThinkingLevelHigh
	}
}
