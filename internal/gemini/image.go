package gemini

import (
	"context"

	"google.golang.org/genai"
)

// GenerateImage synthesizes images. Two upstream call shapes exist: imagen-*
// models go to the dedicated image endpoint, everything else goes through
// general multimodal generation with TEXT+IMAGE modalities. Both funnel into
// the same normalization.
func (c *Client) GenerateImage(ctx context.Context, p GenerateImageParams) (*ImageResult, error) {
	if err := requireText("prompt", p.Prompt); err != nil {
		return nil, err
	}
	if err := validateImageShape(p.AspectRatio, p.Resolution); err != nil {
		return nil, err
	}
	if len(p.ReferenceImages) > maxReferenceImages {
		return nil, invalidInput("at most %d reference images are allowed, got %d", maxReferenceImages, len(p.ReferenceImages))
	}

	model := c.model(p.Model, c.cfg.ImageModel)
	if isImagenModel(model) {
		return c.generateWithImagen(ctx, model, p)
	}
	return c.generateMultimodal(ctx, model, p)
}

func (c *Client) generateWithImagen(ctx context.Context, model string, p GenerateImageParams) (*ImageResult, error) {
	cfg := &genai.GenerateImagesConfig{
		NumberOfImages: 1,
		AspectRatio:    p.AspectRatio,
		ImageSize:      p.Resolution,
	}

	resp, err := callWithDeadline(ctx, c.deadline(imageTimeoutFactor), func(ctx context.Context) (*genai.GenerateImagesResponse, error) {
		return c.api.GenerateImages(ctx, model, p.Prompt, cfg)
	})
	if err != nil {
		return nil, err
	}

	result := &ImageResult{}
	if resp == nil {
		return result, nil
	}
	for _, g := range resp.GeneratedImages {
		if g == nil || g.Image == nil {
			continue
		}
		mime := g.Image.MIMEType
		if mime == "" {
			mime = defaultImageMIME
		}
		result.Images = append(result.Images, MediaItem{Data: g.Image.ImageBytes, MIMEType: mime})
	}
	return result, nil
}

func (c *Client) generateMultimodal(ctx context.Context, model string, p GenerateImageParams) (*ImageResult, error) {
	// Reference images go in front of the prompt text.
	parts := make([]*genai.Part, 0, len(p.ReferenceImages)+1)
	for _, ref := range p.ReferenceImages {
		parts = append(parts, genai.NewPartFromBytes(ref.Data, ref.MIMEType))
	}
	parts = append(parts, textPart(p.Prompt))

	cfg := &genai.GenerateContentConfig{
		SystemInstruction:  systemInstruction(p.SystemPrompt),
		ResponseModalities: []string{"TEXT", "IMAGE"},
	}
	if p.AspectRatio != "" || p.Resolution != "" {
		cfg.ImageConfig = &genai.ImageConfig{
			AspectRatio: p.AspectRatio,
			ImageSize:   p.Resolution,
		}
	}
	if p.WithSearch && model == searchGroundedImageModel {
		cfg.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}
	}

	resp, err := callWithDeadline(ctx, c.deadline(imageTimeoutFactor), func(ctx context.Context) (*genai.GenerateContentResponse, error) {
		return c.api.GenerateContent(ctx, model, userContents(parts...), cfg)
	})
	if err != nil {
		return nil, err
	}

	f := splitParts(candidateParts(resp))
	return &ImageResult{
		Text:     f.answerText(),
		Thoughts: f.thoughtText(),
		Images:   f.media,
	}, nil
}

// EditImage sends the source image plus the instruction as two ordered parts
// through the general multimodal call shape.
func (c *Client) EditImage(ctx context.Context, p EditImageParams) (*ImageResult, error) {
	if err := requireText("instruction", p.Instruction); err != nil {
		return nil, err
	}
	if len(p.Source.Data) == 0 {
		return nil, invalidInput("source image must not be empty")
	}
	if err := validateImageShape(p.AspectRatio, p.Resolution); err != nil {
		return nil, err
	}

	model := c.model(p.Model, c.cfg.ImageModel)
	parts := []*genai.Part{
		genai.NewPartFromBytes(p.Source.Data, p.Source.MIMEType),
		textPart(p.Instruction),
	}

	cfg := &genai.GenerateContentConfig{
		SystemInstruction:  systemInstruction(p.SystemPrompt),
		ResponseModalities: []string{"TEXT", "IMAGE"},
	}
	if p.AspectRatio != "" || p.Resolution != "" {
		cfg.ImageConfig = &genai.ImageConfig{
			AspectRatio: p.AspectRatio,
			ImageSize:   p.Resolution,
		}
	}

	resp, err := callWithDeadline(ctx, c.deadline(imageTimeoutFactor), func(ctx context.Context) (*genai.GenerateContentResponse, error) {
		return c.api.GenerateContent(ctx, model, userContents(parts...), cfg)
	})
	if err != nil {
		return nil, err
	}

	f := splitParts(candidateParts(resp))
	return &ImageResult{
		Text:     f.answerText(),
		Thoughts: f.thoughtText(),
		Images:   f.media,
	}, nil
}

// AnalyzeImage runs a single-shot text-only description of the source image.
func (c *Client) AnalyzeImage(ctx context.Context, p AnalyzeImageParams) (string, error) {
	if err := requireText("prompt", p.Prompt); err != nil {
		return "", err
	}
	if len(p.Source.Data) == 0 {
		return "", invalidInput("source image must not be empty")
	}

	model := c.model(p.Model, c.cfg.TextModel)
	parts := []*genai.Part{
		genai.NewPartFromBytes(p.Source.Data, p.Source.MIMEType),
		textPart(p.Prompt),
	}

	resp, err := callWithDeadline(ctx, c.deadline(imageTimeoutFactor), func(ctx context.Context) (*genai.GenerateContentResponse, error) {
		return c.api.GenerateContent(ctx, model, userContents(parts...), nil)
	})
	if err != nil {
		return "", err
	}

	return splitParts(candidateParts(resp)).answerText(), nil
}
