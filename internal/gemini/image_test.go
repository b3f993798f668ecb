package gemini

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestGenerateImage_RoutesByModelPrefix(t *testing.T) {
	t.Run("imagen_uses_dedicated_endpoint", func(t *testing.T) {
		api := &fakeAPI{imagesResp: &genai.GenerateImagesResponse{
			GeneratedImages: []*genai.GeneratedImage{
				{Image: &genai.Image{ImageBytes: []byte{1, 2}, MIMEType: "image/png"}},
			},
		}}
		c, _ := newTestClient(api)

		res, err := c.GenerateImage(context.Background(), GenerateImageParams{
			Model:  "imagen-4.0-generate-001",
			Prompt: "a fox",
		})
		require.NoError(t, err)
		assert.Equal(t, 1, api.imagesCalls)
		assert.Zero(t, api.generateCalls)
		require.Len(t, res.Images, 1)
		assert.Equal(t, "image/png", res.Images[0].MIMEType)
	})

	t.Run("gemini_uses_multimodal_endpoint", func(t *testing.T) {
		api := &fakeAPI{generateResp: respWithParts(
			&genai.Part{Text: "here you go"},
			&genai.Part{InlineData: &genai.Blob{Data: []byte{3}, MIMEType: "image/png"}},
		)}
		c, _ := newTestClient(api)

		res, err := c.GenerateImage(context.Background(), GenerateImageParams{Prompt: "a fox"})
		require.NoError(t, err)
		assert.Equal(t, 1, api.generateCalls)
		assert.Zero(t, api.imagesCalls)
		assert.Equal(t, "here you go", res.Text)
		require.Len(t, res.Images, 1)
		assert.Equal(t, []string{"TEXT", "IMAGE"}, api.lastCfg.ResponseModalities)
	})
}

func TestGenerateImage_ReferenceImagesPrecedePrompt(t *testing.T) {
	api := &fakeAPI{generateResp: respWithParts(&genai.Part{Text: "ok"})}
	c, _ := newTestClient(api)

	_, err := c.GenerateImage(context.Background(), GenerateImageParams{
		Prompt: "blend these",
		ReferenceImages: []MediaItem{
			{Data: []byte{1}, MIMEType: "image/png"},
			{Data: []byte{2}, MIMEType: "image/jpeg"},
		},
	})
	require.NoError(t, err)
	require.Len(t, api.lastContents, 1)
	parts := api.lastContents[0].Parts
	require.Len(t, parts, 3)
	assert.NotNil(t, parts[0].InlineData)
	assert.NotNil(t, parts[1].InlineData)
	assert.Equal(t, "blend these", parts[2].Text)
}

func TestGenerateImage_TooManyReferences(t *testing.T) {
	api := &fakeAPI{}
	c, _ := newTestClient(api)

	refs := make([]MediaItem, 15)
	for i := range refs {
		refs[i] = MediaItem{Data: []byte{1}, MIMEType: "image/png"}
	}
	_, err := c.GenerateImage(context.Background(), GenerateImageParams{
		Prompt:          "p",
		ReferenceImages: refs,
	})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Zero(t, api.generateCalls)
}

func TestGenerateImage_SearchGroundingOnlyOnTopTierModel(t *testing.T) {
	t.Run("designated_model_gets_the_tool", func(t *testing.T) {
		api := &fakeAPI{generateResp: respWithParts(&genai.Part{Text: "ok"})}
		c, _ := newTestClient(api)

		_, err := c.GenerateImage(context.Background(), GenerateImageParams{
			Model:      "gemini-3-pro-image-preview",
			Prompt:     "p",
			WithSearch: true,
		})
		require.NoError(t, err)
		require.Len(t, api.lastCfg.Tools, 1)
		assert.NotNil(t, api.lastCfg.Tools[0].GoogleSearch)
	})

	t.Run("other_models_silently_drop_it", func(t *testing.T) {
		api := &fakeAPI{generateResp: respWithParts(&genai.Part{Text: "ok"})}
		c, _ := newTestClient(api)

		_, err := c.GenerateImage(context.Background(), GenerateImageParams{
			Prompt:     "p",
			WithSearch: true,
		})
		require.NoError(t, err)
		assert.Empty(t, api.lastCfg.Tools)
	})
}

func TestGenerateImage_InvalidShape(t *testing.T) {
	api := &fakeAPI{}
	c, _ := newTestClient(api)

	_, err := c.GenerateImage(context.Background(), GenerateImageParams{Prompt: "p", AspectRatio: "7:3"})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)

	_, err = c.GenerateImage(context.Background(), GenerateImageParams{Prompt: "p", Resolution: "8K"})
	require.ErrorAs(t, err, &vErr)
	assert.Zero(t, api.generateCalls)
}

func TestEditImage_PartsOrder(t *testing.T) {
	api := &fakeAPI{generateResp: respWithParts(
		&genai.Part{InlineData: &genai.Blob{Data: []byte{9}, MIMEType: "image/png"}},
	)}
	c, _ := newTestClient(api)

	res, err := c.EditImage(context.Background(), EditImageParams{
		Instruction: "make it blue",
		Source:      MediaItem{Data: []byte{1, 2}, MIMEType: "image/png"},
	})
	require.NoError(t, err)
	require.Len(t, res.Images, 1)

	parts := api.lastContents[0].Parts
	require.Len(t, parts, 2)
	assert.NotNil(t, parts[0].InlineData, "source image must come first")
	assert.Equal(t, "make it blue", parts[1].Text)
	assert.Equal(t, []string{"TEXT", "IMAGE"}, api.lastCfg.ResponseModalities)
}

func TestEditImage_EmptySourceRejected(t *testing.T) {
	api := &fakeAPI{}
	c, _ := newTestClient(api)

	_, err := c.EditImage(context.Background(), EditImageParams{Instruction: "x"})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Zero(t, api.generateCalls)
}

func TestAnalyzeImage(t *testing.T) {
	api := &fakeAPI{generateResp: respWithParts(&genai.Part{Text: "a fox on a fence"})}
	c, _ := newTestClient(api)

	text, err := c.AnalyzeImage(context.Background(), AnalyzeImageParams{
		Prompt: "what is this",
		Source: MediaItem{Data: []byte{1}, MIMEType: "image/jpeg"},
	})
	require.NoError(t, err)
	assert.Equal(t, "a fox on a fence", text)

	parts := api.lastContents[0].Parts
	require.Len(t, parts, 2)
	assert.NotNil(t, parts[0].InlineData)
	assert.Nil(t, api.lastCfg, "analysis is a plain text-out call")
}
