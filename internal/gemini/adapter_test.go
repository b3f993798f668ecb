package gemini

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestGenerateText(t *testing.T) {
	api := &fakeAPI{generateResp: respWithParts(
		&genai.Part{Text: "hello "},
		&genai.Part{Text: "world"},
	)}
	c, _ := newTestClient(api)

	text, err := c.GenerateText(context.Background(), GenerateTextParams{Prompt: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "hello world", text)
	assert.Equal(t, "gemini-2.5-flash", api.lastModel)
}

func TestGenerateText_EmptyResponseIsNotAnError(t *testing.T) {
	api := &fakeAPI{generateResp: &genai.GenerateContentResponse{}}
	c, _ := newTestClient(api)

	text, err := c.GenerateText(context.Background(), GenerateTextParams{Prompt: "hi"})
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestGenerateText_EmptyPromptRejected(t *testing.T) {
	api := &fakeAPI{}
	c, _ := newTestClient(api)

	_, err := c.GenerateText(context.Background(), GenerateTextParams{Prompt: "  "})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Zero(t, api.generateCalls, "validation failures must not reach the network")
}

func TestSearchWeb_ExcludeDomainCap(t *testing.T) {
	domains := []string{"a.com", "b.com", "c.com", "d.com", "e.com"}

	t.Run("six_rejected_before_network", func(t *testing.T) {
		api := &fakeAPI{}
		c, _ := newTestClient(api)
		_, err := c.SearchWeb(context.Background(), SearchWebParams{
			Query:          "q",
			ExcludeDomains: append(domains, "f.com"),
		})
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Zero(t, api.generateCalls)
	})

	t.Run("five_accepted", func(t *testing.T) {
		api := &fakeAPI{generateResp: respWithParts(&genai.Part{Text: "ok"})}
		c, _ := newTestClient(api)
		res, err := c.SearchWeb(context.Background(), SearchWebParams{
			Query:          "q",
			ExcludeDomains: domains,
		})
		require.NoError(t, err)
		assert.Equal(t, "ok", res.Text)
		require.Equal(t, 1, api.generateCalls)
		require.Len(t, api.lastCfg.Tools, 1)
		assert.Equal(t, domains, api.lastCfg.Tools[0].GoogleSearch.ExcludeDomains)
	})
}

func TestSearchWeb_GroundingMetadataOptional(t *testing.T) {
	api := &fakeAPI{generateResp: respWithParts(&genai.Part{Text: "answer"})}
	c, _ := newTestClient(api)

	res, err := c.SearchWeb(context.Background(), SearchWebParams{Query: "q"})
	require.NoError(t, err)
	assert.Equal(t, "answer", res.Text)
	assert.Empty(t, res.Citations)
	assert.Empty(t, res.Queries)
}

func TestGenerateWithThinking_ControlByModelFamily(t *testing.T) {
	resp := respWithParts(
		&genai.Part{Text: "reasoning...", Thought: true},
		&genai.Part{Text: "the answer"},
	)
	resp.UsageMetadata = &genai.GenerateContentResponseUsageMetadata{ThoughtsTokenCount: 128}

	t.Run("gemini3_uses_level", func(t *testing.T) {
		api := &fakeAPI{generateResp: resp}
		c, _ := newTestClient(api)
		res, err := c.GenerateWithThinking(context.Background(), ThinkingParams{
			Model:  "gemini-3-pro-preview",
			Prompt: "p",
			Level:  "high",
		})
		require.NoError(t, err)
		tc := api.lastCfg.ThinkingConfig
		require.NotNil(t, tc)
		assert.True(t, tc.IncludeThoughts)
		assert.Equal(t, genai.ThinkingLevelHigh, tc.ThinkingLevel)
		assert.Nil(t, tc.ThinkingBudget)
		assert.Equal(t, "the answer", res.Text)
		assert.Equal(t, "reasoning...", res.Thoughts)
		assert.Equal(t, int32(128), res.ThoughtTokens)
	})

	t.Run("older_family_uses_budget_default", func(t *testing.T) {
		api := &fakeAPI{generateResp: resp}
		c, _ := newTestClient(api)
		_, err := c.GenerateWithThinking(context.Background(), ThinkingParams{
			Model:  "gemini-2.5-pro",
			Prompt: "p",
			Level:  "high", // caller intent must not override the family routing
		})
		require.NoError(t, err)
		tc := api.lastCfg.ThinkingConfig
		require.NotNil(t, tc)
		require.NotNil(t, tc.ThinkingBudget)
		assert.Equal(t, int32(8192), *tc.ThinkingBudget)
	})

	t.Run("explicit_budget_kept", func(t *testing.T) {
		api := &fakeAPI{generateResp: resp}
		c, _ := newTestClient(api)
		_, err := c.GenerateWithThinking(context.Background(), ThinkingParams{
			Model:  "gemini-2.5-flash",
			Prompt: "p",
			Budget: 2048,
		})
		require.NoError(t, err)
		require.NotNil(t, api.lastCfg.ThinkingConfig.ThinkingBudget)
		assert.Equal(t, int32(2048), *api.lastCfg.ThinkingConfig.ThinkingBudget)
	})

	t.Run("bad_level_rejected", func(t *testing.T) {
		api := &fakeAPI{}
		c, _ := newTestClient(api)
		_, err := c.GenerateWithThinking(context.Background(), ThinkingParams{
			Prompt: "p",
			Level:  "extreme",
		})
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Zero(t, api.generateCalls)
	})
}

func TestExecuteCode(t *testing.T) {
	api := &fakeAPI{generateResp: respWithParts(
		&genai.Part{Text: "checking"},
		&genai.Part{ExecutableCode: &genai.ExecutableCode{Code: "print('x')"}},
		&genai.Part{CodeExecutionResult: &genai.CodeExecutionResult{Output: "x"}},
	)}
	c, _ := newTestClient(api)

	res, err := c.ExecuteCode(context.Background(), ExecuteCodeParams{Prompt: "p"})
	require.NoError(t, err)
	assert.Equal(t, "checking", res.Text)
	assert.Equal(t, "print('x')", res.Code)
	assert.Equal(t, "x", res.Output)
	require.Len(t, api.lastCfg.Tools, 1)
	assert.NotNil(t, api.lastCfg.Tools[0].CodeExecution)
}

func TestFetchURLContext(t *testing.T) {
	t.Run("url_count_bounds", func(t *testing.T) {
		api := &fakeAPI{}
		c, _ := newTestClient(api)

		_, err := c.FetchURLContext(context.Background(), FetchURLParams{Prompt: "p"})
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)

		urls := make([]string, 21)
		for i := range urls {
			urls[i] = "https://example.com"
		}
		_, err = c.FetchURLContext(context.Background(), FetchURLParams{Prompt: "p", URLs: urls})
		require.ErrorAs(t, err, &vErr)
		assert.Zero(t, api.generateCalls)
	})

	t.Run("composite_prompt_embeds_urls", func(t *testing.T) {
		api := &fakeAPI{generateResp: respWithParts(&genai.Part{Text: "summary"})}
		c, _ := newTestClient(api)

		res, err := c.FetchURLContext(context.Background(), FetchURLParams{
			Prompt: "compare these",
			URLs:   []string{"https://a.example", "https://b.example"},
		})
		require.NoError(t, err)
		assert.Equal(t, "summary", res.Text)

		require.Len(t, api.lastContents, 1)
		require.Len(t, api.lastContents[0].Parts, 1)
		prompt := api.lastContents[0].Parts[0].Text
		assert.Contains(t, prompt, "compare these")
		assert.Contains(t, prompt, "- https://a.example")
		assert.Contains(t, prompt, "- https://b.example")
		require.Len(t, api.lastCfg.Tools, 1)
		assert.NotNil(t, api.lastCfg.Tools[0].URLContext)
	})
}

func TestSearchMaps_CoordinateValidation(t *testing.T) {
	lat, lng := 48.85, 2.35
	bigLat := 91.0

	tests := []struct {
		name    string
		lat     *float64
		lng     *float64
		wantErr bool
	}{
		{name: "both_absent", wantErr: false},
		{name: "both_present", lat: &lat, lng: &lng, wantErr: false},
		{name: "latitude_only_rejected", lat: &lat, wantErr: true},
		{name: "longitude_only_rejected", lng: &lng, wantErr: true},
		{name: "latitude_out_of_range", lat: &bigLat, lng: &lng, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeAPI{generateResp: respWithParts(&genai.Part{Text: "ok"})}
			c, _ := newTestClient(api)

			_, err := c.SearchMaps(context.Background(), SearchMapsParams{
				Query:     "coffee nearby",
				Latitude:  tt.lat,
				Longitude: tt.lng,
			})
			if tt.wantErr {
				var vErr *ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Zero(t, api.generateCalls, "invalid coordinates must never reach the network")
				return
			}
			require.NoError(t, err)
			require.Equal(t, 1, api.generateCalls)
		})
	}
}

func TestSearchMaps_AttachesRetrievalLocation(t *testing.T) {
	lat, lng := 48.85, 2.35
	api := &fakeAPI{generateResp: respWithParts(&genai.Part{Text: "ok"})}
	c, _ := newTestClient(api)

	_, err := c.SearchMaps(context.Background(), SearchMapsParams{
		Query:     "coffee",
		Latitude:  &lat,
		Longitude: &lng,
	})
	require.NoError(t, err)
	require.NotNil(t, api.lastCfg.ToolConfig)
	require.NotNil(t, api.lastCfg.ToolConfig.RetrievalConfig)
	require.NotNil(t, api.lastCfg.ToolConfig.RetrievalConfig.LatLng)
	require.Len(t, api.lastCfg.Tools, 1)
	assert.NotNil(t, api.lastCfg.Tools[0].GoogleMaps)
}

func TestSearchMaps_NoCoordinatesNoToolConfig(t *testing.T) {
	api := &fakeAPI{generateResp: respWithParts(&genai.Part{Text: "ok"})}
	c, _ := newTestClient(api)

	_, err := c.SearchMaps(context.Background(), SearchMapsParams{Query: "coffee"})
	require.NoError(t, err)
	assert.Nil(t, api.lastCfg.ToolConfig)
}
