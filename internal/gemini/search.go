package gemini

import (
	"context"

	"google.golang.org/genai"
)

// SearchWeb grounds an answer with Google Search. Missing grounding metadata
// on the response degrades to empty citation and query lists.
func (c *Client) SearchWeb(ctx context.Context, p SearchWebParams) (*SearchResult, error) {
	if err := requireText("query", p.Query); err != nil {
		return nil, err
	}
	if len(p.ExcludeDomains) > maxExcludeDomains {
		return nil, invalidInput("at most %d excluded domains are allowed, got %d", maxExcludeDomains, len(p.ExcludeDomains))
	}

	model := c.model(p.Model, c.cfg.TextModel)
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: systemInstruction(p.SystemPrompt),
		Tools: []*genai.Tool{
			{GoogleSearch: &genai.GoogleSearch{ExcludeDomains: p.ExcludeDomains}},
		},
	}

	resp, err := callWithDeadline(ctx, c.deadline(searchTimeoutFactor), func(ctx context.Context) (*genai.GenerateContentResponse, error) {
		return c.api.GenerateContent(ctx, model, userContents(textPart(p.Query)), cfg)
	})
	if err != nil {
		return nil, err
	}

	md := groundingMetadata(resp)
	return &SearchResult{
		Text:      splitParts(candidateParts(resp)).answerText(),
		Citations: webCitations(md),
		Queries:   searchQueries(md),
	}, nil
}

// SearchMaps grounds an answer with Google Maps. Coordinates are optional
// but must come as a pair; when present they are attached as the retrieval
// location.
func (c *Client) SearchMaps(ctx context.Context, p SearchMapsParams) (*MapsResult, error) {
	if err := requireText("query", p.Query); err != nil {
		return nil, err
	}
	if err := validateCoordinates(p.Latitude, p.Longitude); err != nil {
		return nil, err
	}

	model := c.model(p.Model, c.cfg.TextModel)
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: systemInstruction(p.SystemPrompt),
		Tools: []*genai.Tool{
			{GoogleMaps: &genai.GoogleMaps{}},
		},
	}
	if p.Latitude != nil {
		cfg.ToolConfig = &genai.ToolConfig{
			RetrievalConfig: &genai.RetrievalConfig{
				LatLng: &genai.LatLng{
					Latitude:  genai.Ptr(*p.Latitude),
					Longitude: genai.Ptr(*p.Longitude),
				},
			},
		}
	}

	resp, err := callWithDeadline(ctx, c.deadline(searchTimeoutFactor), func(ctx context.Context) (*genai.GenerateContentResponse, error) {
		return c.api.GenerateContent(ctx, model, userContents(textPart(p.Query)), cfg)
	})
	if err != nil {
		return nil, err
	}

	md := groundingMetadata(resp)
	return &MapsResult{
		Text:    splitParts(candidateParts(resp)).answerText(),
		Places:  mapsPlaces(md),
		Queries: searchQueries(md),
	}, nil
}
