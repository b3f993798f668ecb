package gemini

import (
	"strings"

	"google.golang.org/genai"
)

const defaultImageMIME = "image/png"

// fragments is the shared bucket split for upstream response parts. Every
// part lands in exactly one bucket; order within a bucket follows the
// upstream emission order.
type fragments struct {
	answer   []string
	thoughts []string
	code     []string
	output   []string
	media    []MediaItem
}

func splitParts(parts []*genai.Part) fragments {
	var f fragments
	for _, p := range parts {
		switch {
		case p == nil:
		case p.ExecutableCode != nil:
			f.code = append(f.code, p.ExecutableCode.Code)
		case p.CodeExecutionResult != nil:
			f.output = append(f.output, p.CodeExecutionResult.Output)
		case p.InlineData != nil:
			mime := p.InlineData.MIMEType
			if mime == "" {
				mime = defaultImageMIME
			}
			f.media = append(f.media, MediaItem{Data: p.InlineData.Data, MIMEType: mime})
		case p.Text != "":
			if p.Thought {
				f.thoughts = append(f.thoughts, p.Text)
			} else {
				f.answer = append(f.answer, p.Text)
			}
		}
	}
	return f
}

func (f fragments) answerText() string {
	return strings.Join(f.answer, "")
}

func (f fragments) thoughtText() string {
	return strings.Join(f.thoughts, "")
}

func (f fragments) codeText() string {
	return strings.Join(f.code, "\n")
}

func (f fragments) outputText() string {
	return strings.Join(f.output, "\n")
}

// firstCandidate tolerates nil responses and empty candidate lists; an empty
// response normalizes to empty buckets, never to a failure.
func firstCandidate(resp *genai.GenerateContentResponse) *genai.Candidate {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil
	}
	return resp.Candidates[0]
}

func candidateParts(resp *genai.GenerateContentResponse) []*genai.Part {
	cand := firstCandidate(resp)
	if cand == nil || cand.Content == nil {
		return nil
	}
	return cand.Content.Parts
}

func groundingMetadata(resp *genai.GenerateContentResponse) *genai.GroundingMetadata {
	cand := firstCandidate(resp)
	if cand == nil {
		return nil
	}
	return cand.GroundingMetadata
}

func webCitations(md *genai.GroundingMetadata) []Citation {
	if md == nil {
		return nil
	}
	var out []Citation
	for _, chunk := range md.GroundingChunks {
		if chunk == nil || chunk.Web == nil {
			continue
		}
		title := chunk.Web.Title
		if title == "" {
			title = "Untitled"
		}
		out = append(out, Citation{Title: title, URI: chunk.Web.URI})
	}
	return out
}

// mapsPlaces reads only maps-flavored grounding chunks; web chunks on the
// same response are ignored here.
func mapsPlaces(md *genai.GroundingMetadata) []Place {
	if md == nil {
		return nil
	}
	var out []Place
	for _, chunk := range md.GroundingChunks {
		if chunk == nil || chunk.Maps == nil {
			continue
		}
		out = append(out, Place{
			Title:   chunk.Maps.Title,
			URI:     chunk.Maps.URI,
			PlaceID: chunk.Maps.PlaceID,
			Text:    chunk.Maps.Text,
		})
	}
	return out
}

func searchQueries(md *genai.GroundingMetadata) []string {
	if md == nil {
		return nil
	}
	return md.WebSearchQueries
}

func urlStatuses(resp *genai.GenerateContentResponse) []URLStatus {
	cand := firstCandidate(resp)
	if cand == nil || cand.URLContextMetadata == nil {
		return nil
	}
	var out []URLStatus
	for _, m := range cand.URLContextMetadata.URLMetadata {
		if m == nil {
			continue
		}
		status := string(m.URLRetrievalStatus)
		if status == "" {
			status = "UNKNOWN"
		}
		out = append(out, URLStatus{URL: m.RetrievedURL, Status: status})
	}
	return out
}

func thoughtTokens(resp *genai.GenerateContentResponse) int32 {
	if resp == nil || resp.UsageMetadata == nil {
		return 0
	}
	return resp.UsageMetadata.ThoughtsTokenCount
}
