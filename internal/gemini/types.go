package gemini

// MediaItem is one generated or supplied blob plus its declared type.
type MediaItem struct {
	Data     []byte
	MIMEType string
}

// Citation is one web grounding source attached to an answer.
type Citation struct {
	Title string
	URI   string
}

// Place is one maps grounding source attached to an answer.
type Place struct {
	Title   string
	URI     string
	PlaceID string
	Text    string
}

// URLStatus reports whether upstream managed to retrieve one requested URL.
type URLStatus struct {
	URL    string
	Status string
}

type SearchResult struct {
	Text      string
	Citations []Citation
	Queries   []string
}

type ThinkingResult struct {
	Text          string
	Thoughts      string
	ThoughtTokens int32
}

type CodeExecResult struct {
	Text   string
	Code   string
	Output string
}

type URLContextResult struct {
	Text string
	URLs []URLStatus
}

type ImageResult struct {
	Text     string
	Thoughts string
	Images   []MediaItem
}

type FileQueryResult struct {
	Text     string
	FileName string
}

type MapsResult struct {
	Text    string
	Places  []Place
	Queries []string
}

// GenerateTextParams drives plain generation: no tools, no media.
type GenerateTextParams struct {
	Model        string
	Prompt       string
	SystemPrompt string
}

type SearchWebParams struct {
	Model          string
	Query          string
	SystemPrompt   string
	ExcludeDomains []string
}

// ThinkingParams selects the thinking control by model family, not by which
// field the caller filled in: gemini-3 models take Level, older models take
// Budget (tokens, default 8192).
type ThinkingParams struct {
	Model        string
	Prompt       string
	SystemPrompt string
	Level        string
	Budget       int32
}

type ExecuteCodeParams struct {
	Model        string
	Prompt       string
	SystemPrompt string
}

type FetchURLParams struct {
	Model        string
	Prompt       string
	URLs         []string
	SystemPrompt string
}

type GenerateImageParams struct {
	Model           string
	Prompt          string
	AspectRatio     string
	Resolution      string
	SystemPrompt    string
	WithSearch      bool
	ReferenceImages []MediaItem
}

type EditImageParams struct {
	Model        string
	Instruction  string
	Source       MediaItem
	AspectRatio  string
	Resolution   string
	SystemPrompt string
}

type AnalyzeImageParams struct {
	Model  string
	Prompt string
	Source MediaItem
}

type FileQueryParams struct {
	Model string
	Path  string
	Query string
}

type SearchMapsParams struct {
	Model        string
	Query        string
	SystemPrompt string
	Latitude     *float64
	Longitude    *float64
}
