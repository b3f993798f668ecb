package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// Tool names as the agent host sees them.
const (
	toolGenerate      = "gemini_generate"
	toolSearch        = "gemini_search"
	toolThink         = "gemini_think"
	toolExecuteCode   = "gemini_execute_code"
	toolFetchURLs     = "gemini_fetch_urls"
	toolGenerateImage = "gemini_generate_image"
	toolEditImage     = "gemini_edit_image"
	toolAnalyzeImage  = "gemini_analyze_image"
	toolQueryFile     = "gemini_query_file"
	toolSearchMaps    = "gemini_search_maps"
)

func (s *Server) registerTools() {
	s.mcp.AddTool(generateTool(), s.handleGenerate)
	s.mcp.AddTool(searchTool(), s.handleSearch)
	s.mcp.AddTool(thinkTool(), s.handleThink)
	s.mcp.AddTool(executeCodeTool(), s.handleExecuteCode)
	s.mcp.AddTool(fetchURLsTool(), s.handleFetchURLs)
	s.mcp.AddTool(generateImageTool(), s.handleGenerateImage)
	s.mcp.AddTool(editImageTool(), s.handleEditImage)
	s.mcp.AddTool(analyzeImageTool(), s.handleAnalyzeImage)
	s.mcp.AddTool(queryFileTool(), s.handleQueryFile)
	s.mcp.AddTool(searchMapsTool(), s.handleSearchMaps)
}

// Definitions returns every tool the server registers, for listing without
// an upstream client.
func Definitions() []mcp.Tool {
	return []mcp.Tool{
		generateTool(),
		searchTool(),
		thinkTool(),
		executeCodeTool(),
		fetchURLsTool(),
		generateImageTool(),
		editImageTool(),
		analyzeImageTool(),
		queryFileTool(),
		searchMapsTool(),
	}
}

func generateTool() mcp.Tool {
	return mcp.NewTool(toolGenerate,
		mcp.WithDescription("Generate text with a Gemini model. Plain generation: no search, no media."),
		mcp.WithString("prompt", mcp.Required(), mcp.Description("The prompt to send to the model")),
		mcp.WithString("model", mcp.Description("Model id; defaults to the configured text model")),
		mcp.WithString("system_prompt", mcp.Description("Optional system instruction")),
	)
}

func searchTool() mcp.Tool {
	return mcp.NewTool(toolSearch,
		mcp.WithDescription("Answer a query grounded in Google Search results, with source citations."),
		mcp.WithString("query", mcp.Required(), mcp.Description("The search query")),
		mcp.WithString("model", mcp.Description("Model id; defaults to the configured text model")),
		mcp.WithString("system_prompt", mcp.Description("Optional system instruction")),
		mcp.WithArray("exclude_domains", mcp.Description("Domains to exclude from search results (max 5)"),
			mcp.Items(map[string]any{"type": "string"})),
	)
}

func thinkTool() mcp.Tool {
	return mcp.NewTool(toolThink,
		mcp.WithDescription("Generate with an explicit reasoning trace. Gemini 3 models take a thinking level, older models take a token budget."),
		mcp.WithString("prompt", mcp.Required(), mcp.Description("The prompt to reason about")),
		mcp.WithString("model", mcp.Description("Model id; defaults to the configured thinking model")),
		mcp.WithString("system_prompt", mcp.Description("Optional system instruction")),
		mcp.WithString("level", mcp.Description("Thinking level: low, medium or high (Gemini 3 family)")),
		mcp.WithNumber("budget", mcp.Description("Thinking token budget (older families, default 8192)")),
	)
}

func executeCodeTool() mcp.Tool {
	return mcp.NewTool(toolExecuteCode,
		mcp.WithDescription("Let the model write and run Python in the upstream sandbox and report the results."),
		mcp.WithString("prompt", mcp.Required(), mcp.Description("What to compute or verify")),
		mcp.WithString("model", mcp.Description("Model id; defaults to the configured text model")),
		mcp.WithString("system_prompt", mcp.Description("Optional system instruction")),
	)
}

func fetchURLsTool() mcp.Tool {
	return mcp.NewTool(toolFetchURLs,
		mcp.WithDescription("Answer a prompt using the content of specific web pages (1-20 URLs), fetched by the model."),
		mcp.WithString("prompt", mcp.Required(), mcp.Description("The question about the pages")),
		mcp.WithArray("urls", mcp.Required(), mcp.Description("Target URLs (1-20)"),
			mcp.Items(map[string]any{"type": "string"})),
		mcp.WithString("model", mcp.Description("Model id; defaults to the configured text model")),
		mcp.WithString("system_prompt", mcp.Description("Optional system instruction")),
	)
}

func generateImageTool() mcp.Tool {
	return mcp.NewTool(toolGenerateImage,
		mcp.WithDescription("Generate images. Imagen models use the dedicated image endpoint; Gemini image models generate multimodally and accept reference images."),
		mcp.WithString("prompt", mcp.Required(), mcp.Description("The image description")),
		mcp.WithString("model", mcp.Description("Model id; defaults to the configured image model")),
		mcp.WithString("aspect_ratio", mcp.Description("Aspect ratio, e.g. 1:1, 16:9, 9:16")),
		mcp.WithString("resolution", mcp.Description("Resolution: 1K, 2K or 4K")),
		mcp.WithString("system_prompt", mcp.Description("Optional system instruction")),
		mcp.WithBoolean("with_search", mcp.Description("Ground generation in Google Search (top-tier image model only)")),
		mcp.WithArray("reference_image_paths", mcp.Description("Local paths of reference images (max 14)"),
			mcp.Items(map[string]any{"type": "string"})),
	)
}

func editImageTool() mcp.Tool {
	return mcp.NewTool(toolEditImage,
		mcp.WithDescription("Edit a local image according to an instruction and return the edited image."),
		mcp.WithString("instruction", mcp.Required(), mcp.Description("How to change the image")),
		mcp.WithString("image_path", mcp.Required(), mcp.Description("Local path of the source image")),
		mcp.WithString("model", mcp.Description("Model id; defaults to the configured image model")),
		mcp.WithString("aspect_ratio", mcp.Description("Aspect ratio, e.g. 1:1, 16:9, 9:16")),
		mcp.WithString("resolution", mcp.Description("Resolution: 1K, 2K or 4K")),
		mcp.WithString("system_prompt", mcp.Description("Optional system instruction")),
	)
}

func analyzeImageTool() mcp.Tool {
	return mcp.NewTool(toolAnalyzeImage,
		mcp.WithDescription("Describe or answer questions about a local image."),
		mcp.WithString("prompt", mcp.Required(), mcp.Description("What to look for in the image")),
		mcp.WithString("image_path", mcp.Required(), mcp.Description("Local path of the image")),
		mcp.WithString("model", mcp.Description("Model id; defaults to the configured text model")),
	)
}

func queryFileTool() mcp.Tool {
	return mcp.NewTool(toolQueryFile,
		mcp.WithDescription("Upload a local file to Gemini and answer a question about its content."),
		mcp.WithString("file_path", mcp.Required(), mcp.Description("Local path of the file to upload")),
		mcp.WithString("query", mcp.Description("Question about the file; defaults to a detailed summary")),
		mcp.WithString("model", mcp.Description("Model id; defaults to the configured text model")),
	)
}

func searchMapsTool() mcp.Tool {
	return mcp.NewTool(toolSearchMaps,
		mcp.WithDescription("Answer a query grounded in Google Maps places, optionally near given coordinates."),
		mcp.WithString("query", mcp.Required(), mcp.Description("The places query")),
		mcp.WithString("model", mcp.Description("Model id; defaults to the configured text model")),
		mcp.WithString("system_prompt", mcp.Description("Optional system instruction")),
		mcp.WithNumber("latitude", mcp.Description("Latitude in [-90, 90]; requires longitude")),
		mcp.WithNumber("longitude", mcp.Description("Longitude in [-180, 180]; requires latitude")),
	)
}
