package domain

const (
	// ToolResultLimit bounds tool matches per query; it keeps the dropdown
	// height fixed and is not tunable per call.
	ToolResultLimit = 5

	DefaultProvider                 = "genai"
	DefaultTextModel                = "gemini-2.5-flash"
	DefaultImageModel               = "imagen-4.0-generate-001"
	DefaultCapabilityTimeoutSeconds = 120

	DefaultObservabilityListenAddress = "0.0.0.0:9090"
	DefaultStatePath                  = "nexus.db"

	DefaultInitialCredits       = 850
	DefaultBillingSettleSeconds = 2
)

const (
	// ChatSystemPrompt frames every chat-mode request.
	ChatSystemPrompt = "You are Nexus AI, an elite assistant embedded in a futuristic AI tools dashboard. Be concise, professional, and helpful."

	// CodePromptTemplate wraps the user prompt for code mode. Fence markers
	// in the response are forwarded raw, never parsed.
	CodePromptTemplate = "Write code for: %s. Return only the code within markdown code blocks."

	// Image mode requests exactly one square compressed raster.
	ImageAspectRatio = "1:1"
	ImageMIMEType    = "image/jpeg"
)
