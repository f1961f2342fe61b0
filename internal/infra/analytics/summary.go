// Package analytics derives dashboard summaries from the frozen catalog.
// Everything here is a pure function over static data.
package analytics

import "nexus/internal/domain"

type CategoryCount struct {
	Category domain.ToolCategory
	Count    int
}

// CategoryDistribution counts tools per category in the fixed category
// order, including zero-count categories.
func CategoryDistribution(tools []domain.Tool) []CategoryCount {
	counts := make(map[domain.ToolCategory]int, len(tools))
	for _, tool := range tools {
		counts[tool.Category]++
	}
	out := make([]CategoryCount, 0, len(domain.Categories()))
	for _, category := range domain.Categories() {
		out = append(out, CategoryCount{Category: category, Count: counts[category]})
	}
	return out
}

// PopularShare returns how many tools carry the popular flag.
func PopularShare(tools []domain.Tool) (popular, total int) {
	for _, tool := range tools {
		if tool.Popular {
			popular++
		}
	}
	return popular, len(tools)
}

// Skill is one entry of the skills matrix shown on the dashboard.
type Skill struct {
	Title       string
	Description string
	Tools       []string
}

// Skills returns the static 2026 skills matrix.
func Skills() []Skill {
	return []Skill{
		{Title: "Prompt Engineering", Description: "Structuring contexts for reliability.", Tools: []string{"ChatGPT", "Claude", "Gemini"}},
		{Title: "Workflow Automation", Description: "Linking apps for repetitive tasks.", Tools: []string{"Zapier", "Make", "n8n"}},
		{Title: "AI Agents", Description: "Multi-step systems without human input.", Tools: []string{"CrewAI", "LangGraph", "AutoGen"}},
		{Title: "RAG", Description: "Connecting LLMs to private data sources.", Tools: []string{"LangChain", "Vectara", "LlamaIndex"}},
		{Title: "Fine-Tuning", Description: "Adapting models for brand voice.", Tools: []string{"OpenAI", "Hugging Face", "Cohere"}},
		{Title: "Multimodal AI", Description: "Understanding text, image, and audio.", Tools: []string{"GPT-4", "Gemini", "Grok"}},
		{Title: "AI Video", Description: "Ideas into complete videos.", Tools: []string{"Runway", "OpusClip", "Pika"}},
		{Title: "Tool Stacking", Description: "Combining productivity apps.", Tools: []string{"Notion", "ClickUp", "Zapier"}},
		{Title: "LLM Evaluation", Description: "Tracking AI performance.", Tools: []string{"Helicone", "PromptLayer", "TruLens"}},
	}
}
