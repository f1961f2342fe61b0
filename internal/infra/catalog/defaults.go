package catalog

import "nexus/internal/domain"

// DefaultTools is the built-in catalog used when the config file lists no
// tools of its own.
func DefaultTools() []domain.Tool {
	return []domain.Tool{
		// Writing
		{ID: "gpt4", Name: "ChatGPT", Category: domain.CategoryWriting, Description: "Advanced conversational AI.", Icon: domain.IconMessageSquare, URL: "https://chat.openai.com", Popular: true, Internal: true},
		{ID: "claude", Name: "Claude", Category: domain.CategoryWriting, Description: "Helpful and harmless AI assistant.", Icon: domain.IconMessageSquare, URL: "https://claude.ai", Popular: true},
		{ID: "gemini", Name: "Gemini", Category: domain.CategoryWriting, Description: "Google's multimodal AI.", Icon: domain.IconZap, URL: "https://gemini.google.com", Popular: true, Internal: true},
		{ID: "jasper", Name: "Jasper", Category: domain.CategoryWriting, Description: "AI copywriter for marketing.", Icon: domain.IconPenTool, URL: "https://www.jasper.ai"},
		{ID: "copyai", Name: "Copy.ai", Category: domain.CategoryWriting, Description: "Generate marketing copy in seconds.", Icon: domain.IconPenTool, URL: "https://www.copy.ai"},
		{ID: "quillbot", Name: "QuillBot", Category: domain.CategoryWriting, Description: "Paraphrasing tool.", Icon: domain.IconPenTool, URL: "https://quillbot.com"},
		{ID: "grammarly", Name: "Grammarly", Category: domain.CategoryWriting, Description: "AI writing assistance.", Icon: domain.IconPenTool, URL: "https://grammarly.com"},
		{ID: "writesonic", Name: "Writesonic", Category: domain.CategoryWriting, Description: "AI writer for blogs & ads.", Icon: domain.IconPenTool, URL: "https://writesonic.com"},

		// Design
		{ID: "figma", Name: "Figma", Category: domain.CategoryDesign, Description: "Interface design tool.", Icon: domain.IconPenTool, URL: "https://figma.com", Popular: true},
		{ID: "canva", Name: "Canva", Category: domain.CategoryDesign, Description: "Graphic design platform.", Icon: domain.IconPenTool, URL: "https://canva.com"},
		{ID: "brandmark", Name: "Brandmark", Category: domain.CategoryDesign, Description: "AI Logo Maker.", Icon: domain.IconPenTool, URL: "https://brandmark.io"},

		// Image
		{ID: "midjourney", Name: "Midjourney", Category: domain.CategoryImage, Description: "Generative artificial intelligence.", Icon: domain.IconImage, URL: "https://midjourney.com", Popular: true},
		{ID: "firefly", Name: "Adobe Firefly", Category: domain.CategoryImage, Description: "Generative AI for creators.", Icon: domain.IconImage, URL: "https://firefly.adobe.com"},
		{ID: "dalle", Name: "DALL-E 3", Category: domain.CategoryImage, Description: "Create realistic images from text.", Icon: domain.IconImage, URL: "https://openai.com/dall-e-3", Internal: true},

		// Video
		{ID: "runway", Name: "Runway", Category: domain.CategoryVideo, Description: "AI Magic Tools for video.", Icon: domain.IconVideo, URL: "https://runwayml.com", Popular: true},
		{ID: "pika", Name: "Pika", Category: domain.CategoryVideo, Description: "Idea-to-video platform.", Icon: domain.IconVideo, URL: "https://pika.art"},
		{ID: "heygen", Name: "HeyGen", Category: domain.CategoryVideo, Description: "AI video generation platform.", Icon: domain.IconVideo, URL: "https://heygen.com"},
		{ID: "invideo", Name: "InVideo", Category: domain.CategoryVideo, Description: "Turn text into video.", Icon: domain.IconVideo, URL: "https://invideo.io"},

		// Productivity
		{ID: "notion", Name: "Notion AI", Category: domain.CategoryProductivity, Description: "Connected workspace.", Icon: domain.IconLayers, URL: "https://notion.so", Popular: true},
		{ID: "tldv", Name: "tl;dv", Category: domain.CategoryProductivity, Description: "Meeting recorder & summarizer.", Icon: domain.IconLayers, URL: "https://tldv.io"},
		{ID: "taskade", Name: "Taskade", Category: domain.CategoryProductivity, Description: "AI-powered productivity.", Icon: domain.IconLayers, URL: "https://taskade.com"},

		// Workflow
		{ID: "zapier", Name: "Zapier", Category: domain.CategoryWorkflow, Description: "Automation that moves you forward.", Icon: domain.IconCpu, URL: "https://zapier.com", Popular: true},
		{ID: "make", Name: "Make", Category: domain.CategoryWorkflow, Description: "Visual automation platform.", Icon: domain.IconCpu, URL: "https://www.make.com"},

		// Code
		{ID: "github-copilot", Name: "GitHub Copilot", Category: domain.CategoryCode, Description: "Your AI pair programmer.", Icon: domain.IconCode, URL: "https://github.com/features/copilot", Popular: true},
		{ID: "replit", Name: "Replit", Category: domain.CategoryCode, Description: "Collaborative browser based IDE.", Icon: domain.IconCode, URL: "https://replit.com", Popular: true},
		{ID: "cursor", Name: "Cursor", Category: domain.CategoryCode, Description: "The AI Code Editor.", Icon: domain.IconCode, URL: "https://cursor.sh"},

		// Website
		{ID: "wix", Name: "Wix", Category: domain.CategoryWebsite, Description: "Website builder.", Icon: domain.IconGlobe, URL: "https://wix.com"},
		{ID: "framer", Name: "Framer", Category: domain.CategoryWebsite, Description: "Design and publish your dream site.", Icon: domain.IconGlobe, URL: "https://framer.com"},
		{ID: "10web", Name: "10Web", Category: domain.CategoryWebsite, Description: "AI Website Builder.", Icon: domain.IconGlobe, URL: "https://10web.io"},

		// SEO
		{ID: "semrush", Name: "Semrush", Category: domain.CategorySEO, Description: "Online visibility management.", Icon: domain.IconSearch, URL: "https://semrush.com", Popular: true},
		{ID: "vidiq", Name: "VidIQ", Category: domain.CategorySEO, Description: "YouTube growth tools.", Icon: domain.IconVideo, URL: "https://vidiq.com"},
		{ID: "blogseo", Name: "BlogSEO", Category: domain.CategorySEO, Description: "AI blog writing and SEO.", Icon: domain.IconPenTool, URL: "https://blogseo.ai"},

		// Agents
		{ID: "langchain", Name: "LangChain", Category: domain.CategoryAgents, Description: "Building applications with LLMs.", Icon: domain.IconBot, URL: "https://langchain.com", Popular: true},
		{ID: "crewai", Name: "CrewAI", Category: domain.CategoryAgents, Description: "Orchestrate role-playing AI agents.", Icon: domain.IconBot, URL: "https://crewai.com"},
		{ID: "autogen", Name: "AutoGen", Category: domain.CategoryAgents, Description: "Enable multiple agents to converse.", Icon: domain.IconBot, URL: "https://microsoft.github.io/autogen/"},
	}
}
