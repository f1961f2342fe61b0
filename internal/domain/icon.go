package domain

// IconKey is the symbolic glyph reference carried by a Tool. Resolution is
// an enumerated mapping chosen at build time; unknown keys fall back to a
// generic glyph instead of failing.
type IconKey string

const (
	IconMessageSquare IconKey = "message-square"
	IconPenTool       IconKey = "pen-tool"
	IconImage         IconKey = "image"
	IconVideo         IconKey = "video"
	IconCode          IconKey = "code"
	IconGlobe         IconKey = "globe"
	IconTrendingUp    IconKey = "trending-up"
	IconCpu           IconKey = "cpu"
	IconLayers        IconKey = "layers"
	IconCommand       IconKey = "command"
	IconBot           IconKey = "bot"
	IconZap           IconKey = "zap"
	IconSearch        IconKey = "search"
	IconGeneric       IconKey = "generic"
)

// Glyph resolves the key to a presentation symbol. Unknown keys soft-default
// to the generic glyph; there is no error path.
func (k IconKey) Glyph() string {
	switch k {
	case IconMessageSquare:
		return "💬"
	case IconPenTool:
		return "✒"
	case IconImage:
		return "🖼"
	case IconVideo:
		return "🎬"
	case IconCode:
		return "⌨"
	case IconGlobe:
		return "🌐"
	case IconTrendingUp:
		return "📈"
	case IconCpu:
		return "🧩"
	case IconLayers:
		return "🗂"
	case IconCommand:
		return "⌘"
	case IconBot:
		return "🤖"
	case IconZap:
		return "⚡"
	case IconSearch:
		return "🔍"
	default:
		return "✦"
	}
}

// Known reports whether the key is part of the enumerated mapping.
func (k IconKey) Known() bool {
	switch k {
	case IconMessageSquare, IconPenTool, IconImage, IconVideo, IconCode,
		IconGlobe, IconTrendingUp, IconCpu, IconLayers, IconCommand,
		IconBot, IconZap, IconSearch, IconGeneric:
		return true
	}
	return false
}
