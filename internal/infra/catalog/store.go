package catalog

import (
	"strings"

	"nexus/internal/domain"
)

// Store holds the frozen tool catalog. It is immutable after construction
// and safe to share across any number of concurrent readers without
// locking.
type Store struct {
	tools []domain.Tool
	byID  map[string]domain.Tool
}

// NewStore validates the catalog and freezes it. IDs must be unique,
// categories must come from the closed set, and name/URL are required.
func NewStore(tools []domain.Tool) (*Store, error) {
	byID := make(map[string]domain.Tool, len(tools))
	frozen := make([]domain.Tool, 0, len(tools))
	for _, tool := range tools {
		if strings.TrimSpace(tool.ID) == "" {
			return nil, domain.E(domain.CodeInvalidArgument, "catalog.NewStore", "tool id is required", nil)
		}
		if strings.TrimSpace(tool.Name) == "" {
			return nil, domain.E(domain.CodeInvalidArgument, "catalog.NewStore", "tool name is required: "+tool.ID, nil)
		}
		if strings.TrimSpace(tool.URL) == "" {
			return nil, domain.E(domain.CodeInvalidArgument, "catalog.NewStore", "tool url is required: "+tool.ID, nil)
		}
		if !tool.Category.Valid() {
			return nil, domain.E(domain.CodeInvalidArgument, "catalog.NewStore",
				"tool "+tool.ID+" has unknown category "+string(tool.Category), domain.ErrUnknownCategory)
		}
		if _, exists := byID[tool.ID]; exists {
			return nil, domain.E(domain.CodeInvalidArgument, "catalog.NewStore",
				"tool id "+tool.ID+" appears more than once", domain.ErrDuplicateToolID)
		}
		byID[tool.ID] = tool
		frozen = append(frozen, tool)
	}
	return &Store{tools: frozen, byID: byID}, nil
}

// All returns the catalog in catalog order. The returned slice is a copy;
// the catalog itself never changes.
func (s *Store) All() []domain.Tool {
	out := make([]domain.Tool, len(s.tools))
	copy(out, s.tools)
	return out
}

func (s *Store) Len() int {
	return len(s.tools)
}

func (s *Store) ByID(id string) (domain.Tool, error) {
	tool, ok := s.byID[id]
	if !ok {
		return domain.Tool{}, domain.Wrap(domain.CodeNotFound, "catalog.ByID", domain.ErrToolNotFound)
	}
	return tool, nil
}

// ByCategory returns tools of one category in catalog order.
func (s *Store) ByCategory(category domain.ToolCategory) []domain.Tool {
	var out []domain.Tool
	for _, tool := range s.tools {
		if tool.Category == category {
			out = append(out, tool)
		}
	}
	return out
}

// Popular returns tools flagged as popular, in catalog order.
func (s *Store) Popular() []domain.Tool {
	var out []domain.Tool
	for _, tool := range s.tools {
		if tool.Popular {
			out = append(out, tool)
		}
	}
	return out
}

// Filter applies the explorer's combined search + category filter. An empty
// search matches everything; an empty category means all categories.
func (s *Store) Filter(search string, category domain.ToolCategory) []domain.Tool {
	needle := strings.ToLower(strings.TrimSpace(search))
	var out []domain.Tool
	for _, tool := range s.tools {
		if category != "" && tool.Category != category {
			continue
		}
		if needle != "" && !matches(tool, needle) {
			continue
		}
		out = append(out, tool)
	}
	return out
}

func matches(tool domain.Tool, lowered string) bool {
	return strings.Contains(strings.ToLower(tool.Name), lowered) ||
		strings.Contains(strings.ToLower(tool.Description), lowered)
}
