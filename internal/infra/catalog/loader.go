package catalog

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"nexus/internal/domain"
)

// Loader reads a nexus.yaml config file into a normalized domain.Config.
// Missing sections fall back to defaults; an empty tools list falls back to
// the built-in catalog.
type Loader struct {
	logger *zap.Logger
}

func NewLoader(logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{logger: logger.Named("catalog")}
}

func newConfigViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("capability.provider", domain.DefaultProvider)
	v.SetDefault("capability.model", domain.DefaultTextModel)
	v.SetDefault("capability.imageModel", domain.DefaultImageModel)
	v.SetDefault("capability.apiKeyEnvVar", "GEMINI_API_KEY")
	v.SetDefault("capability.timeoutSeconds", domain.DefaultCapabilityTimeoutSeconds)
	v.SetDefault("observability.listenAddress", domain.DefaultObservabilityListenAddress)
	v.SetDefault("observability.enableMetrics", true)
	v.SetDefault("observability.enableHealthz", true)
	v.SetDefault("state.path", domain.DefaultStatePath)
	v.SetDefault("billing.initialCredits", domain.DefaultInitialCredits)
	v.SetDefault("billing.settleSeconds", domain.DefaultBillingSettleSeconds)
}

type rawConfig struct {
	Tools         []rawTool              `mapstructure:"tools"`
	Capability    rawCapabilityConfig    `mapstructure:"capability"`
	Observability rawObservabilityConfig `mapstructure:"observability"`
	State         rawStateConfig         `mapstructure:"state"`
	Billing       rawBillingConfig       `mapstructure:"billing"`
}

type rawTool struct {
	ID          string `mapstructure:"id"`
	Name        string `mapstructure:"name"`
	Description string `mapstructure:"description"`
	Category    string `mapstructure:"category"`
	Icon        string `mapstructure:"icon"`
	URL         string `mapstructure:"url"`
	Popular     bool   `mapstructure:"popular"`
	Internal    bool   `mapstructure:"internal"`
}

type rawCapabilityConfig struct {
	Provider       string `mapstructure:"provider"`
	Model          string `mapstructure:"model"`
	ImageModel     string `mapstructure:"imageModel"`
	APIKey         string `mapstructure:"apiKey"`
	APIKeyEnvVar   string `mapstructure:"apiKeyEnvVar"`
	BaseURL        string `mapstructure:"baseURL"`
	TimeoutSeconds int    `mapstructure:"timeoutSeconds"`
}

type rawObservabilityConfig struct {
	ListenAddress string `mapstructure:"listenAddress"`
	EnableMetrics bool   `mapstructure:"enableMetrics"`
	EnableHealthz bool   `mapstructure:"enableHealthz"`
}

type rawStateConfig struct {
	Path string `mapstructure:"path"`
}

type rawBillingConfig struct {
	InitialCredits int `mapstructure:"initialCredits"`
	SettleSeconds  int `mapstructure:"settleSeconds"`
}

// Load reads and normalizes the config at path. A missing file is not an
// error: the loader returns the built-in defaults so the daemon can start
// with zero configuration.
func (l *Loader) Load(path string) (domain.Config, error) {
	v := newConfigViper()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := v.ReadConfig(strings.NewReader(string(data))); err != nil {
			return domain.Config{}, domain.E(domain.CodeInvalidArgument, "catalog.Load", "parse config: "+path, err)
		}
	case os.IsNotExist(err):
		l.logger.Info("config file not found, using defaults", zap.String("path", path))
	default:
		return domain.Config{}, domain.E(domain.CodeUnavailable, "catalog.Load", "read config: "+path, err)
	}

	var raw rawConfig
	if err := v.Unmarshal(&raw); err != nil {
		return domain.Config{}, domain.E(domain.CodeInvalidArgument, "catalog.Load", "decode config", err)
	}

	cfg, err := normalize(raw)
	if err != nil {
		return domain.Config{}, err
	}

	l.logger.Info("config loaded",
		zap.String("path", path),
		zap.Int("tools", len(cfg.Tools)),
		zap.String("provider", cfg.Runtime.Capability.Provider),
	)
	return cfg, nil
}

func normalize(raw rawConfig) (domain.Config, error) {
	tools := make([]domain.Tool, 0, len(raw.Tools))
	for _, t := range raw.Tools {
		category := domain.ToolCategory(t.Category)
		if !category.Valid() {
			return domain.Config{}, domain.E(domain.CodeInvalidArgument, "catalog.normalize",
				fmt.Sprintf("tool %s: category %q is not one of the known labels", t.ID, t.Category),
				domain.ErrUnknownCategory)
		}
		icon := domain.IconKey(t.Icon)
		if !icon.Known() {
			// Unknown icon keys degrade to the generic glyph, never fail.
			icon = domain.IconGeneric
		}
		tools = append(tools, domain.Tool{
			ID:          t.ID,
			Name:        t.Name,
			Description: t.Description,
			Category:    category,
			Icon:        icon,
			URL:         t.URL,
			Popular:     t.Popular,
			Internal:    t.Internal,
		})
	}
	if len(tools) == 0 {
		tools = DefaultTools()
	}

	runtime := domain.RuntimeConfig{
		Capability: domain.CapabilityConfig{
			Provider:       raw.Capability.Provider,
			Model:          raw.Capability.Model,
			ImageModel:     raw.Capability.ImageModel,
			APIKey:         raw.Capability.APIKey,
			APIKeyEnvVar:   raw.Capability.APIKeyEnvVar,
			BaseURL:        raw.Capability.BaseURL,
			TimeoutSeconds: raw.Capability.TimeoutSeconds,
		},
		Observability: domain.ObservabilityConfig{
			ListenAddress: raw.Observability.ListenAddress,
			EnableMetrics: raw.Observability.EnableMetrics,
			EnableHealthz: raw.Observability.EnableHealthz,
		},
		State: domain.StateConfig{
			Path: raw.State.Path,
		},
		Billing: domain.BillingConfig{
			InitialCredits: raw.Billing.InitialCredits,
			SettleSeconds:  raw.Billing.SettleSeconds,
		},
	}

	return domain.Config{Tools: tools, Runtime: runtime}, nil
}
