package capability

import (
	"context"
	"fmt"
	"time"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"go.uber.org/zap"

	"nexus/internal/domain"
)

// einoProvider serves chat and code through any OpenAI-compatible endpoint
// via the eino chat model. It has no image backend and declines image mode.
type einoProvider struct {
	model    model.ToolCallingChatModel
	provider string
	name     string
	timeout  time.Duration
	metrics  domain.Metrics
	logger   *zap.Logger
}

func newEinoProvider(ctx context.Context, cfg domain.CapabilityConfig, apiKey string, metrics domain.Metrics, logger *zap.Logger) (*einoProvider, error) {
	modelCfg := &openai.ChatModelConfig{
		Model:  cfg.Model,
		APIKey: apiKey,
	}
	if cfg.BaseURL != "" {
		modelCfg.BaseURL = cfg.BaseURL
	}
	chatModel, err := openai.NewChatModel(ctx, modelCfg)
	if err != nil {
		return nil, domain.E(domain.CodeUnavailable, "capability.openai", "create chat model", err)
	}
	return &einoProvider{
		model:    chatModel,
		provider: cfg.Provider,
		name:     cfg.Model,
		timeout:  callTimeout(cfg),
		metrics:  metrics,
		logger:   logger.Named("openai"),
	}, nil
}

func (p *einoProvider) GenerateText(ctx context.Context, prompt string) (string, error) {
	return p.generate(ctx, "capability.generateText", []*schema.Message{
		schema.SystemMessage(domain.ChatSystemPrompt),
		schema.UserMessage(prompt),
	})
}

func (p *einoProvider) GenerateCode(ctx context.Context, prompt string) (string, error) {
	return p.generate(ctx, "capability.generateCode", []*schema.Message{
		schema.UserMessage(fmt.Sprintf(domain.CodePromptTemplate, prompt)),
	})
}

// GenerateImage declines: the chat completion surface has no image output.
func (p *einoProvider) GenerateImage(ctx context.Context, _ string) (domain.ImageRef, error) {
	return domain.ImageRef{}, domain.E(domain.CodeDeclined, "capability.generateImage",
		"image generation is not available for provider openai", nil)
}

func (p *einoProvider) generate(ctx context.Context, op string, messages []*schema.Message) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	resp, err := p.model.Generate(ctx, messages)
	if err != nil {
		return "", domain.E(domain.CodeUnavailable, op, "", err)
	}
	p.observeTokens(resp)
	return resp.Content, nil
}

func (p *einoProvider) observeTokens(resp *schema.Message) {
	if p.metrics == nil || resp == nil || resp.ResponseMeta == nil || resp.ResponseMeta.Usage == nil {
		return
	}
	tokens := resp.ResponseMeta.Usage.TotalTokens
	if tokens <= 0 {
		return
	}
	p.metrics.ObserveCapabilityTokens(p.provider, p.name, tokens)
}
