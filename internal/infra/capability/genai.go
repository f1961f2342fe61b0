package capability

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"nexus/internal/domain"
)

// genAIProvider backs the capability with Google GenAI: Gemini for chat and
// code, Imagen for images.
type genAIProvider struct {
	client     *genai.Client
	model      string
	imageModel string
	timeout    time.Duration
	logger     *zap.Logger
}

func newGenAIProvider(ctx context.Context, cfg domain.CapabilityConfig, apiKey string, logger *zap.Logger) (*genAIProvider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, domain.E(domain.CodeUnavailable, "capability.genai", "create client", err)
	}
	model := cfg.Model
	if model == "" {
		model = domain.DefaultTextModel
	}
	imageModel := cfg.ImageModel
	if imageModel == "" {
		imageModel = domain.DefaultImageModel
	}
	return &genAIProvider{
		client:     client,
		model:      model,
		imageModel: imageModel,
		timeout:    callTimeout(cfg),
		logger:     logger.Named("genai"),
	}, nil
}

func (p *genAIProvider) GenerateText(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	resp, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(prompt), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(domain.ChatSystemPrompt, genai.RoleUser),
	})
	if err != nil {
		return "", domain.E(domain.CodeUnavailable, "capability.generateText", "", err)
	}
	return resp.Text(), nil
}

func (p *genAIProvider) GenerateCode(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	wrapped := fmt.Sprintf(domain.CodePromptTemplate, prompt)
	resp, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(wrapped), nil)
	if err != nil {
		return "", domain.E(domain.CodeUnavailable, "capability.generateCode", "", err)
	}
	return resp.Text(), nil
}

// GenerateImage requests exactly one square JPEG. A call that completes
// without an image (a key without Imagen access does this) is reported as
// a decline, not a transport failure.
func (p *genAIProvider) GenerateImage(ctx context.Context, prompt string) (domain.ImageRef, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	resp, err := p.client.Models.GenerateImages(ctx, p.imageModel, prompt, &genai.GenerateImagesConfig{
		NumberOfImages: 1,
		AspectRatio:    domain.ImageAspectRatio,
		OutputMIMEType: domain.ImageMIMEType,
	})
	if err != nil {
		return domain.ImageRef{}, domain.E(domain.CodeUnavailable, "capability.generateImage", "", err)
	}
	if len(resp.GeneratedImages) == 0 || resp.GeneratedImages[0].Image == nil || len(resp.GeneratedImages[0].Image.ImageBytes) == 0 {
		p.logger.Warn("image generation declined", zap.String("model", p.imageModel))
		return domain.ImageRef{}, domain.Wrap(domain.CodeDeclined, "capability.generateImage", domain.ErrNoImage)
	}
	image := resp.GeneratedImages[0].Image
	mimeType := image.MIMEType
	if mimeType == "" {
		mimeType = domain.ImageMIMEType
	}
	return domain.ImageRef{MIMEType: mimeType, Data: image.ImageBytes}, nil
}
