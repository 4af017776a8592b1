package generator

import (
	"context"
	"errors"
	"strings"
	"time"

	"google.golang.org/genai"

	"content-planner/logger"
)

// GeminiTextProvider implements TextProvider against the Gemini API.
type GeminiTextProvider struct {
	apiKey string
	model  string
}

func NewGeminiTextProvider(apiKey, model string) *GeminiTextProvider {
	return &GeminiTextProvider{apiKey: apiKey, model: model}
}

func (p *GeminiTextProvider) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if p.apiKey == "" {
		// Short-circuit before any network call.
		return "", failure(CodeNoAPIKey, errors.New("GEMINI_API_KEY is not set"))
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: p.apiKey,
	})
	if err != nil {
		return "", failure(CodeGenerationFailed, err)
	}

	start := time.Now()
	result, err := client.Models.GenerateContent(
		ctx,
		p.model,
		genai.Text(userPrompt),
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemPrompt}}},
		},
	)
	if err != nil {
		return "", failure(classifyProviderError(err), err)
	}

	fields := logger.Fields{
		"model":       p.model,
		"duration_ms": time.Since(start).Milliseconds(),
	}
	if result.UsageMetadata != nil {
		fields["input_tokens"] = result.UsageMetadata.PromptTokenCount
		fields["output_tokens"] = result.UsageMetadata.CandidatesTokenCount
		fields["total_tokens"] = result.UsageMetadata.TotalTokenCount
	}
	logger.InfoWithFields("text completion finished", fields)

	text := result.Text()
	if text == "" {
		return "", failure(CodeGenerationFailed, errors.New("provider returned empty text"))
	}
	return text, nil
}

// GeminiImageProvider implements ImageProvider against the Imagen API.
// Imagen returns image bytes inline rather than a hosted URL.
type GeminiImageProvider struct {
	apiKey string
	model  string
}

func NewGeminiImageProvider(apiKey, model string) *GeminiImageProvider {
	return &GeminiImageProvider{apiKey: apiKey, model: model}
}

func (p *GeminiImageProvider) GenerateImage(ctx context.Context, prompt string) (*RemoteImage, error) {
	if p.apiKey == "" {
		return nil, failure(CodeNoAPIKey, errors.New("GEMINI_API_KEY is not set"))
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: p.apiKey,
	})
	if err != nil {
		return nil, failure(CodeGenerationFailed, err)
	}

	result, err := client.Models.GenerateImages(
		ctx,
		p.model,
		prompt,
		&genai.GenerateImagesConfig{
			NumberOfImages: 1,
		},
	)
	if err != nil {
		return nil, failure(classifyProviderError(err), err)
	}
	if len(result.GeneratedImages) == 0 || result.GeneratedImages[0].Image == nil {
		return nil, failure(CodeGenerationFailed, errors.New("provider returned no image"))
	}

	img := result.GeneratedImages[0].Image
	return &RemoteImage{
		URL:      img.GCSURI,
		Data:     img.ImageBytes,
		MIMEType: img.MIMEType,
	}, nil
}

// classifyProviderError maps provider failures onto the stable failure
// codes. Auth problems and quota exhaustion get their own codes so the
// caller can surface actionable guidance.
func classifyProviderError(err error) FailureCode {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case 401, 403:
			return CodeInvalidAPIKey
		case 429:
			return CodeQuotaExceeded
		}
		switch apiErr.Status {
		case "UNAUTHENTICATED", "PERMISSION_DENIED":
			return CodeInvalidAPIKey
		case "RESOURCE_EXHAUSTED":
			return CodeQuotaExceeded
		}
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "api key not valid"),
		strings.Contains(msg, "unauthenticated"),
		strings.Contains(msg, "permission denied"):
		return CodeInvalidAPIKey
	case strings.Contains(msg, "resource_exhausted"),
		strings.Contains(msg, "quota"),
		strings.Contains(msg, "rate limit"):
		return CodeQuotaExceeded
	}
	return CodeGenerationFailed
}
