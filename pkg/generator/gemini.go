package generator

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// contentGenerator は genai.Models のうち本パッケージが使うメソッドだけを切り出したものです。
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiClient は genai SDK を GenerativeModel として扱うためのアダプターです。
// プロセスの寿命に合わせて1つ作成し、IdeaSparker に渡して使います。
type GeminiClient struct {
	models contentGenerator
}

// NewGeminiClient は API キーから Gemini API 用のクライアントを作成します。
func NewGeminiClient(ctx context.Context, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("apiKey is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey, Backend: genai.BackendGeminiAPI})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &GeminiClient{models: client.Models}, nil
}

// GenerateWithParts はパーツを1つのユーザーコンテンツにまとめて GenerateContent を呼び出します。
func (c *GeminiClient) GenerateWithParts(ctx context.Context, model string, parts []*genai.Part, opts GenerateOptions) (*genai.GenerateContentResponse, error) {
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
	return c.models.GenerateContent(ctx, model, contents, buildGenerateConfig(opts))
}

func buildGenerateConfig(opts GenerateOptions) *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		ResponseModalities: opts.ResponseModalities,
		Seed:               opts.Seed,
	}
}
