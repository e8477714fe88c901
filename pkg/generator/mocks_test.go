package generator

import (
	"context"

	"google.golang.org/genai"
)

// --- Mocks ---

// mockAIClient は GenerativeModel のテスト用モックなのだ。
type mockAIClient struct {
	calls                 int
	lastModel             string
	lastParts             []*genai.Part
	lastOpts              GenerateOptions
	generateWithPartsFunc func(ctx context.Context, model string, parts []*genai.Part, opts GenerateOptions) (*genai.GenerateContentResponse, error)
}

func (m *mockAIClient) GenerateWithParts(ctx context.Context, model string, parts []*genai.Part, opts GenerateOptions) (*genai.GenerateContentResponse, error) {
	m.calls++
	m.lastModel = model
	m.lastParts = parts
	m.lastOpts = opts
	if m.generateWithPartsFunc != nil {
		return m.generateWithPartsFunc(ctx, model, parts, opts)
	}
	return nil, nil
}

// respondWith は固定のパーツを1候補として返すモックを作るヘルパーなのだ。
func respondWith(parts ...*genai.Part) *mockAIClient {
	return &mockAIClient{
		generateWithPartsFunc: func(ctx context.Context, model string, _ []*genai.Part, _ GenerateOptions) (*genai.GenerateContentResponse, error) {
			return &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: parts}}},
			}, nil
		},
	}
}

func textPart(s string) *genai.Part {
	return &genai.Part{Text: s}
}

func imagePart(data, mimeType string) *genai.Part {
	return &genai.Part{InlineData: &genai.Blob{MIMEType: mimeType, Data: []byte(data)}}
}

// mockContentGenerator は genai.Models の代わりに GeminiClient へ注入するモックなのだ。
type mockContentGenerator struct {
	model    string
	contents []*genai.Content
	config   *genai.GenerateContentConfig
	resp     *genai.GenerateContentResponse
	err      error
}

func (m *mockContentGenerator) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	m.model = model
	m.contents = contents
	m.config = config
	return m.resp, m.err
}
