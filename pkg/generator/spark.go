package generator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shouni/idea-spark-kit/pkg/domain"
	"github.com/shouni/idea-spark-kit/pkg/imgutil"
	"github.com/shouni/idea-spark-kit/pkg/prompts"
	"google.golang.org/genai"
)

// IdeaSparker はプロンプトからアイデアと画像を1組生成するオーケストレーターです。
// 構築後は状態を持たないため、複数の goroutine から同時に呼び出せます。
type IdeaSparker struct {
	aiClient      GenerativeModel
	promptBuilder prompts.PromptBuilder
	cfg           SparkerConfig
}

// NewIdeaSparker は依存関係を注入して IdeaSparker を初期化します。
func NewIdeaSparker(aiClient GenerativeModel, cfg SparkerConfig) (*IdeaSparker, error) {
	if aiClient == nil {
		return nil, fmt.Errorf("aiClient (GenerativeModel) is required")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.CompressQuality <= 0 || cfg.CompressQuality > 100 {
		cfg.CompressQuality = DefaultCompressQuality
	}
	builder, err := prompts.NewTextPromptBuilder()
	if err != nil {
		return nil, err
	}
	return &IdeaSparker{aiClient: aiClient, promptBuilder: builder, cfg: cfg}, nil
}

// GenerateIdea はプロンプトを固定の指示文に埋め込み、テキストと画像の両方を1回の呼び出しで要求します。
// 通信エラーは ErrTransport、候補なしは ErrNoCandidates、テキストか画像の欠落は ErrIncompleteResponse になります。
func (s *IdeaSparker) GenerateIdea(ctx context.Context, prompt string) (*domain.IdeaResult, error) {
	instruction, err := s.promptBuilder.Build(prompts.ModeSpark, prompts.TemplateData{Topic: prompt})
	if err != nil {
		return nil, err
	}
	req := domain.NewGenerationRequest(prompt, instruction)
	slog.InfoContext(ctx, "アイデア生成リクエスト送信", "request_id", req.ID, "model", s.cfg.Model)

	parts := []*genai.Part{{Text: req.Instruction}}
	opts := GenerateOptions{ResponseModalities: ideaModalities, Seed: s.cfg.Seed}
	resp, err := s.aiClient.GenerateWithParts(ctx, s.cfg.Model, parts, opts)
	if err != nil {
		slog.WarnContext(ctx, "生成サービスの呼び出しに失敗しました", "request_id", req.ID, "error", err)
		return nil, &TransportError{Err: err}
	}

	respParts, finish, err := extractParts(resp)
	if err != nil {
		slog.WarnContext(ctx, "候補が返りませんでした", "request_id", req.ID)
		return nil, err
	}

	acc := &ideaAccumulator{}
	for _, p := range respParts {
		acc.add(ctx, req.ID, p)
	}

	if !acc.idea.Complete() {
		slog.WarnContext(ctx, "不完全なレスポンスです",
			"request_id", req.ID,
			"has_text", acc.hasText,
			"has_image", acc.idea.Image != nil,
			"finish_reason", finish)
		return nil, incompleteError(finish)
	}

	return s.assemble(ctx, req.ID, acc), nil
}

func (s *IdeaSparker) assemble(ctx context.Context, requestID string, acc *ideaAccumulator) *domain.IdeaResult {
	img := *acc.idea.Image
	if s.cfg.CompressImage {
		data, mimeType, err := imgutil.ShrinkForEmbedding(img.Data, img.MIMEType, s.cfg.CompressQuality)
		if err != nil {
			slog.WarnContext(ctx, "画像の圧縮に失敗したため元の画像を使用します", "request_id", requestID, "error", err)
		}
		img = domain.ImageData{Data: data, MIMEType: mimeType}
	}

	return &domain.IdeaResult{
		Title:       acc.idea.Title,
		Description: acc.idea.Description,
		ImageURL:    img.DataURI(),
		Degraded:    acc.degraded,
	}
}
