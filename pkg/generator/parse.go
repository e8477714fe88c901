package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shouni/idea-spark-kit/pkg/domain"
	"google.golang.org/genai"
)

// extractParts は最初の候補のパーツを順序どおり domain.Part に変換します。
// テキストでも画像でもないパーツ（thought、空の Blob など）は読み飛ばします。
func extractParts(resp *genai.GenerateContentResponse) ([]domain.Part, genai.FinishReason, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return nil, genai.FinishReasonUnspecified, ErrNoCandidates
	}

	// 現在の仕様では、最初の候補 (Candidate) のみを利用する。
	candidate := resp.Candidates[0]
	if candidate.Content == nil {
		return nil, candidate.FinishReason, nil
	}

	parts := make([]domain.Part, 0, len(candidate.Content.Parts))
	for _, part := range candidate.Content.Parts {
		switch {
		case part == nil || part.Thought:
			continue
		case strings.TrimSpace(part.Text) != "":
			// テキストと画像を両方持つパーツはテキストとして扱う
			parts = append(parts, domain.TextPart{Text: part.Text})
		case part.InlineData != nil && len(part.InlineData.Data) > 0:
			parts = append(parts, domain.ImagePart{Data: part.InlineData.Data, MIMEType: part.InlineData.MIMEType})
		}
	}
	return parts, candidate.FinishReason, nil
}

// ideaText はテキストパーツの解釈結果です。Fallback が true の場合は代替アイデアです。
type ideaText struct {
	Title       string
	Description string
	Fallback    bool
}

// interpretIdeaText はテキストをアイデア JSON として解釈します。
// 解釈できない場合も代替アイデアを返し、error は診断ログ用にのみ使います。
func interpretIdeaText(raw string) (ideaText, error) {
	var payload struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &payload); err != nil {
		return fallbackIdea(raw), err
	}
	if strings.TrimSpace(payload.Title) == "" || strings.TrimSpace(payload.Description) == "" {
		return fallbackIdea(raw), fmt.Errorf("title または description が空です")
	}
	return ideaText{Title: payload.Title, Description: payload.Description}, nil
}

func fallbackIdea(raw string) ideaText {
	return ideaText{Title: domain.FallbackIdeaTitle, Description: raw, Fallback: true}
}

// stripCodeFence は ```json ... ``` のような Markdown のコードフェンスを取り除きます。
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if rest, ok := strings.CutPrefix(s, codeFence); ok {
		s = strings.TrimPrefix(rest, jsonFenceTag)
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), codeFence)
	return strings.TrimSpace(s)
}

// ideaAccumulator はパーツを順に受け取り、テキストと画像をそれぞれ後勝ちで上書きします。
// 複数パーツが返った場合に最後のものを採用するのは意図した挙動です。
type ideaAccumulator struct {
	idea     domain.ParsedIdea
	hasText  bool
	degraded bool
}

func (a *ideaAccumulator) add(ctx context.Context, requestID string, part domain.Part) {
	switch p := part.(type) {
	case domain.TextPart:
		text, err := interpretIdeaText(p.Text)
		if err != nil {
			slog.WarnContext(ctx, "テキストパーツをJSONとして解析できませんでした。代替アイデアを使用します",
				"request_id", requestID, "text", p.Text, "error", err)
		}
		a.idea.Title = text.Title
		a.idea.Description = text.Description
		a.degraded = text.Fallback
		a.hasText = true
	case domain.ImagePart:
		mimeType := p.MIMEType
		if mimeType == "" {
			mimeType = domain.DefaultImageMIMEType
		}
		a.idea.Image = &domain.ImageData{Data: p.Data, MIMEType: mimeType}
	}
}

// incompleteError は不完全なレスポンスのエラーを作ります。安全フィルター等による終了理由があれば添えます。
func incompleteError(finish genai.FinishReason) error {
	if finish != genai.FinishReasonUnspecified && finish != genai.FinishReasonStop && finish != "" {
		return fmt.Errorf("%w (FinishReason: %s)", ErrIncompleteResponse, finish)
	}
	return ErrIncompleteResponse
}
