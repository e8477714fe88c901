package generator

import (
	"context"

	"github.com/shouni/idea-spark-kit/pkg/domain"
	"google.golang.org/genai"
)

// GenerativeModel はマルチモーダル生成サービスへの通信を抽象化するインターフェースです。
type GenerativeModel interface {
	// GenerateWithParts は、指定したモデルとパーツで1回だけ生成を実行し、生のレスポンスを返します。
	GenerateWithParts(ctx context.Context, model string, parts []*genai.Part, opts GenerateOptions) (*genai.GenerateContentResponse, error)
}

// IdeaGenerator は UI 層が利用するアイデア生成の窓口です。
type IdeaGenerator interface {
	GenerateIdea(ctx context.Context, prompt string) (*domain.IdeaResult, error)
}
