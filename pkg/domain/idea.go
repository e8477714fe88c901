package domain

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// DefaultImageMIMEType は MIME タイプが付与されていない画像パーツに適用する既定値です。
const DefaultImageMIMEType = "image/png"

// FallbackIdeaTitle は JSON として解釈できなかったテキストを救済する際のタイトルです。
const FallbackIdeaTitle = "Creative Spark (Parsing Failed)"

// GenerationRequest は1回のアイデア生成要求です。呼び出しごとに新しく作成され、共有されません。
type GenerationRequest struct {
	ID          string
	Prompt      string
	Instruction string
}

// NewGenerationRequest はプロンプトと組み立て済みの指示文から要求を作成します。
func NewGenerationRequest(prompt, instruction string) GenerationRequest {
	return GenerationRequest{
		ID:          uuid.NewString(),
		Prompt:      prompt,
		Instruction: instruction,
	}
}

// Part はレスポンス候補を構成する断片です。TextPart か ImagePart のどちらかです。
type Part interface {
	isPart()
}

// TextPart はテキストの断片です。
type TextPart struct {
	Text string
}

// ImagePart はインラインの画像バイナリです。
type ImagePart struct {
	Data     []byte
	MIMEType string
}

func (TextPart) isPart()  {}
func (ImagePart) isPart() {}

// ImageData は画像のバイト列と MIME タイプの組です。
type ImageData struct {
	Data     []byte
	MIMEType string
}

// DataURI は画像を data URI 形式に変換します。
func (d ImageData) DataURI() string {
	mimeType := d.MIMEType
	if mimeType == "" {
		mimeType = DefaultImageMIMEType
	}
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(d.Data))
}

// ParsedIdea はレスポンス走査中に蓄積されるアイデアです。
type ParsedIdea struct {
	Title       string
	Description string
	Image       *ImageData
}

// Complete は3つの必須項目がすべて揃っているかを返します。
func (p ParsedIdea) Complete() bool {
	return strings.TrimSpace(p.Title) != "" &&
		strings.TrimSpace(p.Description) != "" &&
		p.Image != nil && len(p.Image.Data) > 0
}

// IdeaResult は呼び出し元に返す完成したアイデアです。
type IdeaResult struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	// Degraded はタイトルが解析失敗時の代替タイトルであることを示します。
	Degraded bool `json:"degraded,omitempty"`
}

// DecodeImage は ImageURL から画像バイト列と MIME タイプを取り出します。
func (r IdeaResult) DecodeImage() (*ImageData, error) {
	rest, ok := strings.CutPrefix(r.ImageURL, "data:")
	if !ok {
		return nil, fmt.Errorf("data URI ではありません")
	}
	mimeType, payload, ok := strings.Cut(rest, ";base64,")
	if !ok {
		return nil, fmt.Errorf("base64 data URI ではありません")
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("画像データのデコードに失敗しました: %w", err)
	}
	return &ImageData{Data: data, MIMEType: mimeType}, nil
}
