package generator

import "google.golang.org/genai"

const (
	// DefaultModel は画像とテキストを同時に返せる Gemini モデルです。
	DefaultModel           = "gemini-2.5-flash-image-preview"
	DefaultCompressQuality = 75
	jsonFenceTag           = "json"
	codeFence              = "```"
)

// ideaModalities はアイデア生成で要求する出力モダリティです。
var ideaModalities = []string{string(genai.ModalityImage), string(genai.ModalityText)}

// GenerateOptions は1回の生成呼び出しに付与するオプションです。
type GenerateOptions struct {
	ResponseModalities []string
	Seed               *int32
}

// SparkerConfig は IdeaSparker の設定です。
type SparkerConfig struct {
	Model string
	// CompressImage が true の場合、生成画像を JPEG に再エンコードしてから data URI にします。
	CompressImage   bool
	CompressQuality int
	// Seed を指定すると生成結果の再現性を高められます。nil ならサービス側に任せます。
	Seed *int32
}
