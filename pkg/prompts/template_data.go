package prompts

import (
	_ "embed"
)

const ModeSpark = "spark"

// TemplateData は指示文テンプレートに渡すデータ構造です。
type TemplateData struct {
	Topic string
}

var (
	// SparkPrompt は Ideas Architect としてアイデア1件と画像1枚を要求する固定の指示文です。
	// 変化するのは {{.Topic}} に埋め込まれるユーザーのトピックのみです。
	//go:embed spark.tmpl
	SparkPrompt string
)

var allTemplates = map[string]string{
	ModeSpark: SparkPrompt,
}
