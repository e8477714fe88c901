package imgutil

import (
	"bytes"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
)

// JPEGMIMEType は CompressToJPEG の出力形式です。
const JPEGMIMEType = "image/jpeg"

// CompressToJPEG は画像データ（PNG, GIF, JPEG等）をJPEG形式に圧縮します。
// image.Decodeがサポートするフォーマットに対応しています。
func CompressToJPEG(data []byte, quality int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ShrinkForEmbedding は data URI に埋め込む前に画像を JPEG へ再エンコードします。
// 再エンコード後の方が大きい場合やデコードできない場合は元のデータと MIME タイプを返します。
func ShrinkForEmbedding(data []byte, mimeType string, quality int) ([]byte, string, error) {
	compressed, err := CompressToJPEG(data, quality)
	if err != nil {
		return data, mimeType, err
	}
	if len(compressed) >= len(data) {
		return data, mimeType, nil
	}
	return compressed, JPEGMIMEType, nil
}
