package imgutil

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// テスト用のダミー画像を作成するヘルパー。noisy が true ならランダムなピクセルで PNG が大きくなる。
func createDummyImageData(t *testing.T, format string, size int, noisy bool) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	r := rand.New(rand.NewSource(1))
	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			c := color.RGBA{255, 0, 255, 255}
			if noisy {
				c = color.RGBA{uint8(r.Intn(256)), uint8(r.Intn(256)), uint8(r.Intn(256)), 255}
			}
			img.Set(x, y, c)
		}
	}

	buf := new(bytes.Buffer)
	var err error
	switch format {
	case "png":
		err = png.Encode(buf, img)
	case "jpeg":
		err = jpeg.Encode(buf, img, nil)
	default:
		t.Fatalf("unsupported format: %s", format)
	}
	require.NoError(t, err, "failed to encode dummy image")
	return buf.Bytes()
}

func TestCompressToJPEG(t *testing.T) {
	t.Run("正常なPNG画像をJPEGに圧縮できること", func(t *testing.T) {
		got, err := CompressToJPEG(createDummyImageData(t, "png", 10, false), 75)
		require.NoError(t, err)

		_, format, err := image.Decode(bytes.NewReader(got))
		require.NoError(t, err)
		assert.Equal(t, "jpeg", format)
	})

	t.Run("不正なデータを与えた場合にエラーを返すこと", func(t *testing.T) {
		_, err := CompressToJPEG([]byte("this is not an image"), 75)
		assert.Error(t, err)
	})
}

func TestShrinkForEmbedding(t *testing.T) {
	t.Run("ノイズの多いPNGはJPEGに置き換わる", func(t *testing.T) {
		input := createDummyImageData(t, "png", 64, true)

		got, mimeType, err := ShrinkForEmbedding(input, "image/png", 50)
		require.NoError(t, err)
		assert.Equal(t, JPEGMIMEType, mimeType)
		assert.Less(t, len(got), len(input))
	})

	t.Run("デコードできない場合は元のデータを返す", func(t *testing.T) {
		input := []byte("not-an-image")

		got, mimeType, err := ShrinkForEmbedding(input, "image/png", 75)
		assert.Error(t, err)
		assert.Equal(t, input, got)
		assert.Equal(t, "image/png", mimeType)
	})
}
