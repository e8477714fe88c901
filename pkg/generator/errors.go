package generator

import "errors"

// UserMessage はどの失敗に対してもエンドユーザーへ表示する汎用メッセージです。
const UserMessage = "An error occurred while sparking ideas. The AI might be busy, please try again."

var (
	// ErrTransport は生成サービスの呼び出し自体が失敗したことを示します（ネットワーク、認証、クォータ、期限切れなど）。
	ErrTransport = errors.New("generation transport failed")
	// ErrNoCandidates はレスポンスに候補が1件も含まれていなかったことを示します。
	ErrNoCandidates = errors.New("the AI did not return any candidates")
	// ErrIncompleteResponse はテキストまたは画像が揃わなかったことを示します。
	ErrIncompleteResponse = errors.New("the AI failed to generate a complete idea with an image")
)

// TransportError は通信層のエラーをそのまま保持します。リトライはしません。
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "Gemini呼び出しエラー: " + e.Err.Error()
}

// Unwrap により errors.Is は ErrTransport と元のエラーの両方に一致します。
func (e *TransportError) Unwrap() []error {
	return []error{ErrTransport, e.Err}
}
