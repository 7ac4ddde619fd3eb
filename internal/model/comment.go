package model

// CommentKind 表示抽出トークンの種別（行コメント／ブロックコメントなど）。
type CommentKind string

const (
	// KindLine は行コメント（// や # など）を表す。
	KindLine CommentKind = "line"
	// KindBlock はブロックコメント（/* */ など）を表す。
	KindBlock CommentKind = "block"
	// KindShebang は先頭の #! 行を表す疑似トークン。分類対象外。
	KindShebang CommentKind = "shebang"
)

// IsComment はこのトークンが分類対象のコメントかどうかを返す。
// シェバン行などの疑似トークンは抽出器から渡ってくるが、分類前に除外する。
func (k CommentKind) IsComment() bool {
	return k == KindLine || k == KindBlock
}

// Span は 1 件の検出位置を行・桁で表します（いずれも 1 始まり）。
type Span struct {
	StartLine int `json:"start_line"`
	StartCol  int `json:"start_col"`
	EndLine   int `json:"end_line"`
}

// Comment はホスト側の抽出器が切り出した 1 件のコメントを表します。
// Text にはコメント開始記号より後ろの生テキストが入る。
type Comment struct {
	Kind CommentKind
	Text string
	Span Span
}

// Finding は分類器の肯定的な判定結果です。メッセージは
// 「Undocumented TODO: 残り60文字まで」の固定形式。
type Finding struct {
	Term    string
	Message string
}
