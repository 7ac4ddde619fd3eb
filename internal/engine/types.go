package engine

import "github.com/phyten/todolint/internal/model"

// Item は未記録の警告コメント 1 件を表す。
type Item struct {
	Term    string     `json:"term"`
	Kind    string     `json:"kind"`
	Lang    string     `json:"lang,omitempty"`
	File    string     `json:"file"`
	Line    int        `json:"line"`
	Col     int        `json:"col"`
	Span    model.Span `json:"span"`
	Message string     `json:"message"`
	Comment string     `json:"comment,omitempty"`
}

// ItemError は 1 ファイルの処理に失敗した際の情報を表す。
type ItemError struct {
	File    string `json:"file"`
	Stage   string `json:"stage"`
	Message string `json:"message"`
}

// TrackerLookup は既定のトラッカー URL を探す外部コラボレーター。
// 見つからない場合は ok=false を返すだけで、エラーにはしない。
type TrackerLookup func(dir string) (string, bool)

// Options は実行オプション。
type Options struct {
	Terms          []string // 検索する警告語（空なら既定セット）
	Location       string   // start|anywhere
	URL            string   // トラッカー URL（空ならマニフェストから解決）
	Dir            string   // スキャン対象ルート
	Paths          []string // 対象を限定するパス接頭辞
	Excludes       []string // 除外 glob（相対パスまたはベース名）
	DetectLangs    []string // 言語フィルター（空なら全言語）
	ExcludeTypical bool     // vendor/node_modules などの定番除外
	Jobs           int      // 並列ワーカー数
	MaxFileBytes   int      // これを超えるファイルはスキップ（0 = 無制限）
	TruncComment   int      // 表示用コメントの最大グラフェム数（0 = 無制限）

	TrackerLookup TrackerLookup `json:"-"`
}

// Result は出力。
type Result struct {
	Items         []Item      `json:"items"`
	Total         int         `json:"total"`
	Tracker       string      `json:"tracker,omitempty"`
	TrackerSource string      `json:"tracker_source,omitempty"`
	ElapsedMS     int64       `json:"elapsed_ms"`
	Errors        []ItemError `json:"errors,omitempty"`
	ErrorCount    int         `json:"error_count"`
}
