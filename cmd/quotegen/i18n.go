// Package main provides localization for the quotegen CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Flag categories
		"Configuration": "設定",
		"Content":       "内容",
		"Style":         "スタイル",
		"Output":        "出力",
		"Debug":         "デバッグ",
		"Logging":       "ログ",

		// Root command
		"Create quote images for social media":                                                     "SNS向けの引用画像を作成",
		"quotegen renders a quote with a template and brand kit at every requested platform size.": "quotegenはテンプレートとブランドキットを使って、指定したすべてのプラットフォームサイズで引用画像を描画します。",

		// Global flags
		"Path to a YAML configuration file":                             "YAML設定ファイルのパス",
		"SQLite database for the asset library (overrides asset_store)": "アセットライブラリのSQLiteデータベース（asset_storeを上書き）",
		"Directory of .ttf fonts registered by file name":               "ファイル名で登録する.ttfフォントのディレクトリ",
		"Log level (debug, info, warn, error)":                          "ログレベル（debug, info, warn, error）",
		"Log format (text, json)":                                       "ログ形式（text, json）",
		"Suppress all log output":                                       "全てのログ出力を抑制",

		// Render command
		"Render a quote at one or more size presets": "1つ以上のサイズプリセットで引用を描画",
		"[quote text]":                               "[引用テキスト]",

		// Content flags
		"Quote text (or pass it as arguments)":                      "引用テキスト（引数でも指定可能）",
		"Author shown under the quote":                              "引用の下に表示する著者",
		"Rewrite the quote first (shorter, punchier, motivational)": "描画前に引用を書き換え（shorter, punchier, motivational）",

		// Style flags
		"Template id":                                 "テンプレートID",
		"Brand kit id":                                "ブランドキットID",
		"Ignore the default brand kit":                "デフォルトのブランドキットを無視",
		"Solid background color (hex, e.g., #1e3a8a)": "単色の背景色（16進数、例: #1e3a8a）",
		"Gradient background: from,to[,angle]":        "グラデーション背景: 開始色,終了色[,角度]",
		"Quote text color (hex)":                      "引用テキストの色（16進数）",
		"Author text color (hex)":                     "著者テキストの色（16進数）",
		"Font family":                                 "フォントファミリー",
		"Font size in pixels":                         "フォントサイズ（ピクセル）",
		"Text alignment (left, center, right)":        "テキストの配置（left, center, right）",
		"Line height multiplier":                      "行の高さの倍率",
		"Watermark text":                              "透かしテキスト",

		// Output flags
		"Size preset id (repeatable)":                     "サイズプリセットID（複数指定可）",
		"Export every size preset":                        "すべてのサイズプリセットを書き出し",
		"Image format (png, jpeg)":                        "画像形式（png, jpeg）",
		"JPEG quality (1-100)":                            "JPEG品質（1-100）",
		"Output directory":                                "出力ディレクトリ",
		"Presets rendered concurrently (0 = CPU count)":   "同時に描画するプリセット数（0 = CPU数）",
		"Output export summary to file (Markdown format)": "書き出しサマリーをファイルに出力（Markdown形式）",

		// Debug flags
		"Enable debug output":        "デバッグ出力を有効化",
		"Directory for debug output": "デバッグ出力のディレクトリ",

		// Library commands
		"List size presets":                  "サイズプリセットを一覧表示",
		"List templates":                     "テンプレートを一覧表示",
		"Manage the asset library":           "アセットライブラリを管理",
		"List exported assets, newest first": "書き出したアセットを新しい順に一覧表示",
		"Delete an asset from the library":   "ライブラリからアセットを削除",
		"<asset id>":                         "<アセットID>",
		"ID":                                 "ID",
		"Name":                               "名前",
		"Scope":                              "範囲",
		"Label":                              "ラベル",
		"Created":                            "作成日時",
		"Preview":                            "プレビュー",

		// Version command
		"Show version information": "バージョン情報を表示",
		"quotegen version %s":      "quotegen バージョン %s",

		// Runtime messages
		"Output saved to %s":            "出力を %s に保存しました",
		"Interrupted, shutting down...": "中断されました。シャットダウン中...",
		"Error: %s":                     "エラー: %s",
		"Failed to write %s: %s":        "%s の書き込みに失敗しました: %s",
		"%d of %d presets failed":       "%d / %d 個のプリセットが失敗しました",
		"Deleted asset %s":              "アセット %s を削除しました",

		// Error messages
		"Asset id argument is required":                                          "アセットID引数が必要です",
		"Asset library is in memory; set --asset-db to keep assets between runs": "アセットライブラリはメモリ上にあります。実行間で保持するには --asset-db を指定してください",

		// Summary output
		"Summary saved to %s":         "サマリーを %s に保存しました",
		"Failed to write summary: %s": "サマリーの書き込みに失敗しました: %s",

		// Summary content
		"Export Summary": "書き出しサマリー",
		"Generated":      "生成日時",
		"Quote":          "引用",
		"Item":           "項目",
		"Value":          "値",
		"Text":           "テキスト",
		"Author":         "著者",
		"Template":       "テンプレート",
		"Brand Kit":      "ブランドキット",
		"Font":           "フォント",
		"Background":     "背景",
		"Settings":       "設定",
		"Format":         "形式",
		"Quality":        "品質",
		"Workers":        "ワーカー数",
		"Outputs":        "出力",
		"Preset":         "プリセット",
		"Size":           "サイズ",
		"File":           "ファイル",
		"File Size":      "ファイルサイズ",
		"Status":         "状態",
		"OK":             "成功",
		"Failed":         "失敗",
		"Succeeded":      "成功",
		"Total Size":     "合計サイズ",
		"Generated by":   "生成:",
	})
}
