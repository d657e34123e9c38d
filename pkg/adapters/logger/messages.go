package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Orchestration level messages (info)
		"Exporting %d presets as %s with %d workers": "%d 個のプリセットを %s で書き出し中 (ワーカー %d)",
		"Export finished: %d succeeded, %d failed":   "書き出し完了: 成功 %d, 失敗 %d",
		"Exported %s (%dx%d, %d bytes)":              "%s を書き出しました (%dx%d, %d バイト)",
		"Output saved to %s":                         "出力を %s に保存しました",
		"Interrupted, shutting down...":              "中断されました。シャットダウン中...",

		// Orchestration warnings and errors
		"Unknown size preset: %s":                "不明なサイズプリセット: %s",
		"Quote text is empty, using placeholder": "引用テキストが空のため、プレースホルダーを使用します",
		"Failed to export %s: %s":                "%s の書き出しに失敗しました: %s",

		// Composite stage
		"Composing %s at %dx%d":                  "%s を %dx%d で合成中",
		"Laid out %d lines, line height %.1fpx":  "%d 行をレイアウトしました (行の高さ %.1fpx)",
		"Failed to save layout debug output: %v": "レイアウトのデバッグ出力の保存に失敗しました: %v",
		"Failed to save render debug output: %v": "描画結果のデバッグ出力の保存に失敗しました: %v",

		// Encode stage
		"Encoded %s as %s (%d bytes)": "%s を %s にエンコードしました (%d バイト)",

		// Generator
		"Failed to resolve style: %s":       "スタイルの解決に失敗しました: %s",
		"Rewrote quote as %s":               "引用を %s スタイルで書き換えました",
		"Saved %d assets to library":        "%d 件のアセットをライブラリに保存しました",
		"Failed to save asset %s: %v":       "アセット %s の保存に失敗しました: %v",
		"Skipping font %s: %v":              "フォント %s をスキップします: %v",
		"Registered %d fonts":               "%d 個のフォントを登録しました",
		"Failed to close asset library: %v": "アセットライブラリを閉じられませんでした: %v",
	})
}
