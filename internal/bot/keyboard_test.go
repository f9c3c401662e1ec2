package bot

import (
	"testing"

	"github.com/vidfetch/vidfetch-bot/internal/model"
	"github.com/vidfetch/vidfetch-bot/internal/session"
)

func TestCallbackDataRoundTrip(t *testing.T) {
	data := callbackData(model.FormatVideo, model.Quality480, "abcdef123456")

	sel, ok := parseSelection(data)

	if !ok {
		t.Fatalf("Expected %q to parse", data)
	}
	if sel.Format != model.FormatVideo {
		t.Errorf("Expected video format, got %q", sel.Format)
	}
	if sel.Quality != model.Quality480 {
		t.Errorf("Expected quality 480, got %q", sel.Quality)
	}
	if sel.Token != "abcdef123456" {
		t.Errorf("Expected token to survive, got %q", sel.Token)
	}
}

func TestCallbackDataFitsTelegramLimit(t *testing.T) {
	token := session.Token("https://www.youtube.com/watch?v=dQw4w9WgXcQ")

	data := callbackData(model.FormatVideo, model.QualityBest, token)

	if len(data) > 64 {
		t.Errorf("Expected callback data within 64 bytes, got %d: %q", len(data), data)
	}
}

func TestParseSelectionRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"cancel payload", "cancel"},
		{"wrong action", "xx|video|best|abc"},
		{"missing parts", "dl|video|best"},
		{"extra parts", "dl|video|best|abc|def"},
		{"bad format", "dl|subtitles|best|abc"},
		{"bad quality", "dl|video|1080|abc"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := parseSelection(tt.data); ok {
				t.Errorf("Expected %q to be rejected", tt.data)
			}
		})
	}
}

func TestOptionsKeyboardYouTube(t *testing.T) {
	markup := optionsKeyboard(model.PlatformYouTube, "tok123")

	if len(markup.InlineKeyboard) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(markup.InlineKeyboard))
	}

	var labels []string
	for _, row := range markup.InlineKeyboard {
		for _, button := range row {
			labels = append(labels, button.Text)
		}
	}
	expected := []string{"📹 Best Video", "🎵 Audio Only", "720p", "480p", "360p", "❌ Cancel"}
	if len(labels) != len(expected) {
		t.Fatalf("Expected %d buttons, got %d", len(expected), len(labels))
	}
	for i, want := range expected {
		if labels[i] != want {
			t.Errorf("Expected button %d to be %q, got %q", i, want, labels[i])
		}
	}

	got := *markup.InlineKeyboard[1][1].CallbackData
	if got != "dl|video|480|tok123" {
		t.Errorf("Expected 480p callback data, got %q", got)
	}
	if *markup.InlineKeyboard[2][0].CallbackData != callbackCancel {
		t.Errorf("Expected cancel callback data, got %q", *markup.InlineKeyboard[2][0].CallbackData)
	}
}

func TestOptionsKeyboardSingleStream(t *testing.T) {
	for _, platform := range []model.Platform{model.PlatformTikTok, model.PlatformTwitter} {
		t.Run(string(platform), func(t *testing.T) {
			markup := optionsKeyboard(platform, "tok123")

			if len(markup.InlineKeyboard) != 2 {
				t.Fatalf("Expected 2 rows, got %d", len(markup.InlineKeyboard))
			}
			if markup.InlineKeyboard[0][0].Text != "📹 Download Video" {
				t.Errorf("Expected download video button, got %q", markup.InlineKeyboard[0][0].Text)
			}
			if *markup.InlineKeyboard[0][1].CallbackData != "dl|audio|best|tok123" {
				t.Errorf("Expected audio callback data, got %q", *markup.InlineKeyboard[0][1].CallbackData)
			}
		})
	}
}
