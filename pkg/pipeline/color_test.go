package pipeline

import (
	"errors"
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"#000000", color.NRGBA{0, 0, 0, 255}, false},
		{"#ffffff", color.NRGBA{255, 255, 255, 255}, false},
		{"667eea", color.NRGBA{0x66, 0x7e, 0xea, 255}, false},
		{"#FF000080", color.NRGBA{255, 0, 0, 0x80}, false},
		{"#fff", color.NRGBA{}, true},
		{"#gg0000", color.NRGBA{}, true},
		{"", color.NRGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseColor(%q): expected error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColor(%q): unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestWithOpacity(t *testing.T) {
	c := WithOpacity(color.NRGBA{R: 255, G: 255, B: 255, A: 255}, 0.3)
	if c.A != 77 {
		t.Errorf("expected alpha 77, got %d", c.A)
	}
	if c.R != 255 {
		t.Errorf("expected color channels untouched, got R=%d", c.R)
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"png": FormatPNG, "JPG": FormatJPEG, "jpeg": FormatJPEG} {
		got, err := ParseFormat(in)
		if err != nil {
			t.Fatalf("ParseFormat(%q): %v", in, err)
		}
		if got != want {
			t.Errorf("ParseFormat(%q) = %q, want %q", in, got, want)
		}
	}

	if _, err := ParseFormat("webp"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
	if FormatJPEG.Extension() != "jpg" {
		t.Errorf("expected jpg extension, got %q", FormatJPEG.Extension())
	}
}

func TestBrandKit_Patch(t *testing.T) {
	kit := BrandKit{
		PrimaryColor:   "#667eea",
		SecondaryColor: "#764ba2",
		AccentColor:    "#f093fb",
		FontFamily:     "Go",
		ApplyColors:    true,
		Watermark:      &Watermark{Enabled: true, Text: "My Brand"},
	}

	p := kit.Patch()
	if p.BackgroundGradient == nil || p.BackgroundGradient.From != "#667eea" || p.BackgroundGradient.To != "#764ba2" {
		t.Errorf("expected primary/secondary gradient, got %+v", p.BackgroundGradient)
	}
	if p.BackgroundColor != nil {
		t.Error("expected no solid background when a gradient is set")
	}
	if p.AccentColor == nil || *p.AccentColor != "#f093fb" {
		t.Error("expected accent color")
	}
	if p.Watermark == nil || p.Watermark.Text != "My Brand" {
		t.Error("expected watermark")
	}

	kit.ApplyColors = false
	p = kit.Patch()
	if p.BackgroundGradient != nil || p.AccentColor != nil {
		t.Error("expected colors to be ignored when ApplyColors is false")
	}
	if p.FontFamily == nil || *p.FontFamily != "Go" {
		t.Error("expected font family regardless of ApplyColors")
	}
}

func TestLayoutResult_LineY(t *testing.T) {
	l := LayoutResult{Lines: []string{"a", "b", "c"}, LineHeightPx: 10, StartY: 40}
	if l.LineY(2) != 60 {
		t.Errorf("expected 60, got %v", l.LineY(2))
	}
	if l.LastLineY() != 60 {
		t.Errorf("expected 60, got %v", l.LastLineY())
	}
}
