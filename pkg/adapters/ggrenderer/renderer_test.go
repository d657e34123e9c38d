package ggrenderer

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/font/gofont/gomono"

	"github.com/user/quotegen/pkg/pipeline"
	"github.com/user/quotegen/pkg/ports"
)

func TestRenderer_CreateSurface(t *testing.T) {
	r := New()

	surface, err := r.CreateSurface(100, 60)
	if err != nil {
		t.Fatalf("CreateSurface failed: %v", err)
	}

	if surface.Width() != 100 || surface.Height() != 60 {
		t.Errorf("expected 100x60, got %dx%d", surface.Width(), surface.Height())
	}

	bounds := surface.ToImage().Bounds()
	if bounds.Dx() != 100 || bounds.Dy() != 60 {
		t.Errorf("expected 100x60 image, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestRenderer_CreateSurface_InvalidDimensions(t *testing.T) {
	r := New()

	for _, dims := range [][2]int{{0, 10}, {10, 0}, {-1, 10}} {
		_, err := r.CreateSurface(dims[0], dims[1])
		if !errors.Is(err, pipeline.ErrInvalidDimensions) {
			t.Errorf("CreateSurface(%d, %d): expected ErrInvalidDimensions, got %v", dims[0], dims[1], err)
		}
	}
}

func TestSurface_Fill(t *testing.T) {
	r := New()
	surface, _ := r.CreateSurface(10, 10)

	surface.Fill(color.RGBA{R: 255, A: 255})

	got := color.RGBAModel.Convert(surface.ToImage().At(5, 5)).(color.RGBA)
	if got.R != 255 || got.G != 0 || got.B != 0 {
		t.Errorf("expected red, got %v", got)
	}
}

func TestSurface_FillGradient(t *testing.T) {
	r := New()
	surface, _ := r.CreateSurface(100, 10)

	surface.FillGradient(ports.LinearGradient{
		X0: 0, Y0: 5, X1: 100, Y1: 5,
		From: color.RGBA{R: 255, A: 255},
		To:   color.RGBA{B: 255, A: 255},
	})

	img := surface.ToImage()
	left := color.RGBAModel.Convert(img.At(1, 5)).(color.RGBA)
	right := color.RGBAModel.Convert(img.At(98, 5)).(color.RGBA)

	if left.R <= left.B {
		t.Errorf("expected red-dominant left edge, got %v", left)
	}
	if right.B <= right.R {
		t.Errorf("expected blue-dominant right edge, got %v", right)
	}
}

func TestSurface_MeasureText(t *testing.T) {
	r := New()
	surface, _ := r.CreateSurface(200, 100)
	style := ports.TextStyle{FontFamily: "Go", FontSize: 20, Color: color.Black}

	short, h := surface.MeasureText("hi", style)
	long, _ := surface.MeasureText("hello world", style)

	if short <= 0 || h <= 0 {
		t.Fatalf("expected positive measurement, got %vx%v", short, h)
	}
	if long <= short {
		t.Errorf("expected longer text to measure wider: %v <= %v", long, short)
	}

	bigger, _ := surface.MeasureText("hi", ports.TextStyle{FontFamily: "Go", FontSize: 40, Color: color.Black})
	if bigger <= short {
		t.Errorf("expected larger font to measure wider: %v <= %v", bigger, short)
	}
}

func TestSurface_DrawText(t *testing.T) {
	r := New()
	surface, _ := r.CreateSurface(200, 60)
	surface.Fill(color.White)

	surface.DrawText("MMMM", 100, 30, ports.TextStyle{FontFamily: "Arial", FontSize: 32, Color: color.Black, Align: ports.AlignCenter})

	img := surface.ToImage()
	dark := 0
	for y := 0; y < 60; y++ {
		for x := 0; x < 200; x++ {
			c := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
			if c.Y < 128 {
				dark++
			}
		}
	}
	if dark == 0 {
		t.Error("expected text pixels to be drawn")
	}
}

func TestSurface_DrawImageScaled(t *testing.T) {
	r := New()
	surface, _ := r.CreateSurface(50, 50)

	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			src.Set(x, y, color.RGBA{G: 255, A: 255})
		}
	}

	surface.DrawImageScaled(src, 10, 10, 20, 20)

	img := surface.ToImage()
	inside := color.RGBAModel.Convert(img.At(20, 20)).(color.RGBA)
	outside := color.RGBAModel.Convert(img.At(40, 40)).(color.RGBA)
	if inside.G != 255 {
		t.Errorf("expected green inside scaled image, got %v", inside)
	}
	if outside.A != 0 {
		t.Errorf("expected transparent outside scaled image, got %v", outside)
	}
}

func TestRenderer_EncodeDecodeJPEG(t *testing.T) {
	r := New()

	img := image.NewRGBA(image.Rect(0, 0, 50, 50))
	for y := 0; y < 50; y++ {
		for x := 0; x < 50; x++ {
			img.Set(x, y, color.RGBA{R: 255, G: 0, B: 0, A: 255})
		}
	}

	data, err := r.EncodeImage(img, ports.FormatJPEG, 80)
	if err != nil {
		t.Fatalf("EncodeImage failed: %v", err)
	}
	if len(data) == 0 {
		t.Error("expected non-empty data")
	}

	decoded, err := r.DecodeImage(data)
	if err != nil {
		t.Fatalf("DecodeImage failed: %v", err)
	}

	bounds := decoded.Bounds()
	if bounds.Dx() != 50 || bounds.Dy() != 50 {
		t.Errorf("expected 50x50, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestRenderer_EncodeDecodePNG(t *testing.T) {
	r := New()

	img := image.NewRGBA(image.Rect(0, 0, 30, 30))

	data, err := r.EncodeImage(img, ports.FormatPNG, 0)
	if err != nil {
		t.Fatalf("EncodeImage failed: %v", err)
	}

	decoded, err := r.DecodeImage(data)
	if err != nil {
		t.Fatalf("DecodeImage failed: %v", err)
	}

	bounds := decoded.Bounds()
	if bounds.Dx() != 30 || bounds.Dy() != 30 {
		t.Errorf("expected 30x30, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestRenderer_DecodeImage_Invalid(t *testing.T) {
	r := New()
	if _, err := r.DecodeImage([]byte("not an image")); err == nil {
		t.Error("expected error for invalid data")
	}
}

func TestFontRegistry(t *testing.T) {
	reg := NewFontRegistry()

	if !reg.Has("Go") {
		t.Error("expected built-in Go family")
	}
	if !reg.Has("Helvetica") {
		t.Error("expected Helvetica alias")
	}
	if reg.Has("Comic Sans") {
		t.Error("expected unknown family to be missing")
	}

	f, err := reg.Font("Comic Sans")
	if err != nil || f == nil {
		t.Fatalf("expected fallback font, got %v", err)
	}

	if err := reg.Register("Brand Mono", gomono.TTF); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if !reg.Has("brand mono") {
		t.Error("expected registered family to be case-insensitive")
	}

	if err := reg.Register("Broken", []byte("nope")); err == nil {
		t.Error("expected error for invalid font data")
	}
}
