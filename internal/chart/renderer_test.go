package chart

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"divination/internal/astro"
	"divination/internal/domain"
)

func TestRenderBirthChart(t *testing.T) {
	chart, ok := astro.NewEngine("12:00").GenerateChart("1990-07-15", "08:30", "")
	if !ok {
		t.Fatal("expected chart")
	}

	renderer := NewRenderer()
	out, err := renderer.RenderBirthChart(chart)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if out.MimeType != "image/png" || out.Width != defaultWheelSize || out.Height != defaultWheelSize {
		t.Fatalf("unexpected image metadata: %+v", out)
	}

	img, err := png.Decode(bytes.NewReader(out.Bytes))
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	if img.Bounds().Dx() != defaultWheelSize || img.Bounds().Dy() != defaultWheelSize {
		t.Fatalf("unexpected bounds %v", img.Bounds())
	}

	w := wheel{cx: defaultWheelSize / 2, cy: defaultWheelSize / 2, outer: float64(defaultWheelSize/2 - wheelMargin)}
	w.inner = w.outer - signRingWidth

	x, y := w.point(chart.Placements[0].Position, w.inner-planetMarkerSize*2)
	if got := colorAt(img, x, y); got != colPlanet {
		t.Fatalf("expected planet marker at (%d,%d), got %v", x, y, got)
	}

	x, y = w.point(15, (w.outer+w.inner)/2)
	if got := colorAt(img, x, y); got != elementColors[domain.ElementFire] {
		t.Fatalf("expected aries sector tinted fire, got %v", got)
	}
	x, y = w.point(105, (w.outer+w.inner)/2)
	if got := colorAt(img, x, y); got != elementColors[domain.ElementWater] {
		t.Fatalf("expected cancer sector tinted water, got %v", got)
	}
}

func TestRenderBirthChartRejectsEmpty(t *testing.T) {
	renderer := NewRenderer()
	if _, err := renderer.RenderBirthChart(nil); err == nil {
		t.Fatal("expected error for nil chart")
	}
	if _, err := renderer.RenderBirthChart(&domain.BirthChart{}); err == nil {
		t.Fatal("expected error for chart without placements")
	}
}

func TestWheelPoint(t *testing.T) {
	w := wheel{cx: 100, cy: 100, outer: 50, inner: 40}
	if x, y := w.point(0, 50); x != 50 || y != 100 {
		t.Fatalf("0° should sit at nine o'clock, got (%d,%d)", x, y)
	}
	if x, y := w.point(90, 50); x != 100 || y != 150 {
		t.Fatalf("90° should sit at six o'clock, got (%d,%d)", x, y)
	}
}

func TestBirthHour(t *testing.T) {
	if birthHour("08:30") != 8 || birthHour("") != 12 || birthHour("late") != 12 {
		t.Fatal("unexpected birth hour parsing")
	}
}

func colorAt(img image.Image, x, y int) color.RGBA {
	return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
}
