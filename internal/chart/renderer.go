package chart

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"time"

	"divination/internal/astro"
	"divination/internal/domain"
)

const (
	defaultWheelSize = 640
	wheelMargin      = 24
	signRingWidth    = 48
	planetMarkerSize = 7
)

var (
	colBackground = color.RGBA{R: 250, G: 252, B: 255, A: 255}
	colGrid       = color.RGBA{R: 225, G: 232, B: 240, A: 255}
	colRing       = color.RGBA{R: 58, G: 64, B: 90, A: 255}
	colCusp       = color.RGBA{R: 104, G: 122, B: 146, A: 255}
	colPlanet     = color.RGBA{R: 62, G: 106, B: 214, A: 255}
	colHarmony    = color.RGBA{R: 18, G: 140, B: 126, A: 255}
	colChallenge  = color.RGBA{R: 210, G: 61, B: 87, A: 255}
	colNeutral    = color.RGBA{R: 255, G: 149, B: 0, A: 255}
)

var elementColors = map[domain.Element]color.RGBA{
	domain.ElementFire:  {R: 252, G: 220, B: 208, A: 255},
	domain.ElementEarth: {R: 226, G: 236, B: 208, A: 255},
	domain.ElementAir:   {R: 250, G: 244, B: 205, A: 255},
	domain.ElementWater: {R: 210, G: 228, B: 248, A: 255},
}

type Renderer struct {
	size int
}

func NewRenderer() *Renderer {
	return &Renderer{size: defaultWheelSize}
}

// RenderBirthChart draws the chart as a wheel: sign sectors tinted by
// element, house cusps offset by the birth hour, planet markers at their
// ecliptic positions and aspect chords between them.
func (r *Renderer) RenderBirthChart(chart *domain.BirthChart) (*domain.ChartImage, error) {
	if chart == nil {
		return nil, fmt.Errorf("no chart to render")
	}
	if len(chart.Placements) == 0 {
		return nil, fmt.Errorf("chart has no placements")
	}

	img := image.NewRGBA(image.Rect(0, 0, r.size, r.size))
	fillRect(img, img.Bounds(), colBackground)

	w := wheel{
		cx:    r.size / 2,
		cy:    r.size / 2,
		outer: float64(r.size/2 - wheelMargin),
	}
	w.inner = w.outer - signRingWidth

	drawSignSectors(img, w)
	drawRing(img, w.cx, w.cy, w.outer, colRing)
	drawRing(img, w.cx, w.cy, w.inner, colRing)
	drawHouseCusps(img, w, birthHour(chart.BirthTime))

	positions := make(map[domain.PlanetID]float64, len(chart.Placements))
	for _, p := range chart.Placements {
		positions[p.Planet] = p.Position
	}
	for _, a := range chart.Aspects {
		from, okFrom := positions[a.First]
		to, okTo := positions[a.Second]
		if !okFrom || !okTo {
			continue
		}
		x0, y0 := w.point(from, w.inner-planetMarkerSize*3)
		x1, y1 := w.point(to, w.inner-planetMarkerSize*3)
		drawLine(img, x0, y0, x1, y1, aspectColor(a.Aspect.Nature))
	}
	for _, p := range chart.Placements {
		x, y := w.point(p.Position, w.inner-planetMarkerSize*2)
		fillDisc(img, x, y, planetMarkerSize, colPlanet)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}

	return &domain.ChartImage{
		MimeType: "image/png",
		Width:    r.size,
		Height:   r.size,
		Bytes:    buf.Bytes(),
	}, nil
}

type wheel struct {
	cx, cy       int
	outer, inner float64
}

// point maps an ecliptic longitude to the wheel, counter-clockwise from the
// nine o'clock position.
func (w wheel) point(longitude, radius float64) (int, int) {
	rad := longitude * math.Pi / 180
	x := float64(w.cx) - radius*math.Cos(rad)
	y := float64(w.cy) + radius*math.Sin(rad)
	return int(math.Round(x)), int(math.Round(y))
}

func drawSignSectors(img *image.RGBA, w wheel) {
	signs := astro.Signs()
	outerSq := w.outer * w.outer
	innerSq := w.inner * w.inner
	for y := w.cy - int(w.outer); y <= w.cy+int(w.outer); y++ {
		for x := w.cx - int(w.outer); x <= w.cx+int(w.outer); x++ {
			dx := float64(w.cx - x)
			dy := float64(y - w.cy)
			d := dx*dx + dy*dy
			if d > outerSq || d < innerSq {
				continue
			}
			longitude := math.Atan2(dy, dx) * 180 / math.Pi
			if longitude < 0 {
				longitude += 360
			}
			idx := int(longitude/30) % len(signs)
			if image.Pt(x, y).In(img.Bounds()) {
				img.SetRGBA(x, y, elementColors[signs[idx].Element])
			}
		}
	}
	for i := range signs {
		x0, y0 := w.point(float64(i*30), w.inner)
		x1, y1 := w.point(float64(i*30), w.outer)
		drawLine(img, x0, y0, x1, y1, colRing)
	}
}

func drawHouseCusps(img *image.RGBA, w wheel, hour int) {
	drawRing(img, w.cx, w.cy, w.inner/3, colGrid)
	offset := float64(hour * 15)
	for i := 0; i < 12; i++ {
		longitude := math.Mod(float64(i*30)-offset+720, 360)
		x0, y0 := w.point(longitude, w.inner/3)
		x1, y1 := w.point(longitude, w.inner)
		drawLine(img, x0, y0, x1, y1, colCusp)
	}
}

func aspectColor(nature domain.AspectNature) color.RGBA {
	switch nature {
	case domain.NatureHarmonious:
		return colHarmony
	case domain.NatureChallenging:
		return colChallenge
	default:
		return colNeutral
	}
}

func birthHour(clock string) int {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return 12
	}
	return t.Hour()
}

func drawRing(img *image.RGBA, cx, cy int, radius float64, col color.RGBA) {
	steps := int(2 * math.Pi * radius)
	if steps < 8 {
		steps = 8
	}
	for i := 0; i < steps; i++ {
		rad := 2 * math.Pi * float64(i) / float64(steps)
		x := cx + int(math.Round(radius*math.Cos(rad)))
		y := cy + int(math.Round(radius*math.Sin(rad)))
		if image.Pt(x, y).In(img.Bounds()) {
			img.SetRGBA(x, y, col)
		}
	}
}

func fillDisc(img *image.RGBA, cx, cy, radius int, col color.RGBA) {
	for y := -radius; y <= radius; y++ {
		for x := -radius; x <= radius; x++ {
			if x*x+y*y > radius*radius {
				continue
			}
			p := image.Pt(cx+x, cy+y)
			if p.In(img.Bounds()) {
				img.SetRGBA(p.X, p.Y, col)
			}
		}
	}
}

func fillRect(img *image.RGBA, rect image.Rectangle, col color.RGBA) {
	r := rect.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetRGBA(x, y, col)
		}
	}
}

func drawLine(img *image.RGBA, x0, y0, x1, y1 int, col color.RGBA) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		if image.Pt(x0, y0).In(img.Bounds()) {
			img.SetRGBA(x0, y0, col)
		}
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			if x0 == x1 {
				break
			}
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			if y0 == y1 {
				break
			}
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
