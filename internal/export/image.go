// Package export renders a frozen assessment to a raster PNG card. This is
// the only fallible operation in the program; callers surface failures as
// non-fatal notifications and never retry.
package export

import (
	"fmt"
	"image"

	"github.com/alexanderramin/burnrate/internal/domain"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Filename is the fixed name of the exported card.
const Filename = "burnout-results.png"

const (
	cardWidth  = 720
	cardHeight = 405
)

// Card colors mirror the terminal palette.
const (
	hexBg     = "#282828"
	hexFg     = "#ebdbb2"
	hexDim    = "#928374"
	hexHeader = "#fe8019"
	hexGreen  = "#8ec07c"
	hexYellow = "#fabd2f"
	hexRed    = "#fb4934"
)

func riskHex(level domain.RiskLevel) string {
	switch level {
	case domain.RiskHigh:
		return hexRed
	case domain.RiskModerate:
		return hexYellow
	default:
		return hexGreen
	}
}

func face(size float64) (font.Face, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}
	fc, err := opentype.NewFace(f, &opentype.FaceOptions{Size: size, DPI: 72})
	if err != nil {
		return nil, fmt.Errorf("creating %gpt face: %w", size, err)
	}
	return fc, nil
}

// Render draws the results card for the given assessment.
func Render(a domain.Assessment) (image.Image, error) {
	titleFace, err := face(20)
	if err != nil {
		return nil, err
	}
	scoreFace, err := face(72)
	if err != nil {
		return nil, err
	}
	bodyFace, err := face(24)
	if err != nil {
		return nil, err
	}
	smallFace, err := face(16)
	if err != nil {
		return nil, err
	}

	dc := gg.NewContext(cardWidth, cardHeight)
	dc.SetHexColor(hexBg)
	dc.Clear()

	// Title
	dc.SetFontFace(titleFace)
	dc.SetHexColor(hexHeader)
	dc.DrawStringAnchored("BURNOUT RISK", cardWidth/2, 50, 0.5, 0.5)

	// Score, tinted by tier
	dc.SetFontFace(scoreFace)
	dc.SetHexColor(riskHex(a.Level))
	dc.DrawStringAnchored(fmt.Sprintf("%.1f", a.Score), cardWidth/2-30, 140, 0.5, 0.5)
	dc.SetFontFace(bodyFace)
	dc.SetHexColor(hexDim)
	dc.DrawStringAnchored("/ 10", cardWidth/2+70, 155, 0.5, 0.5)

	// Tier and projection
	dc.SetFontFace(bodyFace)
	dc.SetHexColor(riskHex(a.Level))
	dc.DrawStringAnchored(fmt.Sprintf("%s risk", a.Level.Label()), cardWidth/2, 215, 0.5, 0.5)
	dc.SetHexColor(hexFg)
	dc.DrawStringAnchored(a.Window, cardWidth/2, 255, 0.5, 0.5)

	// Score gauge
	gaugeW := 420.0
	gaugeX := (cardWidth - gaugeW) / 2
	gaugeY := 295.0
	dc.SetHexColor(hexDim)
	dc.DrawRoundedRectangle(gaugeX, gaugeY, gaugeW, 10, 5)
	dc.Fill()
	frac := a.Score / 10
	if frac > 0 {
		dc.SetHexColor(riskHex(a.Level))
		dc.DrawRoundedRectangle(gaugeX, gaugeY, gaugeW*frac, 10, 5)
		dc.Fill()
	}

	// Inputs footer
	dc.SetFontFace(smallFace)
	dc.SetHexColor(hexDim)
	dc.DrawStringAnchored(
		fmt.Sprintf("%.0fh worked / week   ·   %.1fh sleep / night   ·   %.1fh self-care / week",
			a.Inputs.HoursWorked, a.Inputs.SleepHours, a.Inputs.SelfCareHours),
		cardWidth/2, 345, 0.5, 0.5)
	dc.DrawStringAnchored(a.TakenAt.Format("2006-01-02 15:04"), cardWidth/2, 375, 0.5, 0.5)

	return dc.Image(), nil
}

// Write renders the card and writes it to path as a PNG.
func Write(a domain.Assessment, path string) error {
	img, err := Render(a)
	if err != nil {
		return fmt.Errorf("rendering card: %w", err)
	}
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
