// Package render draws board snapshots as PNG images: colored squares, SVG
// piece glyphs, an optional move highlight and a caption panel.
package render

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	imagedraw "image/draw"
	"image/png"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"dicechess/internal/board"
)

// MoveHighlight marks the from and to squares of the last move.
type MoveHighlight struct {
	From board.Square
	To   board.Square
}

// Options carries the optional snapshot decorations.
type Options struct {
	Highlight *MoveHighlight
	// Caption is drawn in a panel above the board, e.g. the remaining dice
	// or the winner line.
	Caption string
}

// BoardRenderer renders a position to an encoded image.
type BoardRenderer interface {
	RenderPNG(ctx context.Context, pos *board.Position, opts Options) ([]byte, error)
}

func NewRenderer() BoardRenderer {
	return &pngRenderer{}
}

type pngRenderer struct{}

const (
	squareSize      = 72
	boardSquares    = 8
	boardSize       = squareSize * boardSquares
	sideMargin      = 36
	topMargin       = 64
	bottomMargin    = 36
	panelRadius     = 10
	captionHeight   = 36
	gapToBoard      = 14
	captionPaddingX = 20
	captionMinWidth = 160
	shadowOffsetY   = 4
)

var (
	lightSquare         = color.RGBA{233, 207, 163, 255}
	darkSquare          = color.RGBA{187, 136, 96, 255}
	highlightFill       = color.NRGBA{R: 255, G: 228, B: 120, A: 140}
	panelColor          = color.NRGBA{R: 28, G: 31, B: 46, A: 250}
	panelShadowColor    = color.NRGBA{0, 0, 0, 50}
	captionTextColor    = color.NRGBA{R: 236, G: 239, B: 255, A: 255}
	coordinateTextColor = color.NRGBA{R: 92, G: 64, B: 40, A: 255}
)

func (r *pngRenderer) RenderPNG(ctx context.Context, pos *board.Position, opts Options) ([]byte, error) {
	if pos == nil {
		return nil, errors.New("render: nil position")
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	totalWidth := boardSize + sideMargin*2
	totalHeight := boardSize + topMargin + bottomMargin
	origin := image.Point{X: sideMargin, Y: topMargin}
	boardRect := image.Rect(origin.X, origin.Y, origin.X+boardSize, origin.Y+boardSize)

	img := image.NewRGBA(image.Rect(0, 0, totalWidth, totalHeight))

	drawCaption(img, opts.Caption, boardRect)
	drawSquares(img, origin)
	if err := drawPieces(img, pos, origin); err != nil {
		return nil, err
	}
	drawHighlight(img, opts.Highlight, origin)
	drawCoordinates(img, origin)

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawSquares(dst imagedraw.Image, origin image.Point) {
	for row := 0; row < boardSquares; row++ {
		for col := 0; col < boardSquares; col++ {
			sq := board.NewSquare(board.File(col), board.Rank(7-row))
			x := origin.X + col*squareSize
			y := origin.Y + row*squareSize
			imagedraw.Draw(dst, image.Rect(x, y, x+squareSize, y+squareSize),
				image.NewUniform(squareColor(sq)), image.Point{}, imagedraw.Src)
		}
	}
}

func drawPieces(dst imagedraw.Image, pos *board.Position, origin image.Point) error {
	for sq := board.A1; sq <= board.H8; sq++ {
		pc := pos.PieceAt(sq)
		if pc == board.NoPiece {
			continue
		}
		img, err := renderPieceImage(pc, squareSize)
		if err != nil {
			return err
		}
		rect := squareRect(sq, origin)
		imagedraw.Draw(dst, rect, img, image.Point{}, imagedraw.Over)
	}
	return nil
}

func drawHighlight(img *image.RGBA, highlight *MoveHighlight, origin image.Point) {
	if img == nil || highlight == nil {
		return
	}
	for _, sq := range [2]board.Square{highlight.From, highlight.To} {
		if !sq.Valid() {
			continue
		}
		imagedraw.Draw(img, squareRect(sq, origin), image.NewUniform(highlightFill), image.Point{}, imagedraw.Over)
	}
}

func drawCaption(img *image.RGBA, caption string, boardRect image.Rectangle) {
	caption = strings.TrimSpace(caption)
	if img == nil || caption == "" {
		return
	}
	drawer := &font.Drawer{Dst: img, Face: basicfont.Face7x13}

	width := captionMinWidth
	if w := drawer.MeasureString(caption).Round() + captionPaddingX*2; w > width {
		width = w
	}
	if width > boardRect.Dx() {
		width = boardRect.Dx()
	}
	bottom := boardRect.Min.Y - gapToBoard
	top := bottom - captionHeight
	left := boardRect.Min.X + (boardRect.Dx()-width)/2
	rect := image.Rect(left, top, left+width, bottom)

	drawRoundedPanel(img, rect.Add(image.Pt(0, shadowOffsetY)), panelRadius, panelShadowColor)
	drawRoundedPanel(img, rect, panelRadius, panelColor)

	caption = truncateWithEllipsis(basicfont.Face7x13, caption, rect.Dx()-captionPaddingX*2)
	drawCenteredString(drawer, rect, caption, captionTextColor)
}

func drawCoordinates(dst imagedraw.Image, origin image.Point) {
	drawer := &font.Drawer{
		Dst:  dst,
		Face: basicfont.Face7x13,
		Src:  image.NewUniform(coordinateTextColor),
	}
	ascent := basicfont.Face7x13.Metrics().Ascent.Ceil()

	for i := 0; i < boardSquares; i++ {
		rankBaseline := origin.Y + (7-i)*squareSize + squareSize/2 + ascent/2
		drawCenteredText(drawer, board.Rank(i).String(), origin.X-sideMargin/2, rankBaseline)

		fileCenter := origin.X + i*squareSize + squareSize/2
		drawCenteredText(drawer, board.File(i).String(), fileCenter, origin.Y+boardSize+ascent+6)
	}
}

func squareRect(sq board.Square, origin image.Point) image.Rectangle {
	col := int(sq.File())
	row := 7 - int(sq.Rank())
	x := origin.X + col*squareSize
	y := origin.Y + row*squareSize
	return image.Rect(x, y, x+squareSize, y+squareSize)
}

func squareColor(sq board.Square) color.Color {
	if (int(sq.File())+int(sq.Rank()))%2 == 0 {
		return darkSquare
	}
	return lightSquare
}

func truncateWithEllipsis(face font.Face, text string, maxWidth int) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || maxWidth <= 0 || face == nil {
		return trimmed
	}
	drawer := font.Drawer{Face: face}
	if drawer.MeasureString(trimmed).Round() <= maxWidth {
		return trimmed
	}
	ellipsis := "..."
	if drawer.MeasureString(ellipsis).Round() > maxWidth {
		return ""
	}
	runes := []rune(trimmed)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		candidate := string(runes) + ellipsis
		if drawer.MeasureString(candidate).Round() <= maxWidth {
			return candidate
		}
	}
	return ellipsis
}

func drawRoundedPanel(img *image.RGBA, rect image.Rectangle, radius int, clr color.Color) {
	if img == nil || rect.Empty() {
		return
	}
	if radius < 0 {
		radius = 0
	}
	maxRadius := rect.Dx() / 2
	if r := rect.Dy() / 2; r < maxRadius {
		maxRadius = r
	}
	if radius > maxRadius {
		radius = maxRadius
	}
	fill := image.NewUniform(clr)
	if radius == 0 {
		imagedraw.Draw(img, rect, fill, image.Point{}, imagedraw.Over)
		return
	}

	core := image.Rect(rect.Min.X+radius, rect.Min.Y, rect.Max.X-radius, rect.Max.Y)
	if core.Dx() > 0 {
		imagedraw.Draw(img, core, fill, image.Point{}, imagedraw.Over)
	}
	left := image.Rect(rect.Min.X, rect.Min.Y+radius, rect.Min.X+radius, rect.Max.Y-radius)
	if left.Dx() > 0 {
		imagedraw.Draw(img, left, fill, image.Point{}, imagedraw.Over)
	}
	right := image.Rect(rect.Max.X-radius, rect.Min.Y+radius, rect.Max.X, rect.Max.Y-radius)
	if right.Dx() > 0 {
		imagedraw.Draw(img, right, fill, image.Point{}, imagedraw.Over)
	}

	corners := []image.Point{
		{rect.Min.X + radius, rect.Min.Y + radius},
		{rect.Max.X - radius - 1, rect.Min.Y + radius},
		{rect.Min.X + radius, rect.Max.Y - radius - 1},
		{rect.Max.X - radius - 1, rect.Max.Y - radius - 1},
	}
	for _, center := range corners {
		drawDisc(img, center, radius, clr)
	}
}

func drawDisc(img *image.RGBA, center image.Point, radius int, clr color.Color) {
	if radius <= 0 {
		blendPixel(img, center.X, center.Y, clr)
		return
	}
	rSquared := radius * radius
	for y := -radius; y <= radius; y++ {
		for x := -radius; x <= radius; x++ {
			if x*x+y*y > rSquared {
				continue
			}
			blendPixel(img, center.X+x, center.Y+y, clr)
		}
	}
}

func drawCenteredString(drawer *font.Drawer, rect image.Rectangle, text string, clr color.Color) {
	if drawer == nil {
		return
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	metrics := drawer.Face.Metrics()
	width := drawer.MeasureString(text).Round()
	x := rect.Min.X + (rect.Dx()-width)/2
	if x < rect.Min.X {
		x = rect.Min.X
	}
	baseline := rect.Min.Y + (rect.Dy()+metrics.Ascent.Ceil()-metrics.Descent.Ceil())/2
	drawer.Src = image.NewUniform(clr)
	drawer.Dot = fixed.P(x, baseline)
	drawer.DrawString(text)
}

func drawCenteredText(drawer *font.Drawer, text string, centerX, baseline int) {
	if text == "" {
		return
	}
	width := drawer.MeasureString(text).Round()
	drawer.Dot = fixed.P(centerX-width/2, baseline)
	drawer.DrawString(text)
}

func blendPixel(img *image.RGBA, x, y int, clr color.Color) {
	if img == nil {
		return
	}
	if !(image.Point{X: x, Y: y}).In(img.Bounds()) {
		return
	}

	sr, sg, sb, sa := clr.RGBA()
	srcA := float64(sa) / 65535.0
	if srcA <= 0 {
		return
	}
	srcR := float64(sr) / 65535.0
	srcG := float64(sg) / 65535.0
	srcB := float64(sb) / 65535.0

	dst := img.RGBAAt(x, y)
	dstA := float64(dst.A) / 255.0
	var dstR, dstG, dstB float64
	if dstA > 0 {
		inv := 1.0 / dstA
		dstR = float64(dst.R) / 255.0 * inv
		dstG = float64(dst.G) / 255.0 * inv
		dstB = float64(dst.B) / 255.0 * inv
	}

	outA := srcA + dstA*(1-srcA)
	if outA <= 0 {
		img.SetRGBA(x, y, color.RGBA{})
		return
	}
	outR := (srcR*srcA + dstR*dstA*(1-srcA)) / outA
	outG := (srcG*srcA + dstG*dstA*(1-srcA)) / outA
	outB := (srcB*srcA + dstB*dstA*(1-srcA)) / outA

	img.SetRGBA(x, y, color.RGBA{
		R: floatToUint8(outR * outA * 255.0),
		G: floatToUint8(outG * outA * 255.0),
		B: floatToUint8(outB * outA * 255.0),
		A: floatToUint8(outA * 255.0),
	})
}

func floatToUint8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
