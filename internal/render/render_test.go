package render

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"testing"

	"dicechess/internal/board"
)

func renderFEN(t *testing.T, fen string, opts Options) []byte {
	t.Helper()
	pos, err := board.PositionFromFEN(fen)
	if err != nil {
		t.Fatalf("parse fen: %v", err)
	}
	data, err := NewRenderer().RenderPNG(context.Background(), pos, opts)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("render returned no bytes")
	}
	return data
}

func TestRenderPNGProducesDecodableImage(t *testing.T) {
	data := renderFEN(t, board.StartFEN, Options{Caption: "White to move"})

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	bounds := img.Bounds()
	wantW := boardSize + sideMargin*2
	wantH := boardSize + topMargin + bottomMargin
	if bounds.Dx() != wantW || bounds.Dy() != wantH {
		t.Fatalf("image is %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), wantW, wantH)
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	first := renderFEN(t, board.StartFEN, Options{})
	second := renderFEN(t, board.StartFEN, Options{})
	if !bytes.Equal(first, second) {
		t.Fatal("two renders of the same position differ")
	}
}

func TestRenderReflectsPosition(t *testing.T) {
	start := renderFEN(t, board.StartFEN, Options{})
	afterE4 := renderFEN(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1", Options{})
	if bytes.Equal(start, afterE4) {
		t.Fatal("different positions rendered identically")
	}
}

func TestRenderDecorationsChangeOutput(t *testing.T) {
	plain := renderFEN(t, board.StartFEN, Options{})

	highlighted := renderFEN(t, board.StartFEN, Options{
		Highlight: &MoveHighlight{From: board.E2, To: board.E4},
	})
	if bytes.Equal(plain, highlighted) {
		t.Fatal("highlight left the image unchanged")
	}

	captioned := renderFEN(t, board.StartFEN, Options{Caption: "Remaining: Pawn, Rook"})
	if bytes.Equal(plain, captioned) {
		t.Fatal("caption left the image unchanged")
	}
}

func TestRenderCanceledContext(t *testing.T) {
	pos, err := board.PositionFromFEN(board.StartFEN)
	if err != nil {
		t.Fatalf("parse fen: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewRenderer().RenderPNG(ctx, pos, Options{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v, want context.Canceled", err)
	}
}

func TestRenderNilPosition(t *testing.T) {
	if _, err := NewRenderer().RenderPNG(context.Background(), nil, Options{}); err == nil {
		t.Fatal("expected an error for a nil position")
	}
}

func TestAllPieceGlyphsRasterize(t *testing.T) {
	types := []board.PieceType{
		board.Pawn, board.Knight, board.Bishop, board.Rook, board.Queen, board.King,
	}
	for _, clr := range []board.Color{board.White, board.Black} {
		for _, pt := range types {
			pc := board.NewPiece(pt, clr)
			img, err := renderPieceImage(pc, 64)
			if err != nil {
				t.Fatalf("%v: %v", pc, err)
			}
			if img.Bounds() != image.Rect(0, 0, 64, 64) {
				t.Fatalf("%v: bounds %v", pc, img.Bounds())
			}
			if !hasVisiblePixels(img) {
				t.Fatalf("%v rasterized fully transparent", pc)
			}
		}
	}
}

func hasVisiblePixels(img image.Image) bool {
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a > 0 {
				return true
			}
		}
	}
	return false
}
