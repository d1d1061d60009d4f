package extraction

import (
	"strings"
	"testing"
)

func TestDetectBarcodeSegmented(t *testing.T) {
	got, layout := DetectBarcode("800000000001 000000000002 000000000003 000000000004")

	want := "800000000001000000000002000000000003000000000004"
	if got != want {
		t.Fatalf("DetectBarcode() = %q, want %q", got, want)
	}
	if layout != LayoutSegmented {
		t.Fatalf("expected segmented layout, got %q", layout)
	}
}

func TestDetectBarcodeSingleLine(t *testing.T) {
	text := "Linha digitavel\n85890000001 5 00670270202 5 50919000000 7 00000000000 1\nfim"

	got, layout := DetectBarcode(text)
	if got != "858900000015006702702025509190000007000000000001" {
		t.Fatalf("DetectBarcode() = %q", got)
	}
	if layout != LayoutSingleLine {
		t.Fatalf("expected single line layout, got %q", layout)
	}
}

func TestDetectBarcodeDense(t *testing.T) {
	run := "8" + strings.Repeat("1234567890", 4) + "123"
	text := "Pague com o codigo " + run + " ate o vencimento."

	got, layout := DetectBarcode(text)
	if got != run {
		t.Fatalf("DetectBarcode() = %q, want %q", got, run)
	}
	if layout != LayoutDense {
		t.Fatalf("expected dense layout, got %q", layout)
	}
}

func TestDetectBarcodeDenseAcrossLineBreak(t *testing.T) {
	run := "8" + strings.Repeat("0", 43)
	text := "codigo " + run[:20] + "\n" + run[20:] + " fim"

	got, layout := DetectBarcode(text)
	if got != run || layout != LayoutDense {
		t.Fatalf("DetectBarcode() = %q (%q), want %q (dense)", got, layout, run)
	}
}

func TestDetectBarcodeSegmentedHasPriority(t *testing.T) {
	dense := "8" + strings.Repeat("9", 43)
	text := "inline " + dense + "\n811111111111 222222222222 333333333333 444444444444"

	got, layout := DetectBarcode(text)
	if layout != LayoutSegmented {
		t.Fatalf("expected segmented layout, got %q", layout)
	}
	if got != "811111111111222222222222333333333333444444444444" {
		t.Fatalf("DetectBarcode() = %q", got)
	}
}

func TestDetectBarcodeNone(t *testing.T) {
	got, layout := DetectBarcode("sem codigo 8123 456")
	if got != "" || layout != LayoutNone {
		t.Fatalf("DetectBarcode() = %q (%q), want empty", got, layout)
	}
}

func TestSegmentedMatcherIgnoresContiguousRun(t *testing.T) {
	if _, ok := SegmentedBarcode.Match("8" + strings.Repeat("0", 43)); ok {
		t.Fatalf("segmented matcher must not match a contiguous run")
	}
}

func TestSingleLineMatcherNeedsLineStart(t *testing.T) {
	if _, ok := SingleLineBarcode.Match("codigo 8" + strings.Repeat("1 ", 30)); ok {
		t.Fatalf("single line matcher must not match mid-line")
	}
}
