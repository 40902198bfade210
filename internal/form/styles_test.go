package form

import "testing"

func TestColumnWidths_Normal(t *testing.T) {
	// Given: 90 cells of row width
	nome, email, telefone := ColumnWidths(90)

	// Then: the 88 usable cells split 4:4:3
	if nome != 32 || email != 32 || telefone != 24 {
		t.Errorf("ColumnWidths(90) = %d, %d, %d, want 32, 32, 24", nome, email, telefone)
	}
	if nome+email+telefone+2 != 90 {
		t.Errorf("columns plus gaps = %d, want 90", nome+email+telefone+2)
	}
}

func TestColumnWidths_Narrow(t *testing.T) {
	for _, w := range []int{0, 5, 19} {
		nome, email, telefone := ColumnWidths(w)
		if nome != MinColumnWidth || email != MinColumnWidth || telefone != MinColumnWidth {
			t.Errorf("ColumnWidths(%d) = %d, %d, %d, want minimums", w, nome, email, telefone)
		}
	}
}

func TestCell_TruncatesAndPads(t *testing.T) {
	if got := stripANSI(cell("Ana", 6)); got != "Ana   " {
		t.Errorf("cell(Ana, 6) = %q, want %q", got, "Ana   ")
	}
	if got := stripANSI(cell("Maria Aparecida", 6)); got != "Maria…" {
		t.Errorf("cell(long, 6) = %q, want %q", got, "Maria…")
	}
}

func TestBorders_Render(t *testing.T) {
	if FocusedBorder().Render("x") == "" {
		t.Error("FocusedBorder rendered empty")
	}
	if UnfocusedBorder().Render("x") == "" {
		t.Error("UnfocusedBorder rendered empty")
	}
}
