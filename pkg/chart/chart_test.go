package chart

import (
	"bytes"
	"strings"
	"testing"

	"github.com/JamesBMiddleton/nutritrack/pkg/nutrients"
	"github.com/JamesBMiddleton/nutritrack/pkg/rdi"
)

func TestTickLabel(t *testing.T) {
	protein, _ := nutrients.Lookup("Protein")
	cases := []struct {
		a    nutrients.Amount
		want string
	}{
		{nutrients.Known(12.6), "Protein - 12.6 g"},
		{nutrients.Known(3.14159), "Protein - 3.14 g"},
		{nutrients.Known(20), "Protein - 20 g"},
		{nutrients.Unknown, "Protein - - g"},
	}
	for _, c := range cases {
		if got := TickLabel(protein, c.a); got != c.want {
			t.Errorf("TickLabel(%+v) = %q, want %q", c.a, got, c.want)
		}
	}
}

func TestRender(t *testing.T) {
	amounts := nutrients.Zero()
	amounts[0] = nutrients.Known(1250)
	amounts[2] = nutrients.Unknown
	report := rdi.Compute(amounts, rdi.Default(), rdi.Male, 70)

	var buf bytes.Buffer
	if err := Render(&buf, "EGG, WHOLE", report, Options{Width: 10}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "Egg, whole\n") {
		t.Errorf("title not capitalized:\n%s", out)
	}
	for _, c := range nutrients.Categories {
		if !strings.Contains(out, "\n"+c.String()+"\n") {
			t.Errorf("missing panel %s", c)
		}
	}
	if !strings.Contains(out, "Energy - 1250 kcal") || !strings.Contains(out, "50.0%") {
		t.Errorf("energy row missing:\n%s", out)
	}
	if !strings.Contains(out, "█████░░░░░") {
		t.Errorf("expected a half bar:\n%s", out)
	}
	if !strings.Contains(out, "No data") || !strings.Contains(out, "··········") {
		t.Errorf("expected placeholder for caffeine:\n%s", out)
	}
	if strings.Contains(out, "Valine") {
		t.Errorf("uncharted slot was drawn:\n%s", out)
	}
}
