package inventory

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"0", 0},
		{"12", 12},
		{" 7.5 ", 7.5},
		{"-3", 0},
		{"abc", 0},
		{"", 0},
		{"NaN", 0},
		{"Inf", 0},
		{"1e3", 1000},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			if got := ParseQuantity(tc.in); got != tc.want {
				t.Errorf("ParseQuantity(%q) = %v, expected %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestShortage(t *testing.T) {
	tests := []struct {
		name     string
		item     Item
		expected float64
	}{
		{"missing", NewItem("a", "40", "100"), 60},
		{"enough", NewItem("b", "100", "40"), 0},
		{"exact", NewItem("c", "5", "5"), 0},
		{"invalid stock counts as zero", NewItem("d", "oops", "9"), 9},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.item.Shortage(); got != tc.expected {
				t.Errorf("Shortage() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestTotalShortage(t *testing.T) {
	items := []Item{
		NewItem("a", "40", "100"),
		NewItem("b", "100", "40"),
		NewItem("c", "0", "2.5"),
	}

	if got := TotalShortage(items); got != 62.5 {
		t.Errorf("TotalShortage() = %v, expected 62.5", got)
	}
	if got := TotalShortage(nil); got != 0 {
		t.Errorf("TotalShortage(nil) = %v, expected 0", got)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.yaml")
	content := `items:
  - name: bolts
    stock: 40
    required: 100
  - name: nuts
    stock: "12"
    required: many
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	items, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(items))
	}
	if items[0].Name != "bolts" || items[0].Stock != 40 || items[0].Required != 100 {
		t.Errorf("Unexpected first item: %+v", items[0])
	}
	if items[1].Stock != 12 || items[1].Required != 0 {
		t.Errorf("Non-numeric quantities should decode to 0, got %+v", items[1])
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestFormatQuantity(t *testing.T) {
	if got := FormatQuantity(60); got != "60" {
		t.Errorf("FormatQuantity(60) = %q", got)
	}
	if got := FormatQuantity(2.5); got != "2.5" {
		t.Errorf("FormatQuantity(2.5) = %q", got)
	}
}
