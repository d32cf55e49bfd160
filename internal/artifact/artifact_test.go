package artifact

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ucsc-menus/menu-sync/internal/menu"
)

func TestWriteCreatesArtifact(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "menu_data.json")
	w := NewWriter(path)

	result := menu.NewDateResult("10/28/2025")
	vm := make(menu.VenueMenu)
	price := "$7.00"
	vm.Append("Breakfast", "Breakfast", menu.Item{
		Name:        "Crunch Wrap",
		DietaryTags: []string{"DAIRY"},
		Price:       &price,
	})
	result.Halls["Cowell & Stevenson Dining Hall"] = vm
	result.Halls["Porter & Kresge Dining Hall"] = menu.VenueMenu{}

	if err := w.Write(result); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("artifact missing: %v", err)
	}

	var decoded menu.DateResult
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("artifact is not valid JSON: %v", err)
	}
	if !decoded.Equal(result) {
		t.Error("artifact round trip does not match the result")
	}

	// The closed venue must serialize as an object, and absent fields as
	// explicit nulls, matching the consumer's expectations.
	text := string(data)
	if !strings.Contains(text, `"Porter & Kresge Dining Hall": {}`) {
		t.Error("closed venue should serialize as an empty object")
	}
	if !strings.Contains(text, `"id": null`) {
		t.Error("missing registry id should serialize as null")
	}
}

func TestWriteTagsNeverNull(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu_data.json")
	w := NewWriter(path)

	result := menu.NewDateResult("10/28/2025")
	vm := make(menu.VenueMenu)
	vm.Append("Dinner", "Dinner", menu.Item{Name: "Plain Rice", DietaryTags: []string{}})
	result.Halls["Rachel Carson & Oakes Dining Hall"] = vm

	if err := w.Write(result); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), `"dietary_restrictions": null`) {
		t.Error("dietary_restrictions should serialize as [] when empty")
	}
}
