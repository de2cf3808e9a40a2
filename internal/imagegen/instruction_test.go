package imagegen

import (
	"strings"
	"testing"
)

func TestBuildInstructionOptionCombinations(t *testing.T) {
	tests := []struct {
		name       string
		background string
		outfit     string
		wantHex    string
		wantOutfit string
	}{
		{
			name:       "both recognized",
			background: "blue",
			outfit:     "male-suit",
			wantHex:    "#438EDB",
			wantOutfit: "a dark tailored business suit with a white dress shirt and a tie",
		},
		{
			name:       "background unrecognized",
			background: "neon",
			outfit:     "female-suit",
			wantHex:    DefaultBackgroundHex,
			wantOutfit: "a dark tailored blazer over a white blouse",
		},
		{
			name:       "outfit unrecognized",
			background: "gray",
			outfit:     "tuxedo",
			wantHex:    "#D9D9D9",
			wantOutfit: DefaultOutfitPhrase,
		},
		{
			name:       "both unrecognized",
			background: "",
			outfit:     "",
			wantHex:    DefaultBackgroundHex,
			wantOutfit: DefaultOutfitPhrase,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := BuildInstruction(PhotoOptions{
				BackgroundColor:      tc.background,
				Outfit:               tc.outfit,
				EnableBeautification: true,
			})
			if got == "" {
				t.Fatalf("instruction is empty")
			}
			if !strings.Contains(got, tc.wantHex) {
				t.Fatalf("instruction missing hex %q: %s", tc.wantHex, got)
			}
			if !strings.Contains(got, tc.wantOutfit) {
				t.Fatalf("instruction missing outfit %q: %s", tc.wantOutfit, got)
			}
		})
	}
}

func TestBuildInstructionBeautificationClauses(t *testing.T) {
	on := BuildInstruction(PhotoOptions{BackgroundColor: "blue", Outfit: "male-suit", EnableBeautification: true})
	if !strings.Contains(on, "retouching") {
		t.Fatalf("enabled instruction missing retouching clause: %s", on)
	}
	if strings.Contains(on, "Do not apply any beautification") {
		t.Fatalf("enabled instruction must not carry the disabling clause: %s", on)
	}

	off := BuildInstruction(PhotoOptions{BackgroundColor: "blue", Outfit: "male-suit", EnableBeautification: false})
	if !strings.Contains(off, "Do not apply any beautification") {
		t.Fatalf("disabled instruction must carry an explicit negative clause: %s", off)
	}
	if strings.Contains(off, "retouching") {
		t.Fatalf("disabled instruction must not carry the retouching clause: %s", off)
	}
}

func TestBuildInstructionDeterministic(t *testing.T) {
	opts := PhotoOptions{BackgroundColor: "gray", Outfit: "female-suit", EnableBeautification: false}
	first := BuildInstruction(opts)
	second := BuildInstruction(opts)
	if first != second {
		t.Fatalf("instructions differ:\n%s\n%s", first, second)
	}
	for _, fixed := range []string{"professional ID photo", "head and shoulders", "exactly as they appear"} {
		if !strings.Contains(first, fixed) {
			t.Fatalf("instruction missing boilerplate %q: %s", fixed, first)
		}
	}
}
