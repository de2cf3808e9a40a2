package imagegen

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// DefaultBackgroundHex is applied when the background color is
	// unrecognized or empty.
	DefaultBackgroundHex = "#FFFFFF"
	// DefaultOutfitPhrase is applied when the outfit is unrecognized, empty,
	// or the explicit "other" choice.
	DefaultOutfitPhrase = "neat professional business attire"
)

var backgroundHex = map[string]string{
	"blue":  "#438EDB",
	"white": "#FFFFFF",
	"gray":  "#D9D9D9",
}

var outfitPhrase = map[string]string{
	"male-suit":   "a dark tailored business suit with a white dress shirt and a tie",
	"female-suit": "a dark tailored blazer over a white blouse",
}

// BackgroundHex resolves a background color option to its hex code.
func BackgroundHex(option string) string {
	if hex, ok := backgroundHex[strings.ToLower(strings.TrimSpace(option))]; ok {
		return hex
	}
	return DefaultBackgroundHex
}

// OutfitPhrase resolves an outfit option to its clothing description.
func OutfitPhrase(option string) string {
	if phrase, ok := outfitPhrase[strings.ToLower(strings.TrimSpace(option))]; ok {
		return phrase
	}
	return DefaultOutfitPhrase
}

// BackgroundColors lists the recognized background color options, sorted.
func BackgroundColors() []string {
	return sortedKeys(backgroundHex)
}

// Outfits lists the recognized outfit options, sorted.
func Outfits() []string {
	return sortedKeys(outfitPhrase)
}

// DisplayName renders an option value as a human-readable label, e.g.
// "male-suit" becomes "Male Suit".
func DisplayName(option string) string {
	cleaned := strings.ReplaceAll(strings.TrimSpace(option), "-", " ")
	if cleaned == "" {
		return "Default"
	}
	return cases.Title(language.English).String(cleaned)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
