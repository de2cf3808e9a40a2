package imagegen

import "strings"

// BuildInstruction renders the generation instruction for an ID photo.
// The same options always yield the same text.
func BuildInstruction(opts PhotoOptions) string {
	parts := []string{
		"Turn this photo into a professional ID photo.",
		"Frame the head and shoulders with the subject centered and facing the camera directly, with even studio lighting and sharp focus.",
		"Keep the person's face, facial features, and expression exactly as they appear in the original photo.",
		"Replace the background with a solid " + BackgroundHex(opts.BackgroundColor) + " background.",
		"Dress the subject in " + OutfitPhrase(opts.Outfit) + ".",
	}
	if opts.EnableBeautification {
		parts = append(parts, "Apply light, natural retouching: subtly smooth the skin and remove temporary blemishes without changing the person's identity.")
	} else {
		parts = append(parts, "Do not apply any beautification, skin smoothing, blemish removal, or reshaping of facial features.")
	}
	return strings.Join(parts, " ")
}
