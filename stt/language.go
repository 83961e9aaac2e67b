package stt

import "strings"

// LanguageCode derives the ISO-639-1 code a Whisper endpoint expects from a
// host locale tag: the substring before the first separator, lowercased.
// "ru-RU" -> "ru", "pt_BR" -> "pt", "en" -> "en". An empty tag yields an
// empty string, meaning no language hint is sent.
func LanguageCode(locale string) string {
	if locale == "" {
		return ""
	}
	code := locale
	if idx := strings.IndexAny(code, "-_"); idx >= 0 {
		code = code[:idx]
	}
	return strings.ToLower(code)
}
