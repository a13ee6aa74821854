package models

// Language is a supported UI language code.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageHindi   Language = "hi"
	LanguageKannada Language = "kn"
)

// DefaultLanguage is used when no preference is stored.
const DefaultLanguage = LanguageEnglish

// Supported reports whether l is one of the shipped translations.
func (l Language) Supported() bool {
	switch l {
	case LanguageEnglish, LanguageHindi, LanguageKannada:
		return true
	}
	return false
}
