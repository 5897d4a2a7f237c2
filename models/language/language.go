package language

// Language identifies one of the site's display languages. Every localized
// column on a model has a matching accessor branch; unknown codes fall back
// to Korean, the authoring language.
type Language string

const (
	Korean     Language = "ko"
	English    Language = "en"
	Japanese   Language = "ja"
	Chinese    Language = "zh"
	Thai       Language = "th"
	Vietnamese Language = "vi"
)

// Parse normalizes a raw language code from a query parameter. Anything
// unrecognized resolves to Korean.
func Parse(code string) Language {
	switch Language(code) {
	case Korean, English, Japanese, Chinese, Thai, Vietnamese:
		return Language(code)
	default:
		return Korean
	}
}
