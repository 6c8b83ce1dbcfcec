package expansion

// ValidateTitle reports whether title is acceptable given the raw user inputs.
// A title is rejected when its normalized form equals a normalized input or
// differs from it only by a trailing "s".
func ValidateTitle(title string, rawInputs []string) bool {
	t := NormalizeTerm(title)
	if t == "" {
		return false
	}
	for _, raw := range rawInputs {
		if TitleMatchesInput(title, raw) {
			return false
		}
	}
	return true
}

// TitleMatchesInput reports whether title echoes input (exactly or by plural).
func TitleMatchesInput(title, input string) bool {
	t, in := NormalizeTerm(title), NormalizeTerm(input)
	if t == "" || in == "" {
		return false
	}
	return t == in || t == in+"s" || t+"s" == in
}
