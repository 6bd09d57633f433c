package common

// IsIdent reports whether s is usable as a member or mixin name: a letter,
// underscore or dollar sign followed by letters, digits, underscores or
// dollar signs.
func IsIdent(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		if i == 0 {
			if !isLetter(r) && r != '_' && r != '$' {
				return false
			}
		} else {
			if !isLetter(r) && !isDigit(r) && r != '_' && r != '$' {
				return false
			}
		}
	}

	return true
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
