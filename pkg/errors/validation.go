package errors

// ValidateWord validates a single crossword answer word.
//
// The rules are intentionally strict: the layout engine compares letters
// byte-for-byte, so every word must consist of uppercase ASCII letters only.
// Normalization (case folding, trimming) is the caller's responsibility.
//
// Rules:
//   - Not empty, length >= 2 (a one-letter entry cannot form a run)
//   - Uppercase ASCII letters A-Z only
//   - Maximum length of 64 characters
func ValidateWord(word string) error {
	if word == "" {
		return New(ErrCodeInvalidWord, "word cannot be empty")
	}
	if len(word) < 2 {
		return New(ErrCodeInvalidWord, "word too short: %q (minimum 2 letters)", word)
	}
	if len(word) > 64 {
		return New(ErrCodeInvalidWord, "word too long: %q (maximum 64 letters)", word)
	}
	for i := 0; i < len(word); i++ {
		if word[i] < 'A' || word[i] > 'Z' {
			return New(ErrCodeInvalidWord, "word %q contains non-letter at position %d", word, i)
		}
	}
	return nil
}

// ValidateClue validates the free-text clue attached to a word.
// Clues are rendered into HTML (escaped by the template engine), so the only
// structural requirements are non-emptiness and a sane length bound.
func ValidateClue(clue string) error {
	if clue == "" {
		return New(ErrCodeInvalidBank, "clue cannot be empty")
	}
	if len(clue) > 512 {
		return New(ErrCodeInvalidBank, "clue too long (maximum 512 characters)")
	}
	return nil
}

// ValidateGridSize validates a requested grid dimension.
// Observed production sizes are 10 and 15; anything from 4 to 50 is accepted.
func ValidateGridSize(size int) error {
	if size < 4 {
		return New(ErrCodeInvalidSize, "grid size %d too small (minimum 4)", size)
	}
	if size > 50 {
		return New(ErrCodeInvalidSize, "grid size %d too large (maximum 50)", size)
	}
	return nil
}
