package model

import (
	"regexp"
	"unicode/utf8"
)

// Quote text allows the character set of the original add-quote form:
// letters (latin and cyrillic), digits, basic punctuation, and spaces.
var quoteTextRe = regexp.MustCompile(`^[a-zA-Z0-9а-яА-ЯіІґҐїЇєЄ!.,;:?()=+\-_ ]+$`)

// ValidateQuoteText checks quote text length and character set.
func ValidateQuoteText(text string) error {
	length := utf8.RuneCountInString(text)
	if length < 3 || length > 500 || !quoteTextRe.MatchString(text) {
		return ErrInvalidQuoteText
	}
	return nil
}
