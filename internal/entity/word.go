package entity

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/rocketscienceinc/hangman/internal/apperror"
)

var lettersAndSpaces = regexp.MustCompile(`^[a-zA-Z\s]+$`)

// WordEntry is a word managed through /wordEntry.
type WordEntry struct {
	ID       string `json:"id,omitempty"`
	Word     string `json:"word"`
	Category string `json:"category"`
	Hint     string `json:"hint"`
}

// Validate checks the entry against the known words. Words are unique case-insensitively;
// in edit mode current holds the word being edited and keeping it unchanged is allowed.
func (that WordEntry) Validate(known []string, current string) error {
	if err := ValidateWord(that.Word, known, current); err != nil {
		return err
	}

	if err := ValidateCategory(that.Category); err != nil {
		return err
	}

	return ValidateHint(that.Hint)
}

func ValidateWord(value string, known []string, current string) error {
	if current != "" && value == current {
		return nil
	}

	if !lettersAndSpaces.MatchString(value) {
		return apperror.ErrInvalidWord
	}

	for _, word := range known {
		if strings.EqualFold(word, value) {
			return fmt.Errorf("%w: %s", apperror.ErrWordExists, value)
		}
	}

	return nil
}

func ValidateCategory(value string) error {
	if !lettersAndSpaces.MatchString(value) {
		return apperror.ErrInvalidCategory
	}

	return nil
}

func ValidateHint(value string) error {
	if strings.TrimSpace(value) == "" {
		return apperror.ErrInvalidHint
	}

	return nil
}

// SessionInput is what a round is entered with.
type SessionInput struct {
	Word     string
	Category string
	Hint     string
	Nickname string
}

// Validate - a session needs at least a word and a nickname.
func (that SessionInput) Validate() error {
	if strings.TrimSpace(that.Word) == "" || strings.TrimSpace(that.Nickname) == "" {
		return apperror.ErrInvalidSession
	}

	return nil
}
