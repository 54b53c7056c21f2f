package hangman

import (
	"strings"
	"unicode"

	"github.com/rocketscienceinc/hangman/internal/entity"
)

// Verdict is the outcome of applying one guess.
type Verdict int

const (
	VerdictIgnored Verdict = iota
	VerdictContinue
	VerdictWon
)

// ApplyLetterGuess - applies a single letter. Guessing a letter twice or guessing after
// the round left the playing state returns the round untouched.
func ApplyLetterGuess(round entity.Round, letter rune) (entity.Round, Verdict) {
	if !round.IsPlaying() || letter == entity.Space || round.HasGuessed(letter) {
		return round, VerdictIgnored
	}

	next := round.Clone()
	next.GuessedLetters = append(next.GuessedLetters, letter)
	next.AttemptsCounter++

	if !strings.ContainsRune(next.SecretWord, letter) {
		next.FailedAttempts++
	}

	reveal(&next)

	return next, settle(&next)
}

// ApplyWordGuess - applies a full-word guess. The candidate must already be normalized.
//
// A wrong word folds its letters into the guessed set and then costs one failed attempt
// per position still hidden after the reveal, not one per wrong letter.
func ApplyWordGuess(round entity.Round, candidate string) (entity.Round, Verdict) {
	if !round.IsPlaying() || candidate == "" {
		return round, VerdictIgnored
	}

	next := round.Clone()
	next.AttemptsCounter++

	if candidate == next.SecretWord {
		copy(next.Revealed, []rune(next.SecretWord))

		return next, settle(&next)
	}

	for _, letter := range distinctLetters(candidate) {
		if !next.HasGuessed(letter) {
			next.GuessedLetters = append(next.GuessedLetters, letter)
		}
	}

	reveal(&next)
	next.FailedAttempts += next.BlankCount()

	return next, settle(&next)
}

// IsSolved reports whether no blank marker is left.
func IsSolved(round entity.Round) bool {
	return round.BlankCount() == 0
}

// NormalizeWord trims, lower-cases and drops everything but letters and spaces.
func NormalizeWord(input string) string {
	var builder strings.Builder
	for _, r := range strings.ToLower(input) {
		if unicode.IsLetter(r) || r == entity.Space {
			builder.WriteRune(r)
		}
	}

	return strings.TrimSpace(builder.String())
}

// NormalizeLetter returns the lower-case letter of a one-letter input.
func NormalizeLetter(input string) (rune, bool) {
	runes := []rune(strings.ToLower(strings.TrimSpace(input)))
	if len(runes) != 1 || !unicode.IsLetter(runes[0]) {
		return 0, false
	}

	return runes[0], true
}

func reveal(round *entity.Round) {
	for i, r := range []rune(round.SecretWord) {
		if r == entity.Space || round.HasGuessed(r) {
			round.Revealed[i] = r
		}
	}
}

func settle(round *entity.Round) Verdict {
	if IsSolved(*round) {
		round.Status = entity.StatusSubmittingScore
		return VerdictWon
	}

	return VerdictContinue
}

func distinctLetters(word string) []rune {
	seen := make(map[rune]struct{})
	letters := make([]rune, 0, len(word))

	for _, r := range word {
		if r == entity.Space {
			continue
		}
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		letters = append(letters, r)
	}

	return letters
}
