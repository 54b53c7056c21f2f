package entity

import "strings"

// Status is the state of a single round.
type Status string

const (
	StatusPlaying               Status = "playing"
	StatusSubmittingScore       Status = "submitting_score"
	StatusWon                   Status = "won"
	StatusScoreSubmissionFailed Status = "score_submission_failed"
)

const (
	BlankMarker = '_'
	Space       = ' '
)

// Round represents the state of one play-through of a secret word.
type Round struct {
	SecretWord      string `json:"secret_word"`
	Revealed        []rune `json:"revealed"`
	GuessedLetters  []rune `json:"guessed_letters"`
	AttemptsCounter int    `json:"attempts_counter"`
	FailedAttempts  int    `json:"failed_attempts"`
	Status          Status `json:"status"`
}

// NewRound - creates a round for the word with every letter hidden and every space revealed.
func NewRound(word string) Round {
	secret := strings.ToLower(word)
	runes := []rune(secret)

	revealed := make([]rune, len(runes))
	for i, r := range runes {
		if r == Space {
			revealed[i] = Space
			continue
		}
		revealed[i] = BlankMarker
	}

	return Round{
		SecretWord:     secret,
		Revealed:       revealed,
		GuessedLetters: []rune{},
		Status:         StatusPlaying,
	}
}

// Clone returns a deep copy, so callers can change slices without touching the source round.
func (that Round) Clone() Round {
	clone := that
	clone.Revealed = append([]rune(nil), that.Revealed...)
	clone.GuessedLetters = append([]rune(nil), that.GuessedLetters...)

	return clone
}

func (that Round) IsPlaying() bool {
	return that.Status == StatusPlaying
}

func (that Round) IsSubmittingScore() bool {
	return that.Status == StatusSubmittingScore
}

func (that Round) IsWon() bool {
	return that.Status == StatusWon
}

func (that Round) IsSubmissionFailed() bool {
	return that.Status == StatusScoreSubmissionFailed
}

// HasGuessed reports whether the letter was already attempted.
func (that Round) HasGuessed(letter rune) bool {
	for _, guessed := range that.GuessedLetters {
		if guessed == letter {
			return true
		}
	}

	return false
}

// BlankCount - number of positions that are still hidden.
func (that Round) BlankCount() int {
	count := 0
	for _, r := range that.Revealed {
		if r == BlankMarker {
			count++
		}
	}

	return count
}

// WordLength counts runes, spaces included, as the backend expects.
func (that Round) WordLength() int {
	return len([]rune(that.SecretWord))
}

func (that Round) RevealedString() string {
	return string(that.Revealed)
}
