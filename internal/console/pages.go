package console

import (
	"context"
	"fmt"
)

const rules = `Rules
  A secret word is picked from the category you choose. Guess it one letter at a
  time or type the whole word. Every guess counts as an attempt.
  A letter that is not in the word is a miss. A wrong word costs one miss for every
  letter that is still hidden after its letters were tried.
  Type :hint to show or hide the hint. Using it lowers your score.
  Your time, misses, the hint and the word length make up your score.
  Type :exit to leave a round.
`

const about = `About
  Hangman is a word guessing game. Scores and words are kept by the game server,
  this client only talks to its HTTP API.
`

func (that *Console) handleLeaderboard(ctx context.Context) error {
	entries, err := that.leaderboard.Leaderboard(ctx)
	if err != nil {
		return fmt.Errorf("failed to load leaderboard: %w", err)
	}

	if len(entries) == 0 {
		that.printf("Nobody has scored yet.\n")
		return nil
	}

	that.printf("%-5s %-20s %s\n", "Rank", "Nickname", "Score")
	for i, entry := range entries {
		that.printf("%-5d %-20s %d\n", i+1, entry.Nickname, entry.Score)
	}

	return nil
}

func (that *Console) handleRules(context.Context) error {
	that.printf("%s", rules)

	return nil
}

func (that *Console) handleAbout(context.Context) error {
	that.printf("%s", about)

	return nil
}
