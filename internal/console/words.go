package console

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/hangman/internal/apperror"
	"github.com/rocketscienceinc/hangman/internal/entity"
)

var errBack = errors.New("back")

func (that *Console) handleWords(ctx context.Context) error {
	handlers := map[string]func(context.Context) error{
		"l":    that.listWords,
		"a":    that.addWord,
		"e":    that.editWord,
		"d":    that.deleteWord,
		"b":    func(context.Context) error { return errBack },
		"back": func(context.Context) error { return errBack },
	}

	if err := that.listWords(ctx); err != nil {
		return err
	}

	for {
		that.printf("\n  l) List  a) Add  e) Edit  d) Delete  b) Back\n")

		choice, err := that.prompt(ctx, "words> ")
		if err != nil {
			return err
		}

		handler, ok := handlers[strings.ToLower(choice)]
		if !ok {
			that.printf("Unknown option %q\n", choice)
			continue
		}

		err = handler(ctx)
		switch {
		case errors.Is(err, errBack):
			return nil
		case isValidation(err):
			that.printf("Invalid entry: %v\n", err)
		case err != nil:
			return err
		}
	}
}

func (that *Console) listWords(ctx context.Context) error {
	words, err := that.catalog.Words(ctx)
	if err != nil {
		return fmt.Errorf("failed to load words: %w", err)
	}

	if len(words) == 0 {
		that.printf("No words yet.\n")
		return nil
	}

	that.printf("%-10s %-20s %-15s %s\n", "ID", "Word", "Category", "Hint")
	for _, word := range words {
		that.printf("%-10s %-20s %-15s %s\n", word.ID, word.Word, word.Category, word.Hint)
	}

	return nil
}

func (that *Console) addWord(ctx context.Context) error {
	entry, err := that.wordForm(ctx, entity.WordEntry{})
	if err != nil {
		return err
	}

	added, err := that.catalog.AddWord(ctx, entry)
	if err != nil {
		return err
	}

	that.printf("Added %q (%s).\n", added.Word, added.ID)

	return nil
}

func (that *Console) editWord(ctx context.Context) error {
	current, err := that.pickWord(ctx)
	if err != nil || current == nil {
		return err
	}

	entry, err := that.wordForm(ctx, *current)
	if err != nil {
		return err
	}

	updated, err := that.catalog.UpdateWord(ctx, *current, entry)
	if err != nil {
		return err
	}

	that.printf("Updated %q.\n", updated.Word)

	return nil
}

func (that *Console) deleteWord(ctx context.Context) error {
	current, err := that.pickWord(ctx)
	if err != nil || current == nil {
		return err
	}

	sure, err := that.confirm(ctx, fmt.Sprintf("Delete %q?", current.Word))
	if err != nil || !sure {
		return err
	}

	if err = that.catalog.DeleteWord(ctx, current.ID); err != nil {
		return err
	}

	that.printf("Deleted %q.\n", current.Word)

	return nil
}

// pickWord returns nil when no word matches the id.
func (that *Console) pickWord(ctx context.Context) (*entity.WordEntry, error) {
	id, err := that.promptRequired(ctx, "ID: ")
	if err != nil {
		return nil, err
	}

	words, err := that.catalog.Words(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load words: %w", err)
	}

	for _, word := range words {
		if word.ID == id {
			return &word, nil
		}
	}

	that.printf("No word with id %q.\n", id)

	return nil, nil
}

// wordForm asks for every field. In edit mode an empty answer keeps the current value.
func (that *Console) wordForm(ctx context.Context, current entity.WordEntry) (entity.WordEntry, error) {
	entry := current

	fields := []struct {
		label string
		value *string
	}{
		{label: "Word", value: &entry.Word},
		{label: "Category", value: &entry.Category},
		{label: "Hint", value: &entry.Hint},
	}

	for _, field := range fields {
		label := field.label + ": "
		if *field.value != "" {
			label = fmt.Sprintf("%s [%s]: ", field.label, *field.value)
		}

		answer, err := that.prompt(ctx, label)
		if err != nil {
			return entity.WordEntry{}, err
		}

		if answer != "" {
			*field.value = answer
		}
	}

	return entry, nil
}

func isValidation(err error) bool {
	return errors.Is(err, apperror.ErrInvalidWord) ||
		errors.Is(err, apperror.ErrInvalidCategory) ||
		errors.Is(err, apperror.ErrInvalidHint) ||
		errors.Is(err, apperror.ErrWordExists)
}
