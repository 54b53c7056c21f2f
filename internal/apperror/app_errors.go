package apperror

import "errors"

var (
	ErrInvalidSession  = errors.New("invalid session: word and nickname are required")
	ErrEmptyResponse   = errors.New("empty response from server")
	ErrWordNotFound    = errors.New("no words found in category")
	ErrWordExists      = errors.New("word already exists")
	ErrInvalidWord     = errors.New("word must contain letters and spaces only")
	ErrInvalidCategory = errors.New("category must contain letters and spaces only")
	ErrInvalidHint     = errors.New("hint cannot be empty")
	ErrInvalidNickname = errors.New("nickname cannot be empty")
	ErrCacheMiss       = errors.New("cache miss")
)
