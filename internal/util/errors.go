package util

import "errors"

var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrBadRequest         = errors.New("missing questionId or selected answer")
	ErrNoQuestions        = errors.New("no questions available")
	ErrQuestionNotFound   = errors.New("question not found")
	ErrEmailRegistered    = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidQuestion    = errors.New("invalid question")
)
