package service

import (
	"net/http"
	"strings"
)

type ErrorKind string

const (
	MissingInput      ErrorKind = "MISSING_INPUT"
	Misconfiguration  ErrorKind = "MISCONFIGURATION"
	InvalidCredential ErrorKind = "INVALID_CREDENTIAL"
	ModelUnavailable  ErrorKind = "MODEL_UNAVAILABLE"
	GenerationFailed  ErrorKind = "GENERATION_FAILED"
)

// GenerationError is the failure variant of a generation: a kind, the HTTP
// status it surfaces as, and the message shown to the user.
type GenerationError struct {
	Kind    ErrorKind
	Status  int
	Message string
	Err     error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return string(e.Kind) + ": " + e.Message + ": " + e.Err.Error()
	}
	return string(e.Kind) + ": " + e.Message
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

func newError(kind ErrorKind, cause error) *GenerationError {
	e := &GenerationError{Kind: kind, Err: cause}
	switch kind {
	case MissingInput:
		e.Status, e.Message = http.StatusBadRequest, "Prompt is required"
	case Misconfiguration:
		e.Status, e.Message = http.StatusInternalServerError, "Gemini API key is not configured"
	case InvalidCredential:
		e.Status, e.Message = http.StatusUnauthorized, "Invalid API key. Please check your Gemini API key."
	case ModelUnavailable:
		e.Status, e.Message = http.StatusNotFound, "Model not available. Please try again later."
	default:
		e.Kind = GenerationFailed
		e.Status, e.Message = http.StatusInternalServerError, "Failed to generate content. Please try again."
	}
	return e
}

// Unexpected wraps a failure that did not come from the provider.
func Unexpected(err error) *GenerationError {
	return newError(GenerationFailed, err)
}

// ClassifyProviderError maps a provider failure onto the error taxonomy.
// The provider exposes no stable error codes, so this matches on message
// text; all matching rules live here.
func ClassifyProviderError(err error) *GenerationError {
	msg := ""
	if err != nil {
		msg = err.Error()
	}

	switch {
	case strings.Contains(msg, "API key"):
		return newError(InvalidCredential, err)
	case strings.Contains(msg, "not found"), strings.Contains(msg, "404"):
		return newError(ModelUnavailable, err)
	default:
		return newError(GenerationFailed, err)
	}
}
