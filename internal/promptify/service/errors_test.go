package service

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyProviderError(t *testing.T) {
	tests := []struct {
		name    string
		message string
		kind    ErrorKind
		status  int
		userMsg string
	}{
		{
			name:    "api key",
			message: "API key not valid. Please pass a valid API key.",
			kind:    InvalidCredential,
			status:  http.StatusUnauthorized,
			userMsg: "Invalid API key. Please check your Gemini API key.",
		},
		{
			name:    "not found",
			message: "models/gemini-0 is not found for API version v1beta",
			kind:    ModelUnavailable,
			status:  http.StatusNotFound,
			userMsg: "Model not available. Please try again later.",
		},
		{
			name:    "404",
			message: "provider returned status 404",
			kind:    ModelUnavailable,
			status:  http.StatusNotFound,
			userMsg: "Model not available. Please try again later.",
		},
		{
			name:    "api key checked first",
			message: "404: API key not found",
			kind:    InvalidCredential,
			status:  http.StatusUnauthorized,
			userMsg: "Invalid API key. Please check your Gemini API key.",
		},
		{
			name:    "case sensitive",
			message: "api key rejected",
			kind:    GenerationFailed,
			status:  http.StatusInternalServerError,
			userMsg: "Failed to generate content. Please try again.",
		},
		{
			name:    "anything else",
			message: "quota exceeded",
			kind:    GenerationFailed,
			status:  http.StatusInternalServerError,
			userMsg: "Failed to generate content. Please try again.",
		},
	}

	for _, tt := range tests {
		t.Run(
			tt.name, func(t *testing.T) {
				cause := errors.New(tt.message)
				got := ClassifyProviderError(cause)

				assert.Equal(t, tt.kind, got.Kind)
				assert.Equal(t, tt.status, got.Status)
				assert.Equal(t, tt.userMsg, got.Message)
				assert.ErrorIs(t, got, cause)
			},
		)
	}
}

func TestClassifyNilError(t *testing.T) {
	got := ClassifyProviderError(nil)
	assert.Equal(t, GenerationFailed, got.Kind)
	assert.Equal(t, string(GenerationFailed)+": Failed to generate content. Please try again.", got.Error())
}
