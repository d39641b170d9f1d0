package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weiwangfds/notestore/internal/i18n"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want int
	}{
		{ErrMissingFields, http.StatusBadRequest},
		{ErrInvalidNoteName, http.StatusBadRequest},
		{ErrNoteAlreadyExists, http.StatusBadRequest},
		{ErrNoteNotFound, http.StatusNotFound},
		{ErrNoteWriteFailed, http.StatusInternalServerError},
		{ErrNoteListFailed, http.StatusInternalServerError},
		{ErrInternalServer, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, New(tt.code, "").HTTPStatus(), "code %d", tt.code)
	}
}

func TestWrapAndUnwrap(t *testing.T) {
	cause := stderrors.New("disk full")
	err := fmt.Errorf("update: %w", Wrap(ErrNoteWriteFailed, cause))

	appErr, ok := GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, ErrNoteWriteFailed, appErr.Code)
	assert.Equal(t, "disk full", appErr.Details)
	assert.ErrorIs(t, err, cause)
	assert.True(t, IsCode(err, ErrNoteWriteFailed))
	assert.False(t, IsCode(err, ErrNoteNotFound))
	assert.False(t, IsCode(cause, ErrNoteWriteFailed))
}

func TestLocalizedMessage(t *testing.T) {
	err := New(ErrNoteNotFound, "")
	assert.Equal(t, "Not found", err.LocalizedMessage(i18n.LangEnUS))
	assert.Equal(t, "未找到", err.LocalizedMessage(i18n.LangZhCN))
	assert.Equal(t, "Not found", err.LocalizedMessage("fr-FR"))

	assert.Equal(t, "Missing note_name or note", GetErrorMessageWithLang(ErrMissingFields, i18n.LangEnUS))
	assert.Equal(t, "Unknown error", GetErrorMessageWithLang(ErrorCode(9999), i18n.LangEnUS))
}
