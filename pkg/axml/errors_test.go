package axml

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"Nil", nil, ExitSuccess},
		{"Truncated", ErrTruncatedInput, ExitTruncatedInput},
		{"Unsupported", ErrUnsupportedFeature, ExitUnsupportedFeature},
		{"Incomplete", ErrIncompleteDocument, ExitIncompleteDocument},
		{"InvalidFormat", ErrInvalidFormat, ExitInvalidFormat},
		{"MissingChunk", ErrMissingChunk, ExitInvalidFormat},
		{"StringNotFound", ErrStringNotFound, ExitInvalidFormat},
		{"NamespaceNotFound", ErrNamespaceNotFound, ExitInvalidFormat},
		{"InvalidEncoding", ErrInvalidEncoding, ExitInvalidFormat},
		{"Unclassified", errors.New("disk on fire"), ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeForError(tt.err))
		})
	}
}

func TestExitCodeForError_Wrapped(t *testing.T) {
	err := fmt.Errorf("decoding %s: %w", "app.xml",
		fmt.Errorf("%w: need 4 bytes", ErrTruncatedInput))
	assert.Equal(t, ExitTruncatedInput, ExitCodeForError(err))
}
