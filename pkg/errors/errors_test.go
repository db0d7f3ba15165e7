package errors_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/agentstation/voicemap/pkg/errors"
)

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := pkgerrors.NewValidationError("languages[3].language", nil, "missing language tag")
		assert.Equal(t, "invalid languages[3].language: missing language tag", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{Message: "catalog is empty"}
		assert.Equal(t, "invalid input: catalog is empty", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})

	t.Run("wrapped", func(t *testing.T) {
		err := pkgerrors.WrapValidation("pattern", errors.New("missing closing ]"))
		assert.Equal(t, "invalid pattern: missing closing ]", err.Error())
		assert.True(t, pkgerrors.IsValidationError(fmt.Errorf("include: %w", err)))
	})
}

func TestUnresolvedTagError(t *testing.T) {
	tests := []struct {
		name string
		err  *pkgerrors.UnresolvedTagError
		want string
	}{
		{
			name: "subtag equals code",
			err:  pkgerrors.NewUnresolvedTagError("xx-Voice", "xx", "xx"),
			want: "no language found for voice xx-Voice (code xx)",
		},
		{
			name: "subtag differs",
			err:  pkgerrors.NewUnresolvedTagError("xx-YY-Standard-A", "xx-YY", "xx"),
			want: "no language found for voice xx-YY-Standard-A (code xx-YY, subtag xx)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
			assert.True(t, pkgerrors.IsUnresolvedTag(tt.err))
			assert.False(t, pkgerrors.IsValidationError(tt.err))
		})
	}

	joined := pkgerrors.Join(pkgerrors.NewUnresolvedTagError("a", "xx", "xx"), pkgerrors.NewUnresolvedTagError("b", "yy", "yy"))
	assert.True(t, pkgerrors.IsUnresolvedTag(joined))
}

func TestParseError(t *testing.T) {
	base := errors.New("unexpected end of JSON input")

	t.Run("with file", func(t *testing.T) {
		err := pkgerrors.NewParseError("json", "voices.json", "truncated", base)
		assert.Equal(t, "cannot parse json voices.json: truncated", err.Error())
		assert.ErrorIs(t, err, base)
		assert.True(t, pkgerrors.IsValidationError(err))
	})

	t.Run("without file", func(t *testing.T) {
		err := pkgerrors.NewParseError("toml", "", "bad key", nil)
		assert.Equal(t, "cannot parse toml: bad key", err.Error())
	})

	t.Run("json syntax offset", func(t *testing.T) {
		var v []any
		jsonErr := json.Unmarshal([]byte(`[1, 2,]`), &v)
		require.Error(t, jsonErr)

		err := pkgerrors.WrapParse("json", "languages.json", jsonErr)
		var pe *pkgerrors.ParseError
		require.ErrorAs(t, err, &pe)
		assert.Positive(t, pe.Offset)
		assert.Contains(t, err.Error(), "cannot parse json languages.json at byte")
	})

	t.Run("json type offset", func(t *testing.T) {
		var v struct {
			Name string `json:"name"`
		}
		jsonErr := json.Unmarshal([]byte(`{"name": 7}`), &v)
		require.Error(t, jsonErr)

		var pe *pkgerrors.ParseError
		require.ErrorAs(t, pkgerrors.WrapParse("json", "voices.json", jsonErr), &pe)
		assert.Positive(t, pe.Offset)
	})
}

func TestIOError(t *testing.T) {
	err := pkgerrors.WrapIO("read", "/tmp/voices.json", fs.ErrNotExist)

	var ioErr *pkgerrors.IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "read", ioErr.Operation)
	assert.Equal(t, "/tmp/voices.json", ioErr.Path)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Equal(t, "cannot read /tmp/voices.json: file does not exist", err.Error())
	assert.False(t, pkgerrors.IsValidationError(err))
}

func TestConfigError(t *testing.T) {
	base := fmt.Errorf("permission denied")

	err := pkgerrors.NewConfigError("config", "cannot read .voicemap.yaml", base)
	assert.Equal(t, "configuration error in config: cannot read .voicemap.yaml: permission denied", err.Error())
	assert.ErrorIs(t, err, base)
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, pkgerrors.WrapIO("read", "x", nil))
	assert.NoError(t, pkgerrors.WrapParse("json", "x", nil))
	assert.NoError(t, pkgerrors.WrapValidation("x", nil))
}
