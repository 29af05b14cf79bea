// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and classification

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/dotlink/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "env_missing",
			code:    errors.ErrEnvMissing,
			message: "home directory not set",
			wantStr: "[ENV_MISSING] home directory not set",
		},
		{
			name:    "config_parse",
			code:    errors.ErrConfigParse,
			message: "bad shape",
			wantStr: "[CONFIG_PARSE] bad shape",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestWrap(t *testing.T) {
	base := stderrors.New("permission denied")

	err := errors.Wrapf(base, errors.ErrSymlinkCreate, "failed to link %s", "/home/u/.zshrc")
	require.NotNil(t, err)

	assert.Equal(t, "[SYMLINK_CREATE] failed to link /home/u/.zshrc: permission denied", err.Error())
	assert.True(t, stderrors.Is(err, base))
	assert.Nil(t, errors.Wrap(nil, errors.ErrSymlinkCreate, "nothing"))
}

func TestIsMatchesByCode(t *testing.T) {
	err := fmt.Errorf("outer: %w", errors.New(errors.ErrConfigLoad, "unreadable"))

	assert.True(t, stderrors.Is(err, errors.New(errors.ErrConfigLoad, "")))
	assert.False(t, stderrors.Is(err, errors.New(errors.ErrConfigParse, "")))
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	assert.Equal(t, errors.ErrConfigLoad, errors.GetErrorCode(err))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("plain")))
}

func TestCategory(t *testing.T) {
	tests := []struct {
		code errors.ErrorCode
		want errors.Kind
	}{
		{errors.ErrConfigNotFound, errors.KindConfiguration},
		{errors.ErrConfigLoad, errors.KindConfiguration},
		{errors.ErrConfigParse, errors.KindConfiguration},
		{errors.ErrSettings, errors.KindConfiguration},
		{errors.ErrEnvMissing, errors.KindEnvironment},
		{errors.ErrRootResolve, errors.KindFilesystem},
		{errors.ErrSymlinkCreate, errors.KindFilesystem},
		{errors.ErrUnknown, errors.KindUnknown},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, errors.Category(tt.code))
		})
	}

	assert.Equal(t, "EnvironmentError", errors.GetKind(errors.New(errors.ErrEnvMissing, "x")).String())
}

func TestDetails(t *testing.T) {
	err := errors.New(errors.ErrSymlinkCreate, "failed").
		WithDetail("dest", "/home/u/.vimrc").
		WithDetail("src", "/repo/vim/vimrc")

	details := errors.GetErrorDetails(fmt.Errorf("wrapped: %w", err))
	assert.Equal(t, "/home/u/.vimrc", details["dest"])
	assert.Equal(t, "/repo/vim/vimrc", details["src"])
	assert.Nil(t, errors.GetErrorDetails(stderrors.New("plain")))
}
