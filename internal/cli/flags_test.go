package cli

import (
	stderrors "errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	floerrors "github.com/mrz1836/go-flopen/internal/errors"
)

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "nil error is success",
			err:  nil,
			want: ExitSuccess,
		},
		{
			name: "carried exit code wins",
			err:  &floerrors.CommandExitError{Code: 7},
			want: 7,
		},
		{
			name: "conflict code travels through wrapping",
			err:  floerrors.Wrap(&floerrors.CommandExitError{Code: 75, Err: floerrors.ErrLockHeld}, "acquiring"),
			want: 75,
		},
		{
			name: "missing command is invalid input",
			err:  floerrors.ErrMissingCommand,
			want: ExitInvalidInput,
		},
		{
			name: "cobra unknown flag is invalid input",
			err:  stderrors.New(`unknown flag: --bogus`),
			want: ExitInvalidInput,
		},
		{
			name: "cobra arg count is invalid input",
			err:  stderrors.New("requires at least 1 arg(s), only received 0"),
			want: ExitInvalidInput,
		},
		{
			name: "mutually exclusive flags are invalid input",
			err:  stderrors.New("if any flags in the group [verbose quiet] are set none of the others can be"),
			want: ExitInvalidInput,
		},
		{
			name: "anything else is a general error",
			err:  stderrors.New("disk on fire"),
			want: ExitError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExitCodeForError(tc.err))
		})
	}
}

func TestBindGlobalFlags(t *testing.T) {
	t.Run("environment overrides unset flags", func(t *testing.T) {
		t.Setenv("FLOPEN_VERBOSE", "true")

		flags := &GlobalFlags{}
		cmd := &cobra.Command{Use: "flopen"}
		AddGlobalFlags(cmd, flags)

		require.NoError(t, BindGlobalFlags(viper.New(), cmd, flags))
		assert.True(t, flags.Verbose)
		assert.False(t, flags.Quiet)
	})

	t.Run("flag values survive binding", func(t *testing.T) {
		flags := &GlobalFlags{}
		cmd := &cobra.Command{Use: "flopen"}
		AddGlobalFlags(cmd, flags)
		require.NoError(t, cmd.PersistentFlags().Set("quiet", "true"))

		require.NoError(t, BindGlobalFlags(viper.New(), cmd, flags))
		assert.True(t, flags.Quiet)
	})
}
