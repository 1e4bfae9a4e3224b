//go:build unit

package dependencies

import (
	"testing"

	"github.com/lerenn/adogh/pkg/config"
	"github.com/lerenn/adogh/pkg/forge"
	"github.com/lerenn/adogh/pkg/fs"
	"github.com/lerenn/adogh/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDependencies_New_Defaults(t *testing.T) {
	deps := New()

	assert.NotNil(t, deps.FS)
	assert.NotNil(t, deps.Logger)
	assert.NotNil(t, deps.Prompt)
	assert.NotNil(t, deps.HookManager)
	assert.NotNil(t, deps.Checker)
	assert.NotNil(t, deps.Display)
	assert.NotNil(t, deps.Opener)

	// Config needs a path and the verifier is optional
	assert.Nil(t, deps.Config)
	assert.Nil(t, deps.Verifier)

	err := deps.Validate()
	assert.ErrorIs(t, err, ErrConfigMissing)
}

func TestDependencies_Validate(t *testing.T) {
	newComplete := func() *Dependencies {
		return New().WithConfig(config.NewManager(fs.NewFS(), "config.yaml"))
	}

	testCases := []struct {
		name     string
		setup    func() *Dependencies
		expected error
	}{
		{
			name:  "complete",
			setup: newComplete,
		},
		{
			name: "verifier is optional",
			setup: func() *Dependencies {
				return newComplete().WithVerifier(nil)
			},
		},
		{
			name: "FS missing",
			setup: func() *Dependencies {
				return newComplete().WithFS(nil)
			},
			expected: ErrFSMissing,
		},
		{
			name: "logger missing",
			setup: func() *Dependencies {
				return newComplete().WithLogger(nil)
			},
			expected: ErrLoggerMissing,
		},
		{
			name: "prompt missing",
			setup: func() *Dependencies {
				return newComplete().WithPrompt(nil)
			},
			expected: ErrPromptMissing,
		},
		{
			name: "hook manager missing",
			setup: func() *Dependencies {
				return newComplete().WithHookManager(nil)
			},
			expected: ErrHookManagerMissing,
		},
		{
			name: "checker missing",
			setup: func() *Dependencies {
				return newComplete().WithChecker(nil)
			},
			expected: ErrCheckerMissing,
		},
		{
			name: "display missing",
			setup: func() *Dependencies {
				return newComplete().WithDisplay(nil)
			},
			expected: ErrDisplayMissing,
		},
		{
			name: "opener missing",
			setup: func() *Dependencies {
				return newComplete().WithOpener(nil)
			},
			expected: ErrOpenerMissing,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.setup().Validate()
			if tc.expected == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.expected)
		})
	}
}

func TestDependencies_ValidationOrder(t *testing.T) {
	deps := &Dependencies{}

	err := deps.Validate()
	assert.ErrorIs(t, err, ErrFSMissing)
	assert.NotErrorIs(t, err, ErrConfigMissing)
}

func TestDependencies_WithChaining(t *testing.T) {
	l := logger.NewNoopLogger()
	verifier := forge.NewManager(l)

	deps := New().WithLogger(l).WithVerifier(verifier)

	assert.Same(t, verifier, deps.Verifier)
}
