//go:build unit

package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/lerenn/adogh/pkg/config"
	configmocks "github.com/lerenn/adogh/pkg/config/mocks"
	"github.com/lerenn/adogh/pkg/prompt"
	promptmocks "github.com/lerenn/adogh/pkg/prompt/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRunInit_AllFlagsSkipPrompts(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := configmocks.NewMockManager(ctrl)
	p := promptmocks.NewMockPrompter(ctrl)

	manager.EXPECT().GetConfig().Return(config.Config{}, config.ErrConfigNotInitialized)
	manager.EXPECT().DefaultConfig().Return(config.Config{PullRequestTarget: "pulls"})
	manager.EXPECT().SaveConfig(config.Config{
		ADOOrg:            "acme",
		GitHubOrg:         "gh-org",
		PullRequestTarget: "closed",
	}).Return(nil)
	manager.EXPECT().GetConfigPath().Return("/tmp/adogh/config.yaml")

	out := &bytes.Buffer{}
	err := runInit(manager, p, initOpts{ADOOrg: "acme", GitHubOrg: "gh-org", PullRequestTarget: "closed"}, out)
	require.NoError(t, err)
	assert.Equal(t, "Settings saved to /tmp/adogh/config.yaml\n", out.String())
}

func TestRunInit_PromptsForMissingValues(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := configmocks.NewMockManager(ctrl)
	p := promptmocks.NewMockPrompter(ctrl)

	current := config.Config{ADOOrg: "acme", GitHubOrg: "old-gh", PullRequestTarget: "pulls"}
	manager.EXPECT().GetConfig().Return(current, nil)
	p.EXPECT().PromptForOrganization("Azure DevOps organization", "acme").Return("acme", nil)
	p.EXPECT().PromptForOrganization("GitHub organization", "old-gh").Return("new-gh", nil)
	p.EXPECT().PromptSelect(gomock.Any(), pullRequestTargetChoices).
		Return(prompt.Choice{Value: "closed"}, nil)
	p.EXPECT().PromptForConfirmation(gomock.Any(), false).Return(true, nil)
	manager.EXPECT().SaveConfig(config.Config{
		ADOOrg:            "acme",
		GitHubOrg:         "new-gh",
		PullRequestTarget: "closed",
		VerifyTarget:      true,
	}).Return(nil)
	manager.EXPECT().GetConfigPath().Return("config.yaml")

	assert.NoError(t, runInit(manager, p, initOpts{}, &bytes.Buffer{}))
}

func TestRunInit_PromptOnlyMissingOrganization(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := configmocks.NewMockManager(ctrl)
	p := promptmocks.NewMockPrompter(ctrl)

	manager.EXPECT().GetConfig().Return(config.Config{}, config.ErrConfigNotInitialized)
	manager.EXPECT().DefaultConfig().Return(config.Config{PullRequestTarget: "pulls"})
	p.EXPECT().PromptForOrganization("GitHub organization", "").Return("gh-org", nil)
	p.EXPECT().PromptForConfirmation(gomock.Any(), false).Return(false, nil)
	manager.EXPECT().SaveConfig(config.Config{
		ADOOrg:            "acme",
		GitHubOrg:         "gh-org",
		PullRequestTarget: "pulls",
	}).Return(nil)
	manager.EXPECT().GetConfigPath().Return("config.yaml")

	opts := initOpts{ADOOrg: "acme", PullRequestTarget: "pulls"}
	assert.NoError(t, runInit(manager, p, opts, &bytes.Buffer{}))
}

func TestRunInit_PromptErrorAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := configmocks.NewMockManager(ctrl)
	p := promptmocks.NewMockPrompter(ctrl)

	manager.EXPECT().GetConfig().Return(config.Config{}, config.ErrConfigNotInitialized)
	manager.EXPECT().DefaultConfig().Return(config.Config{})
	p.EXPECT().PromptForOrganization("Azure DevOps organization", "").Return("", prompt.ErrEmptyInput)

	err := runInit(manager, p, initOpts{}, &bytes.Buffer{})
	assert.ErrorIs(t, err, prompt.ErrEmptyInput)
}

func TestRunInit_InvalidTargetRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := configmocks.NewMockManager(ctrl)
	p := promptmocks.NewMockPrompter(ctrl)

	invalid := errors.New("unknown pull request target")
	manager.EXPECT().GetConfig().Return(config.Config{}, config.ErrConfigNotInitialized)
	manager.EXPECT().DefaultConfig().Return(config.Config{})
	manager.EXPECT().SaveConfig(gomock.Any()).Return(invalid)

	opts := initOpts{ADOOrg: "acme", GitHubOrg: "gh-org", PullRequestTarget: "merged"}
	assert.ErrorIs(t, runInit(manager, p, opts, &bytes.Buffer{}), invalid)
}

func TestRunInit_ConfigReadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := configmocks.NewMockManager(ctrl)
	p := promptmocks.NewMockPrompter(ctrl)

	manager.EXPECT().GetConfig().Return(config.Config{}, config.ErrConfigFileParse)

	assert.ErrorIs(t, runInit(manager, p, initOpts{}, &bytes.Buffer{}), config.ErrConfigFileParse)
}
