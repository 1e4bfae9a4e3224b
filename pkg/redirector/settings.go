package redirector

import (
	"github.com/lerenn/adogh/pkg/config"
	"github.com/lerenn/adogh/pkg/redirector/consts"
)

// GetSettings returns the stored settings, or defaults when none were saved.
func (r *realRedirector) GetSettings() (config.Config, error) {
	return r.deps.Config.GetConfigWithFallback()
}

// SaveSettings validates and stores settings, overwriting previous ones.
func (r *realRedirector) SaveSettings(cfg config.Config) error {
	params := map[string]interface{}{
		"adoOrg":    cfg.ADOOrg,
		"githubOrg": cfg.GitHubOrg,
	}

	return r.executeWithHooks(consts.SaveSettings, params, func(_ map[string]interface{}) error {
		return r.deps.Config.SaveConfig(cfg)
	})
}
