package redirector

import (
	"github.com/lerenn/adogh/pkg/config"
	"github.com/lerenn/adogh/pkg/redirect"
	"github.com/lerenn/adogh/pkg/redirector/consts"
)

// Convert returns the GitHub URL for an ADO URL using the stored settings.
func (r *realRedirector) Convert(adoURL string) (string, error) {
	params := map[string]interface{}{
		consts.ParamURL: adoURL,
	}

	var githubURL string
	err := r.executeWithHooks(consts.Convert, params, func(results map[string]interface{}) error {
		cfg, err := r.configuredSettings()
		if err != nil {
			return err
		}
		githubURL, err = r.convert(cfg, adoURL)
		if err != nil {
			return err
		}
		results[consts.ResultGitHubURL] = githubURL
		return nil
	})
	if err != nil {
		return "", err
	}
	return githubURL, nil
}

// convert runs the transformation with the given settings.
func (r *realRedirector) convert(cfg config.Config, adoURL string) (string, error) {
	transformer := redirect.NewTransformer(cfg.Target())
	transformer.SetLogger(r.logger)

	r.VerbosePrint("Converting %s with GitHub organization %s", adoURL, cfg.GitHubOrg)
	return transformer.ToGitHubURL(adoURL, cfg.ADOOrg, cfg.GitHubOrg)
}

// configuredSettings returns the stored settings with environment overrides,
// failing when an organization is missing.
func (r *realRedirector) configuredSettings() (config.Config, error) {
	cfg, err := r.deps.Config.GetConfigWithFallback()
	if err != nil {
		return config.Config{}, err
	}
	cfg = cfg.WithEnv()
	if !cfg.IsConfigured() {
		return config.Config{}, config.ErrSettingsMissing
	}
	return cfg, nil
}
