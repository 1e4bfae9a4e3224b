package redirector

import (
	"context"
	"fmt"

	"github.com/lerenn/adogh/pkg/badge"
	"github.com/lerenn/adogh/pkg/message"
)

// HandleMessage answers an extension message.
func (r *realRedirector) HandleMessage(ctx context.Context, req message.Request) (message.Response, error) {
	switch m := req.(type) {
	case message.ShowBadge:
		b := r.Badge(badge.NavigationEvent{TabID: m.TabID, URL: m.URL, Kind: badge.TabUpdated})
		return message.Response{Badge: &b}, nil

	case message.CheckRepoStatus:
		return r.handleCheckRepoStatus(ctx, m)

	case message.ConvertURL:
		githubURL, err := r.Convert(m.URL)
		if err != nil {
			return message.Response{}, err
		}
		return message.Response{URL: githubURL}, nil

	case message.GetSettings:
		cfg, err := r.GetSettings()
		if err != nil {
			return message.Response{}, err
		}
		return message.Response{Settings: &message.Settings{ADOOrg: cfg.ADOOrg, GitHubOrg: cfg.GitHubOrg}}, nil

	case message.SaveSettings:
		cfg, err := r.GetSettings()
		if err != nil {
			return message.Response{}, err
		}
		cfg.ADOOrg = m.ADOOrg
		cfg.GitHubOrg = m.GitHubOrg
		if err := r.SaveSettings(cfg); err != nil {
			return message.Response{}, err
		}
		return message.Response{Success: true}, nil
	}

	return message.Response{}, fmt.Errorf("%w: %q", message.ErrUnknownAction, req.Action())
}

func (r *realRedirector) handleCheckRepoStatus(ctx context.Context, m message.CheckRepoStatus) (message.Response, error) {
	switch {
	case m.PageText != "":
		status := r.CheckPage(m.PageText)
		return message.Response{IsDisabled: &status.IsDisabled}, nil
	case m.URL != "":
		status, err := r.CheckRepoStatus(ctx, m.URL)
		if err != nil {
			return message.Response{}, err
		}
		return message.Response{IsDisabled: &status.IsDisabled}, nil
	}
	return message.Response{}, ErrNothingToCheck
}
