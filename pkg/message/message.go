// Package message defines the requests exchanged between the browser
// extension and adogh, and the native messaging framing that carries them.
package message

import (
	"encoding/json"
	"fmt"

	"github.com/lerenn/adogh/pkg/badge"
)

// Action tags a request kind.
type Action string

// Supported actions.
const (
	ActionShowBadge       Action = "showBadge"
	ActionCheckRepoStatus Action = "checkRepoStatus"
	ActionConvertURL      Action = "convertUrl"
	ActionGetSettings     Action = "getSettings"
	ActionSaveSettings    Action = "saveSettings"
)

// Request is one of the message kinds below.
type Request interface {
	Action() Action
}

// ShowBadge asks for the badge of a tab that navigated to URL.
type ShowBadge struct {
	TabID int    `json:"tabId,omitempty"`
	URL   string `json:"url"`
}

// CheckRepoStatus asks whether a repository page is disabled. PageText is the
// page's visible text; when empty the page at URL is fetched instead.
type CheckRepoStatus struct {
	URL      string `json:"url,omitempty"`
	PageText string `json:"pageText,omitempty"`
}

// ConvertURL asks for the GitHub address of an ADO address.
type ConvertURL struct {
	URL string `json:"url"`
}

// GetSettings asks for the stored organization settings.
type GetSettings struct{}

// SaveSettings stores organization settings.
type SaveSettings struct {
	Settings
}

// Action implements Request.
func (ShowBadge) Action() Action { return ActionShowBadge }

// Action implements Request.
func (CheckRepoStatus) Action() Action { return ActionCheckRepoStatus }

// Action implements Request.
func (ConvertURL) Action() Action { return ActionConvertURL }

// Action implements Request.
func (GetSettings) Action() Action { return ActionGetSettings }

// Action implements Request.
func (SaveSettings) Action() Action { return ActionSaveSettings }

// Settings is the wire form of the organization settings.
type Settings struct {
	ADOOrg    string `json:"adoOrg"`
	GitHubOrg string `json:"githubOrg"`
}

// Response answers a Request. Only the fields relevant to the request kind are set.
type Response struct {
	Badge      *badge.Badge `json:"badge,omitempty"`
	IsDisabled *bool        `json:"isDisabled,omitempty"`
	URL        string       `json:"url,omitempty"`
	Settings   *Settings    `json:"settings,omitempty"`
	Success    bool         `json:"success,omitempty"`
	Error      string       `json:"error,omitempty"`
}

// Decode parses a JSON request, selecting the kind from its action field.
func Decode(data []byte) (Request, error) {
	var envelope struct {
		Action Action `json:"action"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedMessage, err)
	}

	var req Request
	switch envelope.Action {
	case ActionShowBadge:
		req = &ShowBadge{}
	case ActionCheckRepoStatus:
		req = &CheckRepoStatus{}
	case ActionConvertURL:
		req = &ConvertURL{}
	case ActionGetSettings:
		return GetSettings{}, nil
	case ActionSaveSettings:
		req = &SaveSettings{}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, envelope.Action)
	}

	if err := json.Unmarshal(data, req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedMessage, err)
	}
	return deref(req), nil
}

// Encode renders a request with its action field.
func Encode(req Request) ([]byte, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, err
	}
	action, err := json.Marshal(req.Action())
	if err != nil {
		return nil, err
	}
	fields["action"] = action
	return json.Marshal(fields)
}

func deref(req Request) Request {
	switch r := req.(type) {
	case *ShowBadge:
		return *r
	case *CheckRepoStatus:
		return *r
	case *ConvertURL:
		return *r
	case *SaveSettings:
		return *r
	}
	return req
}
