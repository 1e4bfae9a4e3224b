//go:build unit

package message

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Request
		wantErr  error
	}{
		{
			name:     "show badge",
			input:    `{"action":"showBadge","url":"https://dev.azure.com/a/p/_git/r","tabId":4}`,
			expected: ShowBadge{TabID: 4, URL: "https://dev.azure.com/a/p/_git/r"},
		},
		{
			name:     "check repo status",
			input:    `{"action":"checkRepoStatus","pageText":"This repository has been disabled"}`,
			expected: CheckRepoStatus{PageText: "This repository has been disabled"},
		},
		{
			name:     "convert",
			input:    `{"action":"convertUrl","url":"x"}`,
			expected: ConvertURL{URL: "x"},
		},
		{
			name:     "get settings",
			input:    `{"action":"getSettings"}`,
			expected: GetSettings{},
		},
		{
			name:     "save settings",
			input:    `{"action":"saveSettings","adoOrg":"acme","githubOrg":"gh-org"}`,
			expected: SaveSettings{Settings{ADOOrg: "acme", GitHubOrg: "gh-org"}},
		},
		{
			name:    "unknown action",
			input:   `{"action":"getCurrentUrl"}`,
			wantErr: ErrUnknownAction,
		},
		{
			name:    "not json",
			input:   `showBadge`,
			wantErr: ErrMalformedMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := Decode([]byte(tt.input))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, req)
		})
	}
}

func TestEncode(t *testing.T) {
	data, err := Encode(ShowBadge{URL: "https://dev.azure.com/a/p/_git/r"})
	require.NoError(t, err)

	req, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, ShowBadge{URL: "https://dev.azure.com/a/p/_git/r"}, req)
}

func TestFrames(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteFrame(&buf, []byte(`{"a":1}`)))
	require.NoError(t, WriteFrame(&buf, []byte(`{}`)))

	first, err := ReadFrame(&buf)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(first))

	second, err := ReadFrame(&buf)
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(second))

	_, err = ReadFrame(&buf)
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadFrame_Truncated(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteFrame(&buf, []byte(`{"action":"getSettings"}`)))
	truncated := bytes.NewReader(buf.Bytes()[:buf.Len()-3])

	_, err := ReadFrame(truncated)
	assert.ErrorIs(t, err, ErrMalformedMessage)
}

func TestWriteFrame_TooLarge(t *testing.T) {
	err := WriteFrame(io.Discard, make([]byte, MaxOutgoingSize+1))
	assert.ErrorIs(t, err, ErrMessageTooLarge)
}

type stubHandler struct{}

func (stubHandler) HandleMessage(_ context.Context, req Request) (Response, error) {
	switch r := req.(type) {
	case CheckRepoStatus:
		disabled := r.PageText != ""
		return Response{IsDisabled: &disabled}, nil
	case ConvertURL:
		return Response{}, errors.New("cannot convert this URL to GitHub format")
	}
	return Response{Success: true}, nil
}

func TestHost_Serve(t *testing.T) {
	var in bytes.Buffer
	for _, msg := range []string{
		`{"action":"checkRepoStatus","pageText":"disabled"}`,
		`{"action":"nope"}`,
		`{"action":"convertUrl","url":"not a url"}`,
		`{"action":"checkRepoStatus","url":"https://dev.azure.com/a/p/_git/r"}`,
	} {
		require.NoError(t, WriteFrame(&in, []byte(msg)))
	}

	var out bytes.Buffer
	host := NewHost(stubHandler{}, nil)
	require.NoError(t, host.Serve(context.Background(), &in, &out))

	var responses []map[string]interface{}
	for {
		frame, err := ReadFrame(&out)
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(frame, &resp))
		responses = append(responses, resp)
	}

	require.Len(t, responses, 4)
	assert.Equal(t, true, responses[0]["isDisabled"])
	assert.Contains(t, responses[1]["error"], "unknown action")
	assert.Equal(t, "cannot convert this URL to GitHub format", responses[2]["error"])
	assert.Equal(t, false, responses[3]["isDisabled"])
}

type echoHandler struct{}

func (echoHandler) HandleMessage(_ context.Context, req Request) (Response, error) {
	if r, ok := req.(ConvertURL); ok && !strings.HasPrefix(r.URL, "https://") {
		return Response{}, errors.New("cannot convert " + r.URL)
	}
	return Response{Success: true}, nil
}

func TestHost_Serve_OversizedResponse(t *testing.T) {
	huge := `{"action":"convertUrl","url":"not a url ` + strings.Repeat("x", 2<<20) + `"}`

	var in bytes.Buffer
	require.NoError(t, WriteFrame(&in, []byte(huge)))
	require.NoError(t, WriteFrame(&in, []byte(`{"action":"convertUrl","url":"https://dev.azure.com/a/p/_git/r"}`)))

	var out bytes.Buffer
	require.NoError(t, NewHost(echoHandler{}, nil).Serve(context.Background(), &in, &out))

	var responses []Response
	for {
		frame, err := ReadFrame(&out)
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		var resp Response
		require.NoError(t, json.Unmarshal(frame, &resp))
		responses = append(responses, resp)
	}

	require.Len(t, responses, 2)
	assert.Equal(t, ErrMessageTooLarge.Error(), responses[0].Error)
	assert.True(t, responses[1].Success)
}

func TestHost_Serve_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewHost(stubHandler{}, nil).Serve(ctx, &bytes.Buffer{}, io.Discard)
	assert.ErrorIs(t, err, context.Canceled)
}
