// Package browser navigates to redirect targets.
package browser

import (
	"fmt"
	"io"

	webbrowser "github.com/pkg/browser"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=browser.go -destination=mocks/browser.gen.go -package=mocks

// Opener navigates to a URL.
type Opener interface {
	Open(url string) error
}

type systemOpener struct{}

// NewSystemOpener creates an Opener using the platform's default browser.
func NewSystemOpener() Opener {
	return &systemOpener{}
}

// Open opens url in the default browser.
func (o *systemOpener) Open(url string) error {
	if err := webbrowser.OpenURL(url); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}
	return nil
}

type printOpener struct {
	out io.Writer
}

// NewPrintOpener creates an Opener that only prints the URL, for dry runs
// and headless sessions.
func NewPrintOpener(out io.Writer) Opener {
	return &printOpener{out: out}
}

// Open prints url.
func (o *printOpener) Open(url string) error {
	_, err := fmt.Fprintln(o.out, url)
	return err
}
