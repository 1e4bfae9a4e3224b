package badge

import (
	"fmt"
	"io"
	"sync"

	"github.com/lerenn/adogh/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=display.go -destination=mocks/display.gen.go -package=mocks

// Display applies a badge to a tab.
type Display interface {
	Apply(tabID int, b Badge) error
}

// Tracker applies badge decisions and remembers the last badge per tab.
// Display failures are logged and otherwise ignored.
type Tracker struct {
	display Display
	logger  logger.Logger

	mu   sync.Mutex
	tabs map[int]Badge
}

// NewTracker creates a Tracker applying badges through display.
func NewTracker(display Display, l logger.Logger) *Tracker {
	if l == nil {
		l = logger.NewNoopLogger()
	}
	return &Tracker{
		display: display,
		logger:  l,
		tabs:    make(map[int]Badge),
	}
}

// SetLogger sets the logger for this tracker.
func (t *Tracker) SetLogger(l logger.Logger) {
	t.logger = l
}

// Navigate decides the badge for event and applies it.
func (t *Tracker) Navigate(event NavigationEvent) Badge {
	b := Decide(event)

	t.mu.Lock()
	t.tabs[event.TabID] = b
	t.mu.Unlock()

	if err := t.display.Apply(event.TabID, b); err != nil {
		t.logger.Logf("Failed to update badge for tab %d: %v", event.TabID, err)
	}
	return b
}

// Get returns the last badge applied to a tab.
func (t *Tracker) Get(tabID int) (Badge, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	b, ok := t.tabs[tabID]
	return b, ok
}

// Close forgets a tab.
func (t *Tracker) Close(tabID int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.tabs, tabID)
}

type writerDisplay struct {
	out io.Writer
}

// NewWriterDisplay creates a Display printing badges to out.
func NewWriterDisplay(out io.Writer) Display {
	return &writerDisplay{out: out}
}

// Apply prints the badge.
func (d *writerDisplay) Apply(tabID int, b Badge) error {
	if b.State == Inactive {
		_, err := fmt.Fprintf(d.out, "tab %d: badge cleared\n", tabID)
		return err
	}
	_, err := fmt.Fprintf(d.out, "tab %d: [%s] %s (rgba %d,%d,%d,%d)\n",
		tabID, b.Text, b.Title, b.Color[0], b.Color[1], b.Color[2], b.Color[3])
	return err
}
