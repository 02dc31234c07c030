package figure

import (
	"os"
	"sync"

	"github.com/mattn/go-isatty"
)

// A Display shows rendered figures, e.g. an interactive window system.
// Displays that cannot put a figure on screen (the default) report
// Interactive() == false; Show then renders off-screen so errors still
// surface.
type Display interface {
	// Interactive reports whether the display can show figures on
	// screen and react to the user.
	Interactive() bool

	// Show displays the figure. With block it returns only once the
	// figure was closed by the user.
	Show(f *Figure, block bool) error
}

// memoryDisplay is the default display: headless, rendering to an
// in-memory raster.
type memoryDisplay struct{}

func (memoryDisplay) Interactive() bool { return false }

func (memoryDisplay) Show(f *Figure, block bool) error {
	_, err := f.renderImage()
	return err
}

// The process-wide figure registry. Explicit on purpose: displays are
// injected with SetDisplay and tests tear the state down with
// ResetRegistry instead of figures mutating hidden globals.
var reg = struct {
	mu      sync.Mutex
	display Display
	active  *Figure
}{display: memoryDisplay{}}

// SetDisplay injects the display used by Figure.Show. Passing nil restores
// the headless default.
func SetDisplay(d Display) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	if d == nil {
		d = memoryDisplay{}
	}
	reg.display = d
}

func currentDisplay() Display {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	return reg.display
}

// ActiveFigure returns the most recently created figure that has not been
// closed, or nil.
func ActiveFigure() *Figure {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	return reg.active
}

// ResetRegistry restores the registry to its initial state: headless
// display, no active figure.
func ResetRegistry() {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.display = memoryDisplay{}
	reg.active = nil
}

func setActive(f *Figure) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.active = f
}

func dropFigure(f *Figure) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	if reg.active == f {
		reg.active = nil
	}
}

// interactiveShell reports whether the process looks like an interactive
// shell session (stdin and stdout both terminals). Show's auto mode does
// not block in that case: the user has a prompt to return to.
func interactiveShell() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
}
