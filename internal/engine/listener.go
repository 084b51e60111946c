package engine

import "github.com/TeriyakiSecky/android-sdk/internal/detector"

// EventType identifies a progress notification from the driver.
type EventType int

const (
	// EventStarting fires once at the beginning of an analysis.
	EventStarting EventType = iota
	// EventScanningProject fires before a project's detectors run.
	EventScanningProject
	// EventScanningLibraryProject fires before a library dependency is
	// scanned on a main project's behalf.
	EventScanningLibraryProject
	// EventScanningFile fires before each file is analyzed.
	EventScanningFile
	// EventNewPhase fires when a repeat pass begins.
	EventNewPhase
	// EventCompleted fires once when the analysis finishes normally.
	EventCompleted
	// EventCanceled fires once when the analysis was canceled.
	EventCanceled
)

func (e EventType) String() string {
	switch e {
	case EventStarting:
		return "starting"
	case EventScanningProject:
		return "scanning-project"
	case EventScanningLibraryProject:
		return "scanning-library-project"
	case EventScanningFile:
		return "scanning-file"
	case EventNewPhase:
		return "new-phase"
	case EventCompleted:
		return "completed"
	case EventCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// Listener observes driver progress. Callbacks run synchronously on the
// analysis goroutine, in registration order.
type Listener interface {
	// Update is invoked for each event; ctx is nil for events without an
	// associated project or file.
	Update(driver *Driver, event EventType, ctx *detector.Context)
}

// AddListener registers a listener for progress events.
func (d *Driver) AddListener(l Listener) {
	d.listeners = append(d.listeners, l)
}

// RemoveListener unregisters a previously added listener.
func (d *Driver) RemoveListener(l Listener) {
	for i, existing := range d.listeners {
		if existing == l {
			d.listeners = append(d.listeners[:i], d.listeners[i+1:]...)
			return
		}
	}
}

func (d *Driver) fireEvent(event EventType, ctx *detector.Context) {
	for _, l := range d.listeners {
		l.Update(d, event, ctx)
	}
}
