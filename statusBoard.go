package main

import (
	"sync"
	"time"

	"dscheirer.com/ampanel/panel"
)

// panelStatus is a copy of the panel state for readers outside the tick
type panelStatus struct {
	Amp        panel.Switch `json:"amp"`
	Feed       panel.Switch `json:"feed"`
	Muted      bool         `json:"muted"`
	Recording  bool         `json:"recording"`
	Recorder   panel.Switch `json:"recorder"`
	Monitor    bool         `json:"tapeMonitor"`
	Faulted    bool         `json:"faulted"`
	ReadErrors int          `json:"readErrors"`
	Presses    int          `json:"presses"`
	Lines      []lineState  `json:"lines"`
	Updated    time.Time    `json:"updated"`
}

// statusBoard hands snapshots from the panel goroutine to the status
// service. The panel goroutine is the only writer.
type statusBoard struct {
	mu     sync.RWMutex
	status panelStatus
}

func (b *statusBoard) publish(s panelStatus) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.status = s
}

func (b *statusBoard) read() panelStatus {
	b.mu.RLock()
	defer b.mu.RUnlock()
	s := b.status
	s.Lines = append([]lineState(nil), b.status.Lines...)
	return s
}
