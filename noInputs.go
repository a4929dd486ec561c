package main

import (
	"sync"

	"dscheirer.com/ampanel/panel"
)

func init() {
	features = append(features, "no-inputs")
}

// noInputs is a panel with nobody touching it, unless a test presses
// something
type noInputs struct {
	mu   sync.Mutex
	raw  panel.Raw
	fail error
}

func newNoInputs() *noInputs {
	return &noInputs{raw: panel.Idle}
}

func (ni *noInputs) initInputs(rt runtimeConfig) error {
	return nil
}

func (ni *noInputs) readRaw() (panel.Raw, error) {
	ni.mu.Lock()
	defer ni.mu.Unlock()
	if ni.fail != nil {
		return 0, ni.fail
	}
	return ni.raw, nil
}

func (ni *noInputs) closeInputs() {
}

// press holds the given buttons until clear
func (ni *noInputs) press(btns ...panel.Switch) {
	ni.setRaw(panel.Encode(btns...))
}

func (ni *noInputs) setRaw(raw panel.Raw) {
	ni.mu.Lock()
	defer ni.mu.Unlock()
	ni.raw = raw
}

func (ni *noInputs) clear() {
	ni.setRaw(panel.Idle)
}

func (ni *noInputs) setFail(err error) {
	ni.mu.Lock()
	defer ni.mu.Unlock()
	ni.fail = err
}
