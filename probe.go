package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"dscheirer.com/ampanel/panel"
)

// probeInputs samples the switch lines for a number of ticks and prints
// every change of raw level and every debounced press, without touching
// any output. Handy when wiring up a panel.
func probeInputs(rt runtimeConfig, ticks int, out io.Writer) error {
	if err := rt.inputs.initInputs(rt); err != nil {
		return errors.Wrap(err, "probe")
	}
	defer rt.inputs.closeInputs()

	tick := rt.settings.GetDuration(sTick)
	debounce := panel.NewDebouncer(rt.settings.GetInt(sDebounceTicks))
	last := panel.Raw(0xFF)

	for i := 0; i < ticks; i++ {
		raw, err := rt.inputs.readRaw()
		if err != nil {
			if errors.Cause(err) == errInputClosed {
				return nil
			}
			return errors.Wrapf(err, "probe tick %d", i)
		}

		sw := panel.Sample(raw)
		if raw != last {
			fmt.Fprintf(out, "%6d raw=%04b sample=%s\n", i, raw, sw)
			last = raw
		}
		if c, ok := debounce.Tick(sw); ok {
			fmt.Fprintf(out, "%6d confirmed=%s\n", i, c)
		}

		rt.clock.Sleep(tick)
	}
	return nil
}
