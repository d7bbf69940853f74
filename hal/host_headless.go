//go:build !tinygo

package hal

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Hz    int
	Ticks uint64 // stop after N steps; 0 = run forever
}

// RunHeadless drives the step function at a fixed rate without opening a
// window. Useful for soak runs and CI. h must come from NewHost.
func RunHeadless(ctx context.Context, h HAL, step func() error, cfg HeadlessConfig) error {
	hh, ok := h.(*hostHAL)
	if !ok {
		return errors.New("hal: headless runner requires a host HAL")
	}
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var n uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			hh.t.step()
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			n++
			if cfg.Ticks > 0 && n >= cfg.Ticks {
				return nil
			}
		}
	}
}
