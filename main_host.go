//go:build !tinygo

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"

	"faceplate/app"
	"faceplate/eyeconfig"
	"faceplate/hal"
	"faceplate/stats"
)

func main() {
	var (
		configPath = flag.String("config", "eyeconfig.toml", "Path to the TOML configuration.")
		seed       = flag.Uint64("seed", 0, "Unit seed for derived eye geometry (0 = from hostname).")
		headless   = flag.Bool("headless", false, "Run without a window.")
		hz         = flag.Int("hz", 60, "Tick rate in headless mode.")
		ticks      = flag.Uint64("ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	)
	flag.Parse()

	cfg, err := eyeconfig.Load(*configPath)
	if err != nil {
		// Defaults still render; a broken config file must not kill the face.
		fmt.Fprintln(os.Stderr, err)
	}
	s := *seed
	if s == 0 {
		s = hostSeed()
	}
	res := eyeconfig.Resolve(cfg, s)

	format := hal.PixelFormatRGB565
	if cfg.Screen.Driver == "ssd1306" {
		format = hal.PixelFormatMono1
	}
	h := hal.NewHost(res.ScreenWidth, res.ScreenHeight, format)

	step := app.NewWithConfig(h, app.Config{
		Resolved: res,
		Seed:     s,
		Stats:    sampler(),
	})

	if *headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err := hal.RunHeadless(ctx, h, step, hal.HeadlessConfig{Hz: *hz, Ticks: *ticks})
		if err != nil && err != context.Canceled {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(h, step); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// hostSeed derives a stable per-machine seed, FNV-1a over the hostname.
func hostSeed() uint64 {
	name, err := os.Hostname()
	if err != nil || name == "" {
		return 1
	}
	h := uint64(14695981039346656037)
	for i := 0; i < len(name); i++ {
		h ^= uint64(name[i])
		h *= 1099511628211
	}
	return h
}

// sampler feeds the stats page from the host process. On the real unit the
// companion daemon gathers these numbers.
func sampler() func() stats.Snapshot {
	host, _ := os.Hostname()
	return func() stats.Snapshot {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)
		return stats.Snapshot{
			Host: host,
			CPU:  fmt.Sprintf("PROCS %d", runtime.GOMAXPROCS(0)),
			Mem:  fmt.Sprintf("HEAP %dK", m.HeapAlloc/1024),
			Disk: fmt.Sprintf("GOR %d", runtime.NumGoroutine()),
		}
	}
}
