//go:build tinygo

package hal

import (
	"machine"
	"time"
)

type deviceHAL struct {
	logger deviceLogger
	disp   Display
	btns   *deviceButtons
	t      *deviceTime
}

// New returns the device HAL. The display driver is selected at build time
// (SSD1306 over I2C by default, ILI9341 over SPI with the ili9341 tag).
func New() HAL {
	logger := deviceLogger{}
	h := &deviceHAL{
		logger: logger,
		disp:   initDisplay(logger),
		btns:   newDeviceButtons(),
		t:      newDeviceTime(),
	}
	h.btns.start()
	h.t.start()
	return h
}

func (h *deviceHAL) Logger() Logger   { return h.logger }
func (h *deviceHAL) Display() Display { return h.disp }
func (h *deviceHAL) Buttons() Buttons { return h.btns }
func (h *deviceHAL) Time() Time       { return h.t }

type deviceLogger struct{}

func (deviceLogger) WriteLineString(s string) { println(s) }
func (deviceLogger) WriteLineBytes(b []byte)  { println(string(b)) }

type deviceTime struct {
	ch  chan uint64
	seq uint64
}

func newDeviceTime() *deviceTime {
	return &deviceTime{ch: make(chan uint64, 256)}
}

func (t *deviceTime) Ticks() <-chan uint64 { return t.ch }

func (t *deviceTime) start() {
	go func() {
		for {
			time.Sleep(time.Millisecond)
			t.seq++
			select {
			case t.ch <- t.seq:
			default:
			}
		}
	}()
}

// The control cluster: momentary buttons to ground with internal pull-ups.
var buttonPins = [...]struct {
	pin  machine.Pin
	code ButtonCode
}{
	{machine.GP6, ButtonUp},
	{machine.GP7, ButtonDown},
	{machine.GP8, ButtonLeft},
	{machine.GP9, ButtonRight},
	{machine.GP10, ButtonBlink},
	{machine.GP11, ButtonMood},
	{machine.GP12, ButtonCurious},
	{machine.GP13, ButtonStats},
}

type deviceButtons struct {
	ch   chan ButtonEvent
	down [len(buttonPins)]bool
}

func newDeviceButtons() *deviceButtons {
	b := &deviceButtons{ch: make(chan ButtonEvent, 64)}
	for _, bp := range buttonPins {
		bp.pin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	}
	return b
}

func (b *deviceButtons) Events() <-chan ButtonEvent { return b.ch }

func (b *deviceButtons) start() {
	go func() {
		for {
			time.Sleep(10 * time.Millisecond)
			for i, bp := range buttonPins {
				pressed := !bp.pin.Get() // active low
				if pressed == b.down[i] {
					continue
				}
				b.down[i] = pressed
				select {
				case b.ch <- ButtonEvent{Code: bp.code, Press: pressed}:
				default:
				}
			}
		}
	}()
}
