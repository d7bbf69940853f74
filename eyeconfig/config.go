// Package eyeconfig resolves the on-disk TOML configuration into concrete
// eye geometry: compiled defaults, optional persisted per-unit overrides, and
// seed-derived randomized defaults when no override exists.
package eyeconfig

// ScreenConfig mirrors the [screen] table of screenconfig.toml.
type ScreenConfig struct {
	Type      string    `toml:"type"`
	Driver    string    `toml:"driver"`
	Width     int       `toml:"width"`
	Height    int       `toml:"height"`
	Rotate    int       `toml:"rotate"`
	Interface string    `toml:"interface"`
	I2C       I2CConfig `toml:"i2c"`
	SPI       SPIConfig `toml:"spi"`
}

type I2CConfig struct {
	Address string `toml:"address"`
	Port    int    `toml:"i2c_port"`
}

type SPIConfig struct {
	Port        int `toml:"spi_port"`
	Device      int `toml:"spi_device"`
	DataCommand int `toml:"gpio_data_command"`
	Reset       int `toml:"gpio_reset"`
	Backlight   int `toml:"gpio_backlight"`
	BusSpeed    int `toml:"spi_bus_speed"`
}

// EyeShape is one eye's configured geometry in pixels.
type EyeShape struct {
	Width     int `toml:"width"`
	Height    int `toml:"height"`
	Roundness int `toml:"roundness"`
}

// EyeSection mirrors the [eye] table of eyeconfig.toml. A zero-valued
// section means "no persisted per-unit override".
type EyeSection struct {
	Distance int      `toml:"distance"`
	Left     EyeShape `toml:"left"`
	Right    EyeShape `toml:"right"`
}

type RenderConfig struct {
	FPS int `toml:"fps"`
}

// Config is the merged on-disk configuration, immutable after load.
type Config struct {
	Screen ScreenConfig `toml:"screen"`
	Eye    EyeSection   `toml:"eye"`
	Render RenderConfig `toml:"render"`
}

// Default returns the compiled fallback configuration: a 128×64 SSD1306 over
// I2C with 36×36 eyes.
func Default() Config {
	return Config{
		Screen: ScreenConfig{
			Type:      "oled",
			Driver:    "ssd1306",
			Width:     128,
			Height:    64,
			Interface: "i2c",
			I2C:       I2CConfig{Address: "0x3C", Port: 1},
		},
		Eye: EyeSection{
			Distance: 10,
			Left:     EyeShape{Width: 36, Height: 36, Roundness: 8},
			Right:    EyeShape{Width: 36, Height: 36, Roundness: 8},
		},
		Render: RenderConfig{FPS: 30},
	}
}
