//go:build tinygo

package main

import (
	"faceplate/app"
	"faceplate/hal"
)

func main() {
	app.Run(hal.New())
}
