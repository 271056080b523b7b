//go:build tinygo && baremetal

package main

import (
	"gyrocube/app"
	"gyrocube/hal"
)

func main() {
	app.Run(hal.New())
}
