//go:build tinygo && baremetal

package hal

import (
	"machine"
)

type tinyGoHAL struct {
	logger *uartLogger
	fb     Framebuffer
	t      *tinyGoTime
	imu    IMU
}

// New returns a Pico 2 (RP2350) HAL implementation.
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
// Display: ILI9341 on SPI0 (GP18 SCK, GP19 SDO, GP16 SDI, GP17 CS, GP20 DC, GP21 RST).
// IMU: BNO08x on I2C0 (GP4 SDA, GP5 SCL).
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})
	logger := &uartLogger{uart: uart}

	var fb Framebuffer
	if d, err := newILI9341Framebuffer(); err == nil {
		fb = d
	} else {
		logger.WriteLineString("hal: display init: " + err.Error())
		fb = &stubFramebuffer{w: ili9341Width, h: ili9341Height}
	}

	var imu IMU
	if s, err := newBNO08xIMU(); err == nil {
		imu = s
	} else {
		logger.WriteLineString("hal: imu init: " + err.Error())
	}

	return &tinyGoHAL{
		logger: logger,
		fb:     fb,
		t:      newTinyGoTime(),
		imu:    imu,
	}
}

func (h *tinyGoHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHAL) Display() Display { return tinyGoDisplay{fb: h.fb} }
func (h *tinyGoHAL) Time() Time       { return h.t }
func (h *tinyGoHAL) IMU() IMU         { return h.imu }
