//go:build !tinygo

package hal

import "testing"

func TestSimIMUCalibratesAfterPolls(t *testing.T) {
	imu := newSimIMU(SimIMUConfig{CalibrationPolls: 3}, func() uint64 { return 0 })
	if err := imu.Reset(); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	for i := 0; i < 3; i++ {
		busy, _ := imu.Calibrating()
		if !busy {
			t.Fatalf("poll %d: expected calibrating", i)
		}
	}
	if busy, _ := imu.Calibrating(); busy {
		t.Fatal("expected calibration to finish")
	}
}

func TestSimIMUZeroAtReset(t *testing.T) {
	ms := uint64(1000)
	imu := newSimIMU(DefaultSimIMUConfig(), func() uint64 { return ms })
	_ = imu.Reset()

	if p, _ := imu.Pitch(); p != 0 {
		t.Fatalf("Pitch() = %v, want 0", p)
	}
	if y, _ := imu.Yaw(); y != 0 {
		t.Fatalf("Yaw() = %v, want 0", y)
	}

	ms += 10000
	y, _ := imu.Yaw()
	if y != -160 {
		t.Fatalf("Yaw() after 10s = %v, want -160", y)
	}
}

func TestSimIMUFollowsHostTicks(t *testing.T) {
	read := func() [3]float32 {
		h := newHostHAL(DefaultHostConfig())
		_ = h.imu.Reset()
		for i := 0; i < 250; i++ {
			h.t.stepN(16)
		}
		p, _ := h.imu.Pitch()
		r, _ := h.imu.Roll()
		y, _ := h.imu.Yaw()
		return [3]float32{p, r, y}
	}
	a, b := read(), read()
	if a != b {
		t.Fatalf("same tick sequence gave %v and %v", a, b)
	}
	if a[2] != 80 {
		t.Fatalf("Yaw() after 4 s = %v, want 80", a[2])
	}
}

func TestSimIMUFailReads(t *testing.T) {
	imu := newSimIMU(SimIMUConfig{FailReads: true}, func() uint64 { return 0 })
	if _, err := imu.Roll(); err == nil {
		t.Fatal("expected read error")
	}
}

func TestHostHALWithoutIMU(t *testing.T) {
	cfg := DefaultHostConfig()
	cfg.IMU.Absent = true
	h := New(cfg)
	if h.IMU() != nil {
		t.Fatal("expected nil IMU")
	}
	fb := h.Display().Framebuffer()
	if fb.Width() != 480 || fb.Height() != 272 {
		t.Fatalf("framebuffer %dx%d, want 480x272", fb.Width(), fb.Height())
	}
}
