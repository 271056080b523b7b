package kernel

// Context is a task's handle on the kernel.
type Context struct {
	k *Kernel
}

// RecvChan returns the inbound message channel for an endpoint capability.
//
// The channel is closed by CloseEndpoint; ranging over it drains queued
// messages first.
func (c *Context) RecvChan(epCap Capability) (<-chan Message, bool) {
	if c.k == nil || !epCap.valid() || !epCap.canRecv() {
		return nil, false
	}
	ch, err := c.k.recvChan(epCap.ep)
	if err != nil {
		return nil, false
	}
	return ch, true
}

// SendToCapResult sends a message and transfers an optional capability.
//
// The message From field is set to 0 (unknown).
func (c *Context) SendToCapResult(toCap Capability, kind uint16, payload []byte, xfer Capability) SendResult {
	if !toCap.valid() {
		return SendErrInvalidToCap
	}
	if !toCap.canSend() {
		return SendErrToNoSendRight
	}
	return c.k.send(0, toCap.ep, kind, payload, xfer)
}

// SendToCapRetry behaves like SendToCapResult but retries on SendErrQueueFull,
// waiting one tick between attempts, for at most limit ticks.
//
// A zero limit never blocks.
func (c *Context) SendToCapRetry(toCap Capability, kind uint16, payload []byte, xfer Capability, limit uint32) SendResult {
	res := c.SendToCapResult(toCap, kind, payload, xfer)
	if res != SendErrQueueFull || limit == 0 {
		return res
	}

	last := c.NowTick()
	for i := uint32(0); i < limit; i++ {
		var ok bool
		last, ok = c.k.waitTick(last)
		if !ok {
			return res
		}
		res = c.SendToCapResult(toCap, kind, payload, xfer)
		if res != SendErrQueueFull {
			return res
		}
	}
	return res
}

// NowTick returns the last observed tick value.
func (c *Context) NowTick() uint64 {
	if c.k == nil {
		return 0
	}
	return c.k.nowTick()
}

// Sleep yields for at least ms ticks (1 tick = 1 ms).
//
// It reports false if the kernel stopped before the deadline.
func (c *Context) Sleep(ms uint32) bool {
	if c.k == nil {
		return false
	}
	now := c.k.nowTick()
	due := now + uint64(ms)
	for now < due {
		var ok bool
		now, ok = c.k.waitTick(now)
		if !ok {
			return false
		}
	}
	return !c.k.stopped()
}
