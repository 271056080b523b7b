package kernel

import (
	"fmt"
	"sync"
	"sync/atomic"
)

const (
	maxTasks     = 32
	maxEndpoints = 32
	mailboxSlots = 8
)

type TaskID uint8

// Rights define which operations are allowed for a capability.
type Rights uint8

const (
	RightSend Rights = 1 << iota
	RightRecv
)

// Endpoint identifies an IPC destination.
type Endpoint uint8

// Capability grants access to an IPC endpoint.
//
// It is opaque by construction (no exported fields) and may be transferred via IPC.
type Capability struct {
	ep     Endpoint
	rights Rights
}

func (c Capability) valid() bool {
	return c.rights != 0
}

func (c Capability) Valid() bool { return c.valid() }

func (c Capability) canSend() bool { return c.rights&RightSend != 0 }
func (c Capability) canRecv() bool { return c.rights&RightRecv != 0 }

// Restrict returns a capability with a reduced set of rights.
func (c Capability) Restrict(rights Rights) Capability {
	if !c.valid() {
		return Capability{}
	}
	r := c.rights & rights
	if r == 0 {
		return Capability{}
	}
	return Capability{ep: c.ep, rights: r}
}

// Message is a fixed-size IPC envelope.
type Message struct {
	From Endpoint
	To   Endpoint
	Kind uint16
	Len  uint16
	Data [MaxMessageBytes]byte
	Cap  Capability
}

// Payload returns the valid portion of Data.
func (m *Message) Payload() []byte {
	n := int(m.Len)
	if n > MaxMessageBytes {
		n = MaxMessageBytes
	}
	return m.Data[:n]
}

// MaxMessageBytes is the maximum payload size for IPC messages.
const MaxMessageBytes = 128

// SendResult describes the outcome of a send attempt.
type SendResult uint8

const (
	SendOK SendResult = iota
	SendErrInvalidFromCap
	SendErrInvalidToCap
	SendErrFromNoSendRight
	SendErrToNoSendRight
	SendErrNoEndpoint
	SendErrPayloadTooLarge
	SendErrQueueFull
)

func (r SendResult) String() string {
	switch r {
	case SendOK:
		return "ok"
	case SendErrInvalidFromCap:
		return "invalid from capability"
	case SendErrInvalidToCap:
		return "invalid to capability"
	case SendErrFromNoSendRight:
		return "from capability has no send right"
	case SendErrToNoSendRight:
		return "to capability has no send right"
	case SendErrNoEndpoint:
		return "no such endpoint"
	case SendErrPayloadTooLarge:
		return "payload too large"
	case SendErrQueueFull:
		return "queue full"
	default:
		return "unknown"
	}
}

// Task is a long-lived unit of execution.
//
// Run owns its goroutine for the lifetime of the task. It should return once
// Context.Done is closed.
type Task interface {
	Run(ctx *Context)
}

type endpointState struct {
	ch     chan Message
	closed bool
}

// Kernel is a minimal task scheduler plus IPC router and tick timebase.
type Kernel struct {
	mu sync.Mutex

	endpoints     [maxEndpoints]endpointState
	endpointCount Endpoint

	taskCount TaskID

	tick     uint64
	tickWake chan struct{}

	done     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	onPanic  func(PanicInfo)
	panicked atomic.Bool
}

// New creates a kernel instance.
func New() *Kernel {
	return &Kernel{
		tickWake: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// NewEndpoint allocates a new endpoint and returns a capability for it.
func (k *Kernel) NewEndpoint(rights Rights) Capability {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.endpointCount >= maxEndpoints {
		return Capability{}
	}
	ep := k.endpointCount
	k.endpointCount++
	k.endpoints[ep] = endpointState{ch: make(chan Message, mailboxSlots)}
	return Capability{ep: ep, rights: rights}
}

// CloseEndpoint closes the endpoint behind the capability.
//
// Pending receivers observe a closed channel; further sends fail with SendErrNoEndpoint.
func (k *Kernel) CloseEndpoint(c Capability) {
	if !c.valid() {
		return
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	if c.ep >= k.endpointCount {
		return
	}
	st := &k.endpoints[c.ep]
	if st.closed {
		return
	}
	st.closed = true
	close(st.ch)
}

// AddTask registers a task and starts it. It returns the task ID, or false if
// the task table is full or the kernel has been shut down.
func (k *Kernel) AddTask(t Task) (TaskID, bool) {
	if t == nil {
		return 0, false
	}
	k.mu.Lock()
	if k.taskCount >= maxTasks || k.stopped() {
		k.mu.Unlock()
		return 0, false
	}
	id := k.taskCount
	k.taskCount++
	k.wg.Add(1)
	k.mu.Unlock()

	go k.runTask(id, t)
	return id, true
}

func (k *Kernel) runTask(id TaskID, t Task) {
	defer k.wg.Done()
	defer func() {
		if v := recover(); v != nil {
			k.recoverTask(id, v)
		}
	}()
	t.Run(&Context{k: k})
}

// TickTo advances the kernel timebase to seq and wakes tick waiters.
//
// Values at or below the current tick are ignored.
func (k *Kernel) TickTo(seq uint64) {
	k.mu.Lock()
	if seq <= k.tick {
		k.mu.Unlock()
		return
	}
	k.tick = seq
	wake := k.tickWake
	k.tickWake = make(chan struct{})
	k.mu.Unlock()
	close(wake)
}

// Shutdown asks every task to stop.
func (k *Kernel) Shutdown() {
	k.stopOnce.Do(func() { close(k.done) })
}

// Done is closed once Shutdown has been called.
func (k *Kernel) Done() <-chan struct{} { return k.done }

// Wait blocks until every task returned from Run.
func (k *Kernel) Wait() {
	k.wg.Wait()
}

func (k *Kernel) stopped() bool {
	select {
	case <-k.done:
		return true
	default:
		return false
	}
}

func (k *Kernel) nowTick() uint64 {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.tick
}

// waitTick blocks until the tick advances past after or the kernel stops.
func (k *Kernel) waitTick(after uint64) (uint64, bool) {
	for {
		k.mu.Lock()
		now := k.tick
		wake := k.tickWake
		k.mu.Unlock()
		if now > after {
			return now, true
		}
		select {
		case <-wake:
		case <-k.done:
			return now, false
		}
	}
}

func (k *Kernel) send(from Endpoint, to Endpoint, kind uint16, payload []byte, xfer Capability) SendResult {
	if len(payload) > MaxMessageBytes {
		return SendErrPayloadTooLarge
	}

	var msg Message
	msg.From = from
	msg.To = to
	msg.Kind = kind
	msg.Len = uint16(len(payload))
	copy(msg.Data[:], payload)
	msg.Cap = xfer

	// The lock is held across the non-blocking send so CloseEndpoint cannot
	// close the channel underneath it.
	k.mu.Lock()
	defer k.mu.Unlock()
	if to >= k.endpointCount {
		return SendErrNoEndpoint
	}
	st := &k.endpoints[to]
	if st.closed || st.ch == nil {
		return SendErrNoEndpoint
	}
	select {
	case st.ch <- msg:
		return SendOK
	default:
		return SendErrQueueFull
	}
}

func (k *Kernel) recvChan(ep Endpoint) (<-chan Message, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if ep >= k.endpointCount {
		return nil, fmt.Errorf("kernel: endpoint %d not allocated", ep)
	}
	ch := k.endpoints[ep].ch
	if ch == nil {
		return nil, fmt.Errorf("kernel: endpoint %d has no mailbox", ep)
	}
	return ch, nil
}
