package kernel

import (
	"testing"
	"time"
)

type funcTask func(ctx *Context)

func (f funcTask) Run(ctx *Context) { f(ctx) }

func TestSleepWakesAfterTicks(t *testing.T) {
	k := New()
	ready := make(chan struct{})
	woke := make(chan uint64, 1)
	if _, ok := k.AddTask(funcTask(func(ctx *Context) {
		close(ready)
		if ctx.Sleep(3) {
			woke <- ctx.NowTick()
		}
	})); !ok {
		t.Fatal("expected AddTask to succeed")
	}
	<-ready

	for i := uint64(1); i <= 2; i++ {
		k.TickTo(i)
	}
	select {
	case <-woke:
		t.Fatal("woke before deadline")
	case <-time.After(10 * time.Millisecond):
	}

	for i := uint64(3); i <= 6; i++ {
		k.TickTo(i)
	}
	select {
	case now := <-woke:
		if now < 3 {
			t.Fatalf("woke at tick %d, want >= 3", now)
		}
	case <-time.After(200 * time.Millisecond):
		t.Fatal("timed out waiting for wake")
	}
	k.Shutdown()
	k.Wait()
}

func TestShutdownUnblocksSleep(t *testing.T) {
	k := New()
	res := make(chan bool, 1)
	k.AddTask(funcTask(func(ctx *Context) {
		res <- ctx.Sleep(1000)
	}))

	k.Shutdown()
	select {
	case ok := <-res:
		if ok {
			t.Fatal("expected Sleep to report stop")
		}
	case <-time.After(200 * time.Millisecond):
		t.Fatal("timed out waiting for shutdown")
	}
	k.Wait()

	if _, ok := k.AddTask(funcTask(func(*Context) {})); ok {
		t.Fatal("expected AddTask to fail after shutdown")
	}
}

func TestTickToIgnoresStaleValues(t *testing.T) {
	k := New()
	k.TickTo(5)
	k.TickTo(3)
	ctx := &Context{k: k}
	if got := ctx.NowTick(); got != 5 {
		t.Fatalf("NowTick() = %d, want 5", got)
	}
}

func TestTaskPanicInvokesHandler(t *testing.T) {
	got := make(chan PanicInfo, 2)
	k := New()
	k.SetPanicHandler(func(info PanicInfo) { got <- info })

	id, _ := k.AddTask(funcTask(func(*Context) { panic("boom") }))
	k.Wait()
	k.AddTask(funcTask(func(*Context) { panic("second") }))
	k.Wait()

	select {
	case info := <-got:
		if info.TaskID != id || info.Value != "boom" {
			t.Fatalf("unexpected panic info: %+v", info)
		}
	case <-time.After(200 * time.Millisecond):
		t.Fatal("panic handler not invoked")
	}
	if !k.Panicked() {
		t.Fatal("expected Panicked")
	}
	if len(got) != 0 {
		t.Fatal("handler ran for a second panic")
	}
}
