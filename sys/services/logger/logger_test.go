package logger

import (
	"testing"
	"time"

	logclient "gyrocube/sys/client/logger"
	"gyrocube/sys/kernel"
)

type chanLogger struct {
	lines chan string
}

func (l *chanLogger) WriteLineString(s string) { l.lines <- s }
func (l *chanLogger) WriteLineBytes(b []byte)  { l.lines <- string(b) }

type funcTask func(ctx *kernel.Context)

func (f funcTask) Run(ctx *kernel.Context) { f(ctx) }

func stop(k *kernel.Kernel, ep kernel.Capability) {
	k.Shutdown()
	k.CloseEndpoint(ep)
	k.Wait()
}

func TestServiceWritesLines(t *testing.T) {
	k := kernel.New()
	ep := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	out := &chanLogger{lines: make(chan string, 4)}

	k.AddTask(New(out, ep.Restrict(kernel.RightRecv)))
	k.AddTask(funcTask(func(ctx *kernel.Context) {
		if res := logclient.Logf(ctx, ep.Restrict(kernel.RightSend), "cube: %s", "running"); res != kernel.SendOK {
			t.Errorf("Logf() = %s", res)
		}
	}))

	select {
	case line := <-out.lines:
		if line != "cube: running" {
			t.Fatalf("got line %q", line)
		}
	case <-time.After(200 * time.Millisecond):
		t.Fatal("timed out waiting for log line")
	}

	stop(k, ep)
}

func TestServiceIgnoresOtherKinds(t *testing.T) {
	k := kernel.New()
	ep := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	out := &chanLogger{lines: make(chan string, 4)}

	k.AddTask(New(out, ep.Restrict(kernel.RightRecv)))
	k.AddTask(funcTask(func(ctx *kernel.Context) {
		ctx.SendToCapResult(ep.Restrict(kernel.RightSend), 0xFFFF, []byte("noise"), kernel.Capability{})
		logclient.Log(ctx, ep.Restrict(kernel.RightSend), "signal")
	}))

	select {
	case line := <-out.lines:
		if line != "signal" {
			t.Fatalf("got line %q, want %q", line, "signal")
		}
	case <-time.After(200 * time.Millisecond):
		t.Fatal("timed out waiting for log line")
	}

	stop(k, ep)
}

func TestServiceWritesLinesSentAfterShutdown(t *testing.T) {
	k := kernel.New()
	ep := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	out := &chanLogger{lines: make(chan string, 4)}

	k.AddTask(New(out, ep.Restrict(kernel.RightRecv)))
	k.AddTask(funcTask(func(ctx *kernel.Context) {
		for ctx.Sleep(1000) {
		}
		logclient.Log(ctx, ep.Restrict(kernel.RightSend), "cube: stopped")
	}))
	k.Shutdown()

	select {
	case line := <-out.lines:
		if line != "cube: stopped" {
			t.Fatalf("got line %q", line)
		}
	case <-time.After(200 * time.Millisecond):
		t.Fatal("line sent during shutdown was lost")
	}

	k.CloseEndpoint(ep)
	k.Wait()
}
