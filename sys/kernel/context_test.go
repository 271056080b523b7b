package kernel

import "testing"

func TestContextRecvChanClosed(t *testing.T) {
	k := New()
	cap := k.NewEndpoint(RightSend | RightRecv)
	if !cap.Valid() {
		t.Fatal("expected valid capability")
	}

	ctx := &Context{k: k}
	ch, ok := ctx.RecvChan(cap.Restrict(RightRecv))
	if !ok || ch == nil {
		t.Fatal("expected recv channel")
	}
	if res := ctx.SendToCapResult(cap.Restrict(RightSend), 7, []byte("queued"), Capability{}); res != SendOK {
		t.Fatalf("SendToCapResult() = %s", res)
	}

	k.CloseEndpoint(cap)

	msg, ok := <-ch
	if !ok || msg.Kind != 7 || string(msg.Payload()) != "queued" {
		t.Fatalf("expected queued message before close, got %+v ok=%v", msg, ok)
	}
	if _, ok := <-ch; ok {
		t.Fatal("expected channel closed after drain")
	}
}

func TestContextSendClosed(t *testing.T) {
	k := New()
	cap := k.NewEndpoint(RightSend | RightRecv)
	if !cap.Valid() {
		t.Fatal("expected valid capability")
	}

	ctx := &Context{k: k}
	k.CloseEndpoint(cap)
	k.CloseEndpoint(cap)

	res := ctx.SendToCapResult(cap.Restrict(RightSend), 1, []byte("x"), Capability{})
	if res != SendErrNoEndpoint {
		t.Fatalf("expected SendErrNoEndpoint, got %s", res)
	}
}

func TestContextRecvWithoutRight(t *testing.T) {
	k := New()
	cap := k.NewEndpoint(RightSend | RightRecv)

	ctx := &Context{k: k}
	if _, ok := ctx.RecvChan(cap.Restrict(RightSend)); ok {
		t.Fatal("expected RecvChan to reject send-only capability")
	}
	if res := ctx.SendToCapResult(cap.Restrict(RightRecv), 1, nil, Capability{}); res != SendErrToNoSendRight {
		t.Fatalf("expected SendErrToNoSendRight, got %s", res)
	}
}

func TestSendPayloadTooLarge(t *testing.T) {
	k := New()
	cap := k.NewEndpoint(RightSend | RightRecv)

	ctx := &Context{k: k}
	res := ctx.SendToCapResult(cap, 1, make([]byte, MaxMessageBytes+1), Capability{})
	if res != SendErrPayloadTooLarge {
		t.Fatalf("expected SendErrPayloadTooLarge, got %s", res)
	}
}

func TestKernelDone(t *testing.T) {
	k := New()
	select {
	case <-k.Done():
		t.Fatal("Done closed before Shutdown")
	default:
	}
	k.Shutdown()
	k.Shutdown()
	<-k.Done()
}
