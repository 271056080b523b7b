package kernel

// PanicInfo describes a task that panicked.
type PanicInfo struct {
	TaskID TaskID
	Value  any
	Stack  []byte
}

// SetPanicHandler installs fn as this kernel's panic hook.
//
// Only the first task panic reaches fn; later ones are recovered silently so the
// panic screen stays up. fn must not panic.
func (k *Kernel) SetPanicHandler(fn func(PanicInfo)) {
	k.mu.Lock()
	k.onPanic = fn
	k.mu.Unlock()
}

// Panicked reports whether any task has panicked.
func (k *Kernel) Panicked() bool {
	return k.panicked.Load()
}

func (k *Kernel) recoverTask(id TaskID, v any) {
	if k.panicked.Swap(true) {
		return
	}
	k.mu.Lock()
	fn := k.onPanic
	k.mu.Unlock()
	if fn != nil {
		fn(PanicInfo{TaskID: id, Value: v, Stack: captureStack()})
	}
}
