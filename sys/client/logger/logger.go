package logger

import (
	"fmt"

	"gyrocube/sys/kernel"
	"gyrocube/sys/proto"
)

// Log sends a log line to the logger service.
//
// The call is best-effort: it may drop on queue full.
func Log(ctx *kernel.Context, logCap kernel.Capability, line string) kernel.SendResult {
	if ctx == nil {
		return kernel.SendErrInvalidFromCap
	}
	payload := proto.LogLinePayload(line, kernel.MaxMessageBytes)
	return ctx.SendToCapResult(logCap, uint16(proto.MsgLogLine), payload, kernel.Capability{})
}

// Logf formats and sends a log line. See Log.
func Logf(ctx *kernel.Context, logCap kernel.Capability, format string, args ...any) kernel.SendResult {
	return Log(ctx, logCap, fmt.Sprintf(format, args...))
}

// LogRetry sends a log line, waiting up to limit ticks for mailbox space.
func LogRetry(ctx *kernel.Context, logCap kernel.Capability, line string, limit uint32) error {
	if ctx == nil {
		return fmt.Errorf("logger retry: nil context")
	}
	payload := proto.LogLinePayload(line, kernel.MaxMessageBytes)
	res := ctx.SendToCapRetry(logCap, uint16(proto.MsgLogLine), payload, kernel.Capability{}, limit)
	if res != kernel.SendOK {
		return fmt.Errorf("logger send: %s", res)
	}
	return nil
}
