package logger

import (
	"gyrocube/hal"
	"gyrocube/sys/kernel"
	"gyrocube/sys/proto"
)

// Service drains log lines from its endpoint into the platform logger.
//
// It outlives kernel shutdown: Run returns only once the endpoint is closed, so
// lines sent by tasks on their way out are still written.
type Service struct {
	log hal.Logger
	ep  kernel.Capability
}

func New(log hal.Logger, ep kernel.Capability) *Service {
	return &Service{log: log, ep: ep}
}

func (s *Service) Run(ctx *kernel.Context) {
	ch, ok := ctx.RecvChan(s.ep)
	if !ok {
		return
	}
	for msg := range ch {
		s.write(msg)
	}
}

func (s *Service) write(msg kernel.Message) {
	if s.log == nil {
		return
	}
	if proto.Kind(msg.Kind) != proto.MsgLogLine {
		return
	}
	s.log.WriteLineBytes(msg.Payload())
}
