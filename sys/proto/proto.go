package proto

// Kind identifies the message type carried in kernel.Message.Kind.
type Kind uint16

const (
	MsgLogLine Kind = iota + 1
)

func (k Kind) String() string {
	switch k {
	case MsgLogLine:
		return "log_line"
	default:
		return "unknown"
	}
}
