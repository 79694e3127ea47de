package errors

import (
	"strings"

	"github.com/pingcap/errors"
)

// all queuelab errors
var (
	// queue library errors
	ErrEmptyQueue      = errors.Normalize("%s is empty", errors.RFCCodeText("QUEUELAB:ErrEmptyQueue"))
	ErrEmptyDeque      = errors.Normalize("Deque is empty", errors.RFCCodeText("QUEUELAB:ErrEmptyDeque"))
	ErrQueueEmpty      = errors.Normalize("Circular Queue is empty", errors.RFCCodeText("QUEUELAB:ErrQueueEmpty"))
	ErrQueueFull       = errors.Normalize("Circular Queue is full, capacity %d", errors.RFCCodeText("QUEUELAB:ErrQueueFull"))
	ErrInvalidCapacity = errors.Normalize("invalid capacity %d, must be between 1 and %d", errors.RFCCodeText("QUEUELAB:ErrInvalidCapacity"))
	ErrUnknownKind     = errors.Normalize("unknown structure kind %s", errors.RFCCodeText("QUEUELAB:ErrUnknownKind"))

	// list errors
	ErrPositionOutOfRange = errors.Normalize("node not found at position %d", errors.RFCCodeText("QUEUELAB:ErrPositionOutOfRange"))

	// session errors
	ErrInvalidInput         = errors.Normalize("please enter a valid integer, got %q", errors.RFCCodeText("QUEUELAB:ErrInvalidInput"))
	ErrUnknownCommand       = errors.Normalize("unknown command %s", errors.RFCCodeText("QUEUELAB:ErrUnknownCommand"))
	ErrCommandArgs          = errors.Normalize("command %s expects %d argument(s), got %d", errors.RFCCodeText("QUEUELAB:ErrCommandArgs"))
	ErrUnsupportedOperation = errors.Normalize("%s does not support %s", errors.RFCCodeText("QUEUELAB:ErrUnsupportedOperation"))
	ErrSessionClosed        = errors.Normalize("session %s is closed", errors.RFCCodeText("QUEUELAB:ErrSessionClosed"))

	// compare errors
	ErrCompareNoKinds = errors.Normalize("at least two kinds are required to compare, got %d", errors.RFCCodeText("QUEUELAB:ErrCompareNoKinds"))

	// config related errors
	ErrConfigParseFlagSet  = errors.Normalize("parse config flag set failed", errors.RFCCodeText("QUEUELAB:ErrConfigParseFlagSet"))
	ErrConfigDecodeFile    = errors.Normalize("decode config file failed", errors.RFCCodeText("QUEUELAB:ErrConfigDecodeFile"))
	ErrConfigUnknownItem   = errors.Normalize("unknown config items: %s", errors.RFCCodeText("QUEUELAB:ErrConfigUnknownItem"))
	ErrConfigInvalidValue  = errors.Normalize("invalid config value %s: %v", errors.RFCCodeText("QUEUELAB:ErrConfigInvalidValue"))
	ErrConfigEncode        = errors.Normalize("encode config to toml failed", errors.RFCCodeText("QUEUELAB:ErrConfigEncode"))
	ErrScriptRead          = errors.Normalize("read script %s failed", errors.RFCCodeText("QUEUELAB:ErrScriptRead"))
	ErrLoggerInitFailed    = errors.Normalize("init logger failed", errors.RFCCodeText("QUEUELAB:ErrLoggerInitFailed"))
)

// Wrap wraps err with a normalized error, args format the normalized message.
// It returns nil if err is nil.
func Wrap(rfcError *errors.Error, err error, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return rfcError.Wrap(err).GenWithStackByArgs(args...)
}

// IsEmpty reports whether err is one of the "no element present" conditions.
func IsEmpty(err error) bool {
	return ErrEmptyQueue.Equal(err) || ErrEmptyDeque.Equal(err) || ErrQueueEmpty.Equal(err)
}

// Message returns the human readable part of err, without the
// normalized error code prefix.
func Message(err error) string {
	msg := err.Error()
	if strings.HasPrefix(msg, "[") {
		if i := strings.Index(msg, "]"); i > 0 {
			return msg[i+1:]
		}
	}
	return msg
}
