package adapter

import (
	"github.com/rs/zerolog"
	"github.com/twmb/franz-go/pkg/kgo"

	"github.com/pcvolkmer/dnpm-kafka-rest-proxy/internal/logger"
)

// kafkaLogger forwards franz-go client logs to the application logger.
type kafkaLogger struct {
	logger *logger.Logger
}

func newKafkaLogger(l *logger.Logger) kgo.Logger {
	return &kafkaLogger{logger: &logger.Logger{Logger: l.With().Str("component", "kafka").Logger()}}
}

func (k *kafkaLogger) Level() kgo.LogLevel {
	switch lvl := k.logger.GetLevel(); {
	case lvl == zerolog.Disabled:
		return kgo.LogLevelNone
	case lvl <= zerolog.DebugLevel:
		return kgo.LogLevelDebug
	case lvl == zerolog.InfoLevel:
		return kgo.LogLevelInfo
	case lvl == zerolog.WarnLevel:
		return kgo.LogLevelWarn
	default:
		return kgo.LogLevelError
	}
}

func (k *kafkaLogger) Log(level kgo.LogLevel, msg string, keyvals ...any) {
	var event *zerolog.Event
	switch level {
	case kgo.LogLevelError:
		event = k.logger.Error()
	case kgo.LogLevelWarn:
		event = k.logger.Warn()
	case kgo.LogLevelInfo:
		event = k.logger.Info()
	case kgo.LogLevelDebug:
		event = k.logger.Debug()
	default:
		return
	}

	event.Fields(keyvals).Msg(msg)
}
