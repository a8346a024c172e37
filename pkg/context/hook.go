package context

import (
	"cloud.google.com/go/logging"
	"github.com/sirupsen/logrus"
)

// cloudHook mirrors logrus entries to a Cloud Logging log.
type cloudHook struct {
	logger *logging.Logger
}

func (h *cloudHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *cloudHook) Fire(e *logrus.Entry) error {
	h.logger.Log(logging.Entry{
		Timestamp: e.Time,
		Severity:  severity(e.Level),
		Payload:   payload(e),
	})
	return nil
}

func payload(e *logrus.Entry) map[string]interface{} {
	p := make(map[string]interface{}, len(e.Data)+1)
	for k, v := range e.Data {
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		p[k] = v
	}
	p["message"] = e.Message
	return p
}

func severity(level logrus.Level) logging.Severity {
	switch level {
	case logrus.PanicLevel:
		return logging.Alert
	case logrus.FatalLevel:
		return logging.Critical
	case logrus.ErrorLevel:
		return logging.Error
	case logrus.WarnLevel:
		return logging.Warning
	case logrus.InfoLevel:
		return logging.Info
	default:
		return logging.Debug
	}
}
