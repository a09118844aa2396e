package utils

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Logger is shared by every package of the service.
var Logger = logrus.New()

// servicePrefixHook prefixes each message with the service name.
type servicePrefixHook struct {
	service string
}

func (h servicePrefixHook) Levels() []logrus.Level { return logrus.AllLevels }

func (h servicePrefixHook) Fire(e *logrus.Entry) error {
	e.Message = "[" + h.service + "] " + e.Message
	return nil
}

func levelFromEnv() (logrus.Level, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv("LOG_LEVEL")))
	if raw == "" {
		return logrus.InfoLevel, true
	}
	lvl, err := logrus.ParseLevel(raw)
	if err != nil {
		return logrus.InfoLevel, false
	}
	return lvl, true
}

// InitLogger configures Logger from LOG_LEVEL (default info) and
// LOG_FORMAT ("json" for structured output, text otherwise).
func InitLogger(service string) {
	Logger.SetOutput(os.Stdout)

	if strings.EqualFold(os.Getenv("LOG_FORMAT"), "json") {
		Logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	lvl, ok := levelFromEnv()
	Logger.SetLevel(lvl)
	if !ok {
		Logger.Warnf("Unrecognised LOG_LEVEL %q, using info", os.Getenv("LOG_LEVEL"))
	}

	Logger.AddHook(servicePrefixHook{service: service})
}
