package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger. It is usable before Init with logrus
// defaults so packages and tests can log without setup.
var Log = logrus.New()

// Init configures Log. Unknown levels fall back to info; format "json"
// selects the JSON formatter, anything else the text formatter.
func Init(level, format string) {
	InitTo(os.Stdout, level, format)
}

func InitTo(out io.Writer, level, format string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Log.SetLevel(lvl)

	if strings.ToLower(format) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	Log.SetOutput(out)
}

// System returns an entry tagged with the system name.
func System(name string) *logrus.Entry {
	return Log.WithField("system", name)
}
