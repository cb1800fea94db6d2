package logging

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

// TimestampFormat is the default record timestamp layout.
const TimestampFormat = "2006-01-02 15:04:05,000"

var levelColors = map[logrus.Level]*color.Color{
	logrus.PanicLevel: color.New(color.FgRed, color.Bold),
	logrus.FatalLevel: color.New(color.FgRed, color.Bold),
	logrus.ErrorLevel: color.New(color.FgRed),
	logrus.WarnLevel:  color.New(color.FgYellow),
	logrus.InfoLevel:  color.New(color.FgGreen),
	logrus.DebugLevel: color.New(color.Faint),
	logrus.TraceLevel: color.New(color.Faint),
}

// Formatter renders entries as "time | LEVEL | name | message key=value...".
type Formatter struct {
	// Name is the logger name column.
	Name string
	// TimestampFormat overrides the default layout when set.
	TimestampFormat string
	// Color highlights the level column.
	Color bool
}

// Format implements logrus.Formatter.
func (f *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	layout := f.TimestampFormat
	if layout == "" {
		layout = TimestampFormat
	}

	level := strings.ToUpper(entry.Level.String())
	if f.Color {
		if c, ok := levelColors[entry.Level]; ok {
			level = c.Sprint(level)
		}
	}

	var b bytes.Buffer
	b.WriteString(entry.Time.Format(layout))
	b.WriteString(" | ")
	b.WriteString(level)
	b.WriteString(" | ")
	b.WriteString(f.Name)
	b.WriteString(" | ")
	b.WriteString(entry.Message)

	if len(entry.Data) > 0 {
		keys := make([]string, 0, len(entry.Data))
		for k := range entry.Data {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, " %s=%v", k, entry.Data[k])
		}
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}
