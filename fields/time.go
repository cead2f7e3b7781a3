package fields

import (
	"fmt"
	"time"

	"github.com/AntonioAngelino/jsonmodels"
)

// Wire layouts for the temporal field kinds.
const (
	timeLayout = "15:04:05"
	dateLayout = "2006-01-02"
)

// Time declares a time-of-day field ("HH:MM:SS" strings or time.Time values);
// the schema carries format "time".
func Time() *Field { return &Field{kind: kindTime} }

// Date declares a calendar date field ("YYYY-MM-DD" strings or time.Time
// values); the schema carries format "date".
func Date() *Field { return &Field{kind: kindDate} }

// DateTime declares an RFC 3339 timestamp field; the schema carries format
// "date-time".
func DateTime() *Field { return &Field{kind: kindDateTime} }

func (f *Field) checkTemporal(value any) error {
	switch v := value.(type) {
	case time.Time:
		return nil
	case string:
		if _, err := time.Parse(f.temporalLayout(), v); err != nil {
			return jsonmodels.NewValidationError(
				jsonmodels.CodeInvalidFormat,
				fmt.Sprintf("value %q is not a valid %s", v, f.formatName()),
				map[string]any{"format": f.formatName(), "value": v},
			)
		}
		return nil
	}
	return f.invalidType(value)
}

func (f *Field) temporalLayout() string {
	switch f.kind {
	case kindTime:
		return timeLayout
	case kindDate:
		return dateLayout
	}
	return time.RFC3339
}
