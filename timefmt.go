package linecharts

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"bitbucket.org/tebeka/strftime"
)

// EpochUnit is the unit of temporal values on the x axis.
type EpochUnit int

const (
	Second EpochUnit = iota
	Day
)

const secondsPerDay = 86400

const DefaultDateFormat = "%Y-%m-%d"

// DateFormat converts entry keys to epoch values and epoch values back to
// labels with the same strftime pattern.
type DateFormat struct {
	Pattern  string
	Location *time.Location
	Unit     EpochUnit

	layout string
}

func DefaultDate() DateFormat {
	d, _ := NewDateFormat(DefaultDateFormat, time.UTC, Second)
	return d
}

// NewDateFormat checks pattern and prepares the layout used to parse keys.
// Literal text in pattern must not hold digits or the words Jan, Mon, MST, PM
// and pm.
func NewDateFormat(pattern string, loc *time.Location, unit EpochUnit) (DateFormat, error) {
	if pattern == "" {
		pattern = DefaultDateFormat
	}
	if loc == nil {
		loc = time.UTC
	}
	layout, err := parseFormat(pattern)
	if err != nil {
		return DateFormat{}, err
	}
	d := DateFormat{
		Pattern:  pattern,
		Location: loc,
		Unit:     unit,
		layout:   layout,
	}
	return d, nil
}

// Parse returns the epoch value of str or NaN with an error when str does not
// match the pattern.
func (d DateFormat) Parse(str string) (float64, error) {
	w, err := time.ParseInLocation(d.layout, strings.TrimSpace(str), d.location())
	if err != nil {
		return math.NaN(), err
	}
	secs := float64(w.Unix())
	if d.Unit == Day {
		return secs / secondsPerDay, nil
	}
	return secs, nil
}

func (d DateFormat) Time(v float64) time.Time {
	if d.Unit == Day {
		v *= secondsPerDay
	}
	sec, frac := math.Modf(v)
	return time.Unix(int64(sec), int64(frac*1e9)).In(d.location())
}

func (d DateFormat) Format(v float64) string {
	str, err := strftime.Format(d.Pattern, d.Time(v))
	if err != nil {
		return d.Time(v).Format(d.layout)
	}
	return str
}

func (d DateFormat) location() *time.Location {
	if d.Location == nil {
		return time.UTC
	}
	return d.Location
}

const percent = '%'

var specifiers = map[rune]string{
	'D': "01/02/06",
	'Y': "2006",
	'y': "06",
	'm': "01",
	'B': "January",
	'b': "Jan",
	'h': "Jan",
	'd': "02",
	'e': "_2",
	'j': "002",
	'A': "Monday",
	'a': "Mon",
	'H': "15",
	'I': "03",
	'M': "04",
	'S': "05",
	'p': "PM",
	'T': "15:04:05",
	'F': "2006-01-02",
	'z': "-0700",
	'Z': "MST",
	'R': "15:04",
	'%': "%",
}

// layoutTokens are the words the time package reads as date elements. Digits
// are layout elements too.
var layoutTokens = []string{"Jan", "Mon", "MST", "PM", "pm"}

// parseFormat converts a strftime pattern to a layout usable by the time
// package. The time package can not escape literal text, so literals that it
// would read as date elements are rejected.
func parseFormat(str string) (string, error) {
	var (
		r   = strings.NewReader(str)
		w   strings.Builder
		lit strings.Builder
	)
	flush := func() error {
		if err := checkLiteral(lit.String()); err != nil {
			return err
		}
		w.WriteString(lit.String())
		lit.Reset()
		return nil
	}
	for r.Len() > 0 {
		x, _, _ := r.ReadRune()
		if x == utf8.RuneError {
			return "", fmt.Errorf("invalid character found in date format")
		}
		if x != percent {
			lit.WriteRune(x)
			continue
		}
		x, _, err := r.ReadRune()
		if err != nil {
			return "", fmt.Errorf("date format ends with a lone %c", percent)
		}
		spec, ok := specifiers[x]
		if !ok {
			return "", fmt.Errorf("invalid specifier found %c", x)
		}
		if x == percent {
			lit.WriteString(spec)
			continue
		}
		if err := flush(); err != nil {
			return "", err
		}
		w.WriteString(spec)
	}
	if err := flush(); err != nil {
		return "", err
	}
	return w.String(), nil
}

func checkLiteral(str string) error {
	if strings.ContainsAny(str, "0123456789") {
		return fmt.Errorf("literal %q contains digits read as date elements", str)
	}
	for _, tok := range layoutTokens {
		if strings.Contains(str, tok) {
			return fmt.Errorf("literal %q contains %q read as a date element", str, tok)
		}
	}
	return nil
}
