package scrape

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"agroapi/internal/domain"
)

// Upstream pages publish Buenos Aires times without zone information. The
// shift is a fixed constant, three hours west of UTC, not derived from the
// timestamp's real zone.
const buenosAiresOffset = -3 * time.Hour

var weekdayNames = [...]string{
	time.Sunday:    "domingo",
	time.Monday:    "lunes",
	time.Tuesday:   "martes",
	time.Wednesday: "miércoles",
	time.Thursday:  "jueves",
	time.Friday:    "viernes",
	time.Saturday:  "sábado",
}

// currencyTokens are stripped before numeric parsing, longest first so that
// "U$S" is consumed before the bare "$".
var currencyTokens = []string{"U$S", "u$s", "US$", "$", "%", " "}

// ParseLocaleNumber parses a number formatted with "." as thousands
// separator and "," as decimal separator, e.g. "248.000,00". Currency and
// percent symbols are stripped first. Anything left that is not a valid
// number yields a NormalizationError.
func ParseLocaleNumber(s string) (float64, error) {
	cleaned := s
	for _, tok := range currencyTokens {
		cleaned = strings.ReplaceAll(cleaned, tok, "")
	}
	cleaned = strings.TrimSpace(cleaned)
	cleaned = strings.ReplaceAll(cleaned, ".", "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, &domain.NormalizationError{Input: s, Err: err}
	}
	return value, nil
}

// CapitalizeFirst uppercases the first rune and leaves the rest untouched.
func CapitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// DayName returns the Spanish weekday name for a Unix timestamp, capitalized.
// The weekday is taken in the fixed Buenos Aires offset.
func DayName(timestamp int64) string {
	t := time.Unix(timestamp, 0).UTC().Add(buenosAiresOffset)
	return CapitalizeFirst(weekdayNames[t.Weekday()])
}

// BuenosAiresTime shifts t by the fixed upstream offset, for consultation
// timestamps echoed in responses.
func BuenosAiresTime(t time.Time) time.Time {
	return t.UTC().Add(buenosAiresOffset)
}

// ClockVariant selects between the two time-of-day renderings the upstream
// system used interchangeably. Both are kept; neither is authoritative.
type ClockVariant string

const (
	// ClockFixedOffset shifts the timestamp by the fixed Buenos Aires
	// offset and renders a 24-hour clock.
	ClockFixedOffset ClockVariant = "fixed"
	// ClockMachineLocal renders the machine-local time on a 12-hour clock
	// with AM/PM, without any offset.
	ClockMachineLocal ClockVariant = "local"
)

// FormatClock renders a Unix timestamp as a time of day per the variant.
func FormatClock(timestamp int64, variant ClockVariant) string {
	if variant == ClockMachineLocal {
		return formatLocalClock(time.Unix(timestamp, 0))
	}
	return time.Unix(timestamp, 0).UTC().Add(buenosAiresOffset).Format("15:04")
}

func formatLocalClock(t time.Time) string {
	hours := t.Hour()
	meridiem := "AM"
	if hours >= 12 {
		meridiem = "PM"
	}
	hours = hours % 12
	if hours == 0 {
		hours = 12
	}
	return fmt.Sprintf("%d:%02d %s", hours, t.Minute(), meridiem)
}

// FoldForMatch lowercases s and folds accented vowels so that user-supplied
// filters like "fabrica" match products like "Fábrica". The ñ is kept as-is.
func FoldForMatch(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch r {
		case 'á':
			b.WriteRune('a')
		case 'é':
			b.WriteRune('e')
		case 'í':
			b.WriteRune('i')
		case 'ó':
			b.WriteRune('o')
		case 'ú', 'ü':
			b.WriteRune('u')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// MatchesFilter reports whether value contains the filter term, ignoring
// case and vowel accents. An empty filter matches everything.
func MatchesFilter(value, filter string) bool {
	if filter == "" {
		return true
	}
	return strings.Contains(FoldForMatch(value), FoldForMatch(filter))
}
