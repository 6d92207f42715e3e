package format

import "github.com/dlclark/regexp2"

// isoDatePattern accepts calendar, week and ordinal dates with an optional
// time of day and UTC offset. Back-references must match empty when their
// group did not participate, hence ECMAScript semantics.
const isoDatePattern = `^(?:[-+]\d{2})?(?:\d{4}(?!\d{2}\b))(?:(-?)(?:(?:0[1-9]|1[0-2])(?:\1(?:[12]\d|0[1-9]|3[01]))?|W(?:[0-4]\d|5[0-2])(?:-?[1-7])?|(?:00[1-9]|0[1-9]\d|[12]\d{2}|3(?:[0-5]\d|6[1-6])))(?![T]$|[T][\d]+Z$)(?:[T\s](?:(?:(?:[01]\d|2[0-3])(?:(:?)[0-5]\d)?|24:?00)(?:[.,]\d+(?!:))?)(?:\2[0-5]\d(?:[.,]\d+)?)?(?:[Z]|(?:[+-])(?:[01]\d|2[0-3])(?::?[0-5]\d)?)?)?)?$`

var isoDateRe = regexp2.MustCompile(isoDatePattern, regexp2.ECMAScript)

// IsISODate reports whether s is an ISO-8601 date or date-time string.
func IsISODate(s string) bool {
	ok, err := isoDateRe.MatchString(s)
	return err == nil && ok
}
