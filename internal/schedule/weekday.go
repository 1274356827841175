package schedule

import "lectureroomfinder/internal/domain"

// weekdayNames maps the source-locale single-character day symbols to their
// canonical English names. This is the only place the translation lives;
// unmapped symbols are treated as fatal for the row that carries them, never
// coerced to a default day.
var weekdayNames = map[string]string{
	"월": domain.Monday,
	"화": domain.Tuesday,
	"수": domain.Wednesday,
	"목": domain.Thursday,
	"금": domain.Friday,
	"토": domain.Saturday,
	"일": domain.Sunday,
}

// CanonicalWeekday translates a day symbol to its canonical name. The second
// return is false for symbols outside the seven known ones.
func CanonicalWeekday(symbol string) (string, bool) {
	name, ok := weekdayNames[symbol]
	return name, ok
}
