package locale

import "github.com/alexisbeaulieu97/datepick/internal/calkey"

// weekOf numbers weeks that start on firstDay. Each week belongs to the year
// of its fourth day, so week 1 is the first week with at least four days in
// January. With firstDay = Monday this is exactly ISO-8601.
func weekOf(d calkey.Date, firstDay int) (year, week int) {
	offset := calkey.Mod(d.Weekday()-firstDay, 7)
	anchor := d.AddDays(3 - offset)
	return anchor.Year, (anchor.YearDay()-1)/7 + 1
}
