package core

import (
	"strconv"
	"time"
)

// id-ID calendar names. The app is single-locale, so these live here rather
// than behind a localization layer.
var (
	weekdayNames = [...]string{"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}
	monthNames   = [...]string{"Januari", "Februari", "Maret", "April", "Mei", "Juni",
		"Juli", "Agustus", "September", "Oktober", "November", "Desember"}
)

// FormatDayLabel renders the day-group heading, e.g. "Senin, 2 Januari".
func FormatDayLabel(t time.Time) string {
	return weekdayNames[int(t.Weekday())] + ", " +
		strconv.Itoa(t.Day()) + " " + monthNames[int(t.Month())-1]
}

// FormatLongDate renders a full date, e.g. "Jumat, 29 Agustus 2025".
func FormatLongDate(t time.Time) string {
	return FormatDayLabel(t) + " " + strconv.Itoa(t.Year())
}

// FormatShortDate renders the compact id-ID form, e.g. "29/8/2025".
func FormatShortDate(t time.Time) string {
	return strconv.Itoa(t.Day()) + "/" + strconv.Itoa(int(t.Month())) + "/" + strconv.Itoa(t.Year())
}
