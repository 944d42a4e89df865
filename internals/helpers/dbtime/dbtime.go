// file: internals/helpers/dbtime/dbtime.go
package dbtime

import (
	"sync"
	"time"
	_ "time/tzdata"

	"github.com/goodsign/monday"
)

const TZName = "Asia/Jakarta"

var (
	wibOnce sync.Once
	wib     *time.Location
)

// WIB: lokasi Asia/Jakarta, fallback FixedZone +7 kalau tzdata tidak ada.
func WIB() *time.Location {
	wibOnce.Do(func() {
		loc, err := time.LoadLocation(TZName)
		if err != nil {
			loc = time.FixedZone(TZName, 7*3600)
		}
		wib = loc
	})
	return wib
}

// ToWIB mengonversi waktu dari DB (UTC) ke WIB. Zero time dikembalikan apa adanya.
func ToWIB(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.In(WIB())
}

func format(t time.Time, layout string) string {
	if t.IsZero() {
		return "-"
	}
	return monday.Format(ToWIB(t), layout, monday.LocaleIdID)
}

// FormatDate: "2 Januari 2025"
func FormatDate(t time.Time) string { return format(t, "2 January 2006") }

// FormatDateLong: "Kamis, 2 Januari 2025"
func FormatDateLong(t time.Time) string { return format(t, "Monday, 2 January 2006") }

// FormatMonthYear: "Januari 2025"
func FormatMonthYear(t time.Time) string { return format(t, "January 2006") }

// FormatClock: "08.30" (gaya penulisan jam Indonesia)
func FormatClock(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return ToWIB(t).Format("15.04")
}

// CalendarBadge: tanggal + bulan singkat untuk kartu agenda ("02", "Jan").
func CalendarBadge(t time.Time) (day, month string) {
	if t.IsZero() {
		return "-", "-"
	}
	w := ToWIB(t)
	return w.Format("02"), monday.Format(w, "Jan", monday.LocaleIdID)
}
