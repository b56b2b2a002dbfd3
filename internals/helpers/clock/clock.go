package clock

import "time"

// Clock mengabstraksi "now" supaya engine absensi deterministik saat dites.
// Produksi pakai Real; test pakai fungsi dengan waktu tetap.
type Clock func() time.Time

// Real membaca jam sistem (UTC, biar konsisten dengan kolom timestamptz)
func Real() time.Time {
	return time.Now().UTC()
}
