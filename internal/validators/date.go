package validators

import "time"

const dateLayout = "2006-01-02"

// IsCalendarDate aceita apenas datas de calendário (YYYY-MM-DD).
// Timestamps completos são rejeitados.
func IsCalendarDate(s string) bool {
	if len(s) != len(dateLayout) {
		return false
	}
	_, err := time.Parse(dateLayout, s)
	return err == nil
}
