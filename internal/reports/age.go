package reports

import (
	"fmt"
	"time"
)

// RelativeAge renders how long ago a note was written, in whole hours.
func RelativeAge(createdAt, now time.Time) string {
	hours := int(now.Sub(createdAt) / time.Hour)
	switch {
	case hours < 1:
		return "Ahora"
	case hours == 1:
		return "Hace 1 hora"
	case hours < 24:
		return fmt.Sprintf("Hace %d horas", hours)
	case hours < 48:
		return "Ayer"
	default:
		return fmt.Sprintf("Hace %d días", hours/24)
	}
}
