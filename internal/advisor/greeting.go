package advisor

import "time"

// Greeting returns a time-of-day-appropriate opener. Morning runs until
// noon, afternoon until 17:00.
func Greeting(now time.Time) string {
	switch h := now.Hour(); {
	case h < 12:
		return "Good morning! What business goals should we drive today?"
	case h < 17:
		return "Good afternoon! Let’s review sales, costs, or projects."
	default:
		return "Good evening! Ready to plan next moves and improve margins?"
	}
}
