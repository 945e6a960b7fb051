package state

import "strconv"

func formatInt(v int) string {
	return strconv.Itoa(v)
}

// formatFloat renders a weight without trailing zero noise: 60 -> "60",
// 62.5 -> "62.5".
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
