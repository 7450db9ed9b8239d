package bajaj

import "strings"

// ToDBDate converts dd/MM/yyyy to yyyy-MM-dd for the store by splitting on
// "/" and reassembling. Anything without exactly three parts maps to NULL.
func ToDBDate(dateStr string) any {
	if dateStr == "" {
		return nil
	}
	parts := strings.Split(dateStr, "/")
	if len(parts) != 3 {
		return nil
	}
	return parts[2] + "-" + parts[1] + "-" + parts[0]
}
