package settings

// HistoryCap bounds the upload history. Appending beyond the bound
// evicts the oldest entries from the tail.
const HistoryCap = 100

// prependBounded inserts rec at the front of list, newest first, and
// trims the tail down to limit entries.
func prependBounded(list []UploadRecord, rec UploadRecord, limit int) []UploadRecord {
	out := make([]UploadRecord, 0, len(list)+1)
	out = append(out, rec)
	out = append(out, list...)
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
