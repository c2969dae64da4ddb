package report

// monthOrder fixes calendar ordering for the 3-letter month labels the views
// emit. Read-only after process start.
var monthOrder = map[string]int{
	"Jan": 1, "Feb": 2, "Mar": 3, "Apr": 4, "May": 5, "Jun": 6,
	"Jul": 7, "Aug": 8, "Sep": 9, "Oct": 10, "Nov": 11, "Dec": 12,
}

// monthRank sorts unknown labels last.
func monthRank(m string) int {
	if r, ok := monthOrder[m]; ok {
		return r
	}
	return 99
}
