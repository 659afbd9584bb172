package db

import "strconv"

// DefaultPageSize is used when no page size was configured.
const DefaultPageSize = 10

// ParsePage turns a raw ?page= query value into a page number. Absent or
// non-numeric values default to the first page.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// NumPages reports how many pages a collection of total items spans. An
// empty collection still has one (empty) page.
func NumPages(total int64, pageSize int) int {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	n := int((total + int64(pageSize) - 1) / int64(pageSize))
	if n < 1 {
		n = 1
	}
	return n
}

// ClampPage clamps a requested page to the collection's last page and
// returns the effective page number and row offset. Out-of-range requests
// never error, they land on the last page.
func ClampPage(page, pageSize int, total int64) (int, int) {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}
	if last := NumPages(total, pageSize); page > last {
		page = last
	}
	return page, (page - 1) * pageSize
}
