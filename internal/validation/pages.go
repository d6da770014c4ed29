package validation

import (
	"slices"
	"strconv"
	"strings"
)

// ParsePageRanges expands a list such as "1-3, 5" into sorted unique page numbers.
// Parts that are malformed or outside 1..totalPages are skipped.
func ParsePageRanges(ranges string, totalPages int) []int {
	if strings.TrimSpace(ranges) == "" {
		return []int{}
	}

	seen := make(map[int]bool)
	pages := []int{}
	add := func(p int) {
		if !seen[p] {
			seen[p] = true
			pages = append(pages, p)
		}
	}

	for _, part := range strings.Split(ranges, ",") {
		part = strings.TrimSpace(part)
		if start, end, ok := strings.Cut(part, "-"); ok {
			s, err1 := strconv.Atoi(strings.TrimSpace(start))
			e, err2 := strconv.Atoi(strings.TrimSpace(end))
			if err1 != nil || err2 != nil {
				continue
			}
			if s < 1 || e > totalPages || s > e {
				continue
			}
			for p := s; p <= e; p++ {
				add(p)
			}
			continue
		}

		p, err := strconv.Atoi(part)
		if err != nil || p < 1 || p > totalPages {
			continue
		}
		add(p)
	}

	slices.Sort(pages)
	return pages
}
