// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package pagination builds the page-link row shown under admin list
// tables. Page numbers are zero-based, matching the backend's page model.
package pagination

// Item is one element of the page-link row: either a numbered link or an
// ellipsis placeholder for a collapsed range.
type Item struct {
	Page     int
	Ellipsis bool
	Current  bool
}

// Links generates the page-link row for a list with totalPages pages, the
// zero-based current page highlighted. The first and last pages are always
// pinned; a window of one page around the current page stays visible and
// gaps collapse into ellipses.
func Links(current, totalPages int) []Item {
	if totalPages <= 0 {
		return nil
	}

	items := []Item{{Page: 0, Current: current == 0}}

	start := max(1, current-1)
	end := min(totalPages-1, current+1)

	if start > 1 {
		items = append(items, Item{Ellipsis: true})
	}

	for i := start; i <= end; i++ {
		if i == 0 || i == totalPages-1 {
			continue
		}
		items = append(items, Item{Page: i, Current: i == current})
	}

	if end < totalPages-1 {
		items = append(items, Item{Ellipsis: true})
	}

	if totalPages > 1 {
		items = append(items, Item{Page: totalPages - 1, Current: current == totalPages-1})
	}

	return items
}
