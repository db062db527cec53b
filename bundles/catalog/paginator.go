package catalog

import (
	"sort"
	"strconv"
)

// PageSize is the fixed number of items per catalog page.
const PageSize = 24

// Page is one page of a catalog listing.
type Page struct {
	Items      Items `json:"items"`
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	TotalPages int   `json:"total_pages"`
	TotalItems int   `json:"total_items"`
}

// Paginate slices items into a fixed-size page.
//
// Page selection is forgiving: a non-numeric or missing page argument maps
// to the first page, and anything beyond the end clamps to the last page.
// Browsing can never produce a pagination error.
func Paginate(items Items, pageArg string) *Page {
	totalItems := len(items)
	totalPages := (totalItems + PageSize - 1) / PageSize
	if totalPages < 1 {
		totalPages = 1
	}

	page, err := strconv.Atoi(pageArg)
	if err != nil || page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * PageSize
	end := start + PageSize
	if start > totalItems {
		start = totalItems
	}
	if end > totalItems {
		end = totalItems
	}

	return &Page{
		Items:      items[start:end],
		Page:       page,
		PerPage:    PageSize,
		TotalPages: totalPages,
		TotalItems: totalItems,
	}
}

// SortByNewest orders items by creation time, newest first.
func SortByNewest(items Items) Items {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items
}
