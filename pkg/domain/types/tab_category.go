package types

import "github.com/m-mizutani/goerr/v2"

// TabCategory represents the workflow bucket a record currently belongs to.
// The three buckets partition the record set per dashboard.
type TabCategory string

const (
	TabCategoryOwn     TabCategory = "own"
	TabCategoryAssess  TabCategory = "assess"
	TabCategoryApprove TabCategory = "approve"
)

// AllTabCategories returns all valid tab categories
func AllTabCategories() []TabCategory {
	return []TabCategory{
		TabCategoryOwn,
		TabCategoryAssess,
		TabCategoryApprove,
	}
}

// IsValid checks if the tab category is valid
func (c TabCategory) IsValid() bool {
	switch c {
	case TabCategoryOwn, TabCategoryAssess, TabCategoryApprove:
		return true
	default:
		return false
	}
}

// String returns the string representation of the tab category
func (c TabCategory) String() string {
	return string(c)
}

// ParseTabCategory parses a string into a TabCategory
func ParseTabCategory(s string) (TabCategory, error) {
	category := TabCategory(s)
	if !category.IsValid() {
		return "", goerr.New("invalid tab category", goerr.V("category", s))
	}
	return category, nil
}
