package util

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

// TrimmedForm returns the named form field with surrounding space removed.
func TrimmedForm(c *gin.Context, name string) string {
	return strings.TrimSpace(c.PostForm(name))
}

// SplitLines splits a textarea value on newlines, trims each line and drops
// the empty ones. Order is preserved.
func SplitLines(s string) []string {
	lines := lo.Map(strings.Split(s, "\n"), func(line string, _ int) string {
		return strings.TrimSpace(line)
	})
	return lo.Filter(lines, func(line string, _ int) bool {
		return line != ""
	})
}
