package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderFill renders how far n reaches into [0, limit] as a compact bar
// like ████░░░░ 8/20. The bar turns yellow past two thirds and red at the
// limit.
func RenderFill(n, limit, width int) string {
	width = max(width, 2)
	if limit <= 0 {
		return Dim(strings.Repeat(emptyBlock, width))
	}
	pct := min(max(float64(n)/float64(limit), 0), 1)
	filled := min(int(pct*float64(width)), width)

	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	switch {
	case pct >= 1:
		style = StyleRed
	case pct > 0.66:
		style = StyleYellow
	}
	return fmt.Sprintf("%s %s", style.Render(bar), Dim(fmt.Sprintf("%d/%d", n, limit)))
}
