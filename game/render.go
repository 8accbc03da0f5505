package game

import (
	"strconv"
	"strings"
)

// Render draws b one row per line as "<red score> <cells> <blue score>".
// Cards show as R or B, pawns as their count and empty cells as _.
func Render(b *Board) string {
	var sb strings.Builder
	for row := 0; row < b.rows; row++ {
		red, _ := b.RowScore(Red, row)
		blue, _ := b.RowScore(Blue, row)

		sb.WriteString(strconv.Itoa(red))
		sb.WriteByte(' ')
		for col := 0; col < b.cols; col++ {
			sb.WriteByte(glyph(b.cells[row][col]))
		}
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(blue))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func glyph(c Cell) byte {
	switch {
	case c.HasCard() && c.Owner() == Red:
		return 'R'
	case c.HasCard():
		return 'B'
	case c.Pawns() > 0:
		return byte('0' + c.Pawns())
	default:
		return '_'
	}
}
