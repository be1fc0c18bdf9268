package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/tetris"
)

var piecesCmd = &cobra.Command{
	Use:   "pieces",
	Short: "Print every piece in every rotation",
	Long: `Print the shape table. Each kind is shown in rotations 0 to 3, every
rotation one counter-clockwise step from the previous one. '@' marks the
pivot block the piece turns around, '#' the other blocks.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printPieces(cmd.OutOrStdout())
	},
}

// Offsets span -2..1 on both axes.
const (
	pieceMin  = -2
	pieceSpan = 4
)

func printPieces(w io.Writer) {
	for i, k := range tetris.Kinds {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, k)
		for _, line := range pieceRows(k) {
			fmt.Fprintln(w, line)
		}
	}
}

// pieceRows draws the four rotations of a kind side by side. Rows run top
// to bottom of the field, so larger Y offsets come later.
func pieceRows(k tetris.Kind) []string {
	rows := make([]string, pieceSpan)
	for y := range pieceSpan {
		cells := make([]string, 0, 4)
		for rot := range 4 {
			cells = append(cells, pieceRow(tetris.Offsets(k, rot), pieceMin+y))
		}
		rows[y] = strings.Join(cells, "  ")
	}
	return rows
}

func pieceRow(blocks [4]tetris.Offset, y int) string {
	row := []byte(strings.Repeat(".", pieceSpan))
	for i, b := range blocks {
		if b.Y != y {
			continue
		}
		ch := byte('#')
		if i == 0 {
			ch = '@'
		}
		row[b.X-pieceMin] = ch
	}
	return string(row)
}
