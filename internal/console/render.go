package console

import (
	"fmt"
	"io"
	"text/tabwriter"

	"germanbridge/internal/engine"
	"germanbridge/internal/ranking"
)

func render(out io.Writer, snap engine.Snapshot, entries []ranking.Entry, gameID string) {
	if snap.Phase == engine.PhaseEmpty {
		fmt.Fprintln(out, "No players yet. Use 'add' to start a new game.")
		return
	}

	header := fmt.Sprintf("German Bridge Game - round %d", snap.Round)
	if gameID != "" {
		header += " - game " + gameID
	}
	fmt.Fprintln(out, header)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tPlayer\tScore\t")
	for _, e := range entries {
		mark := ""
		if e.Leading {
			mark += "*"
		}
		if e.Overtaking {
			mark += "^"
		}
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\n", e.Position, e.Player.Name, e.Player.Score, mark)
	}
	tw.Flush()

	if snap.CanUndo {
		fmt.Fprintln(out, "(undo available)")
	}
}

const helpText = `Commands:
  add              add players (comma separated)
  bid <#>          enter bid and sets won for the player at rank #
  won <#>          enter sets won (split rule)
  lost <#>         enter sets lost (split rule)
  +10 <#>, +1 <#>, -1 <#>
                   quick adjust
  custom <#>       enter any amount
  undo             undo the last score change
  next             finish the round
  reset            zero all scores
  new              start over with no players
  save             save to the server
  load <id>        resume a saved game
  stats            all time stats
  help             show this list
  quit             leave
`
