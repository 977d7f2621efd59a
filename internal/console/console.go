package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"time"

	"germanbridge/internal/engine"
	"germanbridge/internal/games"
	"germanbridge/internal/gateway"
	"germanbridge/internal/roster"
	"germanbridge/internal/scoring"
)

const saveTimeout = 10 * time.Second

type Options struct {
	Players string // comma separated, optional
	Rule    scoring.Rule
	Gateway *gateway.Client // nil disables save and load
	GameID  string          // resume this game at start
	In      io.Reader
	Out     io.Writer
}

// Console is the interactive scoreboard. Commands run one at a time and each
// finishes before the next line is read.
type Console struct {
	session *engine.Session
	prompt  *linePrompter
	out     io.Writer
	gw      *gateway.Client
	gameID  string
}

func New(opts Options) *Console {
	return &Console{
		session: engine.NewSession(engine.Config{Rule: opts.Rule}),
		prompt:  &linePrompter{in: bufio.NewReader(opts.In), out: opts.Out},
		out:     opts.Out,
		gw:      opts.Gateway,
	}
}

// Run drives the console until quit or end of input.
func Run(opts Options) error {
	c := New(opts)
	if opts.GameID != "" {
		c.load(opts.GameID)
	} else if opts.Players != "" {
		c.addPlayers(opts.Players)
	}
	c.loop()
	return c.prompt.err
}

func (c *Console) Session() *engine.Session {
	return c.session
}

func (c *Console) loop() {
	c.show()
	for {
		line, ok := c.prompt.Prompt(">")
		if !ok {
			return
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "quit" || fields[0] == "exit" {
			return
		}
		if c.dispatch(fields[0], fields[1:]) {
			c.show()
		}
	}
}

func (c *Console) show() {
	render(c.out, c.session.Snapshot(), c.session.Ranking(), c.gameID)
}

// dispatch runs one command and reports whether the board should be redrawn.
func (c *Console) dispatch(cmd string, args []string) bool {
	switch cmd {
	case "help", "?":
		fmt.Fprint(c.out, helpText)
		return false
	case "add":
		input, ok := c.prompt.Prompt("Enter player names, separated by commas:")
		if !ok {
			return false
		}
		c.addPlayers(input)
	case "bid":
		c.withPlayer(args, func(i int) error { return c.session.PromptBidOutcome(c.prompt, i) })
	case "won":
		c.withPlayer(args, func(i int) error { return c.session.PromptSetsWon(c.prompt, i) })
	case "lost":
		c.withPlayer(args, func(i int) error { return c.session.PromptSetsLost(c.prompt, i) })
	case "+10", "+1", "-1":
		amount, _ := strconv.Atoi(cmd)
		c.withPlayer(args, func(i int) error { return c.session.QuickAdjust(i, amount) })
	case "custom":
		c.withPlayer(args, func(i int) error { return c.session.PromptCustom(c.prompt, i) })
	case "undo":
		before := c.session.Roster().Len()
		if !c.session.Undo() {
			fmt.Fprintln(c.out, "Nothing to undo.")
			return false
		}
		if dropped := before - c.session.Roster().Len(); dropped > 0 {
			fmt.Fprintf(c.out, "Undo went back past %d player(s) added since that score; add them again if needed.\n", dropped)
		}
	case "next":
		c.session.AdvanceRound()
	case "reset":
		if c.prompt.confirm("Reset all scores?") {
			c.session.ResetScores()
		}
	case "new":
		if c.prompt.confirm("Start a new game? This will remove all players.") {
			c.session.NewGame()
			c.gameID = ""
		}
	case "save":
		c.save()
	case "load":
		if len(args) != 1 {
			fmt.Fprintln(c.out, "Usage: load <game id>")
			return false
		}
		c.load(args[0])
	case "stats":
		fmt.Fprintln(c.out, "All time stats coming soon!")
		return false
	default:
		fmt.Fprintf(c.out, "Unknown command %q. Type 'help' for a list.\n", cmd)
		return false
	}
	return true
}

func (c *Console) addPlayers(input string) {
	if _, err := c.session.AddPlayers(input); err != nil {
		c.report(err)
	}
}

// withPlayer resolves a displayed rank to the player's roster index and runs
// fn with it.
func (c *Console) withPlayer(args []string, fn func(index int) error) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Which player? Give their position in the table, e.g. 'bid 1'.")
		return
	}
	rank, err := strconv.Atoi(args[0])
	entries := c.session.Ranking()
	if err != nil || rank < 1 || rank > len(entries) {
		fmt.Fprintf(c.out, "No player at position %q.\n", args[0])
		return
	}
	index := c.session.Roster().IndexOf(entries[rank-1].Player.ID)
	if err := fn(index); err != nil {
		c.report(err)
	}
}

func (c *Console) report(err error) {
	var inputErr *engine.InputError
	switch {
	case errors.Is(err, engine.ErrCancelled):
		fmt.Fprintln(c.out, "Cancelled.")
	case errors.As(err, &inputErr):
		fmt.Fprintf(c.out, "Invalid input, %s.\n", inputErr)
	case errors.Is(err, engine.ErrRuleMismatch):
		fmt.Fprintf(c.out, "Not available with the %s scoring rule.\n", c.session.Rule())
	default:
		fmt.Fprintf(c.out, "Error: %v\n", err)
	}
}

// save pushes the current game to the gateway. Failures are reported and the
// local game carries on untouched.
func (c *Console) save() {
	if c.gw == nil {
		fmt.Fprintln(c.out, "No server configured.")
		return
	}
	if c.session.Phase() == engine.PhaseEmpty {
		fmt.Fprintln(c.out, "Nothing to save yet.")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	r := c.session.Roster()
	if c.gameID == "" {
		id, err := c.gw.Create(ctx, names(r))
		if err != nil {
			c.reportGateway("save", err)
			return
		}
		c.gameID = id
	}
	if err := c.gw.Update(ctx, c.gameID, games.NewRecord(r, c.session.Round())); err != nil {
		c.reportGateway("save", err)
		return
	}
	fmt.Fprintf(c.out, "Saved game %s.\n", c.gameID)
}

func (c *Console) load(id string) {
	if c.gw == nil {
		fmt.Fprintln(c.out, "No server configured.")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	id = strings.ToUpper(strings.TrimSpace(id))
	rec, err := c.gw.Read(ctx, id)
	if err != nil {
		c.reportGateway("load", err)
		return
	}
	c.session.Load(rec.Roster(), rec.Round)
	c.gameID = id
}

func (c *Console) reportGateway(op string, err error) {
	if errors.Is(err, gateway.ErrNotFound) {
		fmt.Fprintln(c.out, "Game not found.")
		return
	}
	log.Printf("[Gateway] %s failed: %v\n", op, err)
	fmt.Fprintf(c.out, "Could not %s game: %v\n", op, err)
}

func names(r roster.Roster) []string {
	players := r.Players()
	out := make([]string, len(players))
	for i, p := range players {
		out[i] = p.Name
	}
	return out
}
