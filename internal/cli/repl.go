package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for REPL output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to.
type execIface interface {
	Cards(ctx context.Context, args []string) error
	AddCard(ctx context.Context, args []string) error
	EditCard(ctx context.Context, args []string) error
	DeleteCard(ctx context.Context, args []string) error
	Generate(ctx context.Context, args []string) error
	Quick(ctx context.Context, args []string) error
	Upload(ctx context.Context, args []string) error
	Study(ctx context.Context, args []string) error
	Posts(ctx context.Context, args []string) error
	AddPost(ctx context.Context, args []string) error
	DeletePost(ctx context.Context, args []string) error
	Like(ctx context.Context, args []string) error
	Chat(ctx context.Context, args []string) error
	History(ctx context.Context, args []string) error
	Videos(ctx context.Context, args []string) error
	Keys(ctx context.Context, args []string) error
	SetKey(ctx context.Context, args []string) error
	Stats(ctx context.Context, args []string) error
	Reset(ctx context.Context, args []string) error
}

const helpText = "Available commands: cards, addcard, editcard, delcard, generate, quick, upload, study, " +
	"posts, post, delpost, like, chat, history, videos, keys, setkey, stats, reset, exit"

// runREPL reads commands from reader until EOF, "exit" or "quit". Command
// errors are reported by the handlers themselves and do not stop the loop.
// Handlers that prompt for more input read from the same reader.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	commands := map[string]func(context.Context, []string) error{
		"cards":    a.Cards,
		"l":        a.Cards,
		"addcard":  a.AddCard,
		"editcard": a.EditCard,
		"delcard":  a.DeleteCard,
		"generate": a.Generate,
		"quick":    a.Quick,
		"upload":   a.Upload,
		"study":    a.Study,
		"posts":    a.Posts,
		"post":     a.AddPost,
		"delpost":  a.DeletePost,
		"like":     a.Like,
		"chat":     a.Chat,
		"history":  a.History,
		"videos":   a.Videos,
		"keys":     a.Keys,
		"setkey":   a.SetKey,
		"stats":    a.Stats,
		"reset":    a.Reset,
	}

	for {
		printlnFn(fmt.Sprintf("studyhub %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			printlnFn(helpText)
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		fn, ok := commands[cmd]
		if !ok {
			printlnFn("Unknown command:", cmd)
			continue
		}
		_ = fn(ctx, args)
	}
}
