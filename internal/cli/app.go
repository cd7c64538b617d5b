package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/studyhub/internal/app"
	"github.com/dmitrijs2005/studyhub/internal/common"
	"github.com/dmitrijs2005/studyhub/internal/config"
	"github.com/dmitrijs2005/studyhub/internal/logging"
	"github.com/dmitrijs2005/studyhub/internal/services"
)

// App is the REPL front end over the StudyHub services.
type App struct {
	core   *app.App
	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens the store named by c and returns a REPL reading os.Stdin.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewText(os.Stderr, slog.LevelWarn)

	a := &App{reader: bufio.NewReader(os.Stdin), out: os.Stdout}

	core, err := app.New(ctx, c, logger, a)
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}
	a.core = core
	return a, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.core.Close()

	fmt.Fprintln(a.out, "Welcome to StudyHub (type 'help' for commands)")
	runREPL(ctx, a, func() string { return a.status(ctx) }, a.reader)
}

func (a *App) status(ctx context.Context) string {
	st, err := a.core.Store.Stats(ctx)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("(%d cards)", st.Flashcards)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// fail prints the user-facing message for err and returns err.
func (a *App) fail(err error) error {
	var (
		ve  *common.ValidationError
		nf  *common.NotFoundError
		mc  *common.MissingCredentialError
		re  *common.RemoteError
		pe  *common.ParseError
		msg string
	)

	switch {
	case errors.As(err, &ve):
		msg = "Invalid input: " + ve.Error()
	case errors.As(err, &nf):
		msg = "Not found: " + nf.ID
	case errors.As(err, &mc):
		msg = fmt.Sprintf("Please configure the %s API key first (setkey %s)", mc.Provider, mc.Provider)
	case errors.As(err, &pe):
		msg = "Could not parse flashcards. Try manual creation."
	case errors.As(err, &re):
		msg = fmt.Sprintf("Error communicating with %s. Check your API key or try again.", re.Provider)
	case errors.Is(err, common.ErrStorage):
		msg = "Could not save your data: " + err.Error()
	default:
		msg = "Error: " + err.Error()
	}

	fmt.Fprintln(a.out, msg)
	return err
}

// PromptAPIKey asks for a missing key. It implements
// services.CredentialPrompter.
func (a *App) PromptAPIKey(ctx context.Context, info services.ProviderInfo) (string, error) {
	a.printf("%s\n%s\n%s\n", info.Title, info.Description, info.Link)
	return GetSecret("Enter API key (empty to cancel)", a.out)
}
