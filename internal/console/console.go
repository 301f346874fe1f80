package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/phrazzld/dayplan/internal/config"
	"github.com/phrazzld/dayplan/internal/platform/logger"
	"github.com/phrazzld/dayplan/internal/service"
	"golang.org/x/text/message"
)

// Menu items
const (
	menuExit   = "0"
	menuAdd    = "1"
	menuRemove = "2"
	menuQuery  = "3"
)

// maxLineBytes caps a single input line. Anything past it is discarded, so an
// oversized value still reaches validation and is rejected as too long.
const maxLineBytes = 64 * 1024

// Console runs the interactive menu against a schedule.
type Console struct {
	schedule   service.ScheduleService
	in         *bufio.Reader
	out        io.Writer
	printer    *message.Printer
	validate   *validator.Validate
	dateLayout string
	timeLayout string
	logger     *slog.Logger
}

// New creates a Console reading commands from in and writing to out.
// If logger is nil, a default logger will be used.
func New(
	schedule service.ScheduleService,
	cfg config.ConsoleConfig,
	in io.Reader,
	out io.Writer,
	logger *slog.Logger,
) (*Console, error) {
	if schedule == nil {
		return nil, errors.New("schedule service cannot be nil")
	}

	printer, err := newPrinter(cfg.Locale)
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Console{
		schedule:   schedule,
		in:         bufio.NewReader(in),
		out:        out,
		printer:    printer,
		validate:   validator.New(),
		dateLayout: cfg.DateLayout,
		timeLayout: cfg.TimeLayout,
		logger:     logger.With("component", "console"),
	}, nil
}

// Run shows the menu until the user exits or input ends. Reaching the end of
// input is a normal exit. Each run is logged under its own session ID.
func (c *Console) Run(ctx context.Context) error {
	log := c.logger.With(slog.String("session_id", uuid.NewString()))
	ctx = logger.WithLogger(ctx, log)

	log.Info("console session started")
	defer log.Info("console session finished")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.println(msgMenu)
		c.print(msgMenuPrompt)

		line, err := c.readLine()
		if err != nil {
			return endOfInput(err)
		}

		switch strings.TrimSpace(line) {
		case menuAdd:
			err = c.addTask(ctx)
		case menuRemove:
			err = c.removeTask(ctx)
		case menuQuery:
			err = c.printTasksForDate(ctx)
		case menuExit:
			return nil
		default:
			c.println(msgMenuInvalid)
		}

		if err != nil {
			return endOfInput(err)
		}
	}
}

// endOfInput turns io.EOF into a clean exit.
func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// readLine returns the next input line without its line ending, or io.EOF
// when input is exhausted. Lines longer than maxLineBytes are truncated.
func (c *Console) readLine() (string, error) {
	var line []byte
	for {
		chunk, isPrefix, err := c.in.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				if len(line) > 0 {
					return string(line), nil
				}
				return "", io.EOF
			}
			return "", fmt.Errorf("failed to read input: %w", err)
		}

		if room := maxLineBytes - len(line); room > 0 {
			if len(chunk) > room {
				chunk = chunk[:room]
			}
			line = append(line, chunk...)
		}
		if !isPrefix {
			return string(line), nil
		}
	}
}

func (c *Console) print(key message.Reference, args ...interface{}) {
	c.printer.Fprintf(c.out, key, args...)
}

func (c *Console) println(key message.Reference, args ...interface{}) {
	c.printer.Fprintf(c.out, key, args...)
	fmt.Fprintln(c.out)
}
