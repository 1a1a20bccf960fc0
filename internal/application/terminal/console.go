package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"cek-cuaca/internal/domain/entity"
	"cek-cuaca/pkg/msg"
	"cek-cuaca/pkg/util/numberutils"

	"github.com/labstack/gommon/color"
	"github.com/mattn/go-isatty"
)

const clearSequence = "\033[H\033[2J"

// Console reads answers from the user and writes coloured output.
// Colours and screen clearing are only used when the output is a terminal.
type Console struct {
	reader      *bufio.Reader
	out         io.Writer
	color       *color.Color
	interactive bool
}

// NewConsole wraps an input and an output stream.
func NewConsole(in io.Reader, out io.Writer) *Console {
	c := color.New()
	c.SetOutput(out)

	interactive := false
	if f, ok := out.(*os.File); ok {
		interactive = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	if interactive {
		c.Enable()
	} else {
		c.Disable()
	}

	return &Console{
		reader:      bufio.NewReader(in),
		out:         out,
		color:       c,
		interactive: interactive,
	}
}

// Clear wipes the screen when attached to a terminal.
func (c *Console) Clear() {
	if c.interactive {
		fmt.Fprint(c.out, clearSequence)
	}
}

func (c *Console) Println(text string) {
	fmt.Fprintln(c.out, text)
}

func (c *Console) Error(text string) {
	fmt.Fprintln(c.out, c.color.Bold(c.color.Red(text)))
}

func (c *Console) Success(text string) {
	fmt.Fprintln(c.out, c.color.Bold(c.color.Green(text)))
}

// Banner prints the opening screen.
func (c *Console) Banner() {
	lines := []string{msg.GetMessage("menu.welcome"), msg.GetMessage("menu.welcome-sub")}
	fmt.Fprintln(c.out, c.color.Bold(c.color.Cyan(box(lines))))
}

// LevelHeader prints the boxed title shown above a selection menu.
func (c *Console) LevelHeader(level entity.Level) {
	fmt.Fprintln(c.out, c.color.Bold(c.color.Magenta(box([]string{msg.GetMessage("menu.header", level)}))))
}

// Pause waits for the user to press Enter.
func (c *Console) Pause() error {
	fmt.Fprint(c.out, c.color.Grey(msg.GetMessage("menu.pause")))
	_, err := c.readLine()
	return err
}

// SelectOption lists regions as a numbered menu and returns the chosen one. Empty input selects the first option.
func (c *Console) SelectOption(level entity.Level, options []*entity.Region) (*entity.Region, error) {
	if len(options) == 0 {
		return nil, errors.New("no options to select from")
	}

	c.LevelHeader(level)
	for i, option := range options {
		fmt.Fprintf(c.out, "%s %s\n", c.color.Yellow(fmt.Sprintf("%d.", i+1)), option.Name)
	}

	for {
		fmt.Fprint(c.out, c.color.Bold(c.color.Cyan(msg.GetMessage("menu.prompt", level, len(options)))))
		answer, err := c.readLine()
		if err != nil {
			return nil, err
		}

		if answer == "" {
			return options[0], nil
		}

		choice, err := numberutils.ToIntWithError(answer)
		if err != nil {
			c.Error(msg.GetMessage("menu.invalid-number"))
			continue
		}
		if !numberutils.IsIntInRange(choice, 1, len(options)) {
			c.Error(msg.GetMessage("menu.invalid-range", len(options)))
			continue
		}
		return options[choice-1], nil
	}
}

// Confirm asks a yes/no question; empty input returns def.
func (c *Console) Confirm(question string, def bool) (bool, error) {
	for {
		fmt.Fprint(c.out, c.color.Bold(c.color.Magenta(question)))
		answer, err := c.readLine()
		if err != nil {
			return false, err
		}

		switch strings.ToLower(answer) {
		case "":
			return def, nil
		case "y", "ya", "yes":
			return true, nil
		case "n", "no", "t", "tidak":
			return false, nil
		default:
			c.Error(msg.GetMessage("menu.confirm-invalid"))
		}
	}
}

// readLine returns the next trimmed line. A final line without newline is still returned.
func (c *Console) readLine() (string, error) {
	line, err := c.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}
