package shell

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/denismitr/intset/registry"
	"github.com/denismitr/intset/set"
)

const menu = `1) create set
2) delete set
3) add elements
4) remove elements
5) intersection
6) union
7) difference
8) quit
`

var (
	ErrBadInput = errors.New("bad input")
	errQuit     = errors.New("quit")
)

type (
	// Shell reads menu choices and their arguments as whitespace separated
	// tokens and applies them to the sets of a registry.
	Shell struct {
		reg      *registry.Registry
		in       *bufio.Scanner
		out      io.Writer
		logger   *zap.Logger
		prompt   string
		echoMenu bool
	}

	Option func(sh *Shell)

	algebraFn func(a, b *set.IntSet) (*set.IntSet, error)
)

func WithLogger(logger *zap.Logger) Option {
	return func(sh *Shell) {
		sh.logger = logger
	}
}

func WithPrompt(prompt string) Option {
	return func(sh *Shell) {
		sh.prompt = prompt
	}
}

func WithMenu(echo bool) Option {
	return func(sh *Shell) {
		sh.echoMenu = echo
	}
}

func New(reg *registry.Registry, in io.Reader, out io.Writer, options ...Option) *Shell {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)

	sh := &Shell{
		reg:      reg,
		in:       scanner,
		out:      out,
		logger:   zap.NewNop(),
		prompt:   "> ",
		echoMenu: true,
	}

	for _, opt := range options {
		opt(sh)
	}

	return sh
}

// Run processes commands until option 8 or the end of input.
// Command failures are reported and the loop goes on.
func (sh *Shell) Run() error {
	for {
		if sh.echoMenu {
			sh.print(menu)
		}
		sh.print(sh.prompt)

		choice, err := sh.readInt()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			if errors.Is(err, ErrBadInput) {
				sh.printf("error: %v\n", err)
				continue
			}
			return err
		}

		err = sh.dispatch(choice)
		switch {
		case err == nil:
		case errors.Is(err, errQuit), errors.Is(err, io.EOF):
			sh.logger.Debug("shell terminated", zap.Int("sets", sh.reg.Len()))
			return nil
		default:
			sh.logger.Warn("command failed", zap.Int("option", choice), zap.Error(err))
			sh.printf("error: %v\n", err)
		}
	}
}

func (sh *Shell) dispatch(choice int) error {
	switch choice {
	case 1:
		return sh.create()
	case 2:
		return sh.delete()
	case 3:
		return sh.add()
	case 4:
		return sh.remove()
	case 5:
		return sh.combine("intersection", set.Intersection[int])
	case 6:
		return sh.combine("union", set.Union[int])
	case 7:
		return sh.combine("difference", set.Difference[int])
	case 8:
		return errQuit
	default:
		return errors.Wrapf(ErrBadInput, "unknown option %d", choice)
	}
}

func (sh *Shell) create() error {
	sh.print("index: ")
	slot, err := sh.readInt()
	if err != nil {
		return err
	}

	if _, err := sh.reg.Create(slot); err != nil {
		return err
	}

	sh.logger.Debug("set created", zap.Int("slot", slot))
	sh.printf("set %d created\n", slot)
	return nil
}

func (sh *Shell) delete() error {
	sh.print("index: ")
	slot, err := sh.readInt()
	if err != nil {
		return err
	}

	if err := sh.reg.Delete(slot); err != nil {
		return err
	}

	sh.logger.Debug("set deleted", zap.Int("slot", slot))
	sh.printf("set %d deleted\n", slot)
	return nil
}

func (sh *Shell) add() error {
	return sh.update(func(s *set.IntSet, v int) (set.Outcome, error) {
		return s.Add(v)
	})
}

func (sh *Shell) remove() error {
	return sh.update(func(s *set.IntSet, v int) (set.Outcome, error) {
		return s.Remove(v)
	})
}

// update applies fn to each number read until a negative one,
// then prints the set. A number fn fails on is reported and skipped.
func (sh *Shell) update(fn func(s *set.IntSet, v int) (set.Outcome, error)) error {
	sh.print("index: ")
	slot, err := sh.readInt()
	if err != nil {
		return err
	}

	s, err := sh.reg.Get(slot)
	if err != nil {
		return err
	}

	sh.print("numbers (negative to stop): ")
	for {
		v, err := sh.readInt()
		if errors.Is(err, ErrBadInput) {
			sh.printf("error: %v\n", err)
			continue
		}
		if err != nil {
			sh.printSet(slot, s)
			return err
		}

		if v < 0 {
			break
		}

		outcome, err := fn(s, v)
		if err != nil {
			sh.logger.Warn("set update failed", zap.Int("slot", slot), zap.Int("value", v), zap.Error(err))
			sh.printf("%d error: %v\n", v, err)
			continue
		}

		sh.logger.Debug("set updated", zap.Int("slot", slot), zap.Int("value", v), zap.Stringer("outcome", outcome))
		sh.printf("%d %s\n", v, outcome)
	}

	sh.printSet(slot, s)
	return nil
}

func (sh *Shell) combine(name string, fn algebraFn) error {
	sh.print("indices i1 i2 i3: ")
	var slots [3]int
	for i := range slots {
		v, err := sh.readInt()
		if err != nil {
			return err
		}
		slots[i] = v
	}

	a, err := sh.reg.Get(slots[0])
	if err != nil {
		return err
	}

	b, err := sh.reg.Get(slots[1])
	if err != nil {
		return err
	}

	result, err := fn(a, b)
	if err != nil {
		return errors.Wrap(err, name)
	}

	if err := sh.reg.Store(slots[2], result); err != nil {
		_ = result.Destroy()
		return err
	}

	sh.logger.Debug("sets combined",
		zap.String("operation", name),
		zap.Ints("slots", slots[:]),
		zap.Int("size", result.Len()),
	)
	sh.printSet(slots[2], result)
	return nil
}

func (sh *Shell) readInt() (int, error) {
	if !sh.in.Scan() {
		if err := sh.in.Err(); err != nil {
			return 0, errors.Wrap(err, "could not read input")
		}
		return 0, io.EOF
	}

	token := sh.in.Text()
	v, err := strconv.Atoi(token)
	if err != nil {
		return 0, errors.Wrapf(ErrBadInput, "%q is not an integer", token)
	}

	return v, nil
}

func (sh *Shell) printSet(slot int, s *set.IntSet) {
	sh.printf("set %d = %s\n", slot, set.Render(s))
}

func (sh *Shell) print(s string) {
	_, _ = io.WriteString(sh.out, s)
}

func (sh *Shell) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(sh.out, format, args...)
}
