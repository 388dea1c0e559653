package replay

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rocketscienceinc/checkers-backend/internal/apperror"
	"gopkg.in/yaml.v3"
)

type Command string

const (
	CommandCreate   Command = "create"
	CommandJoin     Command = "join"
	CommandMoves    Command = "moves"
	CommandMove     Command = "move"
	CommandCancel   Command = "cancel"
	CommandLeave    Command = "leave"
	CommandSnapshot Command = "snapshot"
)

// Seat names who issues a command. SeatTurn resolves to whoever is to move when the step runs.
type Seat string

const (
	SeatA    Seat = "a"
	SeatB    Seat = "b"
	SeatTurn Seat = "turn"
)

// Step is one command of a script. Src and Dest are used by move, Pos by moves.
type Step struct {
	Command Command `yaml:"command"`
	Seat    Seat    `yaml:"seat,omitempty"`

	Src  *int `yaml:"src,omitempty"`
	Dest *int `yaml:"dest,omitempty"`
	Pos  *int `yaml:"pos,omitempty"`
}

type Script struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// Load - reads and validates the script at path.
func Load(path string) (*Script, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open script: %w", err)
	}
	defer file.Close()

	return Parse(file)
}

// Parse - decodes a script, rejecting unknown fields, and validates every step.
func Parse(r io.Reader) (*Script, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	script := &Script{}
	if err := decoder.Decode(script); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty script", apperror.ErrInvalidScript)
		}
		return nil, fmt.Errorf("%w: %w", apperror.ErrInvalidScript, err)
	}

	if err := script.Validate(); err != nil {
		return nil, err
	}

	return script, nil
}

func (that *Script) Validate() error {
	if len(that.Steps) == 0 {
		return fmt.Errorf("%w: no steps", apperror.ErrInvalidScript)
	}

	if that.Steps[0].Command != CommandCreate {
		return fmt.Errorf("%w: first step must be %q", apperror.ErrInvalidScript, CommandCreate)
	}

	for i := range that.Steps {
		step := &that.Steps[i]
		if err := step.normalize(); err != nil {
			return fmt.Errorf("%w: step %d: %w", apperror.ErrInvalidScript, i, err)
		}

		if i > 0 && step.Command == CommandCreate {
			return fmt.Errorf("%w: step %d: a script plays a single match", apperror.ErrInvalidScript, i)
		}
	}

	return nil
}

// normalize - fills the default seat and checks the arguments the command needs.
func (that *Step) normalize() error {
	switch that.Command {
	case CommandCreate:
		return that.fixSeat(SeatA)
	case CommandJoin:
		return that.fixSeat(SeatB)
	case CommandMove:
		if that.Src == nil || that.Dest == nil {
			return errors.New("move needs src and dest")
		}
	case CommandMoves:
		if that.Pos == nil {
			return errors.New("moves needs pos")
		}
	case CommandCancel, CommandLeave, CommandSnapshot:
	default:
		return fmt.Errorf("unknown command %q", that.Command)
	}

	switch that.Seat {
	case "":
		that.Seat = SeatTurn
	case SeatA, SeatB, SeatTurn:
	default:
		return fmt.Errorf("unknown seat %q", that.Seat)
	}

	return nil
}

func (that *Step) fixSeat(seat Seat) error {
	if that.Seat != "" && that.Seat != seat {
		return fmt.Errorf("%s is always issued by seat %s", that.Command, seat)
	}

	that.Seat = seat

	return nil
}
