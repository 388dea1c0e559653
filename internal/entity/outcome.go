package entity

import (
	"fmt"

	"github.com/rocketscienceinc/checkers-backend/internal/apperror"
)

// Outcome is the match status. Win and disconnect outcomes are terminal.
type Outcome int

const (
	OutcomeWaiting Outcome = iota
	OutcomeATurn
	OutcomeBTurn
	OutcomeAWin
	OutcomeBWin
	OutcomeADisconnected
	OutcomeBDisconnected
)

var outcomeLabels = map[Outcome]string{
	OutcomeWaiting:       "WAITING",
	OutcomeATurn:         "P1_TURN",
	OutcomeBTurn:         "P2_TURN",
	OutcomeAWin:          "P1_WIN",
	OutcomeBWin:          "P2_WIN",
	OutcomeADisconnected: "P1_DISCONNECT",
	OutcomeBDisconnected: "P2_DISCONNECT",
}

func ParseOutcome(label string) (Outcome, error) {
	for outcome, candidate := range outcomeLabels {
		if candidate == label {
			return outcome, nil
		}
	}

	return OutcomeWaiting, fmt.Errorf("%w: %q", apperror.ErrUnknownOutcome, label)
}

func (that Outcome) String() string {
	if label, ok := outcomeLabels[that]; ok {
		return label
	}

	return fmt.Sprintf("Outcome(%d)", int(that))
}

func (that Outcome) MarshalText() ([]byte, error) {
	label, ok := outcomeLabels[that]
	if !ok {
		return nil, fmt.Errorf("%w: %d", apperror.ErrUnknownOutcome, int(that))
	}

	return []byte(label), nil
}

func (that *Outcome) UnmarshalText(text []byte) error {
	outcome, err := ParseOutcome(string(text))
	if err != nil {
		return err
	}

	*that = outcome

	return nil
}

func (that Outcome) IsTerminal() bool {
	switch that {
	case OutcomeAWin, OutcomeBWin, OutcomeADisconnected, OutcomeBDisconnected:
		return true
	default:
		return false
	}
}

func (that Outcome) IsTurn() bool {
	return that == OutcomeATurn || that == OutcomeBTurn
}

func TurnFor(side Side) Outcome {
	if side == SideB {
		return OutcomeBTurn
	}
	return OutcomeATurn
}

func WinFor(side Side) Outcome {
	if side == SideB {
		return OutcomeBWin
	}
	return OutcomeAWin
}

func DisconnectFor(side Side) Outcome {
	if side == SideB {
		return OutcomeBDisconnected
	}
	return OutcomeADisconnected
}
