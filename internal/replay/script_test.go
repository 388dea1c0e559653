package replay

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/rocketscienceinc/checkers-backend/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Given: a script mixing flow and block style steps
		source := `
name: opening
steps:
  - command: create
  - command: join
  - {command: move, seat: a, src: 40, dest: 33}
  - command: moves
    seat: b
    pos: 17
  - command: cancel
`

		// When: it is parsed
		script, err := Parse(strings.NewReader(source))
		require.NoError(t, err)

		// Then: seats are filled in and coordinates kept
		assert.Equal(t, "opening", script.Name)
		require.Len(t, script.Steps, 5)
		assert.Equal(t, SeatA, script.Steps[0].Seat)
		assert.Equal(t, SeatB, script.Steps[1].Seat)
		assert.Equal(t, 40, *script.Steps[2].Src)
		assert.Equal(t, 33, *script.Steps[2].Dest)
		assert.Equal(t, 17, *script.Steps[3].Pos)
		assert.Equal(t, SeatTurn, script.Steps[4].Seat)
	})

	t.Run("Invalid scripts", func(t *testing.T) {
		sources := map[string]string{
			"empty":            ``,
			"no steps":         "name: nothing\nsteps: []\n",
			"unknown field":    "steps:\n  - {command: create, colour: red}\n",
			"unknown command":  "steps:\n  - command: create\n  - command: resign\n",
			"missing dest":     "steps:\n  - command: create\n  - {command: move, src: 40}\n",
			"missing pos":      "steps:\n  - command: create\n  - command: moves\n",
			"unknown seat":     "steps:\n  - command: create\n  - {command: cancel, seat: c}\n",
			"join from seat a": "steps:\n  - command: create\n  - {command: join, seat: a}\n",
			"no create first":  "steps:\n  - command: join\n",
			"second create":    "steps:\n  - command: create\n  - command: create\n",
		}

		for name, source := range sources {
			t.Run(name, func(t *testing.T) {
				_, err := Parse(strings.NewReader(source))

				require.ErrorIs(t, err, apperror.ErrInvalidScript)
			})
		}
	})
}

func TestLoad(t *testing.T) {
	t.Run("Bundled scripts", func(t *testing.T) {
		for _, name := range []string{"win_by_capture", "stuck_opponent", "down_left_capture"} {
			script, err := Load(filepath.Join("testdata", name+".yml"))
			require.NoError(t, err, name)

			assert.Equal(t, CommandCreate, script.Steps[0].Command)
			assert.Equal(t, CommandJoin, script.Steps[1].Command)
		}
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := Load(filepath.Join("testdata", "missing.yml"))

		require.Error(t, err)
		assert.NotErrorIs(t, err, apperror.ErrInvalidScript)
	})
}
