package cli_test

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"designpatterns/src/catalog"
	"designpatterns/src/cli"
	"designpatterns/src/timing"
)

var errBroken = errors.New("broken")

func brokenRegistry(t *testing.T) *catalog.Registry {
	t.Helper()
	r := catalog.NewRegistry()
	require.NoError(t, r.Register(catalog.Example{
		Name: "first",
		Kind: catalog.KindBehavioral,
		Run: func(env catalog.Env) error {
			_, err := io.WriteString(env.Out, "first ran\n")
			return err
		},
	}))
	require.NoError(t, r.Register(catalog.Example{
		Name: "second",
		Kind: catalog.KindStructural,
		Run:  func(catalog.Env) error { return errBroken },
	}))
	require.NoError(t, r.Register(catalog.Example{
		Name: "third",
		Kind: catalog.KindCreational,
		Run: func(env catalog.Env) error {
			_, err := fmt.Fprintln(env.Out, "third ran")
			return err
		},
	}))
	return r
}

func TestRunnerWrapsExampleErrors(t *testing.T) {
	runner := cli.NewRunner(brokenRegistry(t), timing.ScaledClock{}, rand.New(rand.NewPCG(1, 1)), zerolog.Nop())

	err := runner.Run("second", io.Discard)
	require.ErrorIs(t, err, errBroken)
	assert.EqualError(t, err, "run second: broken")

	run, ok := runner.Tracker().Run("second")
	require.True(t, ok)
	assert.Equal(t, 1, run.Count)
}

func TestRunnerRunAllStopsAtFailure(t *testing.T) {
	runner := cli.NewRunner(brokenRegistry(t), timing.ScaledClock{}, rand.New(rand.NewPCG(1, 1)), zerolog.Nop())

	var out bytes.Buffer
	err := runner.RunAll(&out)
	require.ErrorIs(t, err, errBroken)
	assert.Equal(t, "=== first (behavioral)\nfirst ran\n\n=== second (structural)\n", out.String())
	_, ran := runner.Tracker().Run("third")
	assert.False(t, ran)
}

func TestRunnerUnknownExample(t *testing.T) {
	runner := newRunner()
	err := runner.Run("nope", io.Discard)
	assert.ErrorIs(t, err, catalog.ErrUnknownExample)
	assert.Empty(t, runner.Tracker().Runs())
}

func TestRunnerPassesEnvironment(t *testing.T) {
	r := catalog.NewRegistry()
	var got catalog.Env
	require.NoError(t, r.Register(catalog.Example{
		Name: "probe",
		Run: func(env catalog.Env) error {
			got = env
			return nil
		},
	}))
	clock := timing.ScaledClock{Factor: 0}
	rng := rand.New(rand.NewPCG(3, 4))
	runner := cli.NewRunner(r, clock, rng, zerolog.Nop())

	var out bytes.Buffer
	require.NoError(t, runner.Run("PROBE", &out))
	assert.Same(t, &out, got.Out)
	assert.Equal(t, clock, got.Clock)
	assert.Same(t, rng, got.Rand)
}
