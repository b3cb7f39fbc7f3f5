package clipboard

import (
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"testing"

	"github.com/arthur-debert/pdarules/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStrategy struct {
	name      string
	available bool
	err       error
	got       []string
}

func (f *fakeStrategy) Name() string    { return f.name }
func (f *fakeStrategy) Available() bool { return f.available }
func (f *fakeStrategy) Write(_ context.Context, text string) error {
	f.got = append(f.got, text)
	return f.err
}

func TestChain_FirstAvailableWins(t *testing.T) {
	first := &fakeStrategy{name: "first", available: true}
	second := &fakeStrategy{name: "second", available: true}

	res, err := NewChain(first, second).Copy(context.Background(), "npc = Lydia|A|")
	require.NoError(t, err)

	assert.Equal(t, "first", res.Strategy)
	assert.Equal(t, []string{"npc = Lydia|A|"}, first.got)
	assert.Empty(t, second.got)
	assert.Len(t, res.Attempts, 1)
}

func TestChain_FallsBackOnFailure(t *testing.T) {
	first := &fakeStrategy{name: "system", available: true, err: stderrors.New("permission denied")}
	second := &fakeStrategy{name: "osc52", available: true}

	res, err := NewChain(first, second).Copy(context.Background(), "text")
	require.NoError(t, err)

	assert.Equal(t, "osc52", res.Strategy)
	require.Len(t, res.Attempts, 2)
	assert.EqualError(t, res.Attempts[0].Err, "permission denied")
	assert.NoError(t, res.Attempts[1].Err)
}

func TestChain_SkipsUnavailable(t *testing.T) {
	first := &fakeStrategy{name: "system", available: false}
	second := &fakeStrategy{name: "osc52", available: true}

	res, err := NewChain(first, second).Copy(context.Background(), "text")
	require.NoError(t, err)

	assert.Equal(t, "osc52", res.Strategy)
	assert.Empty(t, first.got)
	assert.True(t, res.Attempts[0].Skipped)
}

func TestChain_AllUnavailable(t *testing.T) {
	chain := NewChain(&fakeStrategy{name: "system"}, &fakeStrategy{name: "osc52"})

	res, err := chain.Copy(context.Background(), "text")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrClipboardUnavailable))
	assert.Empty(t, res.Strategy)
	assert.Equal(t, []string{"system", "osc52"}, errors.GetErrorDetails(err)["strategies"])
}

func TestChain_AllFailed(t *testing.T) {
	chain := NewChain(
		&fakeStrategy{name: "system", available: true, err: stderrors.New("no xclip")},
		&fakeStrategy{name: "osc52", available: false},
	)

	_, err := chain.Copy(context.Background(), "text")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrClipboardFailed))
	assert.Contains(t, err.Error(), "system: no xclip")
}

func TestChain_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := &fakeStrategy{name: "system", available: true}
	_, err := NewChain(s).Copy(ctx, "text")

	require.Error(t, err)
	assert.True(t, stderrors.Is(err, context.Canceled))
	assert.Empty(t, s.got)
}

func TestSystem_UsesClipboardPackage(t *testing.T) {
	old := systemWriteAll
	var got string
	systemWriteAll = func(s string) error { got = s; return nil }
	defer func() { systemWriteAll = old }()

	require.NoError(t, System{}.Write(context.Background(), "raceMale = OrcRace|A|"))
	assert.Equal(t, "raceMale = OrcRace|A|", got)
}

func TestOSC52(t *testing.T) {
	t.Setenv("TMUX", "")
	t.Setenv("TERM", "xterm-256color")

	var buf bytes.Buffer
	assert.False(t, OSC52{Out: &buf}.Available(), "buffers are not terminals")
	assert.False(t, OSC52{}.Available())

	s := OSC52{Out: &buf, Force: true}
	require.True(t, s.Available())
	require.NoError(t, s.Write(context.Background(), "hi"))

	// "hi" base64 encodes to "aGk="
	assert.Equal(t, "\x1b]52;c;aGk=\x07", buf.String())
}

func TestFromNames(t *testing.T) {
	var buf bytes.Buffer

	strategies, err := FromNames(nil, &buf)
	require.NoError(t, err)
	assert.Equal(t, DefaultOrder, NewChain(strategies...).Strategies())

	strategies, err = FromNames([]string{"OSC52", " system "}, &buf)
	require.NoError(t, err)
	assert.Equal(t, []string{"osc52", "system"}, NewChain(strategies...).Strategies())

	_, err = FromNames([]string{"carrier-pigeon"}, &buf)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	assert.True(t, errors.IsErrorCode(stderrors.Unwrap(err), errors.ErrNotFound))
}

func TestRegister(t *testing.T) {
	memory := &fakeStrategy{name: "memory", available: true}
	require.NoError(t, Register("Memory", func(io.Writer) Strategy { return memory }))
	assert.Contains(t, Names(), "memory")

	err := Register(StrategySystem, func(io.Writer) Strategy { return System{} })
	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))

	strategies, err := FromNames([]string{"memory", "system"}, nil)
	require.NoError(t, err)

	res, err := NewChain(strategies...).Copy(context.Background(), "npc = Lydia|A|")
	require.NoError(t, err)
	assert.Equal(t, "memory", res.Strategy)
	assert.Equal(t, []string{"npc = Lydia|A|"}, memory.got)
}
