package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLineTrims(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader("  deposit \n\n3 4\r\n"), &out, false)
	ctx := context.Background()

	for _, want := range []string{"deposit", "", "3 4"} {
		line, err := c.ReadLine(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, line)
	}

	_, err := c.ReadLine(ctx)
	assert.ErrorIs(t, err, io.EOF)
	assert.True(t, Interrupted(err))
}

func TestPromptWritesPrompt(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader("yes\n"), &out, false)

	line, err := c.Prompt(context.Background(), "continue? ")
	require.NoError(t, err)
	assert.Equal(t, "yes", line)
	assert.Equal(t, "continue? ", out.String())
}

func TestReadLineCancelled(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()
	c := New(r, io.Discard, false)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := c.ReadLine(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.True(t, Interrupted(err))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("boom")
}

func TestReadLineReportsReadErrors(t *testing.T) {
	c := New(failingReader{}, io.Discard, false)
	_, err := c.ReadLine(context.Background())
	require.Error(t, err)
	assert.False(t, Interrupted(err))
}

func TestClear(t *testing.T) {
	var out bytes.Buffer
	New(strings.NewReader(""), &out, true).Clear()
	assert.Equal(t, clearSequence, out.String())

	out.Reset()
	New(strings.NewReader(""), &out, false).Clear()
	assert.Empty(t, out.String())
}

func TestOverlongLineIsSkipped(t *testing.T) {
	var out bytes.Buffer
	long := strings.Repeat("7", 70000)
	c := New(strings.NewReader(long+"\n3 4\n"), &out, false)
	t.Cleanup(c.Close)

	_, err := c.ReadLine(context.Background())
	assert.ErrorIs(t, err, ErrLineTooLong)
	assert.False(t, Interrupted(err))

	line, err := c.ReadLine(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "3 4", line)
}

func TestPromptAsksAgainAfterOverlongLine(t *testing.T) {
	var out bytes.Buffer
	long := strings.Repeat("x", 70000)
	c := New(strings.NewReader(long+"\nok\n"), &out, false)
	t.Cleanup(c.Close)

	line, err := c.Prompt(context.Background(), "> ")
	require.NoError(t, err)
	assert.Equal(t, "ok", line)
	assert.Equal(t, "> Input longer than 4096 characters ignored.\n> ", out.String())
}

func TestLineAtLimitIsKept(t *testing.T) {
	exact := strings.Repeat("a", MaxLineLength)
	c := New(strings.NewReader(exact), io.Discard, false)
	t.Cleanup(c.Close)

	line, err := c.ReadLine(context.Background())
	require.NoError(t, err)
	assert.Equal(t, exact, line)
}

func TestInterruptAbandonsOnePrompt(t *testing.T) {
	c := New(strings.NewReader("balance\n"), io.Discard, false)
	t.Cleanup(c.Close)
	ctx := context.Background()

	c.Interrupt()
	c.Interrupt()
	_, err := c.ReadLine(ctx)
	assert.ErrorIs(t, err, ErrInterrupted)
	assert.True(t, Interrupted(err))

	line, err := c.ReadLine(ctx)
	require.NoError(t, err)
	assert.Equal(t, "balance", line)
}

func TestInterruptWhileWaiting(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()
	c := New(r, io.Discard, false)
	t.Cleanup(c.Close)

	go func() {
		time.Sleep(10 * time.Millisecond)
		c.Interrupt()
	}()

	_, err := c.ReadLine(context.Background())
	assert.ErrorIs(t, err, ErrInterrupted)
}

func TestCloseReleasesReader(t *testing.T) {
	c := New(strings.NewReader("a\nb\n"), io.Discard, false)
	c.Close()
	c.Close()

	_, err := c.ReadLine(context.Background())
	assert.True(t, Interrupted(err))
}

func TestRunReturnsSessionError(t *testing.T) {
	log, _ := test.NewNullLogger()
	boom := errors.New("boom")
	c := New(strings.NewReader(""), io.Discard, false)

	err := Run(context.Background(), log, c, func(ctx context.Context) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestRunForwardsInterrupts(t *testing.T) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	r, w := io.Pipe()
	defer w.Close()
	c := New(r, io.Discard, false)

	err := Run(context.Background(), log, c, func(ctx context.Context) error {
		require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGINT))
		_, err := c.ReadLine(ctx)
		assert.ErrorIs(t, err, ErrInterrupted)
		// the session keeps running after an interrupt
		assert.NoError(t, ctx.Err())
		return nil
	})
	require.NoError(t, err)
	require.NotEmpty(t, hook.AllEntries())
	assert.Equal(t, "interrupt received", hook.AllEntries()[0].Message)
}

func TestRunCancelsSessionWithParent(t *testing.T) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	c := New(strings.NewReader("ignored\n"), io.Discard, false)

	ctx, cancel := context.WithCancel(context.Background())
	err := Run(ctx, log, c, func(ctx context.Context) error {
		cancel()
		_, err := c.ReadLine(ctx)
		assert.ErrorIs(t, err, context.Canceled)
		assert.True(t, Interrupted(err))
		return nil
	})
	require.NoError(t, err)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "terminated, shutting down", hook.LastEntry().Message)
}
