package log

import (
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileLoggerCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.klog")

	logger, err := NewFileLogger(path)
	require.NoError(t, err)
	defer logger.Close()

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestFileLoggerRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.klog")

	logger, err := NewFileLogger(path)
	require.NoError(t, err)
	for i := range 3 {
		logger.Log(Event{Timestamp: time.Now(), SessionID: "s", Addr: uint8(i), Value: uint16(i * 10)})
	}
	assert.Equal(t, 3, logger.Written())
	require.NoError(t, logger.Close())
	assert.NoError(t, logger.Err())

	events, err := ReadAll(path, Filter{})
	require.NoError(t, err)
	require.Len(t, events, 3)
	for i, e := range events {
		assert.Equal(t, uint8(i), e.Addr)
		assert.Equal(t, uint16(i*10), e.Value)
	}
}

func TestFileLoggerAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.klog")

	for range 2 {
		logger, err := NewFileLogger(path)
		require.NoError(t, err)
		logger.Log(Event{SessionID: "s"})
		require.NoError(t, logger.Close())
	}

	events, err := ReadAll(path, Filter{})
	require.NoError(t, err)
	assert.Len(t, events, 2)
}

func TestFileLoggerCloseIsIdempotent(t *testing.T) {
	logger, err := NewFileLogger(filepath.Join(t.TempDir(), "trace.klog"))
	require.NoError(t, err)

	require.NoError(t, logger.Close())
	assert.NoError(t, logger.Close())

	logger.Log(Event{})
	assert.Equal(t, 0, logger.Written(), "writes after close are dropped")
}

func TestFileLoggerConcurrent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.klog")
	logger, err := NewFileLogger(path)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 25 {
				logger.Log(Event{Addr: uint8(g), Value: uint16(i)})
			}
		}()
	}
	wg.Wait()
	require.NoError(t, logger.Close())

	r, err := NewReader(path)
	require.NoError(t, err)
	defer r.Close()

	n := 0
	for {
		_, err := r.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		n++
	}
	assert.Equal(t, 200, n)
}

func TestNewFileLoggerBadPath(t *testing.T) {
	_, err := NewFileLogger(filepath.Join(t.TempDir(), "missing", "trace.klog"))
	assert.Error(t, err)
}
