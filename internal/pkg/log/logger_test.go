package log

import (
	"bytes"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func TestLogger_Flush(t *testing.T) {
	tests := []struct {
		name     string
		level    Level
		wantEmit bool
	}{
		{
			name:     "emit message that should be emitted",
			level:    TRACE,
			wantEmit: true,
		},
		{
			name:     "buffer messages that shouldn't be emitted",
			level:    ERROR,
			wantEmit: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := new(bytes.Buffer)
			l := NewWithParams(&Params{
				Level:  tt.level,
				Output: buf,
				JSON:   false,
			})
			l.Debug("hi there")
			if tt.wantEmit {
				require.Len(t, *l.buffer, 0)
			} else {
				require.Len(t, *l.buffer, 1)
			}
			l.Flush()
			require.Len(t, *l.buffer, 0)
			if tt.wantEmit {
				require.Contains(t, buf.String(), "hi there")
			} else {
				require.Empty(t, buf.String())
			}
		})
	}
}

func TestLogger_FlushAfterRaisingLevel(t *testing.T) {
	buf := new(bytes.Buffer)
	l := NewWithParams(&Params{Level: ERROR, Output: buf})
	l.Named("apply").Infof("applying %s", "local-file-source")
	require.Empty(t, buf.String())

	l.SetLevel(INFO)
	l.Flush()
	require.Contains(t, buf.String(), "applying local-file-source")
}

func TestLogger_ConcurrentBuffering(t *testing.T) {
	l := NewWithParams(&Params{Level: ERROR, Output: new(bytes.Buffer)})
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.Named("worker").Debug("tick")
		}()
	}
	wg.Wait()
	require.Len(t, *l.buffer, 16)
}

func TestParseLevel(t *testing.T) {
	level, ok := ParseLevel("Debug")
	require.True(t, ok)
	require.Equal(t, DEBUG, level)

	_, ok = ParseLevel("loud")
	require.False(t, ok)
}

func TestSetLoggingVerbosity(t *testing.T) {
	for verbosity, want := range []Level{ERROR, WARN, INFO, DEBUG, TRACE, TRACE} {
		cmd := &cobra.Command{}
		cmd.Flags().CountP("verbose", "v", "")
		for i := 0; i < verbosity; i++ {
			require.NoError(t, cmd.Flags().Set("verbose", "+1"))
		}
		l := NewWithParams(&Params{Level: WARN, Output: new(bytes.Buffer)})
		require.NoError(t, SetLoggingVerbosity(cmd, l))
		require.Equal(t, want, l.GetLevel())
	}
}
