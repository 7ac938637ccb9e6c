package version

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsReleased(t *testing.T) {
	require.True(t, NewVersion("kcctl", "Kafka Connect CLI", "1.2.3", "abc", "", "").IsReleased())
	require.False(t, NewVersion("kcctl", "Kafka Connect CLI", "0.0.0", "abc", "", "").IsReleased())
	require.False(t, NewVersion("kcctl", "Kafka Connect CLI", "1.2.3-dirty-timmy", "abc", "", "").IsReleased())
	require.False(t, NewVersion("kcctl", "Kafka Connect CLI", "1.2.3-4-gabc1234", "abc", "", "").IsReleased())
}

func TestUserAgent(t *testing.T) {
	require.Regexp(t, `^kcctl/1\.2\.3 \(\w+/\w+\)$`, NewVersion("kcctl", "Kafka Connect CLI", "1.2.3", "", "", "").UserAgent)
}

func TestString(t *testing.T) {
	out := NewVersion("kcctl", "Kafka Connect CLI", "1.2.3", "abc1234", "today", "CI").String()
	require.True(t, strings.HasPrefix(out, "kcctl - Kafka Connect CLI\n\nVersion:     1.2.3\nGit Ref:     abc1234\n"))
	require.True(t, strings.HasSuffix(out, "\nDevelopment: false"))
}
