package recognition_test

import (
	"testing"

	"github.com/blueputty01/swiftnotes/pkg/recognition"

	"github.com/stretchr/testify/require"
)

func TestResult(t *testing.T) {
	require.True(t, recognition.Absent.IsAbsent())
	require.Equal(t, "<absent>", recognition.Absent.String())

	value, ok := recognition.Text("").Value()
	require.True(t, ok)
	require.Empty(t, value)

	require.False(t, recognition.Text("hello").IsAbsent())
	require.Equal(t, "hello", recognition.Text("hello").String())
}
