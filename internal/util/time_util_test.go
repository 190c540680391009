package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_NewDate(t *testing.T) {
	d := NewDate(2025, 3, 1)
	require.Equal(t, 2025, d.Year())
	require.Equal(t, time.March, d.Month())
	require.Equal(t, 1, d.Day())
	require.Equal(t, time.UTC, d.Location())
}

func Test_FrozenClock(t *testing.T) {
	d := NewDate(2025, 3, 1)
	c := FrozenClock{Date: d}
	require.Equal(t, d, c.Today())
	require.Equal(t, d, c.Today())
}
