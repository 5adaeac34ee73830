package testutil_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/snarkcore/babyjubjub/internal/testutil"
)

func TestTranscriptIsDeterministic(t *testing.T) {
	a := testutil.Transcript("test-label", 7, 40)
	b := testutil.Transcript("test-label", 7, 40)

	require.Equal(t, a, b)
	require.Len(t, a, 40)
}

func TestTranscriptVariesByIndex(t *testing.T) {
	a := testutil.Transcript("test-label", 1, 32)
	b := testutil.Transcript("test-label", 2, 32)

	require.NotEqual(t, a, b)
}

func TestRepeatRunsExactlyN(t *testing.T) {
	count := 0
	testutil.Repeat(t, 37, func(t *testing.T, i int) {
		count++
	})

	require.Equal(t, 37, count)
}
