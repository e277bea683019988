package utils

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSpinner(t *testing.T) {
	t.Run("writes description to given writer", func(t *testing.T) {
		var buf bytes.Buffer

		spin := NewSpinner(&buf, DescFetching)
		require.NotNil(t, spin)

		require.NoError(t, spin.Add(1))
		require.NoError(t, spin.Finish())

		assert.Contains(t, buf.String(), DescFetching)
	})

	t.Run("nil writer falls back to stderr", func(t *testing.T) {
		spin := NewSpinner(nil, DescFetching)
		require.NotNil(t, spin)
		assert.NoError(t, spin.Finish())
	})
}

func TestStartSpinner(t *testing.T) {
	var buf bytes.Buffer

	stop := StartSpinner(&buf, DescFetching)
	time.Sleep(3 * spinnerInterval)
	stop()
	stop()

	assert.Contains(t, buf.String(), DescFetching)
}
