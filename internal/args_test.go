package internal_test

import (
	"testing"

	"stargazer-sink/internal"

	"github.com/stretchr/testify/require"
)

func TestLookupArg(t *testing.T) {
	req := require.New(t)

	t.Run("returns the value following the key", func(t *testing.T) {
		args := []string{"--host", "10.0.0.5", "--port", "6000"}
		req.Equal("10.0.0.5", internal.LookupArg(args, "--host", "0.0.0.0"))
		req.Equal("6000", internal.LookupArg(args, "--port", "50051"))
	})

	t.Run("falls back when the key is absent", func(t *testing.T) {
		args := []string{"--port", "6000"}
		req.Equal("0.0.0.0", internal.LookupArg(args, "--host", "0.0.0.0"))
	})

	t.Run("falls back on empty args", func(t *testing.T) {
		req.Equal("50051", internal.LookupArg(nil, "--port", "50051"))
	})

	t.Run("first occurrence wins", func(t *testing.T) {
		args := []string{"--port", "6000", "--port", "7000"}
		req.Equal("6000", internal.LookupArg(args, "--port", "50051"))
	})

	t.Run("trailing key without a value falls back", func(t *testing.T) {
		args := []string{"--port", "6000", "--host"}
		req.Equal("0.0.0.0", internal.LookupArg(args, "--host", "0.0.0.0"))
	})

	t.Run("a value is never read as a key", func(t *testing.T) {
		// "--host" here is the value of --name, but the scan is positional:
		// it matches any adjacent pair, identical to the launcher contract.
		args := []string{"--name", "--host", "probe"}
		req.Equal("probe", internal.LookupArg(args, "--host", "0.0.0.0"))
	})
}
