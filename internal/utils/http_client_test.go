package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient(t *testing.T) {
	client := NewHTTPClient(15 * time.Second)

	require.NotNil(t, client)
	require.NotNil(t, client.Client)
	assert.Equal(t, 15*time.Second, client.GetClient().Timeout)
}

func TestNewHTTPClient_ZeroTimeout(t *testing.T) {
	client := NewHTTPClient(0)

	require.NotNil(t, client)
	assert.Zero(t, client.GetClient().Timeout)
}

func TestNewHTTPClient_IndependentInstances(t *testing.T) {
	first := NewHTTPClient(time.Second)
	second := NewHTTPClient(time.Minute)

	assert.NotSame(t, first.Client, second.Client)
	assert.NotEqual(t, first.GetClient().Timeout, second.GetClient().Timeout)
}
