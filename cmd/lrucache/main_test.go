package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	t.Setenv("LRU_CAPACITY", "64")
	t.Setenv("LRU_SHARDS", "4")
	t.Setenv("LRU_WORKERS", "4")
	t.Setenv("LRU_KEYS", "256")
	t.Setenv("LRU_OPS", "500")

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), "", &out))
	assert.Contains(t, out.String(), "walkthrough done")
	assert.Contains(t, out.String(), "load done")
}

func TestRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := run(ctx, "", &out)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_InvalidConfig(t *testing.T) {
	t.Setenv("LRU_WORKERS", "0")
	var out bytes.Buffer
	assert.Error(t, run(context.Background(), "", &out))
}
