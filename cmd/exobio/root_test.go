package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/katalvlaran/exobio/creature"
	"github.com/katalvlaran/exobio/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv(config.EnvRateInterval, "0s")
	t.Setenv(config.EnvLogLevel, "error")

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestRoot_SeedSingle(t *testing.T) {
	out, _, err := execute(t, "--seed", "Hello World")
	require.NoError(t, err)

	var p creature.Parameters
	require.NoError(t, json.Unmarshal([]byte(out), &p))
	assert.Equal(t, "The hello-2 Creature", p.Name)
	assert.Equal(t, "static", p.SeedID)
	assert.Equal(t, 5, p.Torso.RibSegments)
	assert.Len(t, p.Limbs.Mounts, 2)
}

func TestRoot_SeedBatch(t *testing.T) {
	out, _, err := execute(t, "--seed", "abcd", "--count", "3", "--pretty", "--style", "spiky")
	require.NoError(t, err)
	assert.Contains(t, out, "\n  ")

	var ps []creature.Parameters
	require.NoError(t, json.Unmarshal([]byte(out), &ps))
	require.Len(t, ps, 3)
	for _, p := range ps {
		assert.Equal(t, "spiky", p.Limbs.Style.String())
		assert.Equal(t, "shell", p.Torso.Kind.String())
	}
}

func TestRoot_FetchesFromURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":"f1","text":"Bananas are berries","source":"test"}`)
	}))
	defer srv.Close()

	out, _, err := execute(t, "--url", srv.URL)
	require.NoError(t, err)

	var p creature.Parameters
	require.NoError(t, json.Unmarshal([]byte(out), &p))
	assert.Equal(t, "f1", p.SeedID)
	assert.Equal(t, "bananas are berries", p.Sentence)
}

func TestRoot_FallbackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	out, _, err := execute(t, "--url", srv.URL)
	require.NoError(t, err)

	var p creature.Parameters
	require.NoError(t, json.Unmarshal([]byte(out), &p))
	assert.Equal(t, "fallback", p.SeedID)
}

func TestRoot_InvalidFlags(t *testing.T) {
	for _, args := range [][]string{
		{"--seed", "x", "--count", "0"},
		{"--seed", "x", "--concurrency", "0"},
		{"--seed", "x", "--style", "fluffy"},
		{"positional"},
	} {
		_, _, err := execute(t, args...)
		assert.Error(t, err, "%v", args)
	}
}
