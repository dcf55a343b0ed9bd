package emitter

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-enumgen/pkg/genconfig"
)

type emittedDoc struct {
	Name        string                    `yaml:"name"`
	Description string                    `yaml:"description"`
	Game        string                    `yaml:"game"`
	Testgame    map[string]map[string]any `yaml:",inline"`
}

func readEmitted(t *testing.T, path string) []emittedDoc {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var docs []emittedDoc
	dec := yaml.NewDecoder(f)
	for {
		var doc emittedDoc
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				return docs
			}
			t.Fatalf("decode %s: %v", path, err)
		}
		docs = append(docs, doc)
	}
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "Timespinner.yaml", FileName("Timespinner"))
	assert.Equal(t, "Ocarina_of_Time.yaml", FileName("Ocarina of Time"))
	assert.Equal(t, "A_Link_to_the_Past.yaml", FileName("A  Link to the   Past"))
}

func TestYAMLWritesMultiDocumentFile(t *testing.T) {
	dir := t.TempDir()
	sink, err := NewYAML(dir)
	require.NoError(t, err)

	w, err := sink.Begin(context.Background(), "Testgame")
	require.NoError(t, err)

	for seq := 1; seq <= 3; seq++ {
		doc := genconfig.New("Testgame")
		doc.Set("Testgame", "death_link", seq)
		require.NoError(t, w.Write(doc, seq))
	}
	require.NoError(t, w.Close())

	docs := readEmitted(t, filepath.Join(dir, "Testgame.yaml"))
	require.Len(t, docs, 3)

	for i, doc := range docs {
		assert.Equal(t, "Testgame", doc.Game)
		assert.Contains(t, doc.Name, "Testgame")
		opts := doc.Testgame["Testgame"]
		require.NotNil(t, opts)
		assert.Equal(t, i+1, opts["death_link"])
		assert.Equal(t, 0, opts[genconfig.KeyProgressionBalancing])
		assert.Equal(t, "items", opts[genconfig.KeyAccessibility])
	}
}

func TestYAMLDefaultNamePattern(t *testing.T) {
	dir := t.TempDir()
	sink, err := NewYAML(dir)
	require.NoError(t, err)

	w, err := sink.Begin(context.Background(), "Testgame")
	require.NoError(t, err)
	require.NoError(t, w.Write(genconfig.New("Testgame"), 7))
	require.NoError(t, w.Close())

	docs := readEmitted(t, filepath.Join(dir, "Testgame.yaml"))
	require.Len(t, docs, 1)
	assert.Equal(t, "Testgame7", docs[0].Name)
	assert.Equal(t, "Testgame7", docs[0].Description, "description defaults to the name pattern")
}

func TestYAMLCustomPatterns(t *testing.T) {
	dir := t.TempDir()
	sink, err := NewYAML(dir,
		WithNamePattern("run-{{ seq }}"),
		WithDescriptionPattern("{{ entity }} sweep {{ seq }}"),
	)
	require.NoError(t, err)

	w, err := sink.Begin(context.Background(), "Testgame")
	require.NoError(t, err)
	require.NoError(t, w.Write(genconfig.New("Testgame"), 2))
	require.NoError(t, w.Close())

	docs := readEmitted(t, filepath.Join(dir, "Testgame.yaml"))
	require.Len(t, docs, 1)
	assert.Equal(t, "run-2", docs[0].Name)
	assert.Equal(t, "Testgame sweep 2", docs[0].Description)
}

func TestYAMLRejectsMalformedPattern(t *testing.T) {
	_, err := NewYAML(t.TempDir(), WithNamePattern("{{ entity"))
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "compile name pattern"))
}

func TestYAMLBeginTruncatesPreviousRun(t *testing.T) {
	dir := t.TempDir()
	sink, err := NewYAML(dir)
	require.NoError(t, err)

	w, err := sink.Begin(context.Background(), "Testgame")
	require.NoError(t, err)
	require.NoError(t, w.Write(genconfig.New("Testgame"), 1))
	require.NoError(t, w.Write(genconfig.New("Testgame"), 2))
	require.NoError(t, w.Close())

	w, err = sink.Begin(context.Background(), "Testgame")
	require.NoError(t, err)
	require.NoError(t, w.Write(genconfig.New("Testgame"), 1))
	require.NoError(t, w.Close())

	docs := readEmitted(t, filepath.Join(dir, "Testgame.yaml"))
	assert.Len(t, docs, 1)
}

func TestYAMLBeginHonoursContext(t *testing.T) {
	sink, err := NewYAML(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = sink.Begin(ctx, "Testgame")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCollectGroupsDocumentsByEntity(t *testing.T) {
	sink := NewCollect()

	w, err := sink.Begin(context.Background(), "Testgame")
	require.NoError(t, err)
	require.NoError(t, w.Write(genconfig.New("Testgame"), 1))
	require.NoError(t, w.Write(genconfig.New("Testgame"), 2))
	require.NoError(t, w.Close())

	other, err := sink.Begin(context.Background(), "Othergame")
	require.NoError(t, err)
	require.NoError(t, other.Write(genconfig.New("Othergame"), 1))
	require.NoError(t, other.Close())

	assert.Len(t, sink.Docs["Testgame"], 2)
	assert.Len(t, sink.Docs["Othergame"], 1)
}
