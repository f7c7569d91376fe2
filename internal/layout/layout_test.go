package layout_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Anthya1104/evenodd-raid6/internal/layout"
	"github.com/stretchr/testify/assert"
)

func writeYAML(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "array.yaml")
	assert.Nil(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		path := writeYAML(t, `
prime: 17
max_disks: 8
num_disk: 6
stripe_size_bytes: 128
`)
		a, err := layout.Load(path)
		assert.Nil(t, err)
		assert.Equal(t, 17, a.Prime)
		assert.Equal(t, 8, a.MaxDisks)
		assert.Equal(t, 6, a.NumDisk)

		e, err := a.Engine()
		assert.Nil(t, err)
		assert.Equal(t, 17, e.Prime)
	})

	t.Run("num_disk out of range", func(t *testing.T) {
		path := writeYAML(t, `
prime: 17
max_disks: 8
num_disk: 2
stripe_size_bytes: 128
`)
		_, err := layout.Load(path)
		assert.NotNil(t, err)
	})

	t.Run("stripe size not aligned", func(t *testing.T) {
		path := writeYAML(t, `
prime: 17
max_disks: 8
num_disk: 4
stripe_size_bytes: 100
`)
		_, err := layout.Load(path)
		assert.NotNil(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := layout.Load("/nonexistent/path/array.yaml")
		assert.NotNil(t, err)
	})
}
