//go:build e2e && unix

package main

import (
	"os"
	"path/filepath"
)

const testConfig = `version = 1

[ui]
  log_file = "selectbox.log"
  autosave_on_exit = true
  show_help = true

[[control]]
  id = "fruit"
  label = "Fruit"
  mode = "single"

  [[control.option]]
    label = "Apple"
    value = "apple"

  [[control.option]]
    label = "Banana"
    value = "banana"

  [[control.option]]
    label = "Cherry"
    value = "cherry"

[[control]]
  id = "tags"
  label = "Tags"
  mode = "multiple"

  [[control.option]]
    label = "urgent"
    value = "urgent"

  [[control.option]]
    label = "backend"
    value = "backend"

  [[control.option]]
    label = "docs"
    value = 3
`

// CreateTestWorkspace creates a temporary working directory for the app
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// WriteConfig writes the standard two-control config into the workspace
func (tf *TUITestFramework) WriteConfig() (string, error) {
	path := filepath.Join(tf.workspace, "selectbox.toml")
	return path, os.WriteFile(path, []byte(testConfig), 0644)
}
