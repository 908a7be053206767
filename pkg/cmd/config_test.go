// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/consensys/go-svfold/pkg/eval"
	"github.com/consensys/go-svfold/pkg/util/assert"
)

func Test_Config_00(t *testing.T) {
	// Empty files give the defaults
	cfg := check_Config(t, "")
	//
	assert.Equal(t, eval.DefaultOptions(), cfg.Options())
	assert.Equal(t, "", cfg.Radix)
	assert.True(t, cfg.AnsiEscapes)
}

func Test_Config_01(t *testing.T) {
	cfg := check_Config(t, "limits:\n  max-call-depth: 16\n  max-steps: 500\nradix: h\njobs: 2\n")
	//
	assert.Equal(t, uint(16), cfg.Options().MaxCallDepth)
	assert.Equal(t, uint(500), cfg.Options().MaxSteps)
	// Unspecified limits retain their defaults
	assert.Equal(t, eval.DefaultOptions().MaxWidth, cfg.Options().MaxWidth)
	assert.Equal(t, "h", cfg.Radix)
	assert.Equal(t, uint(2), cfg.Jobs)
}

func Test_Config_02(t *testing.T) {
	// Misspelt settings are rejected
	_, err := decodeConfig("test.yaml", strings.NewReader("limits:\n  max-call-deep: 16\n"))
	//
	assert.True(t, err != nil)
	assert.True(t, strings.Contains(err.Error(), "test.yaml"))
}

func Test_Config_03(t *testing.T) {
	var cfg = check_Config(t, "radix: q\nlimits:\n  max-steps: 0\n")
	//
	err := cfg.Validate()
	//
	assert.True(t, err != nil)
	assert.True(t, strings.Contains(err.Error(), "unknown radix"))
	assert.True(t, strings.Contains(err.Error(), "max-steps"))
}

func Test_Config_04(t *testing.T) {
	var filename = filepath.Join(t.TempDir(), "svfold.yaml")
	//
	if err := os.WriteFile(filename, []byte("ansi-escapes: false\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	//
	cfg, err := readConfig(filename)
	//
	assert.True(t, err == nil)
	assert.False(t, cfg.AnsiEscapes)
	// Explicitly given files must exist
	_, err = readConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, err != nil)
}

// ===================================================================
// Test Helpers
// ===================================================================

func check_Config(t *testing.T, text string) config {
	t.Helper()
	//
	cfg, err := decodeConfig("test.yaml", strings.NewReader(text))
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	return cfg
}
