// This file is part of hackvm - https://github.com/db47h/hackvm
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// manifest describes a translation run. Relative source and output paths are
// relative to the directory of the manifest file.
//
//	sources:
//	  - Main.vm
//	  - lib
//	output: Prog.asm
//	entry: Main.main
//	bootstrap: always
//	comments: false
type manifest struct {
	Sources   []string `yaml:"sources"`
	Output    string   `yaml:"output"`
	Entry     string   `yaml:"entry"`
	Bootstrap string   `yaml:"bootstrap"`
	Comments  *bool    `yaml:"comments"`
	StackBase int      `yaml:"stack"`
	Run       int64    `yaml:"run"`
}

func loadManifest(fileName string) (*manifest, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "read manifest failed")
	}
	var m manifest
	if err = yaml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrapf(err, "%s: invalid manifest", fileName)
	}
	dir := filepath.Dir(fileName)
	for i, s := range m.Sources {
		m.Sources[i] = resolve(dir, s)
	}
	m.Output = resolve(dir, m.Output)
	return &m, nil
}

func resolve(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

// apply copies the manifest settings into the command line settings that
// have not been set explicitly.
func (m *manifest) apply(set map[string]bool) error {
	if m.Output != "" && !set["o"] {
		outFileName = m.Output
	}
	if m.Entry != "" && !set["entry"] {
		entry = m.Entry
	}
	if m.Bootstrap != "" && !set["bootstrap"] {
		if err := bootstrap.Set(m.Bootstrap); err != nil {
			return err
		}
	}
	if m.Comments != nil && !set["comments"] {
		comments = *m.Comments
	}
	if m.StackBase != 0 && !set["stack"] {
		stackBase = m.StackBase
	}
	if m.Run != 0 && !set["run"] {
		runSteps = m.Run
	}
	return nil
}
