// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package snapshot stores groups as YAML files, so that a group can be
// continued across invocations of the command line tool.
package snapshot

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/xdg"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"laptudirm.com/x/ttourney/pkg/group"
	"laptudirm.com/x/ttourney/pkg/internal/util"
)

const Permissions = 0755

// Extension is the file extension of snapshot files.
const Extension = ".yaml"

// Directory is where snapshots which are referred to by a bare name live.
var Directory = filepath.Join(xdg.DataHome, "ttourney")

// Path resolves the given snapshot name to a file path. Bare names refer
// to snapshots in Directory, while anything which looks like a path is
// used as is.
func Path(name string) string {
	if strings.ContainsRune(name, filepath.Separator) || filepath.Ext(name) != "" {
		return name
	}

	return filepath.Join(Directory, name+Extension)
}

// Save writes the Record of the given group to the named snapshot.
func Save(name string, g group.Group) error {
	file := Path(name)
	if err := os.MkdirAll(filepath.Dir(file), Permissions); err != nil {
		return err
	}

	data, err := yaml.Marshal(g.Record())
	if err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}

	logrus.WithField("file", file).Debug("Saving snapshot")
	return os.WriteFile(file, data, 0644)
}

// Load reconstructs the group stored in the named snapshot.
func Load(name string, options ...group.Option) (group.Group, error) {
	file := Path(name)

	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	var record group.Record
	if err := yaml.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}

	logrus.WithField("file", file).Debug("Loaded snapshot")
	return group.FromRecord(record, options...)
}

// List returns the names of the snapshots in Directory in natural order.
func List() ([]string, error) {
	entries, err := os.ReadDir(Directory)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if name, found := strings.CutSuffix(entry.Name(), Extension); found && !entry.IsDir() {
			names = append(names, name)
		}
	}

	sort.Slice(names, func(i, j int) bool {
		return util.AlphanumLess(names[i], names[j])
	})

	return names, nil
}
