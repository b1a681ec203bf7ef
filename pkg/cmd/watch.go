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
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
)

// Watch a set of proof scripts, re-checking each whenever it is written.  This
// does not return unless the watcher fails.
func watchScripts(cfg checkConfig, files []string) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	defer watcher.Close()
	//
	files = lo.Map(files, func(file string, _ int) string { return filepath.Clean(file) })
	// Watch enclosing directories, since many editors save by replacing files.
	dirs := lo.Uniq(lo.Map(files, func(file string, _ int) string { return filepath.Dir(file) }))
	//
	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
	}
	//
	log.Infof("watching %d script(s) for changes", len(files))
	//
	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			//
			name := filepath.Clean(ev.Name)
			//
			if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 && lo.Contains(files, name) {
				log.Debugf("%s changed (%s)", name, ev.Op)
				checkScripts(cfg, []string{name})
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			//
			log.Error(err)
		}
	}
}
