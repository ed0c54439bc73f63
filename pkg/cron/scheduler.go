// Copyright 2025 QuizHub Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cron

import (
	"errors"
	"sync"
	"time"

	"github.com/go-quizhub/quizhub/pkg/log"
	robfig "github.com/robfig/cron/v3"
)

var (
	// ErrNotInitialized is returned when trying to use the global cron before initialization
	ErrNotInitialized = errors.New("global cron instance is not initialized")
)

var (
	globalCron *robfig.Cron
	globalMu   sync.RWMutex
	once       sync.Once
)

// Init initializes the global cron instance
func Init() {
	once.Do(func() {
		globalMu.Lock()
		defer globalMu.Unlock()

		globalCron = robfig.New(robfig.WithLocation(time.Local))
	})
}

// Get returns the global cron instance
// Returns nil if not initialized
func Get() *robfig.Cron {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalCron
}

// Start starts the global cron scheduler
func Start() {
	globalMu.RLock()
	c := globalCron
	globalMu.RUnlock()

	if c != nil {
		c.Start()
	}
}

// Stop stops the global cron scheduler and waits for running jobs
func Stop() {
	globalMu.RLock()
	c := globalCron
	globalMu.RUnlock()

	if c != nil {
		<-c.Stop().Done()
	}
}

// AddFunc adds a func to the global cron instance
func AddFunc(spec string, cmd func(), names ...string) error {
	globalMu.RLock()
	c := globalCron
	globalMu.RUnlock()

	if c == nil {
		return ErrNotInitialized
	}

	name := ""
	if len(names) > 0 {
		name = names[0]
	}

	_, err := c.AddFunc(spec, func() {
		if name != "" {
			log.Debugf("cron job %s fired", name)
		}
		cmd()
	})
	return err
}
