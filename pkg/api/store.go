// Copyright (c) 2025, The Schafer Family Cookbook Authors.  All rights reserved.
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

package api

import (
	"sync"
	"sync/atomic"

	"github.com/schafer-family/cookbook/pkg/errors"
	"github.com/schafer-family/cookbook/pkg/recipe"
)

// Store holds the catalog being served. Readers always see a complete
// catalog; a reload swaps the whole value. Loads are ordered by generation so
// a slow load that began earlier never replaces the result of a later one.
type Store struct {
	catalog atomic.Pointer[recipe.Catalog]
	next    atomic.Uint64

	mu        sync.Mutex
	committed uint64
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Catalog returns the current catalog, or nil before the first load.
func (s *Store) Catalog() *recipe.Catalog {
	return s.catalog.Load()
}

// Begin reserves the generation of a load that is about to start.
func (s *Store) Begin() uint64 {
	return s.next.Add(1)
}

// Commit publishes c unless a load with a later generation has already been
// committed. It reports whether c is now served.
func (s *Store) Commit(gen uint64, c *recipe.Catalog) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen < s.committed {
		return false
	}
	s.committed = gen
	s.catalog.Store(c)
	return true
}

// Set publishes c as the newest generation.
func (s *Store) Set(c *recipe.Catalog) {
	s.Commit(s.Begin(), c)
}

// Ready reports an error until a catalog has been loaded.
func (s *Store) Ready() error {
	if s.catalog.Load() == nil {
		return errors.New(errors.ErrCodeUnavailable, "catalog not loaded")
	}
	return nil
}
