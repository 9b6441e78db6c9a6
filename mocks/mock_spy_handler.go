/*
 *    Copyright 2023 iFood
 *
 *    Licensed under the Apache License, Version 2.0 (the "License");
 *    you may not use this file except in compliance with the License.
 *    You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 *    Unless required by applicable law or agreed to in writing, software
 *    distributed under the License is distributed on an "AS IS" BASIS,
 *    WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *    See the License for the specific language governing permissions and
 *    limitations under the License.
 */

package mocks

import (
	"context"
	"sync"
	"upload-sentry/domain/entities"
)

// Coding because gomock still does not support generics properly. Even a derived interface embedding the generic one didn't work.
type SpyHandler struct {
	mu      sync.Mutex
	Counter map[string]int
	Err     error
	Panic   any
	Forward bool
}

func NewSpyHandler() *SpyHandler {
	return &SpyHandler{Counter: make(map[string]int)}
}

func (m *SpyHandler) Handle(ctx context.Context, request *entities.InspectionRequest, w *entities.OutputWriter[entities.InspectionRequest]) error {
	m.mu.Lock()
	m.Counter["Handle"] += 1
	panicValue, forward, err := m.Panic, m.Forward, m.Err
	m.mu.Unlock()

	if panicValue != nil {
		panic(panicValue)
	}

	if forward {
		w.Write(ctx, request)
	}

	return err
}

func (m *SpyHandler) Name() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Counter["Name"] += 1
	return "SpyHandler"
}

func (m *SpyHandler) Count(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.Counter[method]
}
