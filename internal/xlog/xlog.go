// Licensed to LinDB under one or more contributor
// license agreements. See the NOTICE file distributed with
// this work for additional information regarding copyright
// ownership. LinDB licenses this file to you under
// the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

// Package xlog is a thin component-scoped logger on top of zap, in the
// shape the dispatch core's components expect: GetLogger(component, name).
package xlog

import (
	"sync"

	"go.uber.org/zap"
)

var (
	baseMu  sync.RWMutex
	base    *zap.Logger
	loggers = map[string]*Logger{}
)

func init() {
	l, err := zap.NewProduction()
	if err != nil {
		l = zap.NewNop()
	}
	base = l
}

// SetBase replaces the underlying zap logger used by every component
// logger created through GetLogger. Intended for tests and for hosts
// that want to route dispatch-core logs into their own sink.
func SetBase(l *zap.Logger) {
	baseMu.Lock()
	defer baseMu.Unlock()
	base = l
}

// Logger is a component + name scoped logger.
type Logger struct {
	component string
	name      string
}

// GetLogger returns the logger for the given component/name pair, e.g.
// GetLogger("Pool", "default").
func GetLogger(component, name string) *Logger {
	key := component + "/" + name
	baseMu.RLock()
	if l, ok := loggers[key]; ok {
		baseMu.RUnlock()
		return l
	}
	baseMu.RUnlock()

	l := &Logger{component: component, name: name}
	baseMu.Lock()
	loggers[key] = l
	baseMu.Unlock()
	return l
}

func (l *Logger) fields(extra []zap.Field) []zap.Field {
	return append([]zap.Field{
		zap.String("component", l.component),
		zap.String("name", l.name),
	}, extra...)
}

func (l *Logger) Debug(msg string, fields ...zap.Field) {
	baseMu.RLock()
	defer baseMu.RUnlock()
	base.Debug(msg, l.fields(fields)...)
}

func (l *Logger) Info(msg string, fields ...zap.Field) {
	baseMu.RLock()
	defer baseMu.RUnlock()
	base.Info(msg, l.fields(fields)...)
}

func (l *Logger) Warn(msg string, fields ...zap.Field) {
	baseMu.RLock()
	defer baseMu.RUnlock()
	base.Warn(msg, l.fields(fields)...)
}

func (l *Logger) Error(msg string, fields ...zap.Field) {
	baseMu.RLock()
	defer baseMu.RUnlock()
	base.Error(msg, l.fields(fields)...)
}

// Error is a convenience alias for zap.Error, matching the teacher's
// logger.Error(err) call shape at panic sites.
func Error(err error) zap.Field { return zap.Error(err) }

// Stack is a convenience alias for zap.Stack, matching the teacher's
// logger.Stack() call shape at panic sites.
func Stack() zap.Field { return zap.Stack("stack") }
