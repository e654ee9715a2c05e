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

package concurrent

import "go.uber.org/zap"

//go:generate mockgen -source=./logger.go -destination=./logger_mock.go -package=concurrent

// taskLogger is the narrow logging surface Pool, SerialQueue, and
// TicketQueue depend on at their panic-recovery boundary. *xlog.Logger
// satisfies it; tests substitute a mock so the logging side-effect of a
// panicking task can be asserted as behavior, not just inferred from the
// worker surviving.
type taskLogger interface {
	Error(msg string, fields ...zap.Field)
}
