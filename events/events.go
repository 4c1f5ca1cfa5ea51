/*
Copyright 2011-2026 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package events provides a concrete rlbwt.Listener for command-line
// callers: one line per event, written to an io.Writer (typically
// os.Stderr).
package events

import (
	"fmt"
	"io"

	"github.com/dnaidx/rlbwt"
)

// StderrListener writes one line per event it receives. It is not
// itself gated by verbosity: the build/gap/merge call sites only
// invoke a Listener once verbose crosses the threshold for that event
// type (fm_verbose >= 3 in the original implementation), so the
// listener can stay a dumb printer.
type StderrListener struct {
	w io.Writer
}

// NewStderrListener returns a listener that writes to w.
func NewStderrListener(w io.Writer) *StderrListener {
	return &StderrListener{w: w}
}

// ProcessEvent implements rlbwt.Listener.
func (l *StderrListener) ProcessEvent(evt *rlbwt.Event) {
	fmt.Fprintln(l.w, evt.String())
}
