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

package rlbwt

import (
	"context"
	"testing"
	"time"
)

type recordingListener struct {
	events []*Event
}

func (l *recordingListener) ProcessEvent(evt *Event) {
	l.events = append(l.events, evt)
}

// TestVerbosityGatesEvents is section 6's verbosity contract: a
// Listener only receives BUILD/GAP/MERGE_START/END events at verbose
// >= 2 and PROGRESS events at verbose >= 3.
func TestVerbosityGatesEvents(t *testing.T) {
	l := &recordingListener{}
	e0 := buildString(t, []int32{1, 2, 0})
	e1 := buildString(t, []int32{3, 4, 0})

	if _, err := MergeInto(context.Background(), e0, e1, BuildOptions{Listener: l, Verbose: 0}); err != nil {
		t.Fatalf("MergeInto: %v", err)
	}

	if len(l.events) != 0 {
		t.Fatalf("got %d events at verbose=0, want 0", len(l.events))
	}

	l.events = nil

	if _, err := MergeInto(context.Background(), e0, e1, BuildOptions{Listener: l, Verbose: 2}); err != nil {
		t.Fatalf("MergeInto: %v", err)
	}

	if len(l.events) == 0 {
		t.Fatalf("got 0 events at verbose=2, want GAP/MERGE start+end events")
	}

	for _, evt := range l.events {
		if evt.Type() == EVT_PROGRESS {
			t.Fatalf("got a PROGRESS event at verbose=2, want it gated to verbose>=3")
		}
	}
}

func TestEventString(t *testing.T) {
	evt := NewEvent(EVT_BUILD_END, 0, 42, time.Unix(0, 0))

	if evt.Size() != 42 {
		t.Fatalf("Size() = %d, want 42", evt.Size())
	}

	s := evt.String()

	if s == "" {
		t.Fatalf("String() returned empty string")
	}
}

func TestEventFromString(t *testing.T) {
	evt := NewEventFromString(EVT_BUILD_END, "mcnt: [5 1 1 1 1 1 0]", time.Time{})

	if evt.String() != "mcnt: [5 1 1 1 1 1 0]" {
		t.Fatalf("String() = %q, want the raw message", evt.String())
	}
}
