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
	"fmt"
	"time"
)

const (
	EVT_BUILD_START   = 0 // Fresh BWT build (no E0) starts
	EVT_BUILD_END     = 1 // Build (fresh or append) ends
	EVT_GAP_START     = 2 // Gap array/hash computation starts
	EVT_GAP_END       = 3 // Gap array/hash computation ends
	EVT_MERGE_START   = 4 // Streaming merge starts
	EVT_MERGE_END     = 5 // Streaming merge ends
	EVT_PROGRESS      = 6 // Periodic progress report during gap computation or merge
)

// Event is a build/merge progress event. It intentionally carries only
// scalars (no pointer to the index being built) so a Listener can be
// invoked from inside a tight loop without risking a data race if it
// retains the event past the call.
type Event struct {
	eventType int
	processed int64 // symbols processed so far, meaningful for EVT_PROGRESS
	size      int64 // final length, meaningful for EVT_BUILD_END
	eventTime time.Time
	msg       string
}

// NewEvent creates a progress event.
func NewEvent(evtType int, processed, size int64, evtTime time.Time) *Event {
	if evtTime.IsZero() {
		evtTime = time.Now()
	}

	return &Event{eventType: evtType, processed: processed, size: size, eventTime: evtTime}
}

// NewEventFromString wraps a free-form diagnostic message (used for the
// mcnt dump fm_build prints at verbose>=3).
func NewEventFromString(evtType int, msg string, evtTime time.Time) *Event {
	if evtTime.IsZero() {
		evtTime = time.Now()
	}

	return &Event{eventType: evtType, msg: msg, eventTime: evtTime}
}

// Type returns the event type.
func (this *Event) Type() int {
	return this.eventType
}

// Processed returns the number of symbols processed so far.
func (this *Event) Processed() int64 {
	return this.processed
}

// Size returns the size info.
func (this *Event) Size() int64 {
	return this.size
}

// Time returns the time the event was created.
func (this *Event) Time() time.Time {
	return this.eventTime
}

// String returns a human readable representation of the event.
func (this *Event) String() string {
	if len(this.msg) > 0 {
		return this.msg
	}

	t := ""

	switch this.eventType {
	case EVT_BUILD_START:
		t = "BUILD_START"
	case EVT_BUILD_END:
		t = "BUILD_END"
	case EVT_GAP_START:
		t = "GAP_START"
	case EVT_GAP_END:
		t = "GAP_END"
	case EVT_MERGE_START:
		t = "MERGE_START"
	case EVT_MERGE_END:
		t = "MERGE_END"
	case EVT_PROGRESS:
		t = "PROGRESS"
	}

	return fmt.Sprintf("{ \"type\":\"%s\", \"processed\":%d, \"size\":%d, \"time\":%d }",
		t, this.processed, this.size, this.eventTime.UnixNano()/1000000)
}

// Listener is implemented by event processors. ProcessEvent is called
// synchronously from the build/merge loop, so implementations must not
// block.
type Listener interface {
	ProcessEvent(evt *Event)
}

// progressMsgSize mirrors MSG_SIZE in the original implementation: a
// progress event is emitted once every this-many processed symbols.
const progressMsgSize = 10000000

// notifyProgress reports n processed symbols to listener if verbose
// requests it (see section 6: verbose >= 3 enables progress messages).
func notifyProgress(listener Listener, verbose int, processed int64) {
	if listener == nil || verbose < 3 {
		return
	}

	if processed%progressMsgSize == 0 {
		listener.ProcessEvent(NewEvent(EVT_PROGRESS, processed, 0, time.Time{}))
	}
}
