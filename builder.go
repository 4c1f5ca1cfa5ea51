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
	"fmt"
	"time"

	"github.com/dnaidx/rlbwt/sais"
)

// sparseThresholdBytes is the policy knob of section 4.5: above this
// many bytes, a dense gap array (4*N0, plus overflow) is judged too
// expensive to hold alongside the two indexes being merged, and the
// sparse hash representation is used instead.
const sparseThresholdBytes = 256 * 1024 * 1024

// BuildOptions configures Build/Append.
type BuildOptions struct {
	// Listener, if non-nil, receives build/gap/merge progress events.
	Listener Listener

	// Verbose gates which event types Listener receives (section 6).
	Verbose int

	// ForceSparse forces the sparse gap representation regardless of
	// sparseThresholdBytes.
	ForceSparse bool
}

// Build runs BwtBuilder over s (a concatenation of one or more
// sentinel-terminated strings over [0, asize)) and packs the result
// into a fresh index. s is overwritten in place with its BWT.
//
// Grounded on fm_build in the original implementation.
func Build(s []int32, asize int, sbits uint, opts BuildOptions) (*Index, error) {
	if err := sais.BuildBWT(s, asize); err != nil {
		return nil, err
	}

	notify(opts.Listener, opts.Verbose, EVT_BUILD_START, int64(len(s)))
	e := EncodeBWT(s, asize, sbits)

	if opts.Listener != nil && opts.Verbose >= 3 {
		// At verbose >= 3 the BUILD_END event carries the finished mcnt.
		opts.Listener.ProcessEvent(NewEventFromString(EVT_BUILD_END, fmt.Sprintf("mcnt: %v", e.mcnt), time.Time{}))
	} else {
		notify(opts.Listener, opts.Verbose, EVT_BUILD_END, int64(e.Len()))
	}

	return e, nil
}

// Build6 is the A=6, sbits=3 convenience constructor used by DNA-style
// 4-letter-plus-ambiguity-plus-sentinel alphabets (fm6_build in the
// original implementation).
func Build6(s []int32, opts BuildOptions) (*Index, error) {
	return Build(s, 6, 3, opts)
}

// Append builds a fresh index from s and merges it into e0, returning
// the combined index. e0 is left untouched; the result is a new
// *Index. Returns ErrStructMismatch if e0's asize/sbits don't match
// the requested asize/sbits.
func Append(ctx context.Context, e0 *Index, s []int32, asize int, sbits uint, opts BuildOptions) (*Index, error) {
	if e0.asize != asize || e0.sbits != sbits {
		return nil, ErrStructMismatch
	}

	e1, err := Build(s, asize, sbits, opts)

	if err != nil {
		return nil, err
	}

	return MergeInto(ctx, e0, e1, opts)
}

// MergeInto merges e1 into e0, choosing the dense or sparse gap
// representation per sparseThresholdBytes (or opts.ForceSparse), and
// returns the combined index. Both e0 and e1 are left untouched.
func MergeInto(ctx context.Context, e0, e1 *Index, opts BuildOptions) (*Index, error) {
	if !e0.sameStructure(e1) {
		return nil, ErrStructMismatch
	}

	before := e0.mcnt[0] + e1.mcnt[0]

	useSparse := opts.ForceSparse || uint64(int(e0.Len())+1)*4 > sparseThresholdBytes

	var merged *Index
	var err error

	if useSparse {
		gap, gerr := ComputeSparseGap(ctx, e0, e1, opts.Listener, opts.Verbose)

		if gerr != nil {
			return nil, gerr
		}

		merged, err = MergeSparse(ctx, e0, e1, gap, opts.Listener, opts.Verbose)
	} else {
		gap, gerr := ComputeDenseGap(ctx, e0, e1, opts.Listener, opts.Verbose)

		if gerr != nil {
			return nil, gerr
		}

		merged, err = MergeDense(ctx, e0, e1, gap, opts.Listener, opts.Verbose)
	}

	if err != nil {
		return nil, err
	}

	if merged.mcnt[0] != before {
		return nil, ErrAssertion
	}

	return merged, nil
}
