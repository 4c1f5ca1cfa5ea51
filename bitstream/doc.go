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

// Package bitstream provides the packed bit-level reader and writer
// used to hold an RL-BWT run stream: a (run-length, symbol) pair is
// written as a fixed-width run-length field (sized by sbits) followed
// by a fixed-width symbol field (sized by the alphabet's bit width).
// Rank samples are not written to the stream; they are rebuilt when a
// loaded index is finalized.
package bitstream
