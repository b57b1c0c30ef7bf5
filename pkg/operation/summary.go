// Copyright 2025 walteh LLC
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

package operation

// 🎨 Outcome is what happened to a pending file.
type Outcome int

const (
	OutcomePlanned  Outcome = iota // dry run, nothing touched
	OutcomeRenamed                 // renamed on disk
	OutcomeDeclined                // user said no
	OutcomeFailed                  // filesystem refused
	OutcomeVanished                // gone before its turn came
)

func (o Outcome) String() string {
	switch o {
	case OutcomePlanned:
		return "planned"
	case OutcomeRenamed:
		return "renamed"
	case OutcomeDeclined:
		return "declined"
	case OutcomeFailed:
		return "failed"
	case OutcomeVanished:
		return "vanished"
	default:
		return "unknown"
	}
}

// 📝 Rename records one pending file and its fate.
type Rename struct {
	From    string
	To      string // empty when the file vanished
	Number  uint64 // number offered to the file
	Outcome Outcome
	Err     error // set for OutcomeFailed
}

// 📊 Summary describes a finished run.
type Summary struct {
	Dir     string
	Skipped []string // conforming files left alone
	Ignored []string // files excluded by ignore globs
	Used    []uint64 // numbers held by conforming files before the run
	Renames []Rename // pending files in processing order
}

// Count returns the number of pending files that ended with o.
func (s *Summary) Count(o Outcome) int {
	n := 0
	for _, r := range s.Renames {
		if r.Outcome == o {
			n++
		}
	}
	return n
}
