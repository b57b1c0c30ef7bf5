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

package pattern

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"gitlab.com/tozd/go/errors"
)

// Placeholder marks where the sequence number goes in a pattern.
const Placeholder = "{}"

// numberGroup replaces the placeholder inside the matcher expression.
const numberGroup = `(\d+)`

// 🎯 Pattern is a compiled rename pattern.
//
// The raw text is embedded into the matcher verbatim, so regexp
// metacharacters in it keep their regexp meaning.
type Pattern struct {
	raw     string
	matcher *regexp.Regexp
}

// 🏭 Compile builds the matcher for raw. An empty raw pattern matches any
// name that starts with a number.
func Compile(raw string) (*Pattern, error) {
	var expr string
	if strings.Contains(raw, Placeholder) {
		expr = strings.ReplaceAll(raw, Placeholder, numberGroup)
	} else {
		expr = raw + numberGroup
	}

	matcher, err := regexp.Compile("^" + expr + ".*$")
	if err != nil {
		return nil, errors.Errorf("compiling pattern %q: %w", raw, err)
	}

	return &Pattern{raw: raw, matcher: matcher}, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(raw string) *Pattern {
	p, err := Compile(raw)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the raw pattern text.
func (p *Pattern) String() string {
	return p.raw
}

// HasPlaceholder reports whether the raw pattern contains the placeholder.
func (p *Pattern) HasPlaceholder() bool {
	return strings.Contains(p.raw, Placeholder)
}

// Expr returns the matcher expression.
func (p *Pattern) Expr() string {
	return p.matcher.String()
}

// 🔍 Match reports whether name already conforms to the pattern and, if so,
// the number it carries. Names that are not valid UTF-8 never conform.
func (p *Pattern) Match(name string) (uint64, bool, error) {
	if !utf8.ValidString(name) {
		return 0, false, nil
	}

	groups := p.matcher.FindStringSubmatch(name)
	if groups == nil {
		return 0, false, nil
	}

	n, err := strconv.ParseUint(groups[1], 10, 64)
	if err != nil {
		return 0, false, errors.Errorf("parsing sequence number of %q: %w", name, err)
	}

	return n, true, nil
}

// Stem builds the new file stem for sequence number n.
func (p *Pattern) Stem(n uint64) string {
	num := strconv.FormatUint(n, 10)
	if p.HasPlaceholder() {
		return strings.ReplaceAll(p.raw, Placeholder, num)
	}
	return p.raw + num
}

// Name builds the new file name for n, keeping the extension of the base
// name of original.
func (p *Pattern) Name(n uint64, original string) string {
	ext, _ := Extension(filepath.Base(original))
	return p.Stem(n) + ext
}

// 📎 Extension returns the suffix of name starting at its last dot.
//
// A name whose only dot is the leading one (".bashrc") has no extension,
// and neither does "..". A trailing dot yields ".".
func Extension(name string) (string, bool) {
	if name == ".." {
		return "", false
	}
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return "", false
	}
	return name[i:], true
}
