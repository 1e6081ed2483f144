// Copyright 2026 AWOK559
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package c5flash_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/AWOK559/c5flash"
)

func TestConfirm(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{" y \n", true},
		{"n\n", false},
		{"\n", false},
		{"yes\n", false},
		{"", false}, // EOF without input declines
	}
	for _, c := range cases {
		var out bytes.Buffer
		got := c5flash.Confirm(strings.NewReader(c.input), &out, "flash? (y/N): ")
		if got != c.want {
			t.Errorf("Confirm(%q) = %v, want %v", c.input, got, c.want)
		}
		if out.String() != "flash? (y/N): " {
			t.Errorf("Prompt not written, got %q", out.String())
		}
	}
}
