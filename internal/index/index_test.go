// Copyright 2025 Rıza Emre ARAS
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

package index

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type keyed struct {
	key string
	pos int
}

func (k *keyed) String() string {
	return k.key
}

func TestIndex_Search(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		values   []*keyed
		query    string
		expected []*keyed
	}{
		{
			name:     "single result",
			values:   []*keyed{{"foo", 0}, {"bar", 1}, {"baz", 2}},
			query:    "foo",
			expected: []*keyed{{"foo", 0}},
		},
		{
			name:     "equal keys keep insertion order",
			values:   []*keyed{{"bar", 0}, {"foo", 1}, {"bar", 2}, {"bar", 3}},
			query:    "bar",
			expected: []*keyed{{"bar", 0}, {"bar", 2}, {"bar", 3}},
		},
		{
			name:     "no results",
			values:   []*keyed{{"foo", 0}, {"bar", 1}},
			query:    "none",
			expected: nil,
		},
		{
			name:     "empty index",
			values:   nil,
			query:    "foo",
			expected: nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			idx := New(test.values, strings.Compare)

			got := idx.Search(test.query)
			if diff := cmp.Diff(test.expected, got, cmp.AllowUnexported(keyed{})); diff != "" {
				t.Fatalf("Search (-want, +got):\n%s", diff)
			}
		})
	}
}
