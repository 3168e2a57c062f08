package interp

import (
	"fmt"
	"sort"
	"testing"

	"github.com/petomalina/IFJ15/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltins(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantOut string
	}{
		{"concat", `int main() { cout << concat("foo", "bar"); return 0; }`, "foobar"},
		{"concat empty", `int main() { cout << concat("", "x"); return 0; }`, "x"},
		{"length", `int main() { cout << length("hello"); return 0; }`, "5"},
		{"length empty", `int main() { cout << length(""); return 0; }`, "0"},
		{"substr", `int main() { cout << substr("hello", 1, 3); return 0; }`, "ell"},
		{"substr offset past end", `int main() { cout << length(substr("ab", 5, 2)); return 0; }`, "0"},
		{"substr length past end", `int main() { cout << substr("abc", 1, 99); return 0; }`, "bc"},
		{"substr negative offset", `int main() { cout << substr("abc", 0 - 1, 2); return 0; }`, "ab"},
		{"substr negative length", `int main() { cout << length(substr("abc", 1, 0 - 2)); return 0; }`, "0"},
		{"sort", `int main() { cout << sort("dcba"); return 0; }`, "abcd"},
		{"sort stable on sorted", `int main() { cout << sort(sort("banana")); return 0; }`, "aaabnn"},
		{"find present", `int main() { cout << find("hello world", "world"); return 0; }`, "6"},
		{"find absent", `int main() { cout << find("hello", "xyz"); return 0; }`, "-1"},
		{"find empty needle", `int main() { cout << find("hello", ""); return 0; }`, "0"},
		{"nested builtin calls", `int main() { cout << substr(concat("ab", "cd"), 1, 2); return 0; }`, "bc"},
		{"builtin on variable", `int main() { string s = "zya"; cout << sort(s); return 0; }`, "ayz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runSource(t, tt.src, "")
			require.NoError(t, err)
			assert.Equal(t, tt.wantOut, out)
		})
	}
}

func TestBuiltinErrors(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		wantCode errors.Code
	}{
		{"concat arity", `int main() { cout << concat("a"); return 0; }`, errors.CodeCompatibility},
		{"length arity", `int main() { cout << length("a", "b"); return 0; }`, errors.CodeCompatibility},
		{"substr arity", `int main() { cout << substr("a", 1); return 0; }`, errors.CodeCompatibility},
		{"concat non-string", `int main() { cout << concat("a", 1); return 0; }`, errors.CodeCompatibility},
		{"length non-string", `int main() { cout << length(5); return 0; }`, errors.CodeCompatibility},
		{"substr non-int offset", `int main() { cout << substr("abc", "x", 1); return 0; }`, errors.CodeCompatibility},
		{"sort non-string", `int main() { cout << sort(true); return 0; }`, errors.CodeCompatibility},
		{"find non-string", `int main() { cout << find("a", 1); return 0; }`, errors.CodeCompatibility},
		{"uninitialized argument", `int main() { string s; cout << length(s); return 0; }`, errors.CodeUninitialized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runSource(t, tt.src, "")
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, errors.CodeOf(err), "error: %v", err)
		})
	}
}

// concat(a, b) length equals length(a) + length(b).
func TestConcatLengthAdditive(t *testing.T) {
	samples := []struct{ a, b string }{
		{"", ""},
		{"a", ""},
		{"", "b"},
		{"foo", "bar"},
		{"hello ", "world"},
	}

	for _, s := range samples {
		src := fmt.Sprintf(
			`int main() { cout << length(concat(%q, %q)) << " " << length(%q) + length(%q); return 0; }`,
			s.a, s.b, s.a, s.b)
		out, err := runSource(t, src, "")
		require.NoError(t, err)
		want := fmt.Sprintf("%d %d", len(s.a)+len(s.b), len(s.a)+len(s.b))
		assert.Equal(t, want, out)
	}
}

// sort is idempotent and produces a permutation of its input.
func TestSortLaws(t *testing.T) {
	samples := []string{"", "a", "banana", "zyxw", "aabbcc", "the quick brown fox"}

	for _, s := range samples {
		src := fmt.Sprintf(`int main() { cout << sort(%q); return 0; }`, s)
		out, err := runSource(t, src, "")
		require.NoError(t, err)

		want := []byte(s)
		sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })
		assert.Equal(t, string(want), out, "sort(%q)", s)

		src = fmt.Sprintf(`int main() { cout << (sort(sort(%q)) == sort(%q)); return 0; }`, s, s)
		out, err = runSource(t, src, "")
		require.NoError(t, err)
		assert.Equal(t, "1", out, "sort idempotence for %q", s)
	}
}

// length(substr(s, i, n)) never exceeds n.
func TestSubstrLengthBound(t *testing.T) {
	s := "hello world"
	for i := 0; i <= len(s)+1; i++ {
		for n := 0; n <= len(s)+1; n++ {
			src := fmt.Sprintf(`int main() { cout << length(substr(%q, %d, %d)); return 0; }`, s, i, n)
			out, err := runSource(t, src, "")
			require.NoError(t, err)

			var got int
			_, err = fmt.Sscanf(out, "%d", &got)
			require.NoError(t, err)
			assert.LessOrEqual(t, got, n, "substr(%q, %d, %d)", s, i, n)
		}
	}
}
