package command_test

import (
	"slices"
	"testing"

	"github.com/kbukum/prockit/command"
)

func builder() *command.Builder {
	b := command.New("java", "-jar", "a.jar").Pwd("/tmp")
	b.Env["JAVA_OPTS"] = "a value"
	return b
}

func TestAddNilSafe(t *testing.T) {
	b := command.New("ls")

	b.Add()
	b.AddAll(nil)
	b.AddAll([]string{})
	b.Append(nil)

	if got := b.Argv(); !slices.Equal(got, []string{"ls"}) {
		t.Fatalf("argument list changed by no-op appends: %v", got)
	}
}

func TestAddKeepsEmptyTokens(t *testing.T) {
	b := command.New("printf", "")
	if got := b.Argv(); !slices.Equal(got, []string{"printf", ""}) {
		t.Fatalf("expected empty string to be kept as a token, got %v", got)
	}
}

func TestAppendMergesArgsAndEnv(t *testing.T) {
	other := command.New("some", "more", "args")
	other.Env["OTHER_OPTS"] = "42"

	b := builder().Append(other)

	want := []string{"java", "-jar", "a.jar", "some", "more", "args"}
	if got := b.Argv(); !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if b.Env["JAVA_OPTS"] != "a value" || b.Env["OTHER_OPTS"] != "42" {
		t.Fatalf("unexpected env after merge: %v", b.Env)
	}
}

func TestAppendEnvOverride(t *testing.T) {
	other := command.New()
	other.Env["JAVA_OPTS"] = "overridden"

	b := builder().Append(other)
	if b.Env["JAVA_OPTS"] != "overridden" {
		t.Fatalf("later key should overwrite silently, got %q", b.Env["JAVA_OPTS"])
	}
}

func TestPrepend(t *testing.T) {
	b := command.New("a.jar").Prepend("java", "-jar")
	want := []string{"java", "-jar", "a.jar"}
	if got := b.Argv(); !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestAddKeyValuePair(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		key    string
		value  string
		want   []string
	}{
		{"default prefix", "", "foo", "bar", []string{"-Dfoo=bar"}},
		{"custom prefix", "--opt=", "foo", "bar", []string{"--opt=foo=bar"}},
		{"empty key is no-op", "", "", "bar", nil},
		{"empty value kept", "", "foo", "", []string{"-Dfoo="}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := command.New().AddKeyValuePair(tc.prefix, tc.key, tc.value)
			if got := b.Argv(); !slices.Equal(got, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestAddKeyValuePairs(t *testing.T) {
	b := command.New().AddKeyValuePairs("", map[string]string{"k": "v"})
	if got := b.Argv(); !slices.Equal(got, []string{"-Dk=v"}) {
		t.Fatalf("expected [-Dk=v], got %v", got)
	}
}

func TestAddQuoted(t *testing.T) {
	b := command.New().AddQuoted("a b")
	if got := b.Argv(); !slices.Equal(got, []string{`"a b"`}) {
		t.Fatalf("expected single quoted token, got %v", got)
	}
}

func TestClone(t *testing.T) {
	b := builder()
	clone := b.Clone()

	if !b.Equal(clone) {
		t.Fatal("clone should be equal to the original")
	}
	if !slices.Equal(b.Argv(), clone.Argv()) {
		t.Fatalf("argument lists differ: %v vs %v", b.Argv(), clone.Argv())
	}

	// distinct storage: mutating the clone must not affect the original
	clone.Add("extra")
	clone.Env["NEW"] = "1"
	if len(b.Argv()) != 3 {
		t.Fatalf("original argv mutated through clone: %v", b.Argv())
	}
	if _, ok := b.Env["NEW"]; ok {
		t.Fatal("original env mutated through clone")
	}
}

func TestEqualAndHash(t *testing.T) {
	a, b := builder(), builder()
	if !a.Equal(b) {
		t.Fatal("identically built builders should be equal")
	}
	if a.Hash() != b.Hash() {
		t.Fatal("equal builders should hash equally")
	}

	b.Add("more")
	if a.Equal(b) {
		t.Fatal("builders with different args should not be equal")
	}

	c := builder()
	c.Pwd("/other")
	if a.Equal(c) {
		t.Fatal("builders with different dirs should not be equal")
	}

	if a.Equal(nil) {
		t.Fatal("nil is never equal")
	}
}

func TestClear(t *testing.T) {
	b := builder()
	b.Clear()
	if len(b.Argv()) != 0 || len(b.Env) != 0 {
		t.Fatalf("clear left state behind: args=%v env=%v", b.Argv(), b.Env)
	}
	if b.Dir() != "/tmp" {
		t.Fatalf("clear should not touch the working directory, got %q", b.Dir())
	}
}

func TestString(t *testing.T) {
	if got := builder().String(); got != `JAVA_OPTS="a value" java -jar a.jar` {
		t.Fatalf("unexpected rendering: %q", got)
	}
}

func TestQuotedString(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"plain", []string{"java", "-jar", "a.jar"}, "java -jar a.jar"},
		{"spaced", []string{"echo", "a value"}, `echo "a value"`},
		{"empty arg", []string{"printf", ""}, `printf ""`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := command.NewFrom(tc.args).QuotedString(); got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
