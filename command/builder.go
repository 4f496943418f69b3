package command

import (
	"hash/fnv"
	"maps"
	"slices"
	"strings"
)

// Builder accumulates the argv, environment overlay, and working directory
// for a single process invocation.
type Builder struct {
	args []string

	// Env is the environment overlay applied on top of the parent
	// environment. Later assignments replace earlier ones.
	Env map[string]string

	dir string
}

// New creates a Builder seeded with the given arguments.
func New(args ...string) *Builder {
	b := &Builder{Env: make(map[string]string)}
	return b.Add(args...)
}

// NewFrom creates a Builder from an existing argument list. The list is
// copied; the caller keeps ownership of the slice.
func NewFrom(args []string) *Builder {
	return New().AddAll(args)
}

// Add appends arguments to the argv. Calling with no arguments is a no-op.
// Empty strings are kept as tokens.
func (b *Builder) Add(args ...string) *Builder {
	if args == nil {
		return b
	}
	b.args = append(b.args, args...)
	return b
}

// AddAll appends every element of list. A nil or empty list is a no-op.
func (b *Builder) AddAll(list []string) *Builder {
	return b.Add(list...)
}

// Append copies another builder's arguments onto the end of this one and
// merges its environment entries, later keys overwriting earlier ones.
// A nil builder is a no-op.
func (b *Builder) Append(other *Builder) *Builder {
	if other == nil {
		return b
	}
	b.args = append(b.args, other.args...)
	maps.Copy(b.Env, other.Env)
	return b
}

// Prepend inserts arguments at the front of the argv, preserving their
// relative order.
func (b *Builder) Prepend(args ...string) *Builder {
	if len(args) == 0 {
		return b
	}
	b.args = append(slices.Clone(args), b.args...)
	return b
}

// AddQuoted appends an argument wrapped in literal double quotes as a single
// token. This is only needed when the receiving program re-splits a joined
// command line, such as ssh or rsh.
func (b *Builder) AddQuoted(a string) *Builder {
	return b.Add(`"` + a + `"`)
}

// AddKeyValuePair appends a single prefix+key=value token. The prefix
// defaults to "-D" when empty. An empty key is a no-op. This is string
// formatting only; no escaping is applied.
func (b *Builder) AddKeyValuePair(prefix, key, value string) *Builder {
	if key == "" {
		return b
	}
	if prefix == "" {
		prefix = "-D"
	}
	return b.Add(prefix + key + "=" + value)
}

// AddKeyValuePairs appends one prefix+key=value token per map entry.
// Iteration order over the map is not specified.
func (b *Builder) AddKeyValuePairs(prefix string, props map[string]string) *Builder {
	for k, v := range props {
		b.AddKeyValuePair(prefix, k, v)
	}
	return b
}

// Pwd sets the working directory for the invocation.
func (b *Builder) Pwd(dir string) *Builder {
	b.dir = dir
	return b
}

// Dir returns the configured working directory, or "" when unset.
func (b *Builder) Dir() string {
	return b.dir
}

// Args returns the argument list. The returned slice is shared with the
// builder; callers that need an independent copy should use Argv.
func (b *Builder) Args() []string {
	return b.args
}

// Argv returns an independent copy of the argument list.
func (b *Builder) Argv() []string {
	return slices.Clone(b.args)
}

// Clear re-initializes the argument list and environment overlay.
func (b *Builder) Clear() {
	b.args = nil
	clear(b.Env)
}

// Clone returns a deep copy with distinct underlying storage.
func (b *Builder) Clone() *Builder {
	return &Builder{
		args: slices.Clone(b.args),
		Env:  maps.Clone(b.Env),
		dir:  b.dir,
	}
}

// Equal reports whether two builders hold the same arguments, environment
// entries, and working directory.
func (b *Builder) Equal(other *Builder) bool {
	if other == nil {
		return false
	}
	return slices.Equal(b.args, other.args) &&
		maps.Equal(b.Env, other.Env) &&
		b.dir == other.dir
}

// Hash returns a value-derived hash. The environment contribution is
// ordering-free, so two equal builders always hash equally.
func (b *Builder) Hash() uint64 {
	h := fnv.New64a()
	for _, arg := range b.args {
		h.Write([]byte(arg))
		h.Write([]byte{0})
	}
	var env uint64
	for k, v := range b.Env {
		ph := fnv.New64a()
		ph.Write([]byte(k))
		ph.Write([]byte{'='})
		ph.Write([]byte(v))
		env ^= ph.Sum64()
	}
	h.Write([]byte(b.dir))
	return h.Sum64() ^ env
}

// String renders the invocation for diagnostics: environment entries first,
// then arguments, with values containing spaces wrapped in quotes. Not
// suitable for re-parsing.
func (b *Builder) String() string {
	var buf strings.Builder
	for _, k := range slices.Sorted(maps.Keys(b.Env)) {
		buf.WriteString(k)
		buf.WriteByte('=')
		writeQuotedIfSpaced(&buf, b.Env[k], false)
		buf.WriteByte(' ')
	}
	for i, arg := range b.args {
		if i > 0 {
			buf.WriteByte(' ')
		}
		writeQuotedIfSpaced(&buf, arg, true)
	}
	return buf.String()
}

// QuotedString joins the arguments with spaces, quoting only arguments that
// contain a space or are empty. Informational use only; it applies none of
// the shell escaping of ToWindowsCommand.
func (b *Builder) QuotedString() string {
	var buf strings.Builder
	for i, arg := range b.args {
		if i > 0 {
			buf.WriteByte(' ')
		}
		writeQuotedIfSpaced(&buf, arg, true)
	}
	return buf.String()
}

func writeQuotedIfSpaced(buf *strings.Builder, s string, quoteEmpty bool) {
	if strings.ContainsRune(s, ' ') || (quoteEmpty && s == "") {
		buf.WriteByte('"')
		buf.WriteString(s)
		buf.WriteByte('"')
		return
	}
	buf.WriteString(s)
}
