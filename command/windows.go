package command

import "strings"

// exitCodeSuffix forces cmd.exe to propagate the wrapped command's exit
// code. The doubled percent defers ERRORLEVEL expansion until after the
// wrapped command has run, not when the line is parsed.
const exitCodeSuffix = "&& exit %%ERRORLEVEL%%"

// ToWindowsCommand wraps the accumulated arguments in a cmd.exe /C call so
// that batch files return their real exit code (ERRORLEVEL).
//
// Since the whole command line is handed to cmd.exe as one string, special
// characters have to be escaped. Arguments are wrapped in double quotes when
// they contain any of:
//
//	space * ? , ; ^ & < > | "
//
// and, when escapeVars is true, a % followed by a letter. A literal " is
// doubled. When escapeVars is true, the letter after a % is wrapped in its
// own quote pair so cmd.exe cannot expand it as a variable reference:
// %foo% becomes "%"f"oo%". The trailing % needs no handling because it is
// not followed by a letter. Windows is known to mis-parse some combinations
// of quotes and spaces, so quotes in arguments are best avoided entirely.
//
// Escaping engages only through this call; nothing in this package inspects
// the host OS.
func (b *Builder) ToWindowsCommand(escapeVars bool) *Builder {
	var buf strings.Builder
	for _, arg := range b.args {
		quoted, percent := false, false
		for i := 0; i < len(arg); i++ {
			c := arg[i]
			if !quoted && (c == ' ' || c == '*' || c == '?' || c == ',' || c == ';') {
				quoted = startQuoting(&buf, arg, i)
			} else if c == '^' || c == '&' || c == '<' || c == '>' || c == '|' {
				if !quoted {
					quoted = startQuoting(&buf, arg, i)
					// no ^ escape needed inside the quotes
				}
			} else if c == '"' {
				if !quoted {
					quoted = startQuoting(&buf, arg, i)
				}
				buf.WriteByte('"')
			} else if percent && escapeVars && isLetter(c) {
				if !quoted {
					quoted = startQuoting(&buf, arg, i)
				}
				buf.WriteByte('"')
				buf.WriteByte(c)
				c = '"'
			}
			percent = c == '%'
			if quoted {
				buf.WriteByte(c)
			}
		}
		if quoted {
			buf.WriteByte('"')
		} else {
			buf.WriteString(arg)
		}
		buf.WriteByte(' ')
	}
	buf.WriteString(exitCodeSuffix)
	return New("cmd.exe", "/C").AddQuoted(buf.String())
}

// startQuoting opens the quote for an argument retroactively: everything
// seen so far is re-emitted behind the opening quote.
func startQuoting(buf *strings.Builder, arg string, at int) bool {
	buf.WriteByte('"')
	buf.WriteString(arg[:at])
	return true
}

func isLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}
