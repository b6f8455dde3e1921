package styles

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromastyles "github.com/alecthomas/chroma/v2/styles"
	"golang.org/x/term"
)

const highlightStyle = "catppuccin-mocha"

// IsTerminal reports whether w is a terminal file descriptor.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// WriteSource writes source to w, colorized with the lexer for language
// when w is a terminal and verbatim otherwise.
func WriteSource(w io.Writer, source, language string) error {
	if !IsTerminal(w) {
		_, err := io.WriteString(w, source)
		return err
	}
	return Highlight(w, source, language)
}

// Highlight writes source to w with 256-color terminal escapes.
func Highlight(w io.Writer, source, language string) error {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return fmt.Errorf("tokenise %s: %w", language, err)
	}
	return formatter.Format(w, chromastyles.Get(highlightStyle), iterator)
}
