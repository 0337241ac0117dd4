// Package console implements the console output sink with optional syntax highlighting.
package console

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/x/term"
)

// Highlighter colors nasm source written through it before passing it on.
type Highlighter struct {
	writer    io.Writer
	lexer     chroma.Lexer
	style     *chroma.Style
	formatter chroma.Formatter
}

// New returns a sink for the given writer, it highlights the output if colored is set.
func New(writer io.Writer, colored bool) io.Writer {
	if !colored {
		return writer
	}

	lexer := lexers.Get("nasm")
	if lexer == nil {
		return writer
	}

	return &Highlighter{
		writer:    writer,
		lexer:     chroma.Coalesce(lexer),
		style:     getStyle(),
		formatter: getFormatter(),
	}
}

// SupportsColor returns whether the file is a terminal and coloring is not disabled
// by the NO_COLOR environment variable.
func SupportsColor(file *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(file.Fd())
}

// Write highlights p and writes it to the underlying writer.
// The returned count refers to the uncolored input.
func (h *Highlighter) Write(p []byte) (int, error) {
	iterator, err := h.lexer.Tokenise(nil, string(p))
	if err != nil {
		return 0, fmt.Errorf("tokenizing output: %w", err)
	}
	if err := h.formatter.Format(h.writer, h.style, iterator); err != nil {
		return 0, fmt.Errorf("formatting output: %w", err)
	}
	return len(p), nil
}

func getStyle() *chroma.Style {
	for _, name := range []string{"dracula", "monokai"} {
		if style := styles.Get(name); style != nil {
			return style
		}
	}
	return styles.Fallback
}

func getFormatter() chroma.Formatter {
	if formatter := formatters.Get("terminal256"); formatter != nil {
		return formatter
	}
	return formatters.Fallback
}
