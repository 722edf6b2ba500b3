package args

import (
	"fmt"
	stdio "io"

	argio "github.com/dzonerzy/go-args/io"
)

// Help rendering is pure presentation: definitions are listed in
// registration order with their short and long forms, a value placeholder
// for non-flag types, the description and a "(required)" marker.

// PrintHelp writes the usage message to the parser's output writer,
// colorizing the required marker when the terminal supports it.
func (p *Parser) PrintHelp(program string) {
	p.writeHelp(p.io.Out(), program, p.io)
}

// WriteHelp writes a plain (uncolored) usage message to w.
func (p *Parser) WriteHelp(w stdio.Writer, program string) {
	p.writeHelp(w, program, nil)
}

func (p *Parser) writeHelp(w stdio.Writer, program string, colors *argio.IOManager) {
	if program == "" {
		program = "program"
	}
	fmt.Fprintf(w, "Usage: %s [OPTIONS]...\n\n", program)
	fmt.Fprintln(w, "Options:")

	for _, def := range p.defs {
		fmt.Fprint(w, "  ")
		if def.Short != "" {
			fmt.Fprintf(w, "%s, ", def.Short)
		}
		fmt.Fprint(w, def.Long)
		if placeholder := def.Type.Placeholder(); placeholder != "" {
			fmt.Fprintf(w, " %s", placeholder)
		}
		fmt.Fprintln(w)

		if def.Description != "" {
			fmt.Fprintf(w, "      %s", def.Description)
			if def.Required {
				marker := "(required)"
				if colors != nil {
					marker = colors.Bold(marker)
				}
				fmt.Fprintf(w, " %s", marker)
			}
			fmt.Fprintln(w)
		}
	}
}
