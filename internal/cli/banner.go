package cli

import (
	"io"

	"github.com/fatih/color"
)

const banner = `
    ╔═══════════════════════════════════════════════╗
    ║          PhoneTracer v1.0.0                   ║
    ║   OSINT Tool for Phone Number Intelligence    ║
    ╚═══════════════════════════════════════════════╝
`

func printBanner(w io.Writer) {
	color.New(color.FgCyan).Fprint(w, banner+"\n")
}

func printSuccess(w io.Writer) {
	color.New(color.FgGreen).Fprintln(w, "\n[✓] Operation completed successfully")
}
