// Command linkcheck verifies that relative markdown links in the
// documentation tree point at files that exist. It exits non-zero
// when any link is broken, making it suitable for CI.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/nineylabs/smart-server/internal/linkcheck"
)

func main() {
	dir := flag.String("dir", "docs", "documentation directory to check")
	quiet := flag.Bool("quiet", false, "only report broken links")
	flag.Parse()

	report, err := linkcheck.Run(*dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "linkcheck: %v\n", err)
		os.Exit(1)
	}

	if !*quiet {
		fmt.Printf("Checked %d markdown files, %d links\n", report.Files, report.TotalLinks)
	}

	for _, broken := range report.Broken {
		fmt.Printf("broken link in %s: [%s](%s), expected %s\n",
			broken.File, broken.Text, broken.Target, broken.Expected)
	}

	if !report.OK() {
		fmt.Printf("%d broken links found\n", len(report.Broken))
		os.Exit(1)
	}

	if !*quiet {
		fmt.Println("All links are valid")
	}
}
