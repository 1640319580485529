package console

import (
	"bufio"
	"fmt"
	"io"

	"github.com/user/esg-source-catalog/internal/entity"
)

// WriteSummary prints the run banner followed by one line per source, in
// the order they were saved:
//
//	✔ ESG Source List Updated (9 sources)
//	✔ File saved: esg_sources.json
//
//	- KnowESG  →  https://www.knowesg.com  (Global)
func WriteSummary(w io.Writer, location string, sources []entity.Source) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "\n✔ ESG Source List Updated (%d sources)\n", len(sources))
	fmt.Fprintf(bw, "✔ File saved: %s\n\n", location)
	for _, s := range sources {
		fmt.Fprintf(bw, "- %s  →  %s  (%s)\n", s.Name, s.URL, s.Region)
	}
	return bw.Flush()
}
