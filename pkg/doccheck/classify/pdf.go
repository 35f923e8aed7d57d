package classify

import (
	"fmt"

	"github.com/ledongthuc/pdf"
	"github.com/rs/zerolog/log"
)

// ExtractPages returns the plain text of every page of a PDF, in page order.
// Pages without content, or whose text cannot be decoded, yield "".
func ExtractPages(path string) ([]string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer f.Close()

	total := r.NumPage()
	texts := make([]string, total)
	for i := 1; i <= total; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			log.Warn().Err(err).Str("file", path).Int("page", i).Msg("page text extraction failed")
			continue
		}
		texts[i-1] = text
	}

	log.Debug().Str("file", path).Int("pages", total).Msg("extracted pdf text")
	return texts, nil
}
