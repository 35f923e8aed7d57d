package doccheck

import (
	"fmt"
	"os"

	"github.com/ukaji3/doccheck-go/pkg/doccheck/classify"
	"github.com/ukaji3/doccheck-go/pkg/doccheck/models"
)

// ClassifyFile labels every page of the PDF at path.
func ClassifyFile(path string, opts ClassifyOptions) ([]models.PageClassification, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, NewSourceError(path, "", ErrFileNotFound)
		}
		return nil, NewSourceError(path, "", err)
	}

	texts, err := classify.ExtractPages(path)
	if err != nil {
		return nil, NewSourceError(path, "", fmt.Errorf("%w: %v", ErrInvalidFormat, err))
	}

	c := classify.New(opts.EffectiveRules(), opts.Fallback)
	return c.ClassifyPages(texts), nil
}
