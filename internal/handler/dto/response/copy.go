package response

import (
	"bibliolights/internal/pkg/errs"

	"github.com/jinzhu/copier"
)

// copyView fills a response from its read model. A nil view is an error, not an empty response.
func copyView[V any](to any, from *V, what string) error {
	if from == nil {
		return errs.Newf("mapping %s response: nil view", what)
	}
	if err := copier.Copy(to, from); err != nil {
		return errs.Wrapf(err, "mapping %s response", what)
	}
	return nil
}
