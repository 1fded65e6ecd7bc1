package response

import (
	"slotbook/internal/pkg/errs"

	"github.com/jinzhu/copier"
)

// copyList maps views onto response items by field name.
func copyList[R any, V any](views []V) ([]*R, error) {
	out := make([]*R, 0, len(views))
	for _, v := range views {
		r, err := copyOne[R](v)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func copyOne[R any](view any) (*R, error) {
	var r R
	if err := copier.Copy(&r, view); err != nil {
		return nil, errs.Wrap(err, "map response")
	}
	return &r, nil
}
