package mock

import "github.com/fwojciec/shuku"

var _ shuku.Converter = (*Converter)(nil)

// Converter is a mock implementation of shuku.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
