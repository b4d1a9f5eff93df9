package services

import (
	"bytes"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Optimizer losslessly recompresses PDF documents: redundant objects are
// removed, streams recompressed, resources deduplicated. Page content is
// never altered.
type Optimizer struct {
	conf *model.Configuration
}

// NewOptimizer creates a new optimizer
func NewOptimizer() *Optimizer {
	return &Optimizer{
		conf: model.NewDefaultConfiguration(),
	}
}

// Optimize returns the optimized form of the given PDF bytes.
func (o *Optimizer) Optimize(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := api.Optimize(bytes.NewReader(data), &buf, o.conf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
