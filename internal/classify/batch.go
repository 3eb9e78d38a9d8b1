package classify

import (
	"context"

	"github.com/remeh/sizedwaitgroup"
)

// Item pairs a name with its classification.
type Item struct {
	Name   string `json:"name"`
	Result Result `json:"result"`
}

// Batch classifies names on at most workers goroutines. Items keep the input
// order. Cancelling ctx stops scheduling new names and returns ctx.Err().
func (c *Classifier) Batch(ctx context.Context, names []string, workers int) ([]Item, error) {
	if workers <= 0 {
		workers = 1
	}
	items := make([]Item, len(names))
	swg := sizedwaitgroup.New(workers)
	for i, name := range names {
		if err := ctx.Err(); err != nil {
			swg.Wait()
			return nil, err
		}
		swg.Add()
		go func(i int, name string) {
			defer swg.Done()
			items[i] = Item{Name: name, Result: c.Classify(name)}
		}(i, name)
	}
	swg.Wait()
	return items, nil
}
