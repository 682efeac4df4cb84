// Package clear wipes the persisted catalog and tag registry.
package clear

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/tapedeck/pkg/store"
)

type Clear struct {
	Persistence store.Persistence
}

func (c *Clear) Do(ctx context.Context) error {
	if c.Persistence == nil {
		return errors.New("can not clear, no persistence")
	}
	if err := c.Persistence.Clear(); err != nil {
		return err
	}
	fmt.Println("catalog cleared")
	return nil
}
