package types

// AnteHandler runs the checks every transaction must pass before its
// messages execute. Writes it makes persist even if a message later fails.
type AnteHandler func(ctx *TxContext, tx Tx) error

// AnteDecorator is one link of an AnteHandler chain.
type AnteDecorator interface {
	AnteHandle(ctx *TxContext, tx Tx, next AnteHandler) error
}

// ChainAnteDecorators links decorators into one AnteHandler, run in order.
func ChainAnteDecorators(chain ...AnteDecorator) AnteHandler {
	if len(chain) == 0 {
		return nil
	}

	if (chain[len(chain)-1] != Terminator{}) {
		chain = append(chain, Terminator{})
	}

	return func(ctx *TxContext, tx Tx) error {
		return chain[0].AnteHandle(ctx, tx, ChainAnteDecorators(chain[1:]...))
	}
}

// Terminator ends an AnteHandler chain.
type Terminator struct{}

func (t Terminator) AnteHandle(ctx *TxContext, _ Tx, _ AnteHandler) error {
	return nil
}
