/*
Package std wires the extensions of this repository into one runnable
stack. It is the place to look to see how the pieces fit together, and
the place to copy from when assembling a custom application.
*/
package std

import (
	"github.com/tesserapay/ledger"
	"github.com/tesserapay/ledger/app"
	"github.com/tesserapay/ledger/x"
	"github.com/tesserapay/ledger/x/custody"
	"github.com/tesserapay/ledger/x/funds"
	"github.com/tesserapay/ledger/x/paymaster"
	"github.com/tesserapay/ledger/x/username"
	"github.com/tesserapay/ledger/x/utils"
	"github.com/tesserapay/ledger/x/vault"
)

// FundsControl returns the controller shared by all value moving
// extensions.
func FundsControl() funds.Controller {
	return funds.NewController()
}

// Chain returns the standard decorator chain. Logging and panic
// recovery wrap everything, a check-time savepoint keeps rejected
// transactions out of the state and a deliver-time savepoint rolls
// back partial writes of failed operations.
func Chain() app.Decorators {
	return app.ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		utils.NewSavepoint().OnCheck(),
		utils.NewSavepoint().OnDeliver(),
	)
}

// Router returns a router dispatching to every extension in this
// repository.
func Router(authFn x.Authenticator) *app.Router {
	ctrl := FundsControl()
	r := app.NewRouter()
	funds.RegisterRoutes(r, authFn, ctrl)
	vault.RegisterRoutes(r, authFn, ctrl)
	username.RegisterRoutes(r, authFn)
	custody.RegisterRoutes(r, authFn, ctrl)
	paymaster.RegisterRoutes(r, authFn, ctrl)
	return r
}

// Stack wires the standard router into the standard decorator chain.
func Stack(authFn x.Authenticator) ledger.Handler {
	return Chain().WithHandler(Router(authFn))
}

// Initializers returns the genesis initializer covering every
// extension. All of them must succeed for the genesis to be accepted.
func Initializers() ledger.Initializer {
	return app.ChainInitializers(
		funds.Initializer{},
		vault.Initializer{},
		username.Initializer{},
		custody.Initializer{},
		paymaster.Initializer{},
	)
}
