package ledger

import (
	"reflect"

	"github.com/tesserapay/ledger/errors"
)

// Msg is a request for the application to take an action (make a state
// transition). It is just the request and must be validated by the handlers.
// All authentication information is in the wrapping Tx.
type Msg interface {
	Persistent

	// Path returns the routing path of the message. This is used by the
	// router to locate the proper handler. Msg should be created
	// alongside the handler that corresponds to it.
	//
	// Must be in the form of "<extension>/<action>".
	Path() string

	// Validate performs static validation of the message content. It
	// must not access the database or any other external state.
	Validate() error
}

// Marshaller is anything that can be represented in binary.
//
// Marshal may validate the data before serializing it and unless you
// previously validated the struct, errors should be expected.
type Marshaller interface {
	Marshal() ([]byte, error)
}

// Persistent supports Marshal and Unmarshal.
//
// This is separated from Marshaller, as this almost always requires a
// pointer, and functions that only need to marshal bytes can use the
// Marshaller interface to access non-pointers.
type Persistent interface {
	Marshaller
	Unmarshal([]byte) error
}

// Tx represents the data sent from the user to the chain. It includes the
// actual message, along with information needed to authenticate the sender,
// and anything else needed to pass through middleware.
type Tx interface {
	Persistent

	// GetMsg returns the action we wish to communicate.
	GetMsg() (Msg, error)
}

// TxDecoder can parse bytes into a Tx.
type TxDecoder func(txBytes []byte) (Tx, error)

// LoadMsg extracts the message from the transaction, ensures its type and
// loads it into the given destination. Before returning, the message is
// validated.
func LoadMsg(tx Tx, destination Msg) error {
	msg, err := tx.GetMsg()
	if err != nil {
		return errors.Wrap(err, "cannot get message")
	}

	if got, want := reflect.TypeOf(msg), reflect.TypeOf(destination); got != want {
		return errors.Wrapf(errors.ErrType, "want %T, got %T", destination, msg)
	}
	reflect.ValueOf(destination).Elem().Set(reflect.ValueOf(msg).Elem())

	return destination.Validate()
}
