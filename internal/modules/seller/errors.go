package seller

import "errors"

var ErrAlreadyRegistered = errors.New("seller application already exists")
