// SPDX-License-Identifier: MIT

package grammar

import "errors"

// ErrSyntax is returned by Parse when a recognized record fails to decode.
// The returned error carries the 1-based line of the offending record.
var ErrSyntax = errors.New("grammar: syntax error")
