package parse

import "errors"

// ErrMissingInclude is the one fatal parse condition: the target of an
// include required("...") directive could not be loaded.
var ErrMissingInclude = errors.New("missing required include")
