// Copyright (c) 2026 The coinuri developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package coinuri parses and builds BIP 21 style payment request URIs.

A payment request URI names a currency through its scheme, a destination
address, and an optional set of name/value fields:

	decred:DsUZxxoHJSty8DCfwfartwTYbuhmVct7tJu?amount=0.06&label=Tom%20%26%20Jerry

Parsing recovers a strongly typed ParsedURI from such a string or rejects
it with a precise reason, and Build reconstructs the canonical string form
from typed fields.  There is no guessing and no silent fallback anywhere:
a URI either parses exactly or fails with an Error identifying what was
wrong, since a misparsed payment URI can misdirect funds.

The name/value fields are processed as follows:

 1. URL encoding is stripped and treated as UTF-8.
 2. Names prefixed with req- are required and, being unknown, fail the
    parse.
 3. Unknown names not prefixed with req- are retained verbatim and are
    accessible by name.
 4. A repeated name fails the parse even when the values are identical.

Currency parameters, address validation, and amount arithmetic are
provided by the coins and coinutil packages.
*/
package coinuri
