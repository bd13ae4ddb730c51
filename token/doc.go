// Package token provides the read cursor used by the parser and the
// positions it reports.
//
// [Cursor] tracks a position in runes over the input text and offers
// single rune lookahead ([Cursor.Current]), fixed length lookahead
// ([Cursor.Peek]) and tentative sub-views ([Cursor.Rest]) which can be
// committed once a token has been validated.
//
// [Pos] and [PosDoc] turn rune offsets into lines and columns for error
// messages.
package token
