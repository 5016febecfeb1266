// Package wordview provides a mutable, word-oriented view over Ethereum style
// calldata: a 4-byte function selector followed by 32-byte words.
//
// The package is byte-mechanical. It knows nothing about ABI types and never
// decodes values; it splits a buffer into words and lets you edit them by
// index before serializing back to hex. This is handy when debugging a
// payload by hand or patching a transaction before feeding it to a simulator.
//
// # Basic Usage
//
// Parse calldata, patch a couple of words, and read the hex back:
//
//	call := wordview.CalldataFromHex("0x095ea7b3...")
//	view := wordview.NewView(call, wordview.WithSignature())
//
//	view.Clear(1)                    // zero the amount
//	view.ReplaceHex(4, "04a817c800") // new deadline
//	view.LeftPad(4)                  // align it like an ABI uint256
//
//	fmt.Println(view.FullHex0x())
//
// # Garbage In, Garbage Out
//
// No operation on a View fails. Instead every input is mapped onto something
// usable:
//
//   - Out of range indices clamp to the last word.
//   - Byte sources longer than 32 bytes are truncated, shorter ones are kept
//     as is and right padded whenever a full word is needed.
//   - Hex with an odd length decodes to no bytes; a pair with a non-hex
//     character decodes to 0x00.
//   - A selector built from fewer than 4 bytes becomes 00000000.
//
// Callers that need to detect bad input up front can use ValidateHex, or pass
// a logger via WithLogger to see every substitution the View makes.
//
// # Types
//
//   - Bytes: sealed container with exactly three shapes, Selector (4 bytes),
//     Word32 (32 bytes) and Buffer (any length).
//   - Word: one element of a View's page. It remembers its stored shape and
//     derives a 32-byte form (Hash) on demand.
//   - Signature: the 4-byte selector.
//   - Calldata: the raw buffer going into, and coming out of, a View.
//   - View: an optional Signature plus an ordered page of Words.
//
// # Concurrency
//
// A View holds no locks. Share one between goroutines only behind your own
// mutex.
package wordview
