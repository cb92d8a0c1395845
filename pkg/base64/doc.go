// Package base64 provides base64 encoding and decoding functions
// as defined in RFC 4648 Section 4, using the standard alphabet
// and "=" padding.
//
// Decoding is strict:
//   - Input length must be a multiple of 4
//   - Only the 64 alphabet characters and "=" are accepted, no whitespace
//   - Padding may only appear as the last one or two characters
//   - Bits discarded by padding must be zero
//
// Any text accepted by Decode is exactly the text Encode would produce
// for the decoded bytes.
//
// http://www.rfc-editor.org/rfc/rfc4648#section-4
package base64
