// Package prompt provides simple interactive prompts.
//
// Prompts render to stderr so stdout stays clean for piping. Callers must
// check for a terminal first; the prompts do not fall back to line input.
//
// Available prompts:
//   - [Confirm]: Yes/No confirmation prompt
//   - [TextInput]: Single-line text input
//   - [Password]: Single-line input that is not echoed
package prompt
