// Package envfile reads and writes KEY=value environment files while
// preserving everything it does not own.
//
// A File keeps the physical line order of the original content, including
// comments, blank lines, and assignments made by other tools. Set and
// Unset touch only their own key's lines; everything else is reproduced
// verbatim on write. Writes are atomic (temp file plus rename) so a failed
// write never truncates the previous file.
//
// Values are decoded with godotenv semantics, so quoted values written by
// other dotenv tooling read back correctly.
package envfile
