// Package configs owns the rice-cli configuration model and its two
// persisted forms in the project's working directory:
//
//   - .env: RICE_* key/value pairs merged into whatever else the file
//     holds. The env file is the authoritative runtime source; its keys
//     win when the two files disagree.
//   - rice.config.toml: the generated configuration module, tool-owned
//     and regenerated in full on every save. It carries enabled flags
//     and non-secret connection fields; tokens never leave the env file.
//
// LoadState reconstructs a Config best-effort from both files. A missing
// file is an empty baseline; a malformed one degrades to empty with a
// status the caller can warn about, so corrupted state never blocks setup.
// Save merges the model back into both forms atomically.
package configs
