// Package domain contains the core domain model for tally.
//
// The domain is persistence- and UI-agnostic: it does not depend on JSON or YAML
// parsing, terminals or the filesystem. Infra/adapters map into/from these types.
package domain
