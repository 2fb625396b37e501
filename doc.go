// Package elasticsink provides the configuration surface for a sink
// connector task that writes records from a streaming source into
// Elasticsearch.
//
// The heart of the repository is the configuration registry and validation
// engine. Every tunable of the connector is declared once, with its type,
// default, constraints and documentation, and raw string properties supplied
// by the hosting framework are resolved into an immutable, fully typed
// snapshot before any task is allowed to start. A malformed or inconsistent
// configuration fails fast with an error naming the offending key.
//
// Layout:
//
//   - pkg/configdef: the generic field registry and resolution engine -
//     typed field definitions, closed-set and range validators, secret
//     handling, and the resolver that turns map[string]string into a
//     typed snapshot.
//   - pkg/config: the Elasticsearch sink configuration built on top of
//     configdef - every documented key, the embedded TLS namespace,
//     cross-field validation, and the typed policy views handed to the
//     batching, transport and conversion layers.
//   - pkg/sinkerrors: structured, categorized errors shared across the
//     connector.
//   - pkg/logger: zap-based structured logging.
//   - cmd/elasticsink: CLI for validating configuration files and
//     rendering the configuration reference.
//
// Resolution is pure and synchronous: no I/O is performed, nothing is
// retried, and the registry itself is built once at process start and never
// mutated, so any number of tasks may resolve configurations concurrently.
package elasticsink
