package config

// The closed string vocabularies of the connector. Each enum's default is
// embedded as its field's default, so omitting the key resolves to a
// defined, documented behavior rather than an error. Matching is
// case-sensitive against these exact literals.

// BehaviorOnNullValues selects how records with a null value (tombstones)
// are handled by the conversion layer.
type BehaviorOnNullValues string

const (
	BehaviorOnNullValuesIgnore BehaviorOnNullValues = "ignore"
	BehaviorOnNullValuesDelete BehaviorOnNullValues = "delete"
	BehaviorOnNullValuesFail   BehaviorOnNullValues = "fail"

	// DefaultBehaviorOnNullValues skips tombstones entirely.
	DefaultBehaviorOnNullValues = BehaviorOnNullValuesIgnore
)

// BehaviorOnNullValuesList returns the legal values in documentation order.
func BehaviorOnNullValuesList() []string {
	return []string{
		string(BehaviorOnNullValuesIgnore),
		string(BehaviorOnNullValuesDelete),
		string(BehaviorOnNullValuesFail),
	}
}

// BehaviorOnMalformedDoc selects how documents rejected by Elasticsearch are
// handled by the batching layer.
type BehaviorOnMalformedDoc string

const (
	BehaviorOnMalformedDocIgnore BehaviorOnMalformedDoc = "ignore"
	BehaviorOnMalformedDocWarn   BehaviorOnMalformedDoc = "warn"
	BehaviorOnMalformedDocFail   BehaviorOnMalformedDoc = "fail"

	// DefaultBehaviorOnMalformedDoc fails the task on a rejected document.
	DefaultBehaviorOnMalformedDoc = BehaviorOnMalformedDocFail
)

// BehaviorOnMalformedDocList returns the legal values in documentation order.
func BehaviorOnMalformedDocList() []string {
	return []string{
		string(BehaviorOnMalformedDocIgnore),
		string(BehaviorOnMalformedDocWarn),
		string(BehaviorOnMalformedDocFail),
	}
}

// WriteMethod selects insert or upsert semantics for indexing requests.
type WriteMethod string

const (
	WriteMethodInsert WriteMethod = "insert"
	WriteMethodUpsert WriteMethod = "upsert"

	// DefaultWriteMethod replaces any existing document with the same ID.
	DefaultWriteMethod = WriteMethodInsert
)

// WriteMethodList returns the legal values in documentation order.
func WriteMethodList() []string {
	return []string{string(WriteMethodInsert), string(WriteMethodUpsert)}
}

// SecurityProtocol selects the transport security for cluster connections.
type SecurityProtocol string

const (
	SecurityProtocolPlaintext SecurityProtocol = "PLAINTEXT"
	SecurityProtocolSSL       SecurityProtocol = "SSL"

	// DefaultSecurityProtocol is unencrypted transport.
	DefaultSecurityProtocol = SecurityProtocolPlaintext
)

// SecurityProtocolList returns the legal values in documentation order.
func SecurityProtocolList() []string {
	return []string{string(SecurityProtocolPlaintext), string(SecurityProtocolSSL)}
}

// DocumentVersionType selects how the connector derives document versions.
type DocumentVersionType string

const (
	DocumentVersionTypeLegacy                  DocumentVersionType = "legacy"
	DocumentVersionTypeUnused                  DocumentVersionType = "unused"
	DocumentVersionTypeMessageOffset           DocumentVersionType = "message-offset"
	DocumentVersionTypeMessageTimestamp        DocumentVersionType = "message-timestamp"
	DocumentVersionTypeCombinedTimestampOffset DocumentVersionType = "combined-timestamp-offset"

	// DefaultDocumentVersionType preserves the historical versioning scheme.
	DefaultDocumentVersionType = DocumentVersionTypeLegacy
)

// DocumentVersionTypeList returns the legal values in documentation order.
func DocumentVersionTypeList() []string {
	return []string{
		string(DocumentVersionTypeLegacy),
		string(DocumentVersionTypeUnused),
		string(DocumentVersionTypeMessageOffset),
		string(DocumentVersionTypeMessageTimestamp),
		string(DocumentVersionTypeCombinedTimestampOffset),
	}
}
