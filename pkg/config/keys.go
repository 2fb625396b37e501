package config

// Configuration keys for the Elasticsearch sink connector, with their
// documentation. Keys are stable across versions; renaming one is a breaking
// change for every deployed properties file.

// Connector group.
const (
	// ConnectionURLConfig lists the Elasticsearch cluster endpoints.
	ConnectionURLConfig = "connection.url"
	connectionURLDoc    = "The comma-separated list of one or more Elasticsearch URLs, such as " +
		"`http://eshost1:9200,http://eshost2:9200` or `https://eshost3:9200`. HTTPS is used for " +
		"all connections if any of the URLs starts with `https:`. A URL without a protocol is " +
		"treated as `http`."

	// ConnectionUsernameConfig is the basic-auth username for the cluster.
	ConnectionUsernameConfig = "connection.username"
	connectionUsernameDoc    = "The username used to authenticate with Elasticsearch. The default is null, and " +
		"authentication is only performed if both the username and password are non-null."

	// ConnectionPasswordConfig is the basic-auth password for the cluster.
	ConnectionPasswordConfig = "connection.password"
	connectionPasswordDoc    = "The password used to authenticate with Elasticsearch. The default is null, and " +
		"authentication is only performed if both the username and password are non-null."

	// BatchSizeConfig bounds the number of records per bulk request.
	BatchSizeConfig = "batch.size"
	batchSizeDoc    = "The number of records to process as a batch when writing to Elasticsearch."

	// MaxInFlightRequestsConfig bounds concurrent indexing requests.
	MaxInFlightRequestsConfig = "max.in.flight.requests"
	maxInFlightRequestsDoc    = "The maximum number of indexing requests that can be in-flight to Elasticsearch " +
		"before blocking further requests."

	// MaxBufferedRecordsConfig bounds per-task buffering.
	MaxBufferedRecordsConfig = "max.buffered.records"
	maxBufferedRecordsDoc    = "The maximum number of records each task will buffer before blocking acceptance of " +
		"more records. This config can be used to limit the memory usage for each task."

	// LingerMSConfig delays sending a non-full batch.
	LingerMSConfig = "linger.ms"
	lingerMSDoc    = "Linger time in milliseconds for batching. Records that arrive in between request " +
		"transmissions are batched into a single bulk indexing request, based on the `batch.size` " +
		"configuration. Normally this only occurs under load when records arrive faster than they " +
		"can be sent out. However it may be desirable to reduce the number of requests even under " +
		"light load and benefit from bulk indexing. This setting helps accomplish that - when a " +
		"pending batch is not full, rather than immediately sending it out the task will wait up " +
		"to the given delay to allow other records to be added so that they can be batched into a " +
		"single request."

	// FlushTimeoutMSConfig bounds periodic flushes and buffer waits.
	FlushTimeoutMSConfig = "flush.timeout.ms"
	flushTimeoutMSDoc    = "The timeout in milliseconds to use for periodic flushing, and when waiting for buffer " +
		"space to be made available by completed requests as records are added. If this timeout is " +
		"exceeded the task will fail."

	// MaxRetriesConfig bounds retries of failed indexing requests.
	MaxRetriesConfig = "max.retries"
	maxRetriesDoc    = "The maximum number of retries that are allowed for failed indexing requests. If the " +
		"retry attempts are exhausted the task will fail."

	// RetryBackoffMSConfig is the initial retry delay.
	RetryBackoffMSConfig = "retry.backoff.ms"
	retryBackoffMSDoc    = "How long to wait in milliseconds before attempting the first retry of a failed " +
		"indexing request. Upon a failure, the connector may wait up to twice as long as the " +
		"previous wait, up to the maximum number of retries. This avoids retrying in a tight loop " +
		"under failure scenarios."

	// ConnectionCompressionConfig toggles gzip on the HTTP connection.
	ConnectionCompressionConfig = "connection.compression"
	connectionCompressionDoc    = "Whether to use GZip compression on the HTTP connection to Elasticsearch. Valid " +
		"options are `true` and `false`. Default is `false`. To make this setting work, the " +
		"`http.compression` setting also needs to be enabled at the Elasticsearch nodes or the " +
		"load balancer before using it."

	// MaxConnectionIdleTimeMSConfig drops idle connections.
	MaxConnectionIdleTimeMSConfig = "max.connection.idle.time.ms"
	maxConnectionIdleTimeMSDoc    = "How long to wait in milliseconds before dropping an idle connection to prevent a " +
		"read timeout."

	// ConnectionTimeoutMSConfig bounds connection establishment.
	ConnectionTimeoutMSConfig = "connection.timeout.ms"
	connectionTimeoutMSDoc    = "How long to wait in milliseconds when establishing a connection to the " +
		"Elasticsearch server. The task fails if the client fails to connect to the server in " +
		"this interval, and will need to be restarted."

	// ReadTimeoutMSConfig bounds server responses.
	ReadTimeoutMSConfig = "read.timeout.ms"
	readTimeoutMSDoc    = "How long to wait in milliseconds for the Elasticsearch server to send a response. The " +
		"task fails if any read operation times out, and will need to be restarted to resume " +
		"further operations."

	// AutoCreateIndicesAtStartConfig creates destination indices on startup.
	AutoCreateIndicesAtStartConfig = "auto.create.indices.at.start"
	autoCreateIndicesAtStartDoc    = "Auto create the Elasticsearch indices at startup. This is useful when the indices " +
		"are a direct mapping of the source topics."

	// RetryOnConflictConfig sets the server-side retry count for upserts.
	RetryOnConflictConfig = "retry.on.conflict"
	retryOnConflictDoc    = "Specify how many times the operation should be retried by Elasticsearch when " +
		"conflicts occur while using the write method `upsert`. The value is the number of " +
		"retries."
)

// Data Conversion group.
const (
	// TypeNameConfig is the Elasticsearch type name used when indexing.
	TypeNameConfig = "type.name"
	typeNameDoc    = "The Elasticsearch type name to use when indexing."

	// KeyIgnoreConfig generates document IDs instead of using record keys.
	KeyIgnoreConfig = "key.ignore"
	keyIgnoreDoc    = "Whether to ignore the record key for the purpose of forming the Elasticsearch " +
		"document ID. When this is set to `true`, document IDs will be generated as the record's " +
		"`topic+partition+offset`. Note that this is a global config that applies to all topics; " +
		"use `topic.key.ignore` to override as `true` for specific topics."

	// SchemaIgnoreConfig skips mapping registration from record schemas.
	SchemaIgnoreConfig = "schema.ignore"
	schemaIgnoreDoc    = "Whether to ignore schemas during indexing. When this is set to `true`, the record " +
		"schema will be ignored for the purpose of registering an Elasticsearch mapping. " +
		"Elasticsearch will infer the mapping from the data (dynamic mapping needs to be enabled " +
		"by the user). Note that this is a global config that applies to all topics; use " +
		"`topic.schema.ignore` to override as `true` for specific topics."

	// CompactMapEntriesConfig controls JSON layout of string-keyed map entries.
	CompactMapEntriesConfig = "compact.map.entries"
	compactMapEntriesDoc    = "Defines how map entries with string keys within record values should be written to " +
		"JSON. When this is set to `true`, these entries are written compactly as " +
		"`\"entryKey\": \"entryValue\"`. Otherwise, map entries with string keys are written as a " +
		"nested document `{\"key\": \"entryKey\", \"value\": \"entryValue\"}`. All map entries " +
		"with non-string keys are always written as nested documents. Set this to `false` to use " +
		"the older nested-document behavior."

	// TopicIndexMapConfig is deprecated; use message transforms instead.
	TopicIndexMapConfig = "topic.index.map"
	topicIndexMapDoc    = "This option is now deprecated. A future version may remove it completely. Please " +
		"use single message transforms to map topic names to index names. A map from topic name " +
		"to the destination Elasticsearch index, represented as a list of `topic:index` pairs."

	// TopicKeyIgnoreConfig lists topics where key.ignore is forced on.
	TopicKeyIgnoreConfig = "topic.key.ignore"
	topicKeyIgnoreDoc    = "List of topics for which `key.ignore` should be `true`."

	// TopicSchemaIgnoreConfig lists topics where schema.ignore is forced on.
	TopicSchemaIgnoreConfig = "topic.schema.ignore"
	topicSchemaIgnoreDoc    = "List of topics for which `schema.ignore` should be `true`."

	// DropInvalidMessageConfig drops records that cannot be converted.
	DropInvalidMessageConfig = "drop.invalid.message"
	dropInvalidMessageDoc    = "Whether to drop a record when it cannot be converted to an output document."

	// BehaviorOnNullValuesConfig handles tombstone records.
	BehaviorOnNullValuesConfig = "behavior.on.null.values"
	behaviorOnNullValuesDoc    = "How to handle records with a non-null key and a null value (i.e. tombstone " +
		"records). Valid options are `ignore`, `delete`, and `fail`."

	// BehaviorOnMalformedDocsConfig handles documents Elasticsearch rejects.
	BehaviorOnMalformedDocsConfig = "behavior.on.malformed.documents"
	behaviorOnMalformedDocsDoc    = "How to handle records that Elasticsearch rejects due to some malformation of the " +
		"document itself, such as an index mapping conflict, a field name containing illegal " +
		"characters, or a record with a missing ID. Valid options are `ignore`, `warn`, and " +
		"`fail`."

	// WriteMethodConfig selects insert or upsert semantics.
	WriteMethodConfig = "write.method"
	writeMethodDoc    = "Method used for writing data to Elasticsearch, one of `insert` or `upsert`. The " +
		"default method is `insert`, in which the connector constructs a document from the record " +
		"value and inserts that document into Elasticsearch, completely replacing any existing " +
		"document with the same ID. The `upsert` method will create a new document if one with " +
		"the specified ID does not yet exist, or will update an existing document with the same " +
		"ID by adding/replacing only those fields present in the record value. The `upsert` " +
		"method may require additional time and resources of Elasticsearch, so consider " +
		"increasing the `flush.timeout.ms` and `read.timeout.ms`, and decreasing the " +
		"`batch.size` configuration properties."

	// DocumentVersionTypeConfig selects how document versions are derived.
	DocumentVersionTypeConfig = "elastic.document.version.type"
	documentVersionTypeDoc    = "The version type being used by the connector. Values can be `legacy`, `unused`, " +
		"`message-offset`, `message-timestamp`, `combined-timestamp-offset`."
)

// Proxy group.
const (
	// ProxyHostConfig is the address of the proxy to connect through.
	ProxyHostConfig  = "proxy.host"
	proxyHostDisplay = "Proxy Host"
	proxyHostDoc     = "The address of the proxy host to connect through. Supports the basic " +
		"authentication scheme only."

	// ProxyPortConfig is the port of the proxy.
	ProxyPortConfig  = "proxy.port"
	proxyPortDisplay = "Proxy Port"
	proxyPortDoc     = "The port of the proxy host to connect through."

	// ProxyUsernameConfig authenticates against the proxy.
	ProxyUsernameConfig  = "proxy.username"
	proxyUsernameDisplay = "Proxy Username"
	proxyUsernameDoc     = "The username for the proxy host."

	// ProxyPasswordConfig authenticates against the proxy.
	ProxyPasswordConfig  = "proxy.password"
	proxyPasswordDisplay = "Proxy Password"
	proxyPasswordDoc     = "The password for the proxy host."
)

// Security group.
const (
	// SecurityProtocolConfig selects PLAINTEXT or SSL connections.
	SecurityProtocolConfig = "elastic.security.protocol"
	securityProtocolDoc    = "The security protocol to use when connecting to Elasticsearch. Values can be " +
		"`PLAINTEXT` or `SSL`. If `PLAINTEXT` is passed, all configs prefixed by `elastic.https.` " +
		"will be ignored."

	// SSLConfigPrefix namespaces the embedded client TLS vocabulary.
	SSLConfigPrefix = "elastic.https."
)
