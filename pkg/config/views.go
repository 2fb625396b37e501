package config

import (
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"

	"github.com/datalift/elasticsink/pkg/configdef"
	"github.com/datalift/elasticsink/pkg/sinkerrors"
)

// Typed collaborator views over the resolved snapshot. Each view groups the
// keys one subsystem consumes, decoded into a plain struct so the subsystem
// never touches the snapshot directly.

// BulkPolicy carries the knobs of the bulk-indexing pipeline.
type BulkPolicy struct {
	BatchSize           int   `mapstructure:"batch.size"`
	MaxInFlightRequests int   `mapstructure:"max.in.flight.requests"`
	MaxBufferedRecords  int   `mapstructure:"max.buffered.records"`
	LingerMS            int64 `mapstructure:"linger.ms"`
	FlushTimeoutMS      int64 `mapstructure:"flush.timeout.ms"`
	MaxRetries          int   `mapstructure:"max.retries"`
	RetryBackoffMS      int64 `mapstructure:"retry.backoff.ms"`
	RetryOnConflict     int   `mapstructure:"retry.on.conflict"`
}

// Linger returns the batching delay as a duration.
func (p BulkPolicy) Linger() time.Duration {
	return time.Duration(p.LingerMS) * time.Millisecond
}

// FlushTimeout returns the flush deadline as a duration.
func (p BulkPolicy) FlushTimeout() time.Duration {
	return time.Duration(p.FlushTimeoutMS) * time.Millisecond
}

// RetryBackoff returns the initial retry delay as a duration.
func (p BulkPolicy) RetryBackoff() time.Duration {
	return time.Duration(p.RetryBackoffMS) * time.Millisecond
}

// TransportPolicy carries the knobs of the HTTP transport layer.
type TransportPolicy struct {
	URLs                    []string            `mapstructure:"connection.url"`
	Username                string              `mapstructure:"connection.username"`
	Password                *configdef.Password `mapstructure:"connection.password"`
	Compression             bool                `mapstructure:"connection.compression"`
	MaxConnectionIdleTimeMS int                 `mapstructure:"max.connection.idle.time.ms"`
	ConnectionTimeoutMS     int                 `mapstructure:"connection.timeout.ms"`
	ReadTimeoutMS           int                 `mapstructure:"read.timeout.ms"`
	ProxyHost               string              `mapstructure:"proxy.host"`
	ProxyPort               int                 `mapstructure:"proxy.port"`
	ProxyUsername           string              `mapstructure:"proxy.username"`
	ProxyPassword           *configdef.Password `mapstructure:"proxy.password"`
}

// UseAuthentication reports whether basic auth credentials are complete.
func (p TransportPolicy) UseAuthentication() bool {
	return p.Username != "" && p.Password != nil
}

// ConnectionTimeout returns the connect deadline as a duration.
func (p TransportPolicy) ConnectionTimeout() time.Duration {
	return time.Duration(p.ConnectionTimeoutMS) * time.Millisecond
}

// ReadTimeout returns the response deadline as a duration.
func (p TransportPolicy) ReadTimeout() time.Duration {
	return time.Duration(p.ReadTimeoutMS) * time.Millisecond
}

// MaxIdleTime returns the idle-connection cutoff as a duration.
func (p TransportPolicy) MaxIdleTime() time.Duration {
	return time.Duration(p.MaxConnectionIdleTimeMS) * time.Millisecond
}

// ConversionPolicy carries the knobs of the record-to-document conversion
// layer.
type ConversionPolicy struct {
	TypeName                 string   `mapstructure:"type.name"`
	KeyIgnore                bool     `mapstructure:"key.ignore"`
	SchemaIgnore             bool     `mapstructure:"schema.ignore"`
	CompactMapEntries        bool     `mapstructure:"compact.map.entries"`
	TopicIndexMap            []string `mapstructure:"topic.index.map"`
	TopicKeyIgnore           []string `mapstructure:"topic.key.ignore"`
	TopicSchemaIgnore        []string `mapstructure:"topic.schema.ignore"`
	DropInvalidMessage       bool     `mapstructure:"drop.invalid.message"`
	BehaviorOnNullValues     string   `mapstructure:"behavior.on.null.values"`
	BehaviorOnMalformedDocs  string   `mapstructure:"behavior.on.malformed.documents"`
	WriteMethod              string   `mapstructure:"write.method"`
	DocumentVersionType      string   `mapstructure:"elastic.document.version.type"`
	AutoCreateIndicesAtStart bool     `mapstructure:"auto.create.indices.at.start"`
}

// IndexOverrides parses the deprecated topic.index.map entries into a
// topic-to-index lookup. An entry without a colon or with an empty side is
// rejected.
func (p ConversionPolicy) IndexOverrides() (map[string]string, error) {
	overrides := make(map[string]string, len(p.TopicIndexMap))
	for _, entry := range p.TopicIndexMap {
		topic, index, ok := strings.Cut(entry, ":")
		if !ok || topic == "" || index == "" {
			return nil, sinkerrors.New(sinkerrors.ErrorTypeConfig,
				"invalid "+TopicIndexMapConfig+" entry "+entry+", expected topic:index")
		}
		overrides[topic] = index
	}
	return overrides, nil
}

// Bulk decodes the bulk-indexing view of the configuration.
func (c *Config) Bulk() (BulkPolicy, error) {
	var p BulkPolicy
	err := decodeView(c.snapshot, &p)
	return p, err
}

// Transport decodes the transport view of the configuration.
func (c *Config) Transport() (TransportPolicy, error) {
	var p TransportPolicy
	err := decodeView(c.snapshot, &p)
	return p, err
}

// Conversion decodes the record conversion view of the configuration.
func (c *Config) Conversion() (ConversionPolicy, error) {
	var p ConversionPolicy
	err := decodeView(c.snapshot, &p)
	return p, err
}

// decodeView maps snapshot entries onto the dotted mapstructure tags of out.
// The snapshot is flat, so dotted keys are matched literally rather than
// split into nested maps.
func decodeView(snapshot configdef.Snapshot, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  out,
		TagName: "mapstructure",
	})
	if err != nil {
		return sinkerrors.Wrap(err, sinkerrors.ErrorTypeInternal, "building config view decoder")
	}
	if err := decoder.Decode(map[string]any(snapshot)); err != nil {
		return sinkerrors.Wrap(err, sinkerrors.ErrorTypeInternal, "decoding config view")
	}
	return nil
}
